package main

import (
	"fmt"
	"image/png"
	"os"
	"testing"

	"github.com/ImBIOS/encoredev-ts-benchmarks/src/report"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory afterwards. (testing.T.Chdir needs Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}

// writeResultFiles writes a plausible result pair for every configured
// framework into the current working directory.
func writeResultFiles(t *testing.T) {
	t.Helper()
	for i, e := range report.Frameworks() {
		rps := 50000 - float64(i)*4000
		avg := 0.002 + float64(i)*0.0004
		noSchema := fmt.Sprintf(`{"summary": {"successRate": 1.0, "average": %f, "requestsPerSec": %f}}`, avg, rps)
		withSchema := fmt.Sprintf(`{"summary": {"successRate": 1.0, "average": %f, "requestsPerSec": %f}}`, avg*1.2, rps*0.85)
		if err := os.WriteFile(e.NoSchemaFile, []byte(noSchema), 0o644); err != nil {
			t.Fatalf("write %s: %v", e.NoSchemaFile, err)
		}
		if err := os.WriteFile(e.SchemaFile, []byte(withSchema), 0o644); err != nil {
			t.Fatalf("write %s: %v", e.SchemaFile, err)
		}
	}
}

func TestRunEndToEnd(t *testing.T) {
	chdir(t, t.TempDir())
	writeResultFiles(t)

	if err := run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(outputFile)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	cfg, err := png.DecodeConfig(f)
	f.Close()
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		t.Fatalf("degenerate output %dx%d", cfg.Width, cfg.Height)
	}

	// A second run with unchanged inputs regenerates the file cleanly.
	if err := run(); err != nil {
		t.Fatalf("second run: %v", err)
	}
}

func TestRunMissingInputWritesNothing(t *testing.T) {
	chdir(t, t.TempDir())
	writeResultFiles(t)
	if err := os.Remove("hono_schema.json"); err != nil {
		t.Fatalf("remove input: %v", err)
	}

	if err := run(); err == nil {
		t.Fatalf("expected error for missing input")
	}
	if _, err := os.Stat(outputFile); !os.IsNotExist(err) {
		t.Fatalf("no output should be written on failure, stat err=%v", err)
	}
}
