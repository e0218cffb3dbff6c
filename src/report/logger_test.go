package report

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestSetLogLevel(t *testing.T) {
	defer SetLogLevel("info")

	SetLogLevel("debug")
	if GetLogLevel() != LevelDebug {
		t.Fatalf("expected debug level, got %v", GetLogLevel())
	}
	// Unknown and empty values leave the level unchanged.
	SetLogLevel("chatty")
	if GetLogLevel() != LevelDebug {
		t.Fatalf("unknown level should be ignored, got %v", GetLogLevel())
	}
	SetLogLevel("")
	if GetLogLevel() != LevelDebug {
		t.Fatalf("empty level should be ignored, got %v", GetLogLevel())
	}
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLogLevel("info")

	msg := "Bun: 50000 req/s (100.0% success) avg=2.00ms"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% success)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLogLevel("info")
	Debugf("should not appear")
	if buf.Len() != 0 {
		t.Fatalf("debug line leaked at info level: %s", buf.String())
	}
	SetLogLevel("debug")
	Debugf("now visible")
	if !strings.Contains(buf.String(), "[DEBUG] now visible") {
		t.Fatalf("debug line missing: %s", buf.String())
	}
}
