// Package report loads the per-framework benchmark result files and builds
// the aligned metric series consumed by the chart renderer.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ImBIOS/encoredev-ts-benchmarks/src/types"
)

// FrameworkEntry pairs a framework display name with its two result files:
// one benchmarked without request/response schema validation, one with.
type FrameworkEntry struct {
	Name         string
	NoSchemaFile string
	SchemaFile   string
}

// Frameworks returns the fixed comparison set in display order. File names
// are relative to the working directory, which is expected to be the
// directory the benchmark runs wrote their result JSON into.
func Frameworks() []FrameworkEntry {
	return []FrameworkEntry{
		{Name: "Bun", NoSchemaFile: "bun_no_schema.json", SchemaFile: "bun_schema.json"},
		{Name: "Elysia", NoSchemaFile: "elysia_no_schema.json", SchemaFile: "elysia_schema.json"},
		{Name: "Encore", NoSchemaFile: "encore_no_schema.json", SchemaFile: "encore_schema.json"},
		{Name: "Express", NoSchemaFile: "express_no_schema.json", SchemaFile: "express_schema.json"},
		{Name: "Fastify", NoSchemaFile: "fastify_no_schema.json", SchemaFile: "fastify_schema.json"},
		{Name: "Fastify v5", NoSchemaFile: "fastify-v5_no_schema.json", SchemaFile: "fastify-v5_schema.json"},
		{Name: "Hono", NoSchemaFile: "hono_no_schema.json", SchemaFile: "hono_schema.json"},
	}
}

// Series holds the aggregated metrics for all frameworks. The five slices are
// index-aligned with each other and with the entry order passed to Collect;
// latencies are converted to milliseconds for display.
type Series struct {
	Names             []string
	RPSNoSchema       []float64
	RPSSchema         []float64
	LatencyNoSchemaMs []float64
	LatencySchemaMs   []float64
}

// Len returns the number of frameworks in the series.
func (s *Series) Len() int { return len(s.Names) }

// ReadResult decodes one benchmark result document. The file is closed before
// ReadResult returns, on error paths included.
func ReadResult(path string) (*types.BenchResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open result: %w", err)
	}
	defer f.Close()
	var res types.BenchResult
	if err := json.NewDecoder(f).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode result %s: %w", path, err)
	}
	return &res, nil
}

// summaryMetrics extracts throughput (req/s) and average latency (seconds)
// from a decoded document, rejecting documents that parse but lack the
// required summary fields.
func summaryMetrics(res *types.BenchResult, path string) (rps, avgSec float64, err error) {
	s := res.Summary
	if s == nil {
		return 0, 0, fmt.Errorf("result %s: missing summary", path)
	}
	if s.RequestsPerSec == nil {
		return 0, 0, fmt.Errorf("result %s: missing summary.requestsPerSec", path)
	}
	if s.Average == nil {
		return 0, 0, fmt.Errorf("result %s: missing summary.average", path)
	}
	return *s.RequestsPerSec, *s.Average, nil
}

// loadMetrics reads one result file and returns its summary metrics.
func loadMetrics(path string) (rps, avgSec float64, err error) {
	res, err := ReadResult(path)
	if err != nil {
		return 0, 0, err
	}
	return summaryMetrics(res, path)
}

// Collect loads both result files for every entry, in entry order, and builds
// the aligned series. The first unreadable or malformed file aborts the whole
// collection: no partial series is returned. Metric values are taken as-is;
// negative or zero values are not rejected.
func Collect(entries []FrameworkEntry) (*Series, error) {
	defer TimeTrack(time.Now(), "collect results")
	s := &Series{
		Names:             make([]string, 0, len(entries)),
		RPSNoSchema:       make([]float64, 0, len(entries)),
		RPSSchema:         make([]float64, 0, len(entries)),
		LatencyNoSchemaMs: make([]float64, 0, len(entries)),
		LatencySchemaMs:   make([]float64, 0, len(entries)),
	}
	for _, e := range entries {
		noRPS, noAvg, err := loadMetrics(e.NoSchemaFile)
		if err != nil {
			return nil, err
		}
		withRPS, withAvg, err := loadMetrics(e.SchemaFile)
		if err != nil {
			return nil, err
		}
		s.Names = append(s.Names, e.Name)
		s.RPSNoSchema = append(s.RPSNoSchema, noRPS)
		s.RPSSchema = append(s.RPSSchema, withRPS)
		s.LatencyNoSchemaMs = append(s.LatencyNoSchemaMs, noAvg*1000)
		s.LatencySchemaMs = append(s.LatencySchemaMs, withAvg*1000)
		Debugf("%s: %.0f req/s -> %.0f req/s with schema", e.Name, noRPS, withRPS)
	}
	return s, nil
}
