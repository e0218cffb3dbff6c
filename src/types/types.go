// Package types holds the benchmark result document model shared by the
// report loader and any future tooling that inspects raw result files.
package types

// BenchResult is one load-generator result document as written by oha-style
// HTTP benchmarkers: a summary block plus optional distribution sections.
// Only the summary is required for chart generation; the other sections are
// decoded when present and otherwise left empty.
type BenchResult struct {
	Summary                *Summary           `json:"summary"`
	LatencyPercentiles     map[string]float64 `json:"latencyPercentiles,omitempty"`
	StatusCodeDistribution map[string]int     `json:"statusCodeDistribution,omitempty"`
	ErrorDistribution      map[string]int     `json:"errorDistribution,omitempty"`
}

// Summary carries the aggregate metrics of one benchmark run. All durations
// are in seconds. Average and RequestsPerSec are pointers so a document that
// parses but omits them is distinguishable from a legitimate zero value.
type Summary struct {
	SuccessRate    float64  `json:"successRate,omitempty"`
	Total          float64  `json:"total,omitempty"`
	Slowest        float64  `json:"slowest,omitempty"`
	Fastest        float64  `json:"fastest,omitempty"`
	Average        *float64 `json:"average"`
	RequestsPerSec *float64 `json:"requestsPerSec"`
	SizePerRequest float64  `json:"sizePerRequest,omitempty"`
	SizeTotal      float64  `json:"sizeTotal,omitempty"`
}
