// Benchmark comparison chart generator.
//
// Reads the benchmark result JSON pairs produced by the framework benchmark
// runs (one no-schema and one with-schema file per framework) from the
// working directory and renders framework_comparison.png: a throughput panel
// and an average-latency panel with one bar pair per framework.
//
// There are no flags; the framework set, file names, and output name are
// fixed. BENCHCHART_LOG_LEVEL (debug|info|warn|error) adjusts log verbosity.
// Any missing or malformed input aborts the run before an image is written.
package main

import (
	"fmt"
	"os"

	"github.com/ImBIOS/encoredev-ts-benchmarks/src/charts"
	"github.com/ImBIOS/encoredev-ts-benchmarks/src/report"
)

const outputFile = "framework_comparison.png"

func run() error {
	series, err := report.Collect(report.Frameworks())
	if err != nil {
		return err
	}
	if err := charts.RenderComparison(series, outputFile); err != nil {
		return err
	}
	fmt.Printf("Chart has been saved as '%s'\n", outputFile)
	return nil
}

func main() {
	report.SetLogLevel(os.Getenv("BENCHCHART_LOG_LEVEL"))
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
