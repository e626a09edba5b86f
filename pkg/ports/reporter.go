package ports

import "github.com/aretw0/entroplot/pkg/domain"

// Reporter receives the diagnostics of a plotting run.
// Implementations must not fail; a run never aborts because of reporting.
type Reporter interface {
	// NoInput is called when discovery matched no files for pattern.
	NoInput(pattern string)

	// Skipped is called for a readable table that lacks a required column.
	Skipped(path string, err *domain.MissingColumnsError)

	// Failed is called when a file could not be read or parsed.
	Failed(path string, err error)

	// Saved is called after the chart document has been written.
	Saved(output string)
}

// NopReporter discards every diagnostic.
type NopReporter struct{}

func (NopReporter) NoInput(string)                              {}
func (NopReporter) Skipped(string, *domain.MissingColumnsError) {}
func (NopReporter) Failed(string, error)                        {}
func (NopReporter) Saved(string)                                {}
