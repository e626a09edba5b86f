package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/entroplot/pkg/domain"
	"github.com/muesli/termenv"
)

// NoInputMessage is printed when discovery finds no files.
const NoInputMessage = "No experiment CSV files found. Make sure you have run the experiments first."

// ConsoleReporter implements ports.Reporter by printing one line per event.
// Prefixes are coloured only when the writer is a colour-capable terminal.
type ConsoleReporter struct {
	w   io.Writer
	out *termenv.Output
}

// NewConsoleReporter creates a reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w, out: termenv.NewOutput(w)}
}

func (r *ConsoleReporter) NoInput(pattern string) {
	fmt.Fprintln(r.w, NoInputMessage)
}

func (r *ConsoleReporter) Skipped(path string, err *domain.MissingColumnsError) {
	prefix := r.out.String("Warning:").Foreground(r.out.Color("#f59e0b"))
	fmt.Fprintf(r.w, "%s Skipping %s - missing '%s' or '%s' columns.\n",
		prefix, path, domain.ColumnGeneration, domain.ColumnEntropy)
}

func (r *ConsoleReporter) Failed(path string, err error) {
	prefix := r.out.String("Error").Foreground(r.out.Color("#ef4444"))
	fmt.Fprintf(r.w, "%s processing %s: %v\n", prefix, path, err)
}

func (r *ConsoleReporter) Saved(output string) {
	fmt.Fprintf(r.w, "Plot saved to %s\n", output)
	fmt.Fprintln(r.w, "You can open this file in your web browser to view the interactive plot.")
}
