package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoInputFiles is returned when discovery finds nothing to plot.
// It is informational: callers exit early without producing a chart.
var ErrNoInputFiles = errors.New("no input files found")

// MissingColumnsError reports a structurally valid table that lacks
// one or both required columns. It is a warning, not a failure.
type MissingColumnsError struct {
	Path    string
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("%s: missing column(s) %s", e.Path, strings.Join(e.Missing, ", "))
}

// ParseError reports a file that could not be read as a numeric table.
// Line and Column are 1-based; zero means unknown.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("line %d, column %q: %v", e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	default:
		return e.Err.Error()
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
