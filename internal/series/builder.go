// Package series turns experiment result tables into chart series.
package series

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/entroplot/internal/adapters/csvtable"
	"github.com/aretw0/entroplot/pkg/domain"
)

// TableReader loads a file as a table with named columns.
type TableReader func(path string) (*csvtable.Table, error)

// Builder produces one Series per input file.
type Builder struct {
	pattern string
	read    TableReader
}

// NewBuilder creates a Builder. pattern is the discovery glob, used to
// derive run identifiers. A nil read defaults to csvtable.ReadFile.
func NewBuilder(pattern string, read TableReader) *Builder {
	if read == nil {
		read = csvtable.ReadFile
	}
	return &Builder{pattern: pattern, read: read}
}

// Build reads path and returns its series.
//
// It returns a *domain.MissingColumnsError when the table lacks Generation
// or Entropy, and a *domain.ParseError for any read or conversion failure.
func (b *Builder) Build(path string) (domain.Series, error) {
	runID := RunIdentifier(filepath.Base(path), b.pattern)

	tbl, err := b.read(path)
	if err != nil {
		return domain.Series{}, &domain.ParseError{Path: path, Err: err}
	}

	var missing []string
	for _, col := range []string{domain.ColumnGeneration, domain.ColumnEntropy} {
		if !tbl.Has(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return domain.Series{}, &domain.MissingColumnsError{Path: path, Missing: missing}
	}

	x, err := numericColumn(path, tbl, domain.ColumnGeneration)
	if err != nil {
		return domain.Series{}, err
	}
	y, err := numericColumn(path, tbl, domain.ColumnEntropy)
	if err != nil {
		return domain.Series{}, err
	}

	return domain.NewSeries(runID, path, x, y), nil
}

func numericColumn(path string, tbl *csvtable.Table, name string) ([]float64, error) {
	cells, _ := tbl.Column(name)
	out := make([]float64, len(cells))
	for i, cell := range cells {
		v, err := parseCell(cell)
		if err != nil {
			return nil, &domain.ParseError{Path: path, Line: tbl.Line(i), Column: name, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

// parseCell converts a cell to float64. Empty cells are NaN.
func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", cell)
	}
	return v, nil
}

// RunIdentifier derives the display identifier of a run from a file name.
//
// When name carries the literal text around the first '*' of pattern, the
// identifier is what the wildcard matched, so "experiment_a_b_entropies.csv"
// yields "a_b". Otherwise it is the second '_'-separated token, and failing
// that the name without its extension.
func RunIdentifier(name, pattern string) string {
	if prefix, suffix, ok := strings.Cut(pattern, "*"); ok {
		if len(name) > len(prefix)+len(suffix) &&
			strings.HasPrefix(name, prefix) && strings.HasSuffix(name, suffix) {
			return name[len(prefix) : len(name)-len(suffix)]
		}
	}

	if tokens := strings.Split(name, "_"); len(tokens) >= 2 {
		return tokens[1]
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}
