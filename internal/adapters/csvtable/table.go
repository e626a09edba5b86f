// Package csvtable reads comma-delimited files into tables addressed by column name.
package csvtable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var (
	// ErrEmpty is returned for a file without a header row.
	ErrEmpty = errors.New("no columns to parse from file")

	// ErrInvalidUTF8 is returned when the content is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("content is not valid UTF-8")
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Table is a parsed file: a header and its data rows.
// Rows shorter than the header are padded with empty cells.
type Table struct {
	Header []string
	Rows   [][]string
	index  map[string]int
	lines  []int
}

// Has reports whether the table has a column with the exact given name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the cells of the named column in row order.
// For duplicated header names the first occurrence wins.
func (t *Table) Column(name string) ([]string, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out, true
}

// Line returns the 1-based source line of data row i.
func (t *Table) Line(i int) int {
	if i < 0 || i >= len(t.lines) {
		return 0
	}
	return t.lines[i]
}

// ReadFile parses the file at path.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses comma-delimited data whose first record is the header.
// Blank lines are skipped. A record with more fields than the header is an error.
func Parse(data []byte) (*Table, error) {
	data = bytes.TrimPrefix(data, bom)
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	}
	if err != nil {
		return nil, err
	}

	t := &Table{
		Header: header,
		index:  make(map[string]int, len(header)),
	}
	for i, name := range header {
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := r.FieldPos(0)
		if len(record) > len(header) {
			return nil, fmt.Errorf("line %d: expected %d fields, saw %d", line, len(header), len(record))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		t.Rows = append(t.Rows, record)
		t.lines = append(t.lines, line)
	}

	return t, nil
}
