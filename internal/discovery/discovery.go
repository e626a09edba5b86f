// Package discovery locates experiment result files by naming convention.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Find returns the entries of dir whose names match the glob pattern,
// joined with dir and sorted lexicographically by byte order.
//
// The order is literal, not numeric: experiment_10_... sorts before
// experiment_2_.... Matching entries are not filtered by type.
func Find(dir, pattern string) ([]string, error) {
	// Validate once so a bad pattern fails even on an empty directory.
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var matches []string
	for _, entry := range entries {
		ok, _ := filepath.Match(pattern, entry.Name())
		if ok {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(matches)
	return matches, nil
}
