package testutils

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupResultsDir creates a temporary directory holding the given files
// (name -> content) and returns its absolute path.
// It fails the test immediately on error.
func SetupResultsDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir, err := filepath.Abs(t.TempDir())
	require.NoError(t, err, "Failed to get absolute path for temp dir")

	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err, "Failed to write fixture %s", name)
	}
	return dir
}

// EntropyCSV renders a well-formed result file from parallel columns.
func EntropyCSV(generations []int, entropies []float64) string {
	out := "Generation,Entropy\n"
	for i := range generations {
		out += formatRow(generations[i], entropies[i])
	}
	return out
}

func formatRow(gen int, entropy float64) string {
	return strconv.Itoa(gen) + "," + strconv.FormatFloat(entropy, 'g', -1, 64) + "\n"
}
