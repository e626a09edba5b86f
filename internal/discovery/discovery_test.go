package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	createDir := func(t *testing.T, files []string) string {
		dir := t.TempDir()
		for _, f := range files {
			err := os.WriteFile(filepath.Join(dir, f), []byte("Generation,Entropy\n"), 0644)
			require.NoError(t, err)
		}
		return dir
	}

	t.Run("Lexicographic not numeric order", func(t *testing.T) {
		dir := createDir(t, []string{
			"experiment_2_entropies.csv",
			"experiment_10_entropies.csv",
			"experiment_1_entropies.csv",
		})

		got, err := Find(dir, "experiment_*_entropies.csv")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "experiment_10_entropies.csv"),
			filepath.Join(dir, "experiment_1_entropies.csv"),
			filepath.Join(dir, "experiment_2_entropies.csv"),
		}, got)
	})

	t.Run("Ignores non matching names", func(t *testing.T) {
		dir := createDir(t, []string{
			"experiment_1_entropies.csv",
			"experiment_1_entropies.csv.bak",
			"experiment_1_fitness.csv",
			"notes.txt",
		})

		got, err := Find(dir, "experiment_*_entropies.csv")
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join(dir, "experiment_1_entropies.csv")}, got)
	})

	t.Run("Empty directory", func(t *testing.T) {
		got, err := Find(t.TempDir(), "experiment_*_entropies.csv")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Matching directory is kept", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "experiment_x_entropies.csv"), 0755))

		got, err := Find(dir, "experiment_*_entropies.csv")
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("Bad pattern", func(t *testing.T) {
		_, err := Find(t.TempDir(), "experiment_[_entropies.csv")
		assert.ErrorIs(t, err, filepath.ErrBadPattern)
	})

	t.Run("Missing directory", func(t *testing.T) {
		_, err := Find(filepath.Join(t.TempDir(), "nope"), "*.csv")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Deterministic across calls", func(t *testing.T) {
		dir := createDir(t, []string{"experiment_b_entropies.csv", "experiment_a_entropies.csv"})
		first, err := Find(dir, "experiment_*_entropies.csv")
		require.NoError(t, err)
		second, err := Find(dir, "experiment_*_entropies.csv")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
