package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/entroplot/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "experiment_*_entropies.csv", cfg.Pattern)
	assert.Equal(t, "entropy_plots.html", cfg.Output)
	assert.Equal(t, domain.DefaultLayout(), cfg.Layout())
	assert.Equal(t, "builtin", cfg.PlotlyJS, "documents work offline by default")
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("No file means defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir(), "")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("Default file in dir", func(t *testing.T) {
		dir := t.TempDir()
		content := "output: soup.html\ntitle: Soup\nlog_level: debug\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte(content), 0644))

		cfg, err := Load(dir, "")
		require.NoError(t, err)
		assert.Equal(t, "soup.html", cfg.Output)
		assert.Equal(t, "Soup", cfg.Title)
		assert.Equal(t, "debug", cfg.LogLevel)
		// Untouched keys keep their defaults.
		assert.Equal(t, domain.DefaultPattern, cfg.Pattern)
		assert.Equal(t, domain.DefaultYAxisTitle, cfg.YAxisTitle)
	})

	t.Run("Explicit file must exist", func(t *testing.T) {
		_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("Unknown key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "c.yaml")
		require.NoError(t, os.WriteFile(path, []byte("colour: red\n"), 0644))

		_, err := Load("", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "colour")
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "c.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: [unclosed\n"), 0644))

		_, err := Load("", path)
		assert.Error(t, err)
	})
}

func TestDecode_Overrides(t *testing.T) {
	cfg := Default()
	err := Decode(map[string]any{"pattern": "run_*.csv", "metrics_file": "out.prom"}, &cfg)
	require.NoError(t, err)
	assert.Equal(t, "run_*.csv", cfg.Pattern)
	assert.Equal(t, "out.prom", cfg.MetricsFile)
	assert.Equal(t, domain.DefaultOutput, cfg.Output)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Pattern = "experiment_[.csv"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Output = ""
	assert.Error(t, cfg.Validate())
}
