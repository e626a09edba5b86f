package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := New()

	c.FilesDiscovered(3)
	c.SeriesBuilt(4)
	c.SeriesBuilt(2)
	c.FileSkipped(ReasonMissingColumns)
	c.Rendered()

	assert.Equal(t, 3.0, testutil.ToFloat64(c.discovered))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.built))
	assert.Equal(t, 6.0, testutil.ToFloat64(c.points))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.skipped.WithLabelValues(ReasonMissingColumns)))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.skipped.WithLabelValues(ReasonError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.renders))
}

func TestCollector_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.FilesDiscovered(1)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.discovered))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := New()
	c.FilesDiscovered(2)

	path := filepath.Join(t.TempDir(), "entroplot.prom")
	require.NoError(t, c.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "entroplot_files_discovered_total 2")
	assert.Contains(t, string(data), `entroplot_files_skipped_total{reason="error"} 0`)
}
