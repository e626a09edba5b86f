package chart_test

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/entroplot/internal/presentation/chart"
	"github.com/aretw0/entroplot/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extractFigure pulls the embedded Plotly JSON back out of a rendered document.
func extractFigure(t *testing.T, html string) map[string]any {
	t.Helper()
	const marker = "var figure = "
	start := strings.Index(html, marker)
	require.NotEqual(t, -1, start, "figure marker not found")
	rest := html[start+len(marker):]
	end := strings.Index(rest, ";\n")
	require.NotEqual(t, -1, end, "figure terminator not found")

	var fig map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(rest[:end])), &fig))
	return fig
}

func sampleFigure() *domain.Figure {
	fig := domain.NewFigure(domain.DefaultLayout())
	fig.Add(domain.NewSeries("1", "experiment_1_entropies.csv", []float64{1, 2, 3}, []float64{0.1, 0.5, 0.9}))
	fig.Add(domain.NewSeries("2", "experiment_2_entropies.csv", []float64{0, 1}, []float64{1.0, math.NaN()}))
	return fig
}

func TestHTMLRenderer_Render(t *testing.T) {
	r, err := chart.NewHTMLRenderer("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleFigure()))
	html := buf.String()

	assert.Contains(t, html, "<title>Entropy Over Generations for All Experiments</title>")

	fig := extractFigure(t, html)
	data := fig["data"].([]any)
	require.Len(t, data, 2)

	first := data[0].(map[string]any)
	assert.Equal(t, "scatter", first["type"])
	assert.Equal(t, "lines", first["mode"])
	assert.Equal(t, "Experiment 1", first["name"])
	assert.Equal(t, []any{1.0, 2.0, 3.0}, first["x"])
	assert.Equal(t, []any{0.1, 0.5, 0.9}, first["y"])

	second := data[1].(map[string]any)
	assert.Equal(t, "Experiment 2", second["name"])
	assert.Equal(t, []any{1.0, nil}, second["y"], "NaN renders as a gap")

	layout := fig["layout"].(map[string]any)
	assert.Equal(t, "x unified", layout["hovermode"])
	assert.Equal(t, "Entropy Over Generations for All Experiments", layout["title"].(map[string]any)["text"])
	assert.Equal(t, "Generation", layout["xaxis"].(map[string]any)["title"].(map[string]any)["text"])
	assert.Equal(t, "Soup Entropy", layout["yaxis"].(map[string]any)["title"].(map[string]any)["text"])
	assert.Equal(t, "Experiment", layout["legend"].(map[string]any)["title"].(map[string]any)["text"])
}

func TestHTMLRenderer_SelfContainedByDefault(t *testing.T) {
	for _, source := range []string{"", chart.SourceBuiltin} {
		r, err := chart.NewHTMLRenderer(source)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, sampleFigure()))
		html := buf.String()

		assert.NotContains(t, html, "src=", "no external script for source %q", source)
		assert.NotContains(t, html, chart.DefaultPlotlyURL)
		assert.Contains(t, html, "global.Lineplot = { newPlot: newPlot };", "renderer is inlined")
		assert.Contains(t, html, "Lineplot.newPlot(")
	}
}

func TestHTMLRenderer_Deterministic(t *testing.T) {
	r, err := chart.NewHTMLRenderer("")
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, r.Render(&a, sampleFigure()))
	require.NoError(t, r.Render(&b, sampleFigure()))
	assert.Equal(t, a.String(), b.String())
}

func TestHTMLRenderer_EmptyFigure(t *testing.T) {
	r, err := chart.NewHTMLRenderer("cdn")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, domain.NewFigure(domain.DefaultLayout())))

	fig := extractFigure(t, buf.String())
	assert.Equal(t, []any{}, fig["data"])
}

func TestHTMLRenderer_PlotlySource(t *testing.T) {
	t.Run("CDN", func(t *testing.T) {
		r, err := chart.NewHTMLRenderer(chart.SourceCDN)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, sampleFigure()))
		assert.Contains(t, buf.String(), `src="`+chart.DefaultPlotlyURL+`"`)
		assert.Contains(t, buf.String(), "Plotly.newPlot(")
		assert.NotContains(t, buf.String(), "Lineplot")
	})

	t.Run("Custom URL", func(t *testing.T) {
		r, err := chart.NewHTMLRenderer("https://example.test/plotly.js")
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, sampleFigure()))
		assert.Contains(t, buf.String(), `src="https://example.test/plotly.js"`)
	})

	t.Run("Inlined file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plotly.min.js")
		require.NoError(t, os.WriteFile(path, []byte("window.Plotly={newPlot:function(){}};"), 0644))

		r, err := chart.NewHTMLRenderer(path)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, r.Render(&buf, sampleFigure()))
		assert.Contains(t, buf.String(), "window.Plotly={newPlot:function(){}};")
		assert.Contains(t, buf.String(), "Plotly.newPlot(")
		assert.NotContains(t, buf.String(), chart.DefaultPlotlyURL)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := chart.NewHTMLRenderer(filepath.Join(t.TempDir(), "nope.js"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestValues_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(chart.Values{0, 1.5, math.Inf(1), math.NaN(), 1e21})
	require.NoError(t, err)
	assert.Equal(t, `[0,1.5,null,null,1e+21]`, string(got))
}
