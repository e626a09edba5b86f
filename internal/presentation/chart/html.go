// Package chart renders figures as standalone interactive HTML documents.
//
// The figure is always serialized in Plotly's JSON format. By default it is
// drawn by a small embedded SVG renderer, so documents work offline; Plotly
// itself can be referenced from its CDN or inlined from a local bundle.
package chart

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/aretw0/entroplot/pkg/domain"
	"github.com/google/uuid"
)

// DefaultPlotlyURL is the Plotly bundle referenced by the "cdn" source.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Script sources accepted by NewHTMLRenderer besides URLs and file paths.
const (
	SourceBuiltin = "builtin"
	SourceCDN     = "cdn"
)

const (
	libPlotly   = "Plotly"
	libLineplot = "Lineplot"
)

//go:embed templates/figure.html.tmpl
var figureTemplateHTML string

//go:embed assets/lineplot.js
var lineplotJS string

var figureTemplate = template.Must(template.New("figure").Parse(figureTemplateHTML))

type templateData struct {
	Title        string
	DivID        string
	ScriptURL    string
	InlineScript template.JS
	Library      template.JS
	Figure       template.JS
}

// HTMLRenderer implements ports.FigureRenderer.
type HTMLRenderer struct {
	scriptURL    string
	inlineScript string
	library      string
}

// NewHTMLRenderer creates a renderer. source selects the drawing library:
//
//   - "" or "builtin" inlines the embedded SVG renderer (no network needed)
//   - "cdn" references DefaultPlotlyURL
//   - an http(s) URL references that Plotly bundle as-is
//   - anything else is a local Plotly bundle inlined into every document
func NewHTMLRenderer(source string) (*HTMLRenderer, error) {
	switch {
	case source == "" || source == SourceBuiltin:
		return &HTMLRenderer{inlineScript: lineplotJS, library: libLineplot}, nil
	case source == SourceCDN:
		return &HTMLRenderer{scriptURL: DefaultPlotlyURL, library: libPlotly}, nil
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		return &HTMLRenderer{scriptURL: source, library: libPlotly}, nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read plotly bundle: %w", err)
	}
	return &HTMLRenderer{inlineScript: string(data), library: libPlotly}, nil
}

// Render writes fig as an HTML document. An empty figure renders an empty chart.
// Identical figures produce identical bytes.
func (r *HTMLRenderer) Render(w io.Writer, fig *domain.Figure) error {
	payload, err := MarshalFigure(fig)
	if err != nil {
		return fmt.Errorf("failed to marshal figure: %w", err)
	}

	data := templateData{
		Title:        fig.Layout.Title,
		DivID:        uuid.NewSHA1(uuid.NameSpaceURL, payload).String(),
		ScriptURL:    r.scriptURL,
		InlineScript: template.JS(r.inlineScript),
		Library:      template.JS(r.library),
		Figure:       template.JS(payload),
	}

	if err := figureTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}
