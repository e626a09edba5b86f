package chart

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"github.com/aretw0/entroplot/pkg/domain"
)

// PlotlyFigure is the JSON document consumed by Plotly.newPlot.
type PlotlyFigure struct {
	Data   []PlotlyTrace `json:"data"`
	Layout PlotlyLayout  `json:"layout"`
}

// PlotlyTrace is a single scatter trace.
type PlotlyTrace struct {
	Type string `json:"type"`
	Mode string `json:"mode"`
	Name string `json:"name"`
	X    Values `json:"x"`
	Y    Values `json:"y"`
}

// PlotlyLayout mirrors the subset of Plotly's layout used by entroplot.
type PlotlyLayout struct {
	Title     PlotlyText   `json:"title"`
	XAxis     PlotlyAxis   `json:"xaxis"`
	YAxis     PlotlyAxis   `json:"yaxis"`
	Legend    PlotlyLegend `json:"legend"`
	HoverMode string       `json:"hovermode"`
}

type PlotlyText struct {
	Text string `json:"text"`
}

type PlotlyAxis struct {
	Title PlotlyText `json:"title"`
}

type PlotlyLegend struct {
	Title PlotlyText `json:"title"`
}

// Values is a numeric array whose NaN and infinite entries encode as null,
// which Plotly draws as a gap.
type Values []float64

func (v Values) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			buf.WriteByte(',')
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// NewPlotlyFigure converts a Figure into Plotly's data model:
// one line trace per series in accumulation order.
func NewPlotlyFigure(fig *domain.Figure) PlotlyFigure {
	series := fig.Series()
	traces := make([]PlotlyTrace, 0, len(series))
	for _, s := range series {
		traces = append(traces, PlotlyTrace{
			Type: "scatter",
			Mode: "lines",
			Name: s.Label,
			X:    Values(s.X),
			Y:    Values(s.Y),
		})
	}

	return PlotlyFigure{
		Data: traces,
		Layout: PlotlyLayout{
			Title:     PlotlyText{Text: fig.Layout.Title},
			XAxis:     PlotlyAxis{Title: PlotlyText{Text: fig.Layout.XAxisTitle}},
			YAxis:     PlotlyAxis{Title: PlotlyText{Text: fig.Layout.YAxisTitle}},
			Legend:    PlotlyLegend{Title: PlotlyText{Text: fig.Layout.LegendTitle}},
			HoverMode: fig.Layout.HoverMode,
		},
	}
}

// MarshalFigure returns the Plotly JSON of fig.
func MarshalFigure(fig *domain.Figure) ([]byte, error) {
	return json.Marshal(NewPlotlyFigure(fig))
}
