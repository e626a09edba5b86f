package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/entroplot/pkg/domain"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() (func(string) (string, error), error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)
	if err != nil {
		return nil, err
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// SummaryMarkdown describes every series of fig as a markdown table.
func SummaryMarkdown(fig *domain.Figure) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", fig.Layout.Title))

	series := fig.Series()
	if len(series) == 0 {
		sb.WriteString("_No series plotted._\n")
		return sb.String()
	}

	sb.WriteString("| Series | Points | Generations | Min entropy | Max entropy |\n")
	sb.WriteString("|---|---:|---|---:|---:|\n")
	for _, s := range series {
		gens := "-"
		if s.Len() > 0 {
			gens = fmt.Sprintf("%s → %s", formatNumber(s.X[0]), formatNumber(s.X[s.Len()-1]))
		}
		minY, maxY := "-", "-"
		if lo, hi, ok := s.Bounds(); ok {
			minY, maxY = formatNumber(lo), formatNumber(hi)
		}
		sb.WriteString(fmt.Sprintf("| %s | %d | %s | %s | %s |\n",
			escapeCell(s.Label), s.Len(), gens, minY, maxY))
	}
	return sb.String()
}

func formatNumber(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", v), "0"), ".")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
