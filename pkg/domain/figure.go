package domain

// Layout holds display settings shared by every series of a Figure.
type Layout struct {
	Title       string
	XAxisTitle  string
	YAxisTitle  string
	LegendTitle string
	HoverMode   string
}

// DefaultLayout returns the layout of the entropy comparison chart.
func DefaultLayout() Layout {
	return Layout{
		Title:       DefaultTitle,
		XAxisTitle:  DefaultXAxisTitle,
		YAxisTitle:  DefaultYAxisTitle,
		LegendTitle: DefaultLegendTitle,
		HoverMode:   DefaultHoverMode,
	}
}

// Figure accumulates series in the order they are added.
type Figure struct {
	Layout Layout
	series []Series
}

// NewFigure returns an empty Figure.
func NewFigure(layout Layout) *Figure {
	return &Figure{Layout: layout}
}

// Add appends a series. Legend order follows call order.
func (f *Figure) Add(s Series) {
	f.series = append(f.series, s)
}

// Series returns a copy of the accumulated series.
func (f *Figure) Series() []Series {
	out := make([]Series, len(f.series))
	copy(out, f.series)
	return out
}

// Len returns the number of accumulated series.
func (f *Figure) Len() int {
	return len(f.series)
}

// Points returns the total number of points across all series.
func (f *Figure) Points() int {
	n := 0
	for _, s := range f.series {
		n += s.Len()
	}
	return n
}
