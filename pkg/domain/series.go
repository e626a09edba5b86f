package domain

import "math"

// Series is one experiment run rendered as a line.
// X and Y have equal length and keep the order found in the source file.
// Missing values are NaN.
type Series struct {
	RunID  string
	Label  string
	Source string
	X      []float64
	Y      []float64
}

// NewSeries builds a Series labelled after its run identifier.
func NewSeries(runID, source string, x, y []float64) Series {
	return Series{
		RunID:  runID,
		Label:  LabelPrefix + runID,
		Source: source,
		X:      x,
		Y:      y,
	}
}

// Len returns the number of points.
func (s Series) Len() int {
	return len(s.X)
}

// Bounds returns the minimum and maximum of the finite Y values.
// ok is false when the series has no finite values.
func (s Series) Bounds() (minY, maxY float64, ok bool) {
	for _, v := range s.Y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !ok {
			minY, maxY, ok = v, v, true
			continue
		}
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}
	return minY, maxY, ok
}
