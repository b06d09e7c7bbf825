package core

import (
	"fmt"
	"sort"
	"strings"
)

// Point is one position of a scan: the demanded position of every axis,
// the raw per-dimension index that produced it and an optional duration.
type Point struct {
	// Positions maps axis name to demanded position.
	Positions map[string]float64

	// Indices holds one local index per dimension, outermost first.
	// Indices are raw (pre-snake) and increase monotonically within a pass.
	Indices []int

	// Duration is the exposure duration in seconds; meaningful only when
	// HasDuration is true.
	Duration    float64
	HasDuration bool
}

// NewPoint returns a Point with allocated Positions and Indices of the
// given dimension count.
func NewPoint(axes, dims int) Point {
	return Point{
		Positions: make(map[string]float64, axes),
		Indices:   make([]int, dims),
	}
}

// Clone returns a deep copy of p. Mutators clone before writing so that a
// Point handed out by a generator is never modified behind the caller.
func (p Point) Clone() Point {
	q := Point{
		Positions:   make(map[string]float64, len(p.Positions)),
		Indices:     append([]int(nil), p.Indices...),
		Duration:    p.Duration,
		HasDuration: p.HasDuration,
	}
	for k, v := range p.Positions {
		q.Positions[k] = v
	}
	return q
}

// Position returns the position of axis and whether the axis is present.
func (p Point) Position(axis string) (float64, bool) {
	v, ok := p.Positions[axis]
	return v, ok
}

// String renders the point with axes in sorted order, e.g.
// "Point(x=0, y=1; idx=[0 1])".
func (p Point) String() string {
	names := make([]string, 0, len(p.Positions))
	for k := range p.Positions {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("Point(")
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%g", n, p.Positions[n])
	}
	fmt.Fprintf(&b, "; idx=%v", p.Indices)
	if p.HasDuration {
		fmt.Fprintf(&b, "; t=%g", p.Duration)
	}
	b.WriteString(")")
	return b.String()
}
