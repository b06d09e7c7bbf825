package axis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scanpath/core"
)

const methodArray = "NewArray"

// ArrayConfig parameterizes an Array. Points holds one column per axis:
// Points[a][i] is the position of Axes[a] at index i.
type ArrayConfig struct {
	Axes   []string
	Units  []string
	Points [][]float64
}

// Array visits an explicit list of positions.
//
// Fractional lookups (PositionAtFraction) interpolate linearly between the
// two stored points bracketing t. The first and last segments are extended
// one unit beyond the array so that a mutated index slightly outside
// [0, n-1] still maps to a position without clamping.
type Array struct {
	axes   []string
	units  []string
	points [][]float64
}

// NewArray validates cfg and returns an immutable Array.
// Errors: ErrNoAxes, ErrEmptyAxisName, ErrDuplicateAxis, ErrArity, ErrRagged, ErrBadParam.
func NewArray(cfg ArrayConfig) (*Array, error) {
	axes, units, err := resolveAxes(methodArray, cfg.Axes, cfg.Units)
	if err != nil {
		return nil, err
	}
	if len(cfg.Points) != len(axes) {
		return nil, fmt.Errorf("%s: %d point columns for %d axes: %w", methodArray, len(cfg.Points), len(axes), ErrArity)
	}
	n := len(cfg.Points[0])
	cols := make([][]float64, len(axes))
	for a, col := range cfg.Points {
		if len(col) != n {
			return nil, fmt.Errorf("%s: axis %q has %d points, want %d: %w", methodArray, axes[a], len(col), n, ErrRagged)
		}
		for i, v := range col {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: points[%d][%d]=%v: %w", methodArray, a, i, v, ErrBadParam)
			}
		}
		cols[a] = append([]float64(nil), col...)
	}

	return &Array{axes: axes, units: units, points: cols}, nil
}

// NewArray1D is shorthand for a single-axis Array.
func NewArray1D(axis, unit string, points []float64) (*Array, error) {
	var units []string
	if unit != "" {
		units = []string{unit}
	}
	return NewArray(ArrayConfig{Axes: []string{axis}, Units: units, Points: [][]float64{points}})
}

func (g *Array) Axes() []string           { return g.axes }
func (g *Array) Units() map[string]string { return unitMap(g.axes, g.units) }
func (g *Array) Size() int                { return len(g.points[0]) }
func (g *Array) Alternate() bool          { return false }
func (g *Array) sealed()                  {}

// PositionAt returns the stored position of every axis at index i.
func (g *Array) PositionAt(i int) []float64 {
	out := make([]float64, len(g.axes))
	for a := range g.axes {
		out[a] = g.points[a][i]
	}
	return out
}

// PositionAtFraction interpolates every axis at fractional index t.
// t may range over [-1, n]; beyond the stored points the first or last
// segment is extrapolated. A single-point array is constant.
//
// Errors: ErrEmpty for an empty array, ErrOutOfRange outside [-1, n].
func (g *Array) PositionAtFraction(t float64) ([]float64, error) {
	n := g.Size()
	if n == 0 {
		return nil, fmt.Errorf("PositionAtFraction(%g): %w", t, ErrEmpty)
	}
	if math.IsNaN(t) || t < -1 || t > float64(n) {
		return nil, fmt.Errorf("PositionAtFraction(%g), n=%d: %w", t, n, ErrOutOfRange)
	}

	out := make([]float64, len(g.axes))
	if n == 1 {
		for a := range g.axes {
			out[a] = g.points[a][0]
		}
		return out, nil
	}

	// Segment [lo, lo+1] bracketing t, pinned to the first/last segment
	// so that the ends extrapolate.
	lo := int(math.Floor(t))
	if lo < 0 {
		lo = 0
	}
	if lo > n-2 {
		lo = n - 2
	}
	frac := t - float64(lo)
	for a := range g.axes {
		p0, p1 := g.points[a][lo], g.points[a][lo+1]
		out[a] = p0 + frac*(p1-p0)
	}
	return out, nil
}

func (g *Array) ToDict() core.Dict {
	pts := make([][]float64, len(g.points))
	for a := range g.points {
		pts[a] = append([]float64(nil), g.points[a]...)
	}
	return core.Dict{
		core.TypeIDKey: ArrayTypeID,
		"axes":         append([]string(nil), g.axes...),
		"units":        append([]string(nil), g.units...),
		"points":       pts,
	}
}

func arrayFromDict(d core.Dict) (Generator, error) {
	axes, units, err := decodeAxes(d)
	if err != nil {
		return nil, err
	}
	pts, err := d.FloatMatrix("points")
	if err != nil {
		return nil, err
	}
	return NewArray(ArrayConfig{Axes: axes, Units: units, Points: pts})
}
