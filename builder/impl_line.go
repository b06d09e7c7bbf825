package builder

import (
	"math"

	"github.com/katalvlaran/scanpath/axis"
)

// LineSpec describes points along the segment that starts at Origin, has
// the given Length and points Angle radians counter-clockwise from +x.
// Exactly one of Count and Step must be non-zero:
//   - Count: equally spaced points at the centres of Count equal cells.
//   - Step: points every Step from Origin, as many as fit.
type LineSpec struct {
	Axes   []string
	Origin []float64
	Length float64
	Angle  float64
	Count  int
	Step   float64
}

// Line builds a one-dimensional path over two axes.
//
// Errors: ErrArity, ErrCountStep, ErrBadSize, ErrBadStep.
func Line(spec LineSpec) (Path, error) {
	if err := validateAxes(MethodLine, spec.Axes); err != nil {
		return Path{}, err
	}
	if err := validatePair(MethodLine, "origin", spec.Origin); err != nil {
		return Path{}, err
	}
	if !(spec.Length >= 0) || math.IsInf(spec.Length, 0) || math.IsNaN(spec.Angle) {
		return Path{}, builderErrorf(MethodLine, "length=%v angle=%v: %w", spec.Length, spec.Angle, ErrBadSize)
	}
	if (spec.Count == 0) == (spec.Step == 0) {
		return Path{}, builderErrorf(MethodLine, "%w", ErrCountStep)
	}

	dy, dx := math.Sincos(spec.Angle)
	var from, to float64 // distances along the segment
	var n int
	if spec.Count != 0 {
		if spec.Count < 1 {
			return Path{}, builderErrorf(MethodLine, "count=%d: %w", spec.Count, ErrBadSize)
		}
		cell := spec.Length / float64(spec.Count)
		from, to, n = cell/2, spec.Length-cell/2, spec.Count
	} else {
		if spec.Step < 0 {
			return Path{}, builderErrorf(MethodLine, "step=%v: %w", spec.Step, ErrBadStep)
		}
		var err error
		if n, err = stepCount(MethodLine, spec.Length, spec.Step); err != nil {
			return Path{}, err
		}
		from, to = 0, float64(n-1)*spec.Step
	}

	l, err := axis.NewLine(axis.LineConfig{
		Axes:  spec.Axes,
		Start: []float64{spec.Origin[0] + from*dx, spec.Origin[1] + from*dy},
		Stop:  []float64{spec.Origin[0] + to*dx, spec.Origin[1] + to*dy},
		Num:   n,
	})
	if err != nil {
		return Path{}, builderErrorf(MethodLine, "%w", err)
	}
	return Path{Dims: []axis.Generator{l}}, nil
}
