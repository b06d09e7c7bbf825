package builder

import "github.com/katalvlaran/scanpath/axis"

// Step moves axis from start towards stop in increments of step. The last
// point is the furthest one not beyond stop (within rounding).
//
// Errors: ErrBadStep (zero step, or step pointing away from stop).
// Complexity: O(1).
func Step(axisName string, start, stop, step float64) (Path, error) {
	n, err := stepCount(MethodStep, stop-start, step)
	if err != nil {
		return Path{}, err
	}
	l, err := axis.NewLine1D(axisName, "", start, start+float64(n-1)*step, n, false)
	if err != nil {
		return Path{}, builderErrorf(MethodStep, "%w", err)
	}
	return Path{Dims: []axis.Generator{l}}, nil
}
