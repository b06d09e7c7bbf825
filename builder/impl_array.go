package builder

import "github.com/katalvlaran/scanpath/axis"

// Array visits the given positions of one axis in order.
func Array(axisName string, values []float64) (Path, error) {
	a, err := axis.NewArray1D(axisName, "", values)
	if err != nil {
		return Path{}, builderErrorf(MethodArray, "%w", err)
	}
	return Path{Dims: []axis.Generator{a}}, nil
}

// Val holds axis at value. Used as the innermost path it moves the axis
// back to value before every exposure ("move to keep still").
func Val(axisName string, value float64) (Path, error) {
	p, err := Array(axisName, []float64{value})
	if err != nil {
		return Path{}, builderErrorf(MethodVal, "%w", err)
	}
	return p, nil
}

// SinglePoint is the one position (x, y) on axes (xAxis, yAxis).
func SinglePoint(xAxis, yAxis string, x, y float64) (Path, error) {
	a, err := axis.NewArray(axis.ArrayConfig{
		Axes:   []string{xAxis, yAxis},
		Points: [][]float64{{x}, {y}},
	})
	if err != nil {
		return Path{}, builderErrorf(MethodSinglePoint, "%w", err)
	}
	return Path{Dims: []axis.Generator{a}}, nil
}
