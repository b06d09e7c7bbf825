package builder

import (
	"github.com/katalvlaran/scanpath/axis"
	"github.com/katalvlaran/scanpath/roi"
)

// GridSpec describes a raster over the box [Origin, Origin+Size]. Pairs are
// ordered (fast, slow); the fast axis is the inner dimension.
//
// Exactly one of Count and Step must be set:
//   - Count (cells per axis): points sit at cell centres, so the first one
//     is half a cell in from Origin.
//   - Step (spacing per axis): points start at Origin and continue while
//     they stay inside the box.
//
// The fast axis snakes (reverses on every other row) unless NoSnake is set.
// ROIs, if any, are unioned and evaluated on (fast, slow).
type GridSpec struct {
	Axes    []string
	Origin  []float64
	Size    []float64
	Count   []int
	Step    []float64
	NoSnake bool
	ROIs    []roi.ROI
}

// Grid builds a two-dimensional raster path.
//
// Errors: ErrArity, ErrCountStep, ErrBadSize, ErrBadStep.
func Grid(spec GridSpec) (Path, error) {
	if err := validateAxes(MethodGrid, spec.Axes); err != nil {
		return Path{}, err
	}
	if err := validatePair(MethodGrid, "origin", spec.Origin); err != nil {
		return Path{}, err
	}
	if err := validatePair(MethodGrid, "size", spec.Size); err != nil {
		return Path{}, err
	}
	if spec.Size[0] < 0 || spec.Size[1] < 0 {
		return Path{}, builderErrorf(MethodGrid, "size=%v: %w", spec.Size, ErrBadSize)
	}
	if (spec.Count == nil) == (spec.Step == nil) {
		return Path{}, builderErrorf(MethodGrid, "%w", ErrCountStep)
	}

	var (
		start, stop [2]float64
		num         [2]int
	)
	if spec.Count != nil {
		if len(spec.Count) != 2 {
			return Path{}, builderErrorf(MethodGrid, "count has %d values, want 2: %w", len(spec.Count), ErrArity)
		}
		for k := 0; k < 2; k++ {
			if spec.Count[k] < 1 {
				return Path{}, builderErrorf(MethodGrid, "count=%v: %w", spec.Count, ErrBadSize)
			}
			cell := spec.Size[k] / float64(spec.Count[k])
			start[k] = spec.Origin[k] + cell/2
			stop[k] = spec.Origin[k] + spec.Size[k] - cell/2
			num[k] = spec.Count[k]
		}
	} else {
		if err := validatePair(MethodGrid, "step", spec.Step); err != nil {
			return Path{}, err
		}
		for k := 0; k < 2; k++ {
			n, err := stepCount(MethodGrid, spec.Size[k], spec.Step[k])
			if err != nil {
				return Path{}, err
			}
			start[k] = spec.Origin[k]
			stop[k] = spec.Origin[k] + float64(n-1)*spec.Step[k]
			num[k] = n
		}
	}

	fast, err := axis.NewLine1D(spec.Axes[0], "", start[0], stop[0], num[0], !spec.NoSnake)
	if err != nil {
		return Path{}, builderErrorf(MethodGrid, "%w", err)
	}
	slow, err := axis.NewLine1D(spec.Axes[1], "", start[1], stop[1], num[1], false)
	if err != nil {
		return Path{}, builderErrorf(MethodGrid, "%w", err)
	}
	return Path{
		Dims:    []axis.Generator{slow, fast},
		ROIs:    append([]roi.ROI(nil), spec.ROIs...),
		ROIAxes: [2]string{spec.Axes[0], spec.Axes[1]},
	}, nil
}
