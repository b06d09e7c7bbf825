package axis

import "errors"

// Sentinel errors for axis generator construction and lookup.
var (
	// ErrNoAxes indicates a generator was configured without any axis.
	ErrNoAxes = errors.New("axis: at least one axis name is required")

	// ErrEmptyAxisName indicates an axis name is the empty string.
	ErrEmptyAxisName = errors.New("axis: axis name is empty")

	// ErrDuplicateAxis indicates the same axis name appears twice.
	ErrDuplicateAxis = errors.New("axis: duplicate axis name")

	// ErrArity indicates a per-axis parameter (units, start, stop, centre,
	// points) does not have one entry per axis, or a fixed-arity parameter
	// has the wrong length.
	ErrArity = errors.New("axis: wrong number of values")

	// ErrBadSize indicates a negative point count.
	ErrBadSize = errors.New("axis: point count must be non-negative")

	// ErrTooLarge indicates parameters whose point count does not fit in an int.
	ErrTooLarge = errors.New("axis: point count overflows int")

	// ErrBadParam indicates a non-finite or out-of-domain numeric parameter.
	ErrBadParam = errors.New("axis: invalid parameter")

	// ErrRagged indicates Array columns of differing lengths.
	ErrRagged = errors.New("axis: all axes must have the same number of points")

	// ErrOutOfRange indicates a fractional index beyond the extrapolation margin.
	ErrOutOfRange = errors.New("axis: index out of range")

	// ErrEmpty indicates a lookup on a generator with no points.
	ErrEmpty = errors.New("axis: generator has no points")
)
