package roi

import "errors"

// Sentinel errors for ROI construction.
var (
	// ErrArity indicates a coordinate pair or range does not have two values,
	// or a polygon has fewer than three vertices.
	ErrArity = errors.New("roi: wrong number of values")

	// ErrBadParam indicates a non-finite or out-of-domain parameter
	// (negative radius, inner radius above outer, ...).
	ErrBadParam = errors.New("roi: invalid parameter")
)
