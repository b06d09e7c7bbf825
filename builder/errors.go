// SPDX-License-Identifier: MIT
// Package: scanpath/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w via builderErrorf(method, ...).
//   • Constructors never panic; validation panics are confined to WithX.

package builder

import (
	"errors"
	"fmt"
)

// ErrArity indicates a pair-valued parameter (axes, origin, size, count,
// step) with the wrong number of entries.
var ErrArity = errors.New("builder: wrong number of values")

// ErrCountStep indicates that neither or both of count and step were given.
var ErrCountStep = errors.New("builder: exactly one of count or step is required")

// ErrBadStep indicates a zero step, or a step whose sign cannot reach stop.
var ErrBadStep = errors.New("builder: invalid step")

// ErrBadSize indicates a negative length or a count below one.
var ErrBadSize = errors.New("builder: invalid size")

// ErrNoROIAxes indicates a Path carrying regions but no axis pair to
// evaluate them on.
var ErrNoROIAxes = errors.New("builder: regions given without axes")

// ErrNoPaths indicates that Compose received nothing to compose.
var ErrNoPaths = errors.New("builder: no paths")

// builderErrorf prefixes a formatted message with the method name. The
// format may contain %w.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: "+format, append([]interface{}{method}, args...)...)
}
