// Package axis implements the leaf generators of a scan: each produces the
// positions of one or more named axes from a compact parameterization.
//
// What:
//
//   - Line      — n axes interpolated linearly from start to stop.
//   - Array     — explicit positions, with fractional-index interpolation.
//   - Spiral    — Fermat spiral about a centre, bounded by a radius.
//   - Lissajous — Lissajous figure inside a bounding box.
//
// Every generator is immutable once constructed and exposes the same three
// facts: Size (number of points), Axes (ordered, pairwise distinct names)
// and PositionAt (a pure mapping from local index to one value per axis).
// The set of kinds is closed; the Generator interface is sealed.
//
// Alternate:
//
//	Line and Spiral carry an alternate-direction flag. The generator itself
//	always runs forwards; a compound generator reverses it on every other
//	pass of the next-slower dimension.
//
// Serialization:
//
//	ToDict emits {"typeid": ..., fields...}; FromDict dispatches on typeid
//	through a static table (see TypeIDs).
//
// Errors:
//
//   - ErrNoAxes, ErrEmptyAxisName, ErrDuplicateAxis — axis naming.
//   - ErrArity     — a per-axis parameter has the wrong number of values.
//   - ErrBadSize   — negative point count.
//   - ErrBadParam  — non-finite or out-of-domain numeric parameter.
//   - ErrRagged    — Array columns of differing lengths.
//   - ErrOutOfRange, ErrEmpty — fractional lookups on an Array.
package axis
