package compound

import "errors"

var (
	// ErrNoDimensions is returned by New when no dimension is given.
	ErrNoDimensions = errors.New("compound: no dimensions")

	// ErrNilDimension is returned for a nil entry in the dimension list.
	ErrNilDimension = errors.New("compound: nil dimension")

	// ErrUnsupportedDimension is returned for a Dimension that is neither an
	// axis.Generator nor a *Generator.
	ErrUnsupportedDimension = errors.New("compound: unsupported dimension type")

	// ErrDuplicateAxis is returned when two dimensions share an axis name.
	ErrDuplicateAxis = errors.New("compound: axis used by more than one dimension")

	// ErrUnknownAxis is returned when an excluder names an axis that no
	// dimension produces.
	ErrUnknownAxis = errors.New("compound: excluder axis not in any dimension")

	// ErrTooLarge is returned by New when the product of the dimension sizes
	// does not fit in an int.
	ErrTooLarge = errors.New("compound: flattened size overflows int")

	// ErrNotPrepared is returned by lookups made before Prepare.
	ErrNotPrepared = errors.New("compound: generator not prepared")

	// ErrExhausted is returned by Cursor.Next past the last point.
	ErrExhausted = errors.New("compound: iteration exhausted")

	// ErrOutOfRange is returned for an index outside the valid range.
	ErrOutOfRange = errors.New("compound: index out of range")
)
