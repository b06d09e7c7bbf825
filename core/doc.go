// Package core defines the value types shared by every scanpath package:
// the Point a compound generator yields and the Dict record every
// generator, ROI, excluder and mutator serializes to.
//
// Point
//
//	Positions   — axis name → position (one entry per axis of the scan).
//	Indices     — one raw, monotonic local index per dimension.
//	Duration    — optional exposure duration, set by mutators.
//
// A Point is a pure value. Mutators never modify the Point they receive;
// they return a modified copy (see Point.Clone).
//
// Dict
//
//	Dict is a map[string]any keyed record carrying a "typeid" entry and
//	kind-specific fields. Its accessors (Float, Floats, Int, Strings, ...)
//	accept both the canonical Go types produced by ToDict and the loosely
//	typed values produced by encoding/json and gopkg.in/yaml.v3, so that
//	a record decoded from a document re-encodes to exactly the same Dict.
//
// Errors:
//
//	ErrUnknownTypeID - a typeid has no registered decoder.
//	ErrMissingField  - a required field is absent from a Dict.
//	ErrFieldType     - a field is present but has an unusable type.
package core
