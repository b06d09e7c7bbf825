// Package builder assembles compound scans from short path descriptions,
// in the vocabulary an experimenter uses at the beamline:
//
//   - Step:        one axis from start to stop in fixed increments.
//   - Grid:        a 2D raster over a bounding box, by count or by step,
//     optionally snaked and restricted to regions of interest.
//   - Line:        points along a segment given by origin, length and angle.
//   - Array, Val:  explicit positions for one axis ("move to keep still").
//   - SinglePoint: one (x, y) position.
//   - Circ, Rect, Poly: region helpers for Grid.
//
// Compose stacks paths outermost first into a compound.Generator and wires
// the optional mutators (exposure time, random jitter) selected through
// BuilderOption values.
//
// Error policy: constructors return sentinel errors wrapped with the
// method name ("Grid: ...: %w"); option constructors (WithX) panic on
// meaningless input.
package builder
