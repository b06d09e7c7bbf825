// Package roi provides regions of interest: pure, stateless containment
// tests over a 2D position.
//
// Shapes:
//
//   - Circular    — centre, radius.
//   - Elliptical  — centre, semi-axes, rotation angle.
//   - Rectangular — start corner, width, height, rotation about the corner.
//   - Polygonal   — vertices, even-odd rule.
//   - Sector      — centre, [inner, outer] radii, [start, end] angles.
//   - Point       — a single location (within Tolerance).
//
// Angles are radians, counter-clockwise from +x. Boundaries count as inside.
// The set of shapes is closed; ROI is a sealed interface.
package roi
