// Package scanpath generates the ordered list of positions a scanning
// instrument visits: motor demands for every axis, per-dimension indices
// and optional exposure durations.
//
// What is in the box?
//
//	A small, deterministic engine that brings together:
//		• Axis generators: Line, Array, Spiral, Lissajous
//		• Compound scans: nested dimensions with snake (boustrophedon) motion
//		• Regions: circle, ellipse, rectangle, polygon, sector, point
//		• Excluders: skip points outside a region of two axes
//		• Mutators: fixed exposure time, seeded random position jitter
//		• JSON/YAML records, a PNG path preview and the spgen CLI
//
// Packages:
//
//	core/      — Point, the Dict record type and shared decode errors
//	axis/      — one-dimension generators (one or more axes moving together)
//	roi/       — point-in-region tests
//	excluder/  — region applied to an ordered axis pair
//	mutator/   — per-point transformations keyed by flat index
//	compound/  — mixed-radix composition, Prepare, cursors, parallel Points
//	codec/     — typeid-tagged JSON/YAML documents
//	builder/   — step/grid/line/array/val/point shorthand + Compose
//	preview/   — PNG rendering of a prepared scan
//	cmd/spgen  — command-line front end
//
// Quick ASCII example (2×3 grid, x snaking):
//
//	y=1  5 ← 4 ← 3
//	               ↑
//	y=0  0 → 1 → 2
//
// Points are produced in that order; the flat index of a point never
// changes with exclusion, so mutators stay reproducible.
//
//	go get github.com/katalvlaran/scanpath
package scanpath
