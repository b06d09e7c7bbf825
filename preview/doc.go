// Package preview renders a prepared scan as a PNG image.
//
// Two axes of the scan are projected onto the canvas (y pointing up) with
// a uniform scale, so circles stay circles. Points are coloured along a
// gradient from the first to the last point of the scan, optionally joined
// in visit order, and grown into round markers.
package preview
