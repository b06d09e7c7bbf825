package builder

import "github.com/katalvlaran/scanpath/roi"

// Circ is a disc of radius about origin (x0, y0).
func Circ(origin []float64, radius float64) (roi.ROI, error) {
	c, err := roi.NewCircular(origin, radius)
	if err != nil {
		return nil, builderErrorf(MethodCirc, "%w", err)
	}
	return c, nil
}

// Rect is a rectangle with corner origin (x0, y0) and size (w, h), rotated
// by angle radians about the corner.
func Rect(origin, size []float64, angle float64) (roi.ROI, error) {
	if err := validatePair(MethodRect, "size", size); err != nil {
		return nil, err
	}
	r, err := roi.NewRectangular(origin, size[0], size[1], angle)
	if err != nil {
		return nil, builderErrorf(MethodRect, "%w", err)
	}
	return r, nil
}

// Poly is the polygon through vertices; it closes itself.
func Poly(vertices ...[2]float64) (roi.ROI, error) {
	xs := make([]float64, len(vertices))
	ys := make([]float64, len(vertices))
	for i, v := range vertices {
		xs[i], ys[i] = v[0], v[1]
	}
	p, err := roi.NewPolygonal(xs, ys)
	if err != nil {
		return nil, builderErrorf(MethodPoly, "%w", err)
	}
	return p, nil
}
