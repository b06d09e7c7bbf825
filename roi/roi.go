package roi

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/scanpath/core"
)

// Type identifiers of the serialized ROI records.
const (
	CircularTypeID    = "scanpointgenerator:roi/CircularROI:1.0"
	EllipticalTypeID  = "scanpointgenerator:roi/EllipticalROI:1.0"
	RectangularTypeID = "scanpointgenerator:roi/RectangularROI:1.0"
	PolygonalTypeID   = "scanpointgenerator:roi/PolygonalROI:1.0"
	SectorTypeID      = "scanpointgenerator:roi/SectorROI:1.0"
	PointTypeID       = "scanpointgenerator:roi/PointROI:1.0"
)

// Tolerance is the distance within which a Point ROI contains a position.
const Tolerance = 1e-9

// ROI is a region of interest in a 2D plane.
type ROI interface {
	// Contains reports whether (x, y) lies inside the region.
	Contains(x, y float64) bool
	// ToDict serializes the region's configuration.
	ToDict() core.Dict

	sealed()
}

var decoders = map[string]func(core.Dict) (ROI, error){
	CircularTypeID:    circularFromDict,
	EllipticalTypeID:  ellipticalFromDict,
	RectangularTypeID: rectangularFromDict,
	PolygonalTypeID:   polygonalFromDict,
	SectorTypeID:      sectorFromDict,
	PointTypeID:       pointFromDict,
}

// FromDict reconstructs an ROI from its serialized record.
// Returns core.ErrUnknownTypeID if the typeid is not an ROI.
func FromDict(d core.Dict) (ROI, error) {
	id, err := d.TypeID()
	if err != nil {
		return nil, fmt.Errorf("roi.FromDict: %w", err)
	}
	dec, ok := decoders[id]
	if !ok {
		return nil, fmt.Errorf("roi.FromDict: %q: %w", id, core.ErrUnknownTypeID)
	}
	r, err := dec(d)
	if err != nil {
		return nil, fmt.Errorf("roi.FromDict(%s): %w", id, err)
	}
	return r, nil
}

// TypeIDs lists the typeids FromDict understands, sorted.
func TypeIDs() []string {
	ids := make([]string, 0, len(decoders))
	for id := range decoders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func pair(method, field string, v []float64) ([2]float64, error) {
	if len(v) != 2 {
		return [2]float64{}, fmt.Errorf("%s: %s has %d values, want 2: %w", method, field, len(v), ErrArity)
	}
	if !finite(v[0]) || !finite(v[1]) {
		return [2]float64{}, fmt.Errorf("%s: %s=%v: %w", method, field, v, ErrBadParam)
	}
	return [2]float64{v[0], v[1]}, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// unrotate turns (x, y) by -angle, into the shape's own frame.
func unrotate(x, y, angle float64) (float64, float64) {
	if angle == 0 {
		return x, y
	}
	s, c := math.Sincos(angle)
	return x*c + y*s, -x*s + y*c
}

// Circular is a disc.
type Circular struct {
	centre [2]float64
	radius float64
}

// NewCircular returns a disc of radius about centre.
func NewCircular(centre []float64, radius float64) (*Circular, error) {
	c, err := pair("NewCircular", "centre", centre)
	if err != nil {
		return nil, err
	}
	if !(radius >= 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("NewCircular: radius=%v: %w", radius, ErrBadParam)
	}
	return &Circular{centre: c, radius: radius}, nil
}

func (r *Circular) sealed() {}

func (r *Circular) Contains(x, y float64) bool {
	dx, dy := x-r.centre[0], y-r.centre[1]
	return dx*dx+dy*dy <= r.radius*r.radius
}

func (r *Circular) ToDict() core.Dict {
	return core.Dict{
		core.TypeIDKey: CircularTypeID,
		"centre":       []float64{r.centre[0], r.centre[1]},
		"radius":       r.radius,
	}
}

func circularFromDict(d core.Dict) (ROI, error) {
	c, err := d.Floats("centre")
	if err != nil {
		return nil, err
	}
	rad, err := d.Float("radius")
	if err != nil {
		return nil, err
	}
	return NewCircular(c, rad)
}

// Elliptical is an ellipse with semi-axes (a, b) rotated by angle.
type Elliptical struct {
	centre   [2]float64
	semiaxes [2]float64
	angle    float64
}

// NewElliptical returns an ellipse. Both semi-axes must be positive.
func NewElliptical(centre, semiaxes []float64, angle float64) (*Elliptical, error) {
	c, err := pair("NewElliptical", "centre", centre)
	if err != nil {
		return nil, err
	}
	s, err := pair("NewElliptical", "semiaxes", semiaxes)
	if err != nil {
		return nil, err
	}
	if !(s[0] > 0) || !(s[1] > 0) || !finite(angle) {
		return nil, fmt.Errorf("NewElliptical: semiaxes=%v angle=%v: %w", s, angle, ErrBadParam)
	}
	return &Elliptical{centre: c, semiaxes: s, angle: angle}, nil
}

func (r *Elliptical) sealed() {}

func (r *Elliptical) Contains(x, y float64) bool {
	u, v := unrotate(x-r.centre[0], y-r.centre[1], r.angle)
	u /= r.semiaxes[0]
	v /= r.semiaxes[1]
	return u*u+v*v <= 1
}

func (r *Elliptical) ToDict() core.Dict {
	return core.Dict{
		core.TypeIDKey: EllipticalTypeID,
		"centre":       []float64{r.centre[0], r.centre[1]},
		"semiaxes":     []float64{r.semiaxes[0], r.semiaxes[1]},
		"angle":        r.angle,
	}
}

func ellipticalFromDict(d core.Dict) (ROI, error) {
	c, err := d.Floats("centre")
	if err != nil {
		return nil, err
	}
	s, err := d.Floats("semiaxes")
	if err != nil {
		return nil, err
	}
	a, err := d.FloatOr("angle", 0)
	if err != nil {
		return nil, err
	}
	return NewElliptical(c, s, a)
}

// Rectangular is a width×height rectangle anchored at start and rotated by
// angle about start.
type Rectangular struct {
	start  [2]float64
	width  float64
	height float64
	angle  float64
}

// NewRectangular returns a rectangle; width and height must be non-negative.
func NewRectangular(start []float64, width, height, angle float64) (*Rectangular, error) {
	s, err := pair("NewRectangular", "start", start)
	if err != nil {
		return nil, err
	}
	if !(width >= 0) || !(height >= 0) || math.IsInf(width, 0) || math.IsInf(height, 0) || !finite(angle) {
		return nil, fmt.Errorf("NewRectangular: %vx%v angle=%v: %w", width, height, angle, ErrBadParam)
	}
	return &Rectangular{start: s, width: width, height: height, angle: angle}, nil
}

func (r *Rectangular) sealed() {}

func (r *Rectangular) Contains(x, y float64) bool {
	u, v := unrotate(x-r.start[0], y-r.start[1], r.angle)
	return u >= 0 && u <= r.width && v >= 0 && v <= r.height
}

func (r *Rectangular) ToDict() core.Dict {
	return core.Dict{
		core.TypeIDKey: RectangularTypeID,
		"start":        []float64{r.start[0], r.start[1]},
		"width":        r.width,
		"height":       r.height,
		"angle":        r.angle,
	}
}

func rectangularFromDict(d core.Dict) (ROI, error) {
	s, err := d.Floats("start")
	if err != nil {
		return nil, err
	}
	w, err := d.Float("width")
	if err != nil {
		return nil, err
	}
	h, err := d.Float("height")
	if err != nil {
		return nil, err
	}
	a, err := d.FloatOr("angle", 0)
	if err != nil {
		return nil, err
	}
	return NewRectangular(s, w, h, a)
}

// Polygonal is a simple or self-intersecting polygon evaluated with the
// even-odd rule. Points exactly on an edge may fall either way.
type Polygonal struct {
	xs, ys []float64
}

// NewPolygonal returns a polygon with vertices (xs[i], ys[i]); at least
// three vertices are required.
func NewPolygonal(xs, ys []float64) (*Polygonal, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("NewPolygonal: %d x vs %d y: %w", len(xs), len(ys), ErrArity)
	}
	if len(xs) < 3 {
		return nil, fmt.Errorf("NewPolygonal: %d vertices, want ≥ 3: %w", len(xs), ErrArity)
	}
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return nil, fmt.Errorf("NewPolygonal: vertex %d: %w", i, ErrBadParam)
		}
	}
	return &Polygonal{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}, nil
}

func (r *Polygonal) sealed() {}

// Contains casts a ray towards +x and counts edge crossings.
// Complexity: O(vertices).
func (r *Polygonal) Contains(x, y float64) bool {
	inside := false
	n := len(r.xs)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := r.xs[i], r.ys[i]
		xj, yj := r.xs[j], r.ys[j]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

func (r *Polygonal) ToDict() core.Dict {
	return core.Dict{
		core.TypeIDKey: PolygonalTypeID,
		"points_x":     append([]float64(nil), r.xs...),
		"points_y":     append([]float64(nil), r.ys...),
	}
}

func polygonalFromDict(d core.Dict) (ROI, error) {
	xs, err := d.Floats("points_x")
	if err != nil {
		return nil, err
	}
	ys, err := d.Floats("points_y")
	if err != nil {
		return nil, err
	}
	return NewPolygonal(xs, ys)
}

// Sector is an annular wedge: inner ≤ r ≤ outer and θ within [start, end]
// taken counter-clockwise. Angles are normalized to [0, 2π) so a range may
// wrap through zero; a range spanning 2π or more is the full annulus.
type Sector struct {
	centre [2]float64
	radii  [2]float64
	angles [2]float64
}

// NewSector returns a sector; radii are [inner, outer] with 0 ≤ inner ≤ outer.
func NewSector(centre, radii, angles []float64) (*Sector, error) {
	c, err := pair("NewSector", "centre", centre)
	if err != nil {
		return nil, err
	}
	rr, err := pair("NewSector", "radii", radii)
	if err != nil {
		return nil, err
	}
	aa, err := pair("NewSector", "angles", angles)
	if err != nil {
		return nil, err
	}
	if rr[0] < 0 || rr[1] < rr[0] {
		return nil, fmt.Errorf("NewSector: radii=%v: %w", rr, ErrBadParam)
	}
	return &Sector{centre: c, radii: rr, angles: aa}, nil
}

func (r *Sector) sealed() {}

// normAngle maps a to [0, 2π).
func normAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func (r *Sector) Contains(x, y float64) bool {
	dx, dy := x-r.centre[0], y-r.centre[1]
	d2 := dx*dx + dy*dy
	if d2 < r.radii[0]*r.radii[0] || d2 > r.radii[1]*r.radii[1] {
		return false
	}
	if math.Abs(r.angles[1]-r.angles[0]) >= 2*math.Pi {
		return true
	}
	if d2 == 0 {
		return true // the centre has no angle
	}
	theta := normAngle(math.Atan2(dy, dx))
	lo, hi := normAngle(r.angles[0]), normAngle(r.angles[1])
	if lo <= hi {
		return theta >= lo && theta <= hi
	}
	return theta >= lo || theta <= hi
}

func (r *Sector) ToDict() core.Dict {
	return core.Dict{
		core.TypeIDKey: SectorTypeID,
		"centre":       []float64{r.centre[0], r.centre[1]},
		"radii":        []float64{r.radii[0], r.radii[1]},
		"angles":       []float64{r.angles[0], r.angles[1]},
	}
}

func sectorFromDict(d core.Dict) (ROI, error) {
	c, err := d.Floats("centre")
	if err != nil {
		return nil, err
	}
	rr, err := d.Floats("radii")
	if err != nil {
		return nil, err
	}
	aa, err := d.Floats("angles")
	if err != nil {
		return nil, err
	}
	return NewSector(c, rr, aa)
}

// Point contains only its own location (within Tolerance per coordinate).
type Point struct {
	at [2]float64
}

// NewPoint returns a single-location ROI.
func NewPoint(at []float64) (*Point, error) {
	p, err := pair("NewPoint", "point", at)
	if err != nil {
		return nil, err
	}
	return &Point{at: p}, nil
}

func (r *Point) sealed() {}

func (r *Point) Contains(x, y float64) bool {
	return math.Abs(x-r.at[0]) <= Tolerance && math.Abs(y-r.at[1]) <= Tolerance
}

func (r *Point) ToDict() core.Dict {
	return core.Dict{
		core.TypeIDKey: PointTypeID,
		"point":        []float64{r.at[0], r.at[1]},
	}
}

func pointFromDict(d core.Dict) (ROI, error) {
	p, err := d.Floats("point")
	if err != nil {
		return nil, err
	}
	return NewPoint(p)
}
