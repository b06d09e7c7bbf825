package excluder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scanpath/core"
	"github.com/katalvlaran/scanpath/roi"
)

// TypeID identifies a serialized Excluder.
const TypeID = "scanpointgenerator:excluder/ROIExcluder:1.0"

// Sentinel errors.
var (
	ErrNilROI   = errors.New("excluder: nil roi")
	ErrBadAxes  = errors.New("excluder: axes must be two distinct non-empty names")
	ErrMismatch = errors.New("excluder: coordinate slices differ in length")
)

// Excluder restricts a scan to the points whose (Axes[0], Axes[1]) position
// lies inside ROI.
type Excluder struct {
	roi  roi.ROI
	axes [2]string
}

// New returns an Excluder over the ordered axis pair (x, y).
func New(r roi.ROI, x, y string) (*Excluder, error) {
	if r == nil {
		return nil, ErrNilROI
	}
	if x == "" || y == "" || x == y {
		return nil, fmt.Errorf("excluder.New(%q, %q): %w", x, y, ErrBadAxes)
	}
	return &Excluder{roi: r, axes: [2]string{x, y}}, nil
}

// ROI returns the region.
func (e *Excluder) ROI() roi.ROI { return e.roi }

// Axes returns the ordered axis pair.
func (e *Excluder) Axes() [2]string { return e.axes }

// Key identifies the axis pair; excluders sharing a Key are unioned.
func (e *Excluder) Key() string { return e.axes[0] + "\x00" + e.axes[1] }

// Mask reports for every i whether (xs[i], ys[i]) is inside the region.
func (e *Excluder) Mask(xs, ys []float64) ([]bool, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("excluder.Mask: %d vs %d: %w", len(xs), len(ys), ErrMismatch)
	}
	out := make([]bool, len(xs))
	for i := range xs {
		out[i] = e.roi.Contains(xs[i], ys[i])
	}
	return out, nil
}

// Contains is the single-position form of Mask.
func (e *Excluder) Contains(x, y float64) bool { return e.roi.Contains(x, y) }

func (e *Excluder) ToDict() core.Dict {
	return core.Dict{
		core.TypeIDKey: TypeID,
		"roi":          e.roi.ToDict(),
		"axes":         []string{e.axes[0], e.axes[1]},
	}
}

// FromDict reconstructs an Excluder and its nested ROI.
func FromDict(d core.Dict) (*Excluder, error) {
	id, err := d.TypeID()
	if err != nil {
		return nil, fmt.Errorf("excluder.FromDict: %w", err)
	}
	if id != TypeID {
		return nil, fmt.Errorf("excluder.FromDict: %q: %w", id, core.ErrUnknownTypeID)
	}
	rd, err := d.Dict("roi")
	if err != nil {
		return nil, fmt.Errorf("excluder.FromDict: %w", err)
	}
	r, err := roi.FromDict(rd)
	if err != nil {
		return nil, err
	}
	axes, err := d.Strings("axes")
	if err != nil {
		return nil, fmt.Errorf("excluder.FromDict: %w", err)
	}
	if len(axes) != 2 {
		return nil, fmt.Errorf("excluder.FromDict: %d axes: %w", len(axes), ErrBadAxes)
	}
	return New(r, axes[0], axes[1])
}
