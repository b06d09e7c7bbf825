package axis

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/scanpath/core"
)

// Type identifiers of the serialized generator records.
const (
	LineTypeID      = "scanpointgenerator:generator/LineGenerator:1.0"
	ArrayTypeID     = "scanpointgenerator:generator/ArrayGenerator:1.0"
	SpiralTypeID    = "scanpointgenerator:generator/SpiralGenerator:1.0"
	LissajousTypeID = "scanpointgenerator:generator/LissajousGenerator:1.0"
)

// DefaultUnit is used for every axis whose unit is not given.
const DefaultUnit = "mm"

// Generator is a leaf scan dimension. The set of implementations is closed:
// Line, Array, Spiral and Lissajous.
type Generator interface {
	// Axes returns the ordered axis names; the caller must not modify it.
	Axes() []string
	// Units returns axis name → unit.
	Units() map[string]string
	// Size returns the number of points.
	Size() int
	// PositionAt returns one position per axis, in Axes order, for local
	// index i in [0, Size).
	PositionAt(i int) []float64
	// Alternate reports whether a compound generator should reverse this
	// dimension on every other pass of the next-slower dimension.
	Alternate() bool
	// ToDict serializes the generator's configuration.
	ToDict() core.Dict

	sealed()
}

var decoders = map[string]func(core.Dict) (Generator, error){
	LineTypeID:      lineFromDict,
	ArrayTypeID:     arrayFromDict,
	SpiralTypeID:    spiralFromDict,
	LissajousTypeID: lissajousFromDict,
}

// FromDict reconstructs a generator from its serialized record.
// Returns core.ErrUnknownTypeID if the typeid is not an axis generator.
func FromDict(d core.Dict) (Generator, error) {
	id, err := d.TypeID()
	if err != nil {
		return nil, fmt.Errorf("axis.FromDict: %w", err)
	}
	dec, ok := decoders[id]
	if !ok {
		return nil, fmt.Errorf("axis.FromDict: %q: %w", id, core.ErrUnknownTypeID)
	}
	g, err := dec(d)
	if err != nil {
		return nil, fmt.Errorf("axis.FromDict(%s): %w", id, err)
	}
	return g, nil
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

// resolveAxes validates names and units and returns a private copy of both.
// A nil units slice defaults every axis to DefaultUnit.
func resolveAxes(method string, axes, units []string) ([]string, []string, error) {
	if len(axes) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", method, ErrNoAxes)
	}
	seen := make(map[string]struct{}, len(axes))
	for _, a := range axes {
		if a == "" {
			return nil, nil, fmt.Errorf("%s: %w", method, ErrEmptyAxisName)
		}
		if _, dup := seen[a]; dup {
			return nil, nil, fmt.Errorf("%s: %q: %w", method, a, ErrDuplicateAxis)
		}
		seen[a] = struct{}{}
	}

	outUnits := make([]string, len(axes))
	switch {
	case units == nil:
		for i := range outUnits {
			outUnits[i] = DefaultUnit
		}
	case len(units) != len(axes):
		return nil, nil, fmt.Errorf("%s: units=%d, axes=%d: %w", method, len(units), len(axes), ErrArity)
	default:
		copy(outUnits, units)
	}

	return append([]string(nil), axes...), outUnits, nil
}

// requireArity checks that vals has exactly n entries, all finite.
func requireArity(method, field string, vals []float64, n int) error {
	if len(vals) != n {
		return fmt.Errorf("%s: %s has %d values, want %d: %w", method, field, len(vals), n, ErrArity)
	}
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s: %s[%d]=%v: %w", method, field, i, v, ErrBadParam)
		}
	}
	return nil
}

func unitMap(axes, units []string) map[string]string {
	m := make(map[string]string, len(axes))
	for i, a := range axes {
		m[a] = units[i]
	}
	return m
}

// decodeAxes reads the "axes" and "units" fields shared by every record.
func decodeAxes(d core.Dict) ([]string, []string, error) {
	axes, err := d.Strings("axes")
	if err != nil {
		return nil, nil, err
	}
	var units []string
	if d.Has("units") {
		if units, err = d.Strings("units"); err != nil {
			return nil, nil, err
		}
	}
	return axes, units, nil
}
