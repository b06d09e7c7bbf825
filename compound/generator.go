package compound

import (
	"fmt"
	"log/slog"
	"math"
	"reflect"

	"github.com/katalvlaran/scanpath/axis"
	"github.com/katalvlaran/scanpath/core"
	"github.com/katalvlaran/scanpath/excluder"
	"github.com/katalvlaran/scanpath/mutator"
)

// TypeID identifies a serialized compound generator.
const TypeID = "scanpointgenerator:generator/CompoundGenerator:1.0"

// Dimension is anything New accepts as a dimension: an axis.Generator or a
// nested *Generator, whose own dimensions are spliced in place.
type Dimension interface {
	Axes() []string
}

// Generator is a compound scan. Build it with New, call Prepare, then read
// points through a Cursor, PointAt, Nth or Points.
type Generator struct {
	dims      []axis.Generator
	excluders []*excluder.Excluder
	mutators  []mutator.Mutator
	logger    *slog.Logger

	axes    []string
	axisDim map[string]int
	slot    map[string]int // position of the axis in axes

	prepared
}

// prepared is the derived state written by Prepare.
type prepared struct {
	ready   bool
	sizes   []int
	alt     []bool
	strides []int
	flat    int
	tables  [][][]float64 // dimension → local index → positions in axis order
	mask    []bool        // true = skipped
	kept    []int         // surviving flat indices in visit order
	shape   []int
}

// New validates and assembles a compound generator. Dimensions are listed
// outermost first. A nested *Generator contributes its dimensions, its
// excluders and its mutators; nested mutators run before those given here.
//
// Errors: ErrNoDimensions, ErrNilDimension, ErrUnsupportedDimension,
// ErrDuplicateAxis, ErrUnknownAxis, ErrTooLarge.
func New(dims []Dimension, excl []*excluder.Excluder, muts []mutator.Mutator, opts ...Option) (*Generator, error) {
	const method = "compound.New"
	if len(dims) == 0 {
		return nil, fmt.Errorf("%s: %w", method, ErrNoDimensions)
	}
	cfg := newConfig(opts...)

	g := &Generator{
		logger:  cfg.logger,
		axisDim: make(map[string]int),
		slot:    make(map[string]int),
	}
	var nestedMuts []mutator.Mutator
	for i, d := range dims {
		switch t := d.(type) {
		case nil:
			return nil, fmt.Errorf("%s: dimension %d: %w", method, i, ErrNilDimension)
		case *Generator:
			if t == nil {
				return nil, fmt.Errorf("%s: dimension %d: %w", method, i, ErrNilDimension)
			}
			g.dims = append(g.dims, t.dims...)
			g.excluders = append(g.excluders, t.excluders...)
			nestedMuts = append(nestedMuts, t.mutators...)
		case axis.Generator:
			if v := reflect.ValueOf(t); v.Kind() == reflect.Pointer && v.IsNil() {
				return nil, fmt.Errorf("%s: dimension %d is a nil %T: %w", method, i, d, ErrNilDimension)
			}
			g.dims = append(g.dims, t)
		default:
			return nil, fmt.Errorf("%s: dimension %d is %T: %w", method, i, d, ErrUnsupportedDimension)
		}
	}
	for i, e := range excl {
		if e == nil {
			return nil, fmt.Errorf("%s: excluder %d is nil: %w", method, i, ErrNilDimension)
		}
	}
	g.excluders = append(g.excluders, excl...)
	g.mutators = append(nestedMuts, muts...)

	for j, d := range g.dims {
		for _, a := range d.Axes() {
			if prev, dup := g.axisDim[a]; dup {
				return nil, fmt.Errorf("%s: %q in dimensions %d and %d: %w", method, a, prev, j, ErrDuplicateAxis)
			}
			g.axisDim[a] = j
			g.slot[a] = len(g.axes)
			g.axes = append(g.axes, a)
		}
	}
	if _, ok := product(g.dims); !ok {
		return nil, fmt.Errorf("%s: %v: %w", method, g.dimSizes(), ErrTooLarge)
	}
	for _, e := range g.excluders {
		for _, a := range e.Axes() {
			if _, ok := g.axisDim[a]; !ok {
				return nil, fmt.Errorf("%s: %q: %w", method, a, ErrUnknownAxis)
			}
		}
	}
	return g, nil
}

// Axes returns every axis name, outermost dimension first.
func (g *Generator) Axes() []string { return append([]string(nil), g.axes...) }

// Units merges the units of all dimensions.
func (g *Generator) Units() map[string]string {
	out := make(map[string]string, len(g.axes))
	for _, d := range g.dims {
		for a, u := range d.Units() {
			out[a] = u
		}
	}
	return out
}

// Dimensions returns the leaf dimensions, outermost first.
func (g *Generator) Dimensions() []axis.Generator {
	return append([]axis.Generator(nil), g.dims...)
}

// Excluders returns the excluders, nested ones first.
func (g *Generator) Excluders() []*excluder.Excluder {
	return append([]*excluder.Excluder(nil), g.excluders...)
}

// Mutators returns the mutator chain in application order.
func (g *Generator) Mutators() []mutator.Mutator {
	return append([]mutator.Mutator(nil), g.mutators...)
}

// FlatSize is the size of the flattened index space, Π s_j.
func (g *Generator) FlatSize() int {
	if g.ready {
		return g.flat
	}
	n, _ := product(g.dims)
	return n
}

// product multiplies the dimension sizes, reporting false on int overflow.
// Any empty dimension makes the product 0.
func product(dims []axis.Generator) (int, bool) {
	n := 1
	for _, d := range dims {
		if d.Size() == 0 {
			return 0, true
		}
	}
	for _, d := range dims {
		s := d.Size()
		if n > math.MaxInt/s {
			return 0, false
		}
		n *= s
	}
	return n, true
}

func (g *Generator) dimSizes() []int {
	out := make([]int, len(g.dims))
	for j, d := range g.dims {
		out[j] = d.Size()
	}
	return out
}

// Size is the number of points a full iteration yields. Before Prepare the
// mask is unknown and Size equals FlatSize.
func (g *Generator) Size() int {
	if !g.ready {
		return g.FlatSize()
	}
	return len(g.kept)
}

// DimensionNames returns the axis names of every dimension.
func (g *Generator) DimensionNames() [][]string {
	out := make([][]string, len(g.dims))
	for j, d := range g.dims {
		out[j] = append([]string(nil), d.Axes()...)
	}
	return out
}

// AxisDimension returns the index of the dimension producing axis.
func (g *Generator) AxisDimension(a string) (int, bool) {
	j, ok := g.axisDim[a]
	return j, ok
}

// IsSnake reports whether axis reverses on alternate passes. An alternating
// outermost dimension never reverses and reports false.
func (g *Generator) IsSnake(a string) bool {
	j, ok := g.axisDim[a]
	return ok && j > 0 && g.dims[j].Alternate()
}

func (g *Generator) ToDict() core.Dict {
	gens := make([]core.Dict, 0, len(g.dims))
	for _, d := range g.dims {
		gens = append(gens, d.ToDict())
	}
	excl := make([]core.Dict, 0, len(g.excluders))
	for _, e := range g.excluders {
		excl = append(excl, e.ToDict())
	}
	muts := make([]core.Dict, 0, len(g.mutators))
	for _, m := range g.mutators {
		muts = append(muts, m.ToDict())
	}
	return core.Dict{
		core.TypeIDKey: TypeID,
		"generators":   gens,
		"excluders":    excl,
		"mutators":     muts,
	}
}

// FromDict reconstructs an unprepared Generator. Entries of "generators"
// may themselves be compound records. "excluders" and "mutators" are
// optional.
func FromDict(d core.Dict, opts ...Option) (*Generator, error) {
	const method = "compound.FromDict"
	id, err := d.TypeID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if id != TypeID {
		return nil, fmt.Errorf("%s: %q: %w", method, id, core.ErrUnknownTypeID)
	}

	gds, err := d.Dicts("generators")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	dims := make([]Dimension, 0, len(gds))
	for _, gd := range gds {
		var dim Dimension
		if gid, _ := gd.TypeID(); gid == TypeID {
			dim, err = FromDict(gd, opts...)
		} else {
			dim, err = axis.FromDict(gd)
		}
		if err != nil {
			return nil, err
		}
		dims = append(dims, dim)
	}

	var excl []*excluder.Excluder
	if d.Has("excluders") {
		eds, err := d.Dicts("excluders")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		for _, ed := range eds {
			e, err := excluder.FromDict(ed)
			if err != nil {
				return nil, err
			}
			excl = append(excl, e)
		}
	}

	var muts []mutator.Mutator
	if d.Has("mutators") {
		mds, err := d.Dicts("mutators")
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		for _, md := range mds {
			m, err := mutator.FromDict(md)
			if err != nil {
				return nil, err
			}
			muts = append(muts, m)
		}
	}

	return New(dims, excl, muts, opts...)
}
