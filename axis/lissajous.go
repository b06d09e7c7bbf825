package axis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scanpath/core"
)

const methodLissajous = "NewLissajous"

// LissajousConfig parameterizes a Lissajous figure over exactly two axes,
// bounded by a box of Width×Height centred on Centre.
type LissajousConfig struct {
	Axes   []string
	Units  []string
	Centre []float64
	Width  float64
	Height float64
	Lobes  int
	Num    int
}

// Lissajous samples one full period of
//
//	x(t) = cx + (w/2)·sin(lobes·t + π/2)
//	y(t) = cy + (h/2)·sin((lobes+1)·t)
//
// at Num equally spaced t = 2πi/Num.
type Lissajous struct {
	axes   []string
	units  []string
	centre []float64
	width  float64
	height float64
	lobes  int
	num    int
}

// NewLissajous validates cfg and returns an immutable Lissajous.
// Errors: ErrArity, ErrBadParam (lobes < 1, negative box), ErrBadSize.
func NewLissajous(cfg LissajousConfig) (*Lissajous, error) {
	axes, units, err := resolveAxes(methodLissajous, cfg.Axes, cfg.Units)
	if err != nil {
		return nil, err
	}
	if len(axes) != 2 {
		return nil, fmt.Errorf("%s: %d axes, want 2: %w", methodLissajous, len(axes), ErrArity)
	}
	if err = requireArity(methodLissajous, "centre", cfg.Centre, 2); err != nil {
		return nil, err
	}
	if !(cfg.Width >= 0) || !(cfg.Height >= 0) || math.IsInf(cfg.Width, 0) || math.IsInf(cfg.Height, 0) {
		return nil, fmt.Errorf("%s: box %vx%v: %w", methodLissajous, cfg.Width, cfg.Height, ErrBadParam)
	}
	if cfg.Lobes < 1 {
		return nil, fmt.Errorf("%s: lobes=%d: %w", methodLissajous, cfg.Lobes, ErrBadParam)
	}
	if cfg.Num < 0 {
		return nil, fmt.Errorf("%s: num=%d: %w", methodLissajous, cfg.Num, ErrBadSize)
	}

	return &Lissajous{
		axes:   axes,
		units:  units,
		centre: append([]float64(nil), cfg.Centre...),
		width:  cfg.Width,
		height: cfg.Height,
		lobes:  cfg.Lobes,
		num:    cfg.Num,
	}, nil
}

func (l *Lissajous) Axes() []string           { return l.axes }
func (l *Lissajous) Units() map[string]string { return unitMap(l.axes, l.units) }
func (l *Lissajous) Size() int                { return l.num }
func (l *Lissajous) Alternate() bool          { return false }
func (l *Lissajous) sealed()                  {}

// PositionAt returns (x, y) of point i.
func (l *Lissajous) PositionAt(i int) []float64 {
	t := 2 * math.Pi * float64(i) / float64(l.num)
	nx, ny := float64(l.lobes), float64(l.lobes+1)
	return []float64{
		l.centre[0] + l.width/2*math.Sin(nx*t+math.Pi/2),
		l.centre[1] + l.height/2*math.Sin(ny*t),
	}
}

func (l *Lissajous) ToDict() core.Dict {
	return core.Dict{
		core.TypeIDKey: LissajousTypeID,
		"axes":         append([]string(nil), l.axes...),
		"units":        append([]string(nil), l.units...),
		"box": core.Dict{
			"centre": append([]float64(nil), l.centre...),
			"width":  l.width,
			"height": l.height,
		},
		"lobes": l.lobes,
		"size":  l.num,
	}
}

func lissajousFromDict(d core.Dict) (Generator, error) {
	axes, units, err := decodeAxes(d)
	if err != nil {
		return nil, err
	}
	box, err := d.Dict("box")
	if err != nil {
		return nil, err
	}
	centre, err := box.Floats("centre")
	if err != nil {
		return nil, err
	}
	w, err := box.Float("width")
	if err != nil {
		return nil, err
	}
	h, err := box.Float("height")
	if err != nil {
		return nil, err
	}
	lobes, err := d.Int("lobes")
	if err != nil {
		return nil, err
	}
	num, err := d.Int("size")
	if err != nil {
		return nil, err
	}
	return NewLissajous(LissajousConfig{
		Axes: axes, Units: units, Centre: centre,
		Width: w, Height: h, Lobes: lobes, Num: num,
	})
}
