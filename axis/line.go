package axis

import (
	"fmt"

	"github.com/katalvlaran/scanpath/core"
)

const methodLine = "NewLine"

// LineConfig parameterizes a Line. Start, Stop and Units hold one entry per
// axis; Units may be nil.
type LineConfig struct {
	Axes      []string
	Units     []string
	Start     []float64
	Stop      []float64
	Num       int
	Alternate bool
}

// Line moves its axes together along a straight segment:
//
//	pos_a(i) = start_a + i/(num-1) * (stop_a - start_a),  i ∈ [0, num)
//
// With num == 1 the only point is start.
type Line struct {
	axes      []string
	units     []string
	start     []float64
	stop      []float64
	num       int
	alternate bool
}

// NewLine validates cfg and returns an immutable Line.
// Errors: ErrNoAxes, ErrEmptyAxisName, ErrDuplicateAxis, ErrArity, ErrBadSize, ErrBadParam.
func NewLine(cfg LineConfig) (*Line, error) {
	axes, units, err := resolveAxes(methodLine, cfg.Axes, cfg.Units)
	if err != nil {
		return nil, err
	}
	if err = requireArity(methodLine, "start", cfg.Start, len(axes)); err != nil {
		return nil, err
	}
	if err = requireArity(methodLine, "stop", cfg.Stop, len(axes)); err != nil {
		return nil, err
	}
	if cfg.Num < 0 {
		return nil, fmt.Errorf("%s: num=%d: %w", methodLine, cfg.Num, ErrBadSize)
	}

	return &Line{
		axes:      axes,
		units:     units,
		start:     append([]float64(nil), cfg.Start...),
		stop:      append([]float64(nil), cfg.Stop...),
		num:       cfg.Num,
		alternate: cfg.Alternate,
	}, nil
}

// NewLine1D is shorthand for a single-axis Line.
func NewLine1D(axis, unit string, start, stop float64, num int, alternate bool) (*Line, error) {
	var units []string
	if unit != "" {
		units = []string{unit}
	}
	return NewLine(LineConfig{
		Axes:      []string{axis},
		Units:     units,
		Start:     []float64{start},
		Stop:      []float64{stop},
		Num:       num,
		Alternate: alternate,
	})
}

func (l *Line) Axes() []string           { return l.axes }
func (l *Line) Units() map[string]string { return unitMap(l.axes, l.units) }
func (l *Line) Size() int                { return l.num }
func (l *Line) Alternate() bool          { return l.alternate }
func (l *Line) sealed()                  {}

// Start returns a copy of the start vector.
func (l *Line) Start() []float64 { return append([]float64(nil), l.start...) }

// Stop returns a copy of the stop vector.
func (l *Line) Stop() []float64 { return append([]float64(nil), l.stop...) }

// PositionAt returns the interpolated position of every axis at index i.
func (l *Line) PositionAt(i int) []float64 {
	out := make([]float64, len(l.axes))
	if l.num <= 1 {
		copy(out, l.start)
		return out
	}
	f := float64(i) / float64(l.num-1)
	for a := range l.axes {
		out[a] = l.start[a] + f*(l.stop[a]-l.start[a])
	}
	return out
}

// Step returns the per-axis increment between consecutive points
// (zero when num <= 1).
func (l *Line) Step() []float64 {
	out := make([]float64, len(l.axes))
	if l.num <= 1 {
		return out
	}
	for a := range l.axes {
		out[a] = (l.stop[a] - l.start[a]) / float64(l.num-1)
	}
	return out
}

func (l *Line) ToDict() core.Dict {
	return core.Dict{
		core.TypeIDKey: LineTypeID,
		"axes":         append([]string(nil), l.axes...),
		"units":        append([]string(nil), l.units...),
		"start":        l.Start(),
		"stop":         l.Stop(),
		"size":         l.num,
		"alternate":    l.alternate,
	}
}

func lineFromDict(d core.Dict) (Generator, error) {
	axes, units, err := decodeAxes(d)
	if err != nil {
		return nil, err
	}
	start, err := d.Floats("start")
	if err != nil {
		return nil, err
	}
	stop, err := d.Floats("stop")
	if err != nil {
		return nil, err
	}
	num, err := d.Int("size")
	if err != nil {
		return nil, err
	}
	alt, err := d.BoolOr("alternate", false)
	if err != nil {
		return nil, err
	}
	return NewLine(LineConfig{Axes: axes, Units: units, Start: start, Stop: stop, Num: num, Alternate: alt})
}
