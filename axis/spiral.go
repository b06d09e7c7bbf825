package axis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scanpath/core"
)

const methodSpiral = "NewSpiral"

// GoldenAngle is the default angular increment between spiral points, π(3-√5).
var GoldenAngle = math.Pi * (3 - math.Sqrt(5))

// spiralEps absorbs rounding when (radius/scale)² lands on an integer.
const spiralEps = 1e-9

// SpiralConfig parameterizes a Spiral over exactly two axes.
// AngleStep == 0 selects GoldenAngle.
type SpiralConfig struct {
	Axes      []string
	Units     []string
	Centre    []float64
	Radius    float64
	Scale     float64
	AngleStep float64
	Alternate bool
}

// Spiral is a Fermat spiral: point i lies at radius scale·√i and angle
// i·step about the centre,
//
//	x = cx + r·sin θ,  y = cy + r·cos θ.
//
// Points are emitted while r ≤ radius, so Size = ⌊(radius/scale)²⌋ + 1.
// Equal-area packing keeps the point density uniform across the disc.
type Spiral struct {
	axes      []string
	units     []string
	centre    []float64
	radius    float64
	scale     float64
	angleStep float64
	alternate bool
	num       int
}

// NewSpiral validates cfg and returns an immutable Spiral.
// Errors: ErrArity (axes/centre not pairs), ErrBadParam (radius < 0, scale <= 0).
func NewSpiral(cfg SpiralConfig) (*Spiral, error) {
	axes, units, err := resolveAxes(methodSpiral, cfg.Axes, cfg.Units)
	if err != nil {
		return nil, err
	}
	if len(axes) != 2 {
		return nil, fmt.Errorf("%s: %d axes, want 2: %w", methodSpiral, len(axes), ErrArity)
	}
	if err = requireArity(methodSpiral, "centre", cfg.Centre, 2); err != nil {
		return nil, err
	}
	if !(cfg.Radius >= 0) || math.IsInf(cfg.Radius, 0) {
		return nil, fmt.Errorf("%s: radius=%v: %w", methodSpiral, cfg.Radius, ErrBadParam)
	}
	if !(cfg.Scale > 0) || math.IsInf(cfg.Scale, 0) {
		return nil, fmt.Errorf("%s: scale=%v: %w", methodSpiral, cfg.Scale, ErrBadParam)
	}
	if math.IsNaN(cfg.AngleStep) || math.IsInf(cfg.AngleStep, 0) {
		return nil, fmt.Errorf("%s: angle step=%v: %w", methodSpiral, cfg.AngleStep, ErrBadParam)
	}

	q := cfg.Radius / cfg.Scale
	n := math.Floor(q*q + spiralEps)
	if n >= math.MaxInt {
		return nil, fmt.Errorf("%s: radius=%v scale=%v: %w", methodSpiral, cfg.Radius, cfg.Scale, ErrTooLarge)
	}
	return &Spiral{
		axes:      axes,
		units:     units,
		centre:    append([]float64(nil), cfg.Centre...),
		radius:    cfg.Radius,
		scale:     cfg.Scale,
		angleStep: cfg.AngleStep,
		alternate: cfg.Alternate,
		num:       int(n) + 1,
	}, nil
}

func (s *Spiral) Axes() []string           { return s.axes }
func (s *Spiral) Units() map[string]string { return unitMap(s.axes, s.units) }
func (s *Spiral) Size() int                { return s.num }
func (s *Spiral) Alternate() bool          { return s.alternate }
func (s *Spiral) sealed()                  {}

func (s *Spiral) step() float64 {
	if s.angleStep == 0 {
		return GoldenAngle
	}
	return s.angleStep
}

// PositionAt returns (x, y) of point i.
func (s *Spiral) PositionAt(i int) []float64 {
	r := s.scale * math.Sqrt(float64(i))
	theta := float64(i) * s.step()
	return []float64{
		s.centre[0] + r*math.Sin(theta),
		s.centre[1] + r*math.Cos(theta),
	}
}

func (s *Spiral) ToDict() core.Dict {
	return core.Dict{
		core.TypeIDKey: SpiralTypeID,
		"axes":         append([]string(nil), s.axes...),
		"units":        append([]string(nil), s.units...),
		"centre":       append([]float64(nil), s.centre...),
		"radius":       s.radius,
		"scale":        s.scale,
		"angle_step":   s.angleStep,
		"alternate":    s.alternate,
	}
}

func spiralFromDict(d core.Dict) (Generator, error) {
	axes, units, err := decodeAxes(d)
	if err != nil {
		return nil, err
	}
	centre, err := d.Floats("centre")
	if err != nil {
		return nil, err
	}
	radius, err := d.Float("radius")
	if err != nil {
		return nil, err
	}
	scale, err := d.FloatOr("scale", 1)
	if err != nil {
		return nil, err
	}
	step, err := d.FloatOr("angle_step", 0)
	if err != nil {
		return nil, err
	}
	alt, err := d.BoolOr("alternate", false)
	if err != nil {
		return nil, err
	}
	return NewSpiral(SpiralConfig{
		Axes: axes, Units: units, Centre: centre,
		Radius: radius, Scale: scale, AngleStep: step, Alternate: alt,
	})
}
