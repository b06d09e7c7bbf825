package mutator

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/scanpath/core"
)

// Type identifiers of the serialized mutator records.
const (
	RandomOffsetTypeID  = "scanpointgenerator:mutator/RandomOffsetMutator:1.0"
	FixedDurationTypeID = "scanpointgenerator:mutator/FixedDurationMutator:1.0"
)

// Sentinel errors.
var (
	ErrBadDuration = errors.New("mutator: duration must be finite and non-negative")
	ErrBadOffset   = errors.New("mutator: max offset must be finite and non-negative")
	ErrNoAxes      = errors.New("mutator: no axes")
	ErrUnknownAxis = errors.New("mutator: axis without max offset")
)

// Mutator transforms a Point. index is the point's flattened index in the
// compound scan, so the result never depends on exclusion or visit order.
type Mutator interface {
	Mutate(p core.Point, index int) core.Point
	ToDict() core.Dict

	sealed()
}

var decoders = map[string]func(core.Dict) (Mutator, error){
	RandomOffsetTypeID:  randomOffsetFromDict,
	FixedDurationTypeID: fixedDurationFromDict,
}

// FromDict reconstructs a mutator from its serialized record.
func FromDict(d core.Dict) (Mutator, error) {
	id, err := d.TypeID()
	if err != nil {
		return nil, fmt.Errorf("mutator.FromDict: %w", err)
	}
	dec, ok := decoders[id]
	if !ok {
		return nil, fmt.Errorf("mutator.FromDict: %q: %w", id, core.ErrUnknownTypeID)
	}
	m, err := dec(d)
	if err != nil {
		return nil, fmt.Errorf("mutator.FromDict(%s): %w", id, err)
	}
	return m, nil
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

// Apply runs p through ms in order.
func Apply(ms []Mutator, p core.Point, index int) core.Point {
	for _, m := range ms {
		p = m.Mutate(p, index)
	}
	return p
}

// FixedDuration sets the same duration on every point.
type FixedDuration struct {
	duration float64
}

// NewFixedDuration returns a mutator stamping seconds on every point.
func NewFixedDuration(seconds float64) (*FixedDuration, error) {
	if !(seconds >= 0) || math.IsInf(seconds, 0) {
		return nil, fmt.Errorf("NewFixedDuration(%v): %w", seconds, ErrBadDuration)
	}
	return &FixedDuration{duration: seconds}, nil
}

// Duration returns the configured duration in seconds.
func (m *FixedDuration) Duration() float64 { return m.duration }

func (m *FixedDuration) sealed() {}

func (m *FixedDuration) Mutate(p core.Point, _ int) core.Point {
	q := p.Clone()
	q.Duration = m.duration
	q.HasDuration = true
	return q
}

func (m *FixedDuration) ToDict() core.Dict {
	return core.Dict{
		core.TypeIDKey: FixedDurationTypeID,
		"duration":     m.duration,
	}
}

func fixedDurationFromDict(d core.Dict) (Mutator, error) {
	s, err := d.Float("duration")
	if err != nil {
		return nil, err
	}
	return NewFixedDuration(s)
}

// RandomOffset jitters each listed axis by a uniform draw in
// [-max, +max]. Axes absent from a point are left alone.
type RandomOffset struct {
	seed      int64
	axes      []string
	maxOffset map[string]float64
}

// NewRandomOffset returns a seeded jitter mutator. Every axis in axes needs
// an entry in maxOffset; draws are taken in axes order.
func NewRandomOffset(seed int64, axes []string, maxOffset map[string]float64) (*RandomOffset, error) {
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}
	m := &RandomOffset{
		seed:      seed,
		axes:      append([]string(nil), axes...),
		maxOffset: make(map[string]float64, len(axes)),
	}
	for _, a := range axes {
		v, ok := maxOffset[a]
		if !ok {
			return nil, fmt.Errorf("NewRandomOffset: %q: %w", a, ErrUnknownAxis)
		}
		if !(v >= 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("NewRandomOffset: %q=%v: %w", a, v, ErrBadOffset)
		}
		m.maxOffset[a] = v
	}
	return m, nil
}

// Seed returns the configured seed.
func (m *RandomOffset) Seed() int64 { return m.seed }

func (m *RandomOffset) sealed() {}

// Mutate offsets p. The draws depend only on (seed, index).
func (m *RandomOffset) Mutate(p core.Point, index int) core.Point {
	q := p.Clone()
	rng := pointRNG(m.seed, index)
	for _, a := range m.axes {
		// Draw even for absent axes so later axes keep their values.
		off := (2*rng.Float64() - 1) * m.maxOffset[a]
		if v, ok := q.Positions[a]; ok {
			q.Positions[a] = v + off
		}
	}
	return q
}

func (m *RandomOffset) ToDict() core.Dict {
	mo := make(map[string]float64, len(m.maxOffset))
	for k, v := range m.maxOffset {
		mo[k] = v
	}
	return core.Dict{
		core.TypeIDKey: RandomOffsetTypeID,
		"seed":         m.seed,
		"axes":         append([]string(nil), m.axes...),
		"max_offset":   mo,
	}
}

func randomOffsetFromDict(d core.Dict) (Mutator, error) {
	seed, err := d.Int64("seed")
	if err != nil {
		return nil, err
	}
	axes, err := d.Strings("axes")
	if err != nil {
		return nil, err
	}
	mo, err := d.FloatMap("max_offset")
	if err != nil {
		return nil, err
	}
	return NewRandomOffset(seed, axes, mo)
}
