package mutator_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpath/core"
	"github.com/katalvlaran/scanpath/mutator"
)

func point(x, y float64) core.Point {
	p := core.NewPoint(2, 1)
	p.Positions["x"] = x
	p.Positions["y"] = y
	return p
}

func TestFixedDuration(t *testing.T) {
	m, err := mutator.NewFixedDuration(0.1)
	require.NoError(t, err)

	in := point(1, 2)
	out := m.Mutate(in, 0)
	assert.True(t, out.HasDuration)
	assert.Equal(t, 0.1, out.Duration)
	assert.False(t, in.HasDuration, "input must not be modified")

	_, err = mutator.NewFixedDuration(-1)
	assert.ErrorIs(t, err, mutator.ErrBadDuration)
}

func TestRandomOffsetDeterministic(t *testing.T) {
	m, err := mutator.NewRandomOffset(42, []string{"x", "y"}, map[string]float64{"x": 0.5, "y": 0.25})
	require.NoError(t, err)

	// Same (seed, index) gives the same offset regardless of call order.
	a7 := m.Mutate(point(0, 0), 7)
	_ = m.Mutate(point(0, 0), 3)
	b7 := m.Mutate(point(0, 0), 7)
	assert.Equal(t, a7.Positions, b7.Positions)

	twin, err := mutator.NewRandomOffset(42, []string{"x", "y"}, map[string]float64{"x": 0.5, "y": 0.25})
	require.NoError(t, err)
	assert.Equal(t, a7.Positions, twin.Mutate(point(0, 0), 7).Positions)

	other, err := mutator.NewRandomOffset(43, []string{"x", "y"}, map[string]float64{"x": 0.5, "y": 0.25})
	require.NoError(t, err)
	assert.NotEqual(t, a7.Positions, other.Mutate(point(0, 0), 7).Positions)
}

func TestRandomOffsetBounded(t *testing.T) {
	m, err := mutator.NewRandomOffset(0, []string{"x", "y"}, map[string]float64{"x": 0.5, "y": 0})
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		p := m.Mutate(point(10, 20), i)
		assert.InDelta(t, 10, p.Positions["x"], 0.5)
		assert.Equal(t, 20.0, p.Positions["y"])
	}
}

func TestRandomOffsetSkipsAbsentAxis(t *testing.T) {
	m, err := mutator.NewRandomOffset(5, []string{"z", "x"}, map[string]float64{"z": 1, "x": 1})
	require.NoError(t, err)
	p := m.Mutate(point(0, 0), 0)
	_, has := p.Positions["z"]
	assert.False(t, has)
	assert.NotEqual(t, 0.0, p.Positions["x"])
}

func TestRandomOffsetValidation(t *testing.T) {
	_, err := mutator.NewRandomOffset(1, nil, nil)
	assert.ErrorIs(t, err, mutator.ErrNoAxes)
	_, err = mutator.NewRandomOffset(1, []string{"x"}, map[string]float64{})
	assert.ErrorIs(t, err, mutator.ErrUnknownAxis)
	_, err = mutator.NewRandomOffset(1, []string{"x"}, map[string]float64{"x": -1})
	assert.ErrorIs(t, err, mutator.ErrBadOffset)
}

func TestApplyInOrder(t *testing.T) {
	d1, _ := mutator.NewFixedDuration(1)
	d2, _ := mutator.NewFixedDuration(2)
	p := mutator.Apply([]mutator.Mutator{d1, d2}, point(0, 0), 0)
	assert.Equal(t, 2.0, p.Duration)
}

func TestRoundTrip(t *testing.T) {
	fd, _ := mutator.NewFixedDuration(0.5)
	ro, _ := mutator.NewRandomOffset(99, []string{"y", "x"}, map[string]float64{"x": 0.1, "y": 0.2})

	for _, m := range []mutator.Mutator{fd, ro} {
		raw, err := json.Marshal(m.ToDict())
		require.NoError(t, err)
		var d core.Dict
		require.NoError(t, json.Unmarshal(raw, &d))
		back, err := mutator.FromDict(d)
		require.NoError(t, err)
		assert.Equal(t, m.ToDict(), back.ToDict())
		assert.Equal(t, m.Mutate(point(1, 1), 4), back.Mutate(point(1, 1), 4))
	}

	_, err := mutator.FromDict(core.Dict{"typeid": "x"})
	assert.ErrorIs(t, err, core.ErrUnknownTypeID)
	assert.Len(t, mutator.TypeIDs(), 2)
}
