package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpath/core"
)

func TestPointClone(t *testing.T) {
	p := core.NewPoint(2, 2)
	p.Positions["x"] = 1
	p.Positions["y"] = 2
	p.Indices[1] = 3

	q := p.Clone()
	q.Positions["x"] = 10
	q.Indices[1] = 7
	q.Duration, q.HasDuration = 0.5, true

	assert.Equal(t, 1.0, p.Positions["x"])
	assert.Equal(t, 3, p.Indices[1])
	assert.False(t, p.HasDuration)
	assert.Equal(t, 10.0, q.Positions["x"])
}

func TestPointPosition(t *testing.T) {
	p := core.NewPoint(1, 1)
	p.Positions["x"] = 0

	v, ok := p.Position("x")
	require.True(t, ok)
	assert.Zero(t, v)
	_, ok = p.Position("y")
	assert.False(t, ok)
}

func TestPointString(t *testing.T) {
	p := core.NewPoint(2, 2)
	p.Positions["y"] = 1
	p.Positions["x"] = 0.5
	p.Indices[0] = 1
	assert.Equal(t, "Point(x=0.5, y=1; idx=[1 0])", p.String())

	p.Duration, p.HasDuration = 0.1, true
	assert.Equal(t, "Point(x=0.5, y=1; idx=[1 0]; t=0.1)", p.String())
}
