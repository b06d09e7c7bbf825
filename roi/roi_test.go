package roi_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpath/core"
	"github.com/katalvlaran/scanpath/roi"
)

type probe struct {
	x, y float64
	in   bool
}

func check(t *testing.T, r roi.ROI, probes []probe) {
	t.Helper()
	for _, p := range probes {
		assert.Equal(t, p.in, r.Contains(p.x, p.y), "(%v, %v)", p.x, p.y)
	}
}

func TestCircular(t *testing.T) {
	r, err := roi.NewCircular([]float64{0, 0}, 1)
	require.NoError(t, err)
	check(t, r, []probe{
		{0, 0, true}, {0.5, 0, true}, {1, 0, true}, {2, 0, false}, {0.8, 0.8, false},
	})
}

func TestElliptical(t *testing.T) {
	r, err := roi.NewElliptical([]float64{1, 1}, []float64{2, 1}, 0)
	require.NoError(t, err)
	check(t, r, []probe{{2.9, 1, true}, {1, 1.9, true}, {1, 2.5, false}, {3.1, 1, false}})

	// Rotated by 90°: the long axis now lies along y.
	rot, err := roi.NewElliptical([]float64{0, 0}, []float64{2, 1}, math.Pi/2)
	require.NoError(t, err)
	check(t, rot, []probe{{0, 1.9, true}, {1.5, 0, false}})
}

func TestRectangular(t *testing.T) {
	r, err := roi.NewRectangular([]float64{0, 0}, 2, 1, 0)
	require.NoError(t, err)
	check(t, r, []probe{{1, 0.5, true}, {0, 0, true}, {2, 1, true}, {2.1, 0.5, false}, {1, -0.1, false}})

	// Rotated 90° about the corner: the box now spans x ∈ [-1, 0], y ∈ [0, 2].
	rot, err := roi.NewRectangular([]float64{0, 0}, 2, 1, math.Pi/2)
	require.NoError(t, err)
	check(t, rot, []probe{{-0.5, 1.5, true}, {0.5, 1.5, false}})
}

func TestPolygonal(t *testing.T) {
	// Concave "L" shape.
	r, err := roi.NewPolygonal(
		[]float64{0, 2, 2, 1, 1, 0},
		[]float64{0, 0, 1, 1, 2, 2},
	)
	require.NoError(t, err)
	check(t, r, []probe{{0.5, 0.5, true}, {0.5, 1.5, true}, {1.5, 0.5, true}, {1.5, 1.5, false}, {3, 0.5, false}})

	_, err = roi.NewPolygonal([]float64{0, 1}, []float64{0, 1})
	assert.ErrorIs(t, err, roi.ErrArity)
}

func TestSector(t *testing.T) {
	r, err := roi.NewSector([]float64{0, 0}, []float64{1, 2}, []float64{0, math.Pi / 2})
	require.NoError(t, err)
	check(t, r, []probe{
		{1.5, 0.1, true},
		{0.1, 1.5, true},
		{0.5, 0.5, false},  // inside inner radius
		{-1.5, 0.1, false}, // outside angle range
		{3, 0, false},
	})

	// Wraps through zero: from 3π/2 to π/2.
	wrap, err := roi.NewSector([]float64{0, 0}, []float64{0, 2}, []float64{-math.Pi / 2, math.Pi / 2})
	require.NoError(t, err)
	check(t, wrap, []probe{{1, 0, true}, {1, -1, true}, {1, 1, true}, {-1, 0, false}})

	full, err := roi.NewSector([]float64{0, 0}, []float64{0, 1}, []float64{0, 2 * math.Pi})
	require.NoError(t, err)
	check(t, full, []probe{{-0.5, 0, true}, {0, -0.5, true}})

	_, err = roi.NewSector([]float64{0, 0}, []float64{2, 1}, []float64{0, 1})
	assert.ErrorIs(t, err, roi.ErrBadParam)
}

func TestPoint(t *testing.T) {
	r, err := roi.NewPoint([]float64{1, 2})
	require.NoError(t, err)
	check(t, r, []probe{{1, 2, true}, {1 + 1e-12, 2, true}, {1.001, 2, false}})
}

func TestArity(t *testing.T) {
	_, err := roi.NewCircular([]float64{0}, 1)
	assert.ErrorIs(t, err, roi.ErrArity)
	_, err = roi.NewCircular([]float64{0, 0}, -1)
	assert.ErrorIs(t, err, roi.ErrBadParam)
	_, err = roi.NewRectangular([]float64{0, 0, 0}, 1, 1, 0)
	assert.ErrorIs(t, err, roi.ErrArity)
}

func TestRoundTrip(t *testing.T) {
	circ, _ := roi.NewCircular([]float64{0, 1}, 2)
	ell, _ := roi.NewElliptical([]float64{0, 1}, []float64{2, 3}, 0.3)
	rect, _ := roi.NewRectangular([]float64{-1, -1}, 2, 3, 0.1)
	poly, _ := roi.NewPolygonal([]float64{0, 1, 0}, []float64{0, 0, 1})
	sec, _ := roi.NewSector([]float64{0, 0}, []float64{0.5, 1}, []float64{0, 1})
	pt, _ := roi.NewPoint([]float64{3, 4})

	for _, r := range []roi.ROI{circ, ell, rect, poly, sec, pt} {
		d := r.ToDict()
		back, err := roi.FromDict(d)
		require.NoError(t, err)
		assert.Equal(t, d, back.ToDict())

		raw, err := json.Marshal(d)
		require.NoError(t, err)
		var loose core.Dict
		require.NoError(t, json.Unmarshal(raw, &loose))
		back, err = roi.FromDict(loose)
		require.NoError(t, err)
		assert.Equal(t, d, back.ToDict())
	}

	_, err := roi.FromDict(core.Dict{"typeid": "scanpointgenerator:roi/Hexagon:1.0"})
	assert.ErrorIs(t, err, core.ErrUnknownTypeID)
	assert.Len(t, roi.TypeIDs(), 6)
}
