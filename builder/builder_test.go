package builder_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpath/builder"
	"github.com/katalvlaran/scanpath/compound"
	"github.com/katalvlaran/scanpath/core"
	"github.com/katalvlaran/scanpath/mutator"
	"github.com/katalvlaran/scanpath/roi"
)

const eps = 1e-9

func positions(t *testing.T, p builder.Path, opts ...builder.BuilderOption) []core.Point {
	t.Helper()
	g, err := builder.Compose([]builder.Path{p}, opts...)
	require.NoError(t, err)
	require.NoError(t, g.Prepare())
	cur, err := g.Iterator()
	require.NoError(t, err)
	var out []core.Point
	for cur.HasNext() {
		pt, err := cur.Next()
		require.NoError(t, err)
		out = append(out, pt)
	}
	return out
}

func TestStep(t *testing.T) {
	cases := []struct {
		name              string
		start, stop, step float64
		want              []float64
	}{
		{"exact multiple", 0, 1, 0.25, []float64{0, 0.25, 0.5, 0.75, 1}},
		{"tenths", 0, 1, 0.1, nil}, // 11 points, checked by length
		{"short of stop", 0, 1, 0.4, []float64{0, 0.4, 0.8}},
		{"descending", 2, 0, -1, []float64{2, 1, 0}},
		{"single", 3, 3, 1, []float64{3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := builder.Step("x", tc.start, tc.stop, tc.step)
			require.NoError(t, err)
			pts := positions(t, p)
			if tc.want == nil {
				assert.Len(t, pts, 11)
				return
			}
			require.Len(t, pts, len(tc.want))
			for i, w := range tc.want {
				assert.InDelta(t, w, pts[i].Positions["x"], eps)
			}
		})
	}
}

func TestStepErrors(t *testing.T) {
	_, err := builder.Step("x", 0, 1, 0)
	assert.ErrorIs(t, err, builder.ErrBadStep)
	_, err = builder.Step("x", 0, 1, -0.5)
	assert.ErrorIs(t, err, builder.ErrBadStep)
}

func TestGridByCountIsCellCentred(t *testing.T) {
	// Snake is the default: the second row runs backwards.
	p, err := builder.Grid(builder.GridSpec{
		Axes:   []string{"x", "y"},
		Origin: []float64{0, 10},
		Size:   []float64{4, 2},
		Count:  []int{4, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, p.Axes())
	assert.Equal(t, 8, p.Size())

	pts := positions(t, p)
	require.Len(t, pts, 8)
	wantX := []float64{0.5, 1.5, 2.5, 3.5, 3.5, 2.5, 1.5, 0.5}
	for i, pt := range pts {
		assert.InDelta(t, wantX[i], pt.Positions["x"], eps, "point %d", i)
		assert.InDelta(t, 10.5+float64(i/4), pt.Positions["y"], eps, "point %d", i)
	}
}

func TestGridByStep(t *testing.T) {
	p, err := builder.Grid(builder.GridSpec{
		Axes:    []string{"x", "y"},
		Origin:  []float64{0, 0},
		Size:    []float64{1, 0.5},
		Step:    []float64{0.5, 0.25},
		NoSnake: true,
	})
	require.NoError(t, err)
	pts := positions(t, p)
	require.Len(t, pts, 9)
	assert.InDelta(t, 0.0, pts[0].Positions["x"], eps)
	assert.InDelta(t, 1.0, pts[2].Positions["x"], eps)
	assert.InDelta(t, 0.0, pts[3].Positions["x"], eps, "no snake")
	assert.InDelta(t, 0.5, pts[8].Positions["y"], eps)
}

func TestGridROIsAreUnioned(t *testing.T) {
	left, err := builder.Circ([]float64{0, 0}, 0.1)
	require.NoError(t, err)
	right, err := builder.Rect([]float64{1.9, -0.1}, []float64{0.2, 0.2}, 0)
	require.NoError(t, err)

	p, err := builder.Grid(builder.GridSpec{
		Axes:   []string{"x", "y"},
		Origin: []float64{0, 0},
		Size:   []float64{2, 2},
		Step:   []float64{1, 1},
		ROIs:   []roi.ROI{left, right},
	})
	require.NoError(t, err)
	pts := positions(t, p)
	require.Len(t, pts, 2)
	assert.Equal(t, map[string]float64{"x": 0, "y": 0}, pts[0].Positions)
	assert.Equal(t, map[string]float64{"x": 2, "y": 0}, pts[1].Positions)
}

func TestGridErrors(t *testing.T) {
	base := func() builder.GridSpec {
		return builder.GridSpec{
			Axes:   []string{"x", "y"},
			Origin: []float64{0, 0},
			Size:   []float64{1, 1},
			Count:  []int{2, 2},
		}
	}
	cases := []struct {
		name   string
		modify func(*builder.GridSpec)
		want   error
	}{
		{"one axis", func(s *builder.GridSpec) { s.Axes = []string{"x"} }, builder.ErrArity},
		{"origin arity", func(s *builder.GridSpec) { s.Origin = []float64{0} }, builder.ErrArity},
		{"count arity", func(s *builder.GridSpec) { s.Count = []int{2} }, builder.ErrArity},
		{"both", func(s *builder.GridSpec) { s.Step = []float64{1, 1} }, builder.ErrCountStep},
		{"neither", func(s *builder.GridSpec) { s.Count = nil }, builder.ErrCountStep},
		{"zero count", func(s *builder.GridSpec) { s.Count = []int{0, 2} }, builder.ErrBadSize},
		{"negative size", func(s *builder.GridSpec) { s.Size = []float64{-1, 1} }, builder.ErrBadSize},
		{"zero step", func(s *builder.GridSpec) { s.Count = nil; s.Step = []float64{0, 1} }, builder.ErrBadStep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := base()
			tc.modify(&spec)
			_, err := builder.Grid(spec)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLineByCount(t *testing.T) {
	p, err := builder.Line(builder.LineSpec{
		Axes:   []string{"x", "y"},
		Origin: []float64{1, 1},
		Length: 4,
		Angle:  math.Pi / 2,
		Count:  4,
	})
	require.NoError(t, err)
	pts := positions(t, p)
	require.Len(t, pts, 4)
	for i, pt := range pts {
		assert.InDelta(t, 1, pt.Positions["x"], eps)
		assert.InDelta(t, 1.5+float64(i), pt.Positions["y"], eps)
	}
}

func TestLineByStep(t *testing.T) {
	p, err := builder.Line(builder.LineSpec{
		Axes:   []string{"x", "y"},
		Origin: []float64{0, 0},
		Length: math.Sqrt2 * 2.5,
		Angle:  math.Pi / 4,
		Step:   math.Sqrt2,
	})
	require.NoError(t, err)
	pts := positions(t, p)
	require.Len(t, pts, 3)
	assert.InDelta(t, 2, pts[2].Positions["x"], eps)
	assert.InDelta(t, 2, pts[2].Positions["y"], eps)

	_, err = builder.Line(builder.LineSpec{Axes: []string{"x", "y"}, Origin: []float64{0, 0}, Length: 1})
	assert.ErrorIs(t, err, builder.ErrCountStep)
	_, err = builder.Line(builder.LineSpec{Axes: []string{"x", "y"}, Origin: []float64{0, 0}, Length: 1, Step: -1})
	assert.ErrorIs(t, err, builder.ErrBadStep)
	_, err = builder.Line(builder.LineSpec{Axes: []string{"x", "y"}, Origin: []float64{0, 0}, Length: 1, Count: -2})
	assert.ErrorIs(t, err, builder.ErrBadSize)
}

func TestArrayValAndPoint(t *testing.T) {
	a, err := builder.Array("m", []float64{3, 1, 2})
	require.NoError(t, err)
	v, err := builder.Val("n", 5)
	require.NoError(t, err)

	g, err := builder.Compose([]builder.Path{a, v})
	require.NoError(t, err)
	require.NoError(t, g.Prepare())
	require.Equal(t, 3, g.Size())
	for k, want := range []float64{3, 1, 2} {
		p, err := g.Nth(k)
		require.NoError(t, err)
		assert.Equal(t, map[string]float64{"m": want, "n": 5}, p.Positions)
	}

	sp, err := builder.SinglePoint("x", "y", 1.5, -2)
	require.NoError(t, err)
	pts := positions(t, sp)
	require.Len(t, pts, 1)
	assert.Equal(t, map[string]float64{"x": 1.5, "y": -2}, pts[0].Positions)

	_, err = builder.SinglePoint("x", "x", 0, 0)
	assert.Error(t, err)
}

func TestPoly(t *testing.T) {
	tri, err := builder.Poly([2]float64{5, 5}, [2]float64{5, 10}, [2]float64{10, 5})
	require.NoError(t, err)
	assert.True(t, tri.Contains(6, 6))
	assert.False(t, tri.Contains(9, 9))

	_, err = builder.Poly([2]float64{0, 0}, [2]float64{1, 1})
	assert.ErrorIs(t, err, roi.ErrArity)
}

func TestComposeOptions(t *testing.T) {
	outer, err := builder.Step("z", 0, 1, 1)
	require.NoError(t, err)
	grid, err := builder.Grid(builder.GridSpec{
		Axes: []string{"x", "y"}, Origin: []float64{0, 0}, Size: []float64{1, 1}, Step: []float64{0.5, 0.25},
	})
	require.NoError(t, err)
	extra, err := mutator.NewFixedDuration(3)
	require.NoError(t, err)

	g, err := builder.Compose([]builder.Path{outer, grid},
		builder.WithRandomOffset(9, 10),
		builder.WithDuration(0.5),
	)
	require.NoError(t, err)
	require.NoError(t, g.Prepare())

	ms := g.Mutators()
	require.Len(t, ms, 2)
	ro, ok := ms[0].(*mutator.RandomOffset)
	require.True(t, ok)
	assert.Equal(t, int64(9), ro.Seed())
	bound, err := ro.ToDict().FloatMap("max_offset")
	require.NoError(t, err)
	assert.InDelta(t, 0.05, bound["x"], eps)
	assert.InDelta(t, 0.025, bound["y"], eps)

	for k := 0; k < g.Size(); k++ {
		p, err := g.Nth(k)
		require.NoError(t, err)
		assert.Equal(t, 0.5, p.Duration)
		_, onGrid := math.Modf(p.Positions["x"] / 0.5)
		assert.LessOrEqual(t, math.Min(onGrid, 1-onGrid), 0.1+eps)
		assert.Contains(t, []float64{0, 1}, p.Positions["z"], "outer axis untouched")
	}

	g2, err := builder.Compose([]builder.Path{grid}, builder.WithDuration(1), builder.WithMutators(extra))
	require.NoError(t, err)
	require.NoError(t, g2.Prepare())
	p, err := g2.Nth(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, p.Duration, "extra mutators run last")
}

func TestComposeErrors(t *testing.T) {
	_, err := builder.Compose(nil)
	assert.ErrorIs(t, err, builder.ErrNoPaths)

	c, _ := builder.Circ([]float64{0, 0}, 1)
	s, _ := builder.Step("x", 0, 1, 1)
	s.ROIs = []roi.ROI{c}
	_, err = builder.Compose([]builder.Path{s})
	assert.ErrorIs(t, err, builder.ErrNoROIAxes)

	a, _ := builder.Step("x", 0, 1, 1)
	b, _ := builder.Step("x", 0, 2, 1)
	_, err = builder.Compose([]builder.Path{a, b})
	assert.ErrorIs(t, err, compound.ErrDuplicateAxis)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithDuration(-1) })
	assert.Panics(t, func() { builder.WithRandomOffset(1, -5) })
	assert.Panics(t, func() { builder.WithMutators(nil) })
	assert.Panics(t, func() { builder.WithLogger(nil) })
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s, err := builder.Step("x", 0, 2, 1)
	require.NoError(t, err)
	g, err := builder.Compose([]builder.Path{s}, builder.WithLogger(log))
	require.NoError(t, err)
	require.NoError(t, g.Prepare())
	assert.Contains(t, buf.String(), `"flat_size":3`)
}
