package codec_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpath/axis"
	"github.com/katalvlaran/scanpath/codec"
	"github.com/katalvlaran/scanpath/compound"
	"github.com/katalvlaran/scanpath/core"
	"github.com/katalvlaran/scanpath/excluder"
	"github.com/katalvlaran/scanpath/mutator"
	"github.com/katalvlaran/scanpath/roi"
)

func sample(t *testing.T) *compound.Generator {
	t.Helper()
	x, err := axis.NewLine1D("x", "mm", 0, 2, 5, false)
	require.NoError(t, err)
	y, err := axis.NewLine1D("y", "um", -1, 1, 3, true)
	require.NoError(t, err)
	poly, err := roi.NewPolygonal([]float64{-1, 3, 3, -1}, []float64{-0.5, -0.5, 0.5, 0.5})
	require.NoError(t, err)
	e, err := excluder.New(poly, "x", "y")
	require.NoError(t, err)
	ro, err := mutator.NewRandomOffset(12, []string{"x"}, map[string]float64{"x": 0.05})
	require.NoError(t, err)
	fd, err := mutator.NewFixedDuration(0.25)
	require.NoError(t, err)

	g, err := compound.New([]compound.Dimension{x, y}, []*excluder.Excluder{e}, []mutator.Mutator{ro, fd})
	require.NoError(t, err)
	return g
}

func TestJSONRoundTrip(t *testing.T) {
	g := sample(t)
	data, err := codec.MarshalJSON(g)
	require.NoError(t, err)

	back, err := codec.UnmarshalJSON(data)
	require.NoError(t, err)
	require.IsType(t, &compound.Generator{}, back)
	assert.Equal(t, g.ToDict(), back.ToDict())
}

func TestYAMLRoundTrip(t *testing.T) {
	g := sample(t)
	data, err := codec.MarshalYAML(g)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CompoundGenerator:1.0")

	back, err := codec.UnmarshalYAML(data)
	require.NoError(t, err)
	assert.Equal(t, g.ToDict(), back.ToDict())

	bg := back.(*compound.Generator)
	require.NoError(t, g.Prepare())
	require.NoError(t, bg.Prepare())
	assert.Equal(t, g.Size(), bg.Size())
	for k := 0; k < g.Size(); k++ {
		a, _ := g.Nth(k)
		b, _ := bg.Nth(k)
		assert.Equal(t, a, b)
	}
}

func TestLargeSeedRoundTrip(t *testing.T) {
	const seed = int64(1<<60 + 1)
	m, err := mutator.NewRandomOffset(seed, []string{"x"}, map[string]float64{"x": 0.5})
	require.NoError(t, err)

	data, err := codec.MarshalJSON(m)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1152921504606846977")
	back, err := codec.UnmarshalJSON(data)
	require.NoError(t, err)
	assert.Equal(t, m.ToDict(), back.ToDict())
	assert.Equal(t, seed, back.(*mutator.RandomOffset).Seed())

	data, err = codec.MarshalYAML(m)
	require.NoError(t, err)
	back, err = codec.UnmarshalYAML(data)
	require.NoError(t, err)
	assert.Equal(t, m.ToDict(), back.ToDict())
}

func TestDecodeEveryKind(t *testing.T) {
	circ, _ := roi.NewCircular([]float64{0, 0}, 1)
	e, _ := excluder.New(circ, "a", "b")
	fd, _ := mutator.NewFixedDuration(1)
	sp, _ := axis.NewSpiral(axis.SpiralConfig{Axes: []string{"a", "b"}, Centre: []float64{0, 0}, Radius: 1, Scale: 0.5})

	for _, v := range []codec.Describer{circ, e, fd, sp, sample(t)} {
		got, err := codec.Decode(v.ToDict())
		require.NoError(t, err)
		assert.Equal(t, v.ToDict(), got.ToDict())
	}

	_, err := codec.Decode(core.Dict{"typeid": "scanpointgenerator:roi/Nope:1.0"})
	assert.ErrorIs(t, err, core.ErrUnknownTypeID)
	assert.Len(t, codec.TypeIDs(), 14)
}

func TestLoadScan(t *testing.T) {
	doc := []byte(`
typeid: scanpointgenerator:generator/CompoundGenerator:1.0
generators:
  - typeid: scanpointgenerator:generator/LineGenerator:1.0
    axes: [x]
    start: [0]
    stop: [1]
    size: 2
  - typeid: scanpointgenerator:generator/LineGenerator:1.0
    axes: [y]
    start: [0]
    stop: [2]
    size: 3
    alternate: true
mutators:
  - typeid: scanpointgenerator:mutator/FixedDurationMutator:1.0
    duration: 0.5
`)
	g, err := codec.LoadScan(doc)
	require.NoError(t, err)
	require.NoError(t, g.Prepare())
	assert.Equal(t, 6, g.Size())
	assert.Equal(t, map[string]string{"x": "mm", "y": "mm"}, g.Units())
	p, err := g.Nth(3)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"x": 1, "y": 2}, p.Positions)
	assert.Equal(t, 0.5, p.Duration)

	// A bare axis generator becomes a one-dimensional scan.
	single, err := codec.LoadScan([]byte(`{"typeid": "scanpointgenerator:generator/ArrayGenerator:1.0", "axes": ["m"], "points": [[1, 2, 4]]}`))
	require.NoError(t, err)
	assert.Equal(t, 3, single.Size())

	_, err = codec.LoadScan([]byte(`{"typeid": "scanpointgenerator:roi/PointROI:1.0", "point": [0, 0]}`))
	assert.ErrorIs(t, err, codec.ErrNotScan)
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	g := sample(t)
	for _, name := range []string{"scan.json", "scan.yaml", "scan.YML"} {
		path := filepath.Join(dir, name)
		require.NoError(t, codec.SaveFile(path, g))
		back, err := codec.LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, g.ToDict(), back.ToDict(), name)
	}
	assert.ErrorIs(t, codec.SaveFile(filepath.Join(dir, "scan.txt"), g), codec.ErrUnknownFormat)
}
