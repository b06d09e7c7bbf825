package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scanYAML = `typeid: scanpointgenerator:generator/CompoundGenerator:1.0
generators:
  - typeid: scanpointgenerator:generator/LineGenerator:1.0
    axes: [y]
    units: [mm]
    start: [0]
    stop: [2]
    size: 3
  - typeid: scanpointgenerator:generator/LineGenerator:1.0
    axes: [x]
    units: [mm]
    start: [0]
    stop: [2]
    size: 3
    alternate: true
excluders:
  - typeid: scanpointgenerator:excluder/ROIExcluder:1.0
    axes: [x, y]
    roi:
      typeid: scanpointgenerator:roi/CircularROI:1.0
      centre: [1, 1]
      radius: 1
mutators:
  - typeid: scanpointgenerator:mutator/FixedDurationMutator:1.0
    duration: 0.5
`

func writeScan(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scanYAML), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("SPGEN_LOG_LEVEL", "")
	t.Setenv("SPGEN_LOG_FORMAT", "")
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestPoints(t *testing.T) {
	code, out, stderr := runCLI(t, "points", "-workers", "2", writeScan(t))
	require.Equal(t, 0, code, stderr)

	var recs []pointRecord
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var r pointRecord
		require.NoError(t, json.Unmarshal(sc.Bytes(), &r))
		recs = append(recs, r)
	}
	require.Len(t, recs, 5)

	// Row y=1 runs backwards because x snakes.
	want := [][2]float64{{1, 0}, {2, 1}, {1, 1}, {0, 1}, {1, 2}}
	for i, r := range recs {
		assert.Equal(t, i, r.Index)
		assert.InDelta(t, want[i][0], r.Positions["x"], 1e-12)
		assert.InDelta(t, want[i][1], r.Positions["y"], 1e-12)
		require.NotNil(t, r.Duration)
		assert.Equal(t, 0.5, *r.Duration)
	}
	assert.Equal(t, []int{1, 0}, recs[1].Indices)
}

func TestDescribe(t *testing.T) {
	path := writeScan(t)
	code, out, stderr := runCLI(t, "describe", "-format", "json", path)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, `CompoundGenerator:1.0"`)
	assert.Contains(t, out, "# size=5 flat=9 shape=[5] axes=[y x]")

	code, out, _ = runCLI(t, "describe", path)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "CompoundGenerator:1.0")

	code, _, stderr = runCLI(t, "describe", "-format", "xml", path)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "xml")
}

func TestPreview(t *testing.T) {
	png := filepath.Join(t.TempDir(), "out.png")
	code, _, stderr := runCLI(t, "preview", "-o", png, "-size", "128", "-log-level", "info", "-log-format", "json", writeScan(t))
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, `"msg":"preview written"`)

	img, err := imaging.Open(png)
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestUsageErrors(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "usage:")

	code, _, stderr = runCLI(t, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown command: frobnicate")

	code, _, _ = runCLI(t, "points")
	assert.Equal(t, 1, code)

	code, _, stderr = runCLI(t, "points", "-log-level", "loud", writeScan(t))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "loud")

	code, _, _ = runCLI(t, "points", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
}

func TestPickAxes(t *testing.T) {
	x, y, err := pickAxes([]string{"z", "y", "x"}, "", "")
	require.NoError(t, err)
	assert.Equal(t, [2]string{"x", "y"}, [2]string{x, y})

	x, y, err = pickAxes([]string{"z", "y", "x"}, "y", "")
	require.NoError(t, err)
	assert.Equal(t, [2]string{"y", "x"}, [2]string{x, y})

	_, _, err = pickAxes([]string{"x"}, "", "")
	assert.Error(t, err)
}
