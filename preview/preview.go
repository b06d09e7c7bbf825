package preview

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/scanpath/compound"
	"github.com/katalvlaran/scanpath/core"
)

var (
	// ErrUnknownAxis is returned when a projected axis is not in the scan.
	ErrUnknownAxis = errors.New("preview: axis not in scan")
	// ErrBadOptions is returned for a canvas too small for its margin or an
	// unparsable colour.
	ErrBadOptions = errors.New("preview: invalid options")
)

// Options controls rendering. Start with DefaultOptions.
type Options struct {
	Width, Height int
	Margin        int
	Background    color.Color
	StartColor    string // hex, first point
	EndColor      string // hex, last point
	MarkerRadius  float64
	Path          bool // join consecutive points
	Labels        bool // axis names and point count
	Thumbnail     int  // if > 0, fit the result into Thumbnail×Thumbnail
	Workers       int  // passed to compound.Generator.Points
}

// DefaultOptions returns a 512×512 white canvas with joined, labelled
// markers running from blue to red.
func DefaultOptions() Options {
	return Options{
		Width:        512,
		Height:       512,
		Margin:       32,
		Background:   color.White,
		StartColor:   "#1f77b4",
		EndColor:     "#d62728",
		MarkerRadius: 2,
		Path:         true,
		Labels:       true,
	}
}

// Projection maps scan coordinates to canvas pixels.
type Projection struct {
	minX, minY     float64
	scale          float64
	offX, offY     float64
	height, margin int
}

// NewProjection fits the box spanned by xs and ys into a width×height
// canvas, leaving margin pixels on every side. A degenerate span is widened
// to one unit.
func NewProjection(xs, ys []float64, width, height, margin int) Projection {
	minX, maxX := span(xs)
	minY, maxY := span(ys)
	wx, wy := maxX-minX, maxY-minY
	if wx == 0 {
		minX, wx = minX-0.5, 1
	}
	if wy == 0 {
		minY, wy = minY-0.5, 1
	}
	availX := float64(width - 2*margin)
	availY := float64(height - 2*margin)
	s := math.Min(availX/wx, availY/wy)
	return Projection{
		minX:   minX,
		minY:   minY,
		scale:  s,
		offX:   (availX - wx*s) / 2,
		offY:   (availY - wy*s) / 2,
		height: height,
		margin: margin,
	}
}

func span(vs []float64) (float64, float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Map returns the pixel of (x, y).
func (p Projection) Map(x, y float64) (int, int) {
	px := float64(p.margin) + p.offX + (x-p.minX)*p.scale
	py := float64(p.margin) + p.offY + (y-p.minY)*p.scale
	return int(math.Round(px)), p.height - 1 - int(math.Round(py))
}

// Render draws the xAxis/yAxis projection of a prepared scan.
//
// Errors: compound.ErrNotPrepared, ErrUnknownAxis, ErrBadOptions, or the
// context error.
func Render(ctx context.Context, g *compound.Generator, xAxis, yAxis string, opt Options) (image.Image, error) {
	if opt.Width <= 2*opt.Margin || opt.Height <= 2*opt.Margin || opt.Margin < 0 {
		return nil, fmt.Errorf("preview.Render: %dx%d margin %d: %w", opt.Width, opt.Height, opt.Margin, ErrBadOptions)
	}
	from, err := colorful.Hex(opt.StartColor)
	if err != nil {
		return nil, fmt.Errorf("preview.Render: start colour: %v: %w", err, ErrBadOptions)
	}
	to, err := colorful.Hex(opt.EndColor)
	if err != nil {
		return nil, fmt.Errorf("preview.Render: end colour: %v: %w", err, ErrBadOptions)
	}
	for _, a := range []string{xAxis, yAxis} {
		if _, ok := g.AxisDimension(a); !ok {
			return nil, fmt.Errorf("preview.Render: %q: %w", a, ErrUnknownAxis)
		}
	}
	pts, err := g.Points(ctx, opt.Workers)
	if err != nil {
		return nil, fmt.Errorf("preview.Render: %w", err)
	}

	xs, ys := coords(pts, xAxis, yAxis)
	proj := NewProjection(xs, ys, opt.Width, opt.Height, opt.Margin)
	bg := opt.Background
	if bg == nil {
		bg = color.White
	}
	canvas := imaging.New(opt.Width, opt.Height, bg)
	markers := image.NewRGBA(canvas.Bounds())

	shade := func(i int) color.Color {
		if len(pts) < 2 {
			return from
		}
		return from.BlendHcl(to, float64(i)/float64(len(pts)-1)).Clamped()
	}

	px, py := 0, 0
	for i := range pts {
		x, y := proj.Map(xs[i], ys[i])
		c := shade(i)
		if opt.Path && i > 0 {
			line(canvas, px, py, x, y, fade(c))
		}
		markers.Set(x, y, c)
		px, py = x, y
	}

	var layer image.Image = markers
	if opt.MarkerRadius >= 1 {
		layer = effect.Dilate(markers, opt.MarkerRadius)
	}
	draw.Draw(canvas, canvas.Bounds(), layer, image.Point{}, draw.Over)

	if opt.Labels {
		ink := image.NewUniform(color.Black)
		label(canvas, ink, opt.Width/2-textWidth(xAxis)/2, opt.Height-opt.Margin/3, xAxis)
		label(canvas, ink, 4, opt.Margin/2+4, yAxis)
		label(canvas, ink, opt.Width-textWidth(countLabel(len(pts)))-4, opt.Margin/2+4, countLabel(len(pts)))
	}

	if opt.Thumbnail > 0 {
		return imaging.Fit(canvas, opt.Thumbnail, opt.Thumbnail, imaging.Lanczos), nil
	}
	return canvas, nil
}

func coords(pts []core.Point, xAxis, yAxis string) ([]float64, []float64) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.Positions[xAxis]
		ys[i] = p.Positions[yAxis]
	}
	return xs, ys
}

func countLabel(n int) string { return fmt.Sprintf("%d points", n) }

// fade lightens c for path segments so markers stand out.
func fade(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 96}
}

func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Round()
}

func label(dst draw.Image, ink image.Image, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  ink,
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(s)
}

// line draws a segment with Bresenham's algorithm, blending c over dst.
func line(dst draw.Image, x0, y0, x1, y1 int, c color.Color) {
	src := image.NewUniform(c)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		r := image.Rect(x0, y0, x0+1, y0+1)
		draw.Draw(dst, r, src, image.Point{}, draw.Over)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("preview.Encode: %w", err)
	}
	return nil
}

// Save writes img to path; the format follows the extension.
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("preview.Save: %w", err)
	}
	return nil
}
