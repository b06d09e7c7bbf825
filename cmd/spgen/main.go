// Command spgen reads a scan description (JSON or YAML) and prints its
// points, re-encodes it, or renders a PNG preview.
//
// Usage:
//
//	spgen points   [-workers n] <scan.yaml>
//	spgen describe [-format json|yaml] <scan.yaml>
//	spgen preview  [-x axis] [-y axis] [-o out.png] [-size px] <scan.yaml>
//
// SPGEN_LOG_LEVEL and SPGEN_LOG_FORMAT set the default log level (debug,
// info, warn, error) and handler (text, json).
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katalvlaran/scanpath/codec"
	"github.com/katalvlaran/scanpath/compound"
	"github.com/katalvlaran/scanpath/preview"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `spgen - generate scan trajectories

usage:
  spgen points   [-workers n] <scan>
  spgen describe [-format json|yaml] <scan>
  spgen preview  [-x axis] [-y axis] [-o out.png] [-size px] [-thumb px] <scan>

points    Prints every surviving point as one JSON object per line.
describe  Prints the scan record and its size, shape and axes.
preview   Renders two axes of the scan to a PNG file.

Common flags: -log-level, -log-format (env SPGEN_LOG_LEVEL, SPGEN_LOG_FORMAT).
`)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 2
	}
	var cmd func(context.Context, []string, io.Writer, io.Writer) error
	switch args[0] {
	case "points":
		cmd = cmdPoints
	case "describe":
		cmd = cmdDescribe
	case "preview":
		cmd = cmdPreview
	case "help", "-h", "-help", "--help":
		printUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", args[0])
		printUsage(stderr)
		return 2
	}
	if err := cmd(ctx, args[1:], stdout, stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "spgen %s: %v\n", args[0], err)
		return 1
	}
	return 0
}

// common holds the flags every subcommand shares.
type common struct {
	logLevel  string
	logFormat string
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *common) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	c := &common{}
	fs.StringVar(&c.logLevel, "log-level", env("SPGEN_LOG_LEVEL", "warn"), "log level: debug, info, warn, error")
	fs.StringVar(&c.logFormat, "log-format", env("SPGEN_LOG_FORMAT", "text"), "log format: text, json")
	return fs, c
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func setupLogger(c *common, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", c.logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(c.logFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("log format %q: want text or json", c.logFormat)
}

// load parses the flags, reads the single positional scan file and returns a
// prepared generator.
func load(fs *flag.FlagSet, c *common, args []string, stderr io.Writer) (*compound.Generator, *slog.Logger, error) {
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() != 1 {
		return nil, nil, errors.New("expected exactly one scan file")
	}
	logger, err := setupLogger(c, stderr)
	if err != nil {
		return nil, nil, err
	}
	path := fs.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := codec.LoadScan(data, compound.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	if err := g.Prepare(); err != nil {
		return nil, nil, err
	}
	logger.Info("scan loaded", "path", path, "size", g.Size(), "axes", g.Axes())
	return g, logger, nil
}

// pointRecord is the JSON line written for each point.
type pointRecord struct {
	Index     int                `json:"index"`
	Positions map[string]float64 `json:"positions"`
	Indices   []int              `json:"indices"`
	Duration  *float64           `json:"duration,omitempty"`
}

func cmdPoints(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs, c := newFlagSet("points", stderr)
	workers := fs.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	g, _, err := load(fs, c, args, stderr)
	if err != nil {
		return err
	}
	pts, err := g.Points(ctx, *workers)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(stdout)
	enc := json.NewEncoder(w)
	for i, p := range pts {
		rec := pointRecord{Index: i, Positions: p.Positions, Indices: p.Indices}
		if p.HasDuration {
			d := p.Duration
			rec.Duration = &d
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return w.Flush()
}

func cmdDescribe(_ context.Context, args []string, stdout, stderr io.Writer) error {
	fs, c := newFlagSet("describe", stderr)
	format := fs.String("format", "yaml", "output format: json, yaml")
	g, _, err := load(fs, c, args, stderr)
	if err != nil {
		return err
	}
	var out []byte
	switch *format {
	case "json":
		out, err = codec.MarshalJSON(g)
	case "yaml":
		out, err = codec.MarshalYAML(g)
	default:
		return fmt.Errorf("format %q: %w", *format, codec.ErrUnknownFormat)
	}
	if err != nil {
		return err
	}
	if _, err := stdout.Write(out); err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "# size=%d flat=%d shape=%v axes=%v\n", g.Size(), g.FlatSize(), g.Shape(), g.Axes())
	return err
}

func cmdPreview(ctx context.Context, args []string, _, stderr io.Writer) error {
	fs, c := newFlagSet("preview", stderr)
	xAxis := fs.String("x", "", "horizontal axis (default: innermost)")
	yAxis := fs.String("y", "", "vertical axis (default: next axis out)")
	out := fs.String("o", "scan.png", "output file")
	size := fs.Int("size", 512, "canvas width and height in pixels")
	thumb := fs.Int("thumb", 0, "fit the image into a square of this size")
	g, logger, err := load(fs, c, args, stderr)
	if err != nil {
		return err
	}
	x, y, err := pickAxes(g.Axes(), *xAxis, *yAxis)
	if err != nil {
		return err
	}
	opt := preview.DefaultOptions()
	opt.Width, opt.Height = *size, *size
	opt.Thumbnail = *thumb
	img, err := preview.Render(ctx, g, x, y, opt)
	if err != nil {
		return err
	}
	if err := preview.Save(*out, img); err != nil {
		return err
	}
	logger.Info("preview written", "path", *out, "x", x, "y", y)
	return nil
}

// pickAxes fills unset axes from the innermost end of axes.
func pickAxes(axes []string, x, y string) (string, string, error) {
	n := len(axes)
	if x == "" && n > 0 {
		x = axes[n-1]
	}
	if y == "" {
		for i := n - 1; i >= 0; i-- {
			if axes[i] != x {
				y = axes[i]
				break
			}
		}
	}
	if x == "" || y == "" {
		return "", "", fmt.Errorf("need two axes, scan has %v", axes)
	}
	return x, y, nil
}
