// SPDX-License-Identifier: MIT
// Package: scanpath/builder
//
// api.go — Path and the Compose orchestrator.
//
// Design contract:
//   - Path constructors (Step, Grid, Line, Array, Val, SinglePoint) live in
//     impl_*.go and only validate and translate; they never prepare.
//   - Compose is the one place where paths, regions and mutators meet.
//   - Determinism: equal paths, options and seed give equal scans.

package builder

import (
	"github.com/katalvlaran/scanpath/axis"
	"github.com/katalvlaran/scanpath/compound"
	"github.com/katalvlaran/scanpath/excluder"
	"github.com/katalvlaran/scanpath/mutator"
	"github.com/katalvlaran/scanpath/roi"
)

// Path is one level of a compound scan: one or more dimensions, outermost
// first, plus the regions that restrict them. Regions are evaluated on
// ROIAxes (x, y) and unioned.
type Path struct {
	Dims    []axis.Generator
	ROIs    []roi.ROI
	ROIAxes [2]string
}

// Axes lists the axes the path moves, outermost dimension first.
func (p Path) Axes() []string {
	var out []string
	for _, d := range p.Dims {
		out = append(out, d.Axes()...)
	}
	return out
}

// Size is the number of positions before regions are applied.
func (p Path) Size() int {
	n := 1
	for _, d := range p.Dims {
		n *= d.Size()
	}
	return n
}

// Compose stacks paths, outermost first, into an unprepared compound
// generator. Mutators are applied in the order: random offset, duration,
// then WithMutators extras.
//
// Errors: ErrNoPaths, ErrNoROIAxes, and any compound.New error, wrapped.
func Compose(paths []Path, opts ...BuilderOption) (*compound.Generator, error) {
	if len(paths) == 0 {
		return nil, builderErrorf(MethodCompose, "%w", ErrNoPaths)
	}
	cfg := newBuilderConfig(opts...)

	var (
		dims []compound.Dimension
		excl []*excluder.Excluder
	)
	for i, p := range paths {
		for _, d := range p.Dims {
			dims = append(dims, d)
		}
		if len(p.ROIs) == 0 {
			continue
		}
		if p.ROIAxes[0] == "" || p.ROIAxes[1] == "" {
			return nil, builderErrorf(MethodCompose, "path %d: %w", i, ErrNoROIAxes)
		}
		for _, r := range p.ROIs {
			e, err := excluder.New(r, p.ROIAxes[0], p.ROIAxes[1])
			if err != nil {
				return nil, builderErrorf(MethodCompose, "path %d: %w", i, err)
			}
			excl = append(excl, e)
		}
	}

	var muts []mutator.Mutator
	if cfg.hasOffset {
		m, err := innermostOffset(paths[len(paths)-1], cfg.offsetSeed, cfg.offsetPct)
		if err != nil {
			return nil, builderErrorf(MethodCompose, "%w", err)
		}
		muts = append(muts, m)
	}
	if cfg.hasDuration {
		m, err := mutator.NewFixedDuration(cfg.duration)
		if err != nil {
			return nil, builderErrorf(MethodCompose, "%w", err)
		}
		muts = append(muts, m)
	}
	muts = append(muts, cfg.mutators...)

	var copts []compound.Option
	if cfg.logger != nil {
		copts = append(copts, compound.WithLogger(cfg.logger))
	}
	g, err := compound.New(dims, excl, muts, copts...)
	if err != nil {
		return nil, builderErrorf(MethodCompose, "%w", err)
	}
	return g, nil
}

// innermostOffset builds a RandomOffset over every axis of p, bounded by
// pct percent of the spacing between the first two positions of each axis.
// Axes of single-point dimensions get a zero bound.
func innermostOffset(p Path, seed int64, pct float64) (*mutator.RandomOffset, error) {
	var axes []string
	bound := make(map[string]float64)
	for _, d := range p.Dims {
		var first, second []float64
		if d.Size() >= 2 {
			first, second = d.PositionAt(0), d.PositionAt(1)
		}
		for k, a := range d.Axes() {
			step := 0.0
			if first != nil {
				step = second[k] - first[k]
				if step < 0 {
					step = -step
				}
			}
			axes = append(axes, a)
			bound[a] = step * pct * percent
		}
	}
	return mutator.NewRandomOffset(seed, axes, bound)
}
