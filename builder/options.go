// SPDX-License-Identifier: MIT
// Package: scanpath/builder
//
// options.go — functional options for Compose.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Later options override earlier ones, except WithMutators, which
//     appends.

package builder

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/scanpath/mutator"
)

// BuilderOption customizes Compose.
type BuilderOption func(*builderConfig)

// WithDuration stamps every point with an exposure time in seconds.
// Panics if seconds is negative or not finite.
func WithDuration(seconds float64) BuilderOption {
	if !(seconds >= 0) || math.IsInf(seconds, 0) {
		panic("builder: WithDuration(seconds<0)")
	}
	return func(c *builderConfig) {
		c.duration = seconds
		c.hasDuration = true
	}
}

// WithRandomOffset jitters the axes of the innermost path by up to pct
// percent of that path's step on each axis. The jitter is reproducible from
// seed. Panics if pct is negative or not finite.
func WithRandomOffset(seed int64, pct float64) BuilderOption {
	if !(pct >= 0) || math.IsInf(pct, 0) {
		panic("builder: WithRandomOffset(pct<0)")
	}
	return func(c *builderConfig) {
		c.offsetSeed = seed
		c.offsetPct = pct
		c.hasOffset = true
	}
}

// WithMutators appends extra mutators, run after the offset and duration
// mutators. Panics on a nil mutator.
func WithMutators(ms ...mutator.Mutator) BuilderOption {
	for _, m := range ms {
		if m == nil {
			panic("builder: WithMutators(nil)")
		}
	}
	return func(c *builderConfig) {
		c.mutators = append(c.mutators, ms...)
	}
}

// WithLogger forwards l to the compound generator. Panics on nil.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}
