// SPDX-License-Identifier: MIT
// Package: scanpath/builder
//
// config.go — resolved Compose configuration.
//
// Defaults:
//   • no duration (points carry HasDuration=false)
//   • no random offset
//   • no extra mutators
//   • logger = nil (compound keeps its discard logger)

package builder

import (
	"log/slog"

	"github.com/katalvlaran/scanpath/mutator"
)

type builderConfig struct {
	duration    float64
	hasDuration bool

	offsetSeed int64
	offsetPct  float64
	hasOffset  bool

	mutators []mutator.Mutator
	logger   *slog.Logger
}

// newBuilderConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
