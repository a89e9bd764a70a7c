// SPDX-License-Identifier: MIT
// Package: planar/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • center = (400, 400)
//   • radius = 400
//   • rng    = nil (pure/deterministic unless seeded)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/planar/geometry"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Centre and circumradius of the ring polygon.
	center geometry.Point
	radius float64
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

const defaultRadius = 400.0

var defaultCenter = geometry.Pt(400, 400)

// newBuilderConfig applies opts in order over the defaults (later overrides earlier).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		center: defaultCenter,
		radius: defaultRadius,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
