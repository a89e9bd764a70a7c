// SPDX-License-Identifier: MIT
// Package: planar/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/planar/geometry"
)

// BuilderOption customizes a constructor by mutating builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithCenter sets the centre of ring polygons and of wheel hubs.
// Panics on non-finite coordinates.
func WithCenter(c geometry.Point) BuilderOption {
	if math.IsNaN(c.X) || math.IsNaN(c.Y) || math.IsInf(c.X, 0) || math.IsInf(c.Y, 0) {
		panic("builder: WithCenter requires finite coordinates")
	}
	return func(cfg *builderConfig) { cfg.center = c }
}

// WithRadius sets the circumradius of ring polygons. Panics if r is not positive.
func WithRadius(r float64) BuilderOption {
	if !(r > 0) || math.IsInf(r, 1) {
		panic("builder: WithRadius requires a finite r > 0")
	}
	return func(cfg *builderConfig) { cfg.radius = r }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(cfg *builderConfig) { cfg.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
