// SPDX-License-Identifier: MIT
// Package: planar/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w, never by redefining sentinels.
//   • Option constructors panic on meaningless values; constructors never do.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum
// (Cycle needs n ≥ 3, Wheel needs k ≥ 3, RandomWheel needs lo ≤ hi).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the core graph refused a vertex, edge or face
// the constructor emitted, or a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
