// Package builder assembles seed graphs for the planar embedding in the
// functional-options style used across the module.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): creates a core.Graph and applies
//     constructors in order.
//     – Constructor: func(*core.Graph, builderConfig) error.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithCenter / WithRadius: where ring vertices are placed.
//     – WithSeed / WithRand: RNG for the stochastic constructors.
//   - Topologies:
//     – Cycle(n):            n ring vertices on a regular polygon, outer face = ring.
//     – Wheel(k):            hub at the centre plus a Cycle(k) rim with spokes.
//     – RandomWheel(lo, hi): Wheel(k) with k drawn uniformly from [lo, hi].
//
// Guarantees:
//
//   - Every constructor leaves a planar embedding with a valid outer face.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return wrapped sentinel errors and never panic.
//   - Deterministic for equal inputs, options and seed.
package builder
