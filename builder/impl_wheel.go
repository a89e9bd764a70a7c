// SPDX-License-Identifier: MIT
// Package: planar/builder
//
// impl_wheel.go: Wheel(k) and RandomWheel(lo, hi) constructors.
//
// Canonical definition:
//   • W_k = C_k + hub: a ring of k ≥ 3 vertices plus one hub at the centre.
//   • The hub is added first, then the ring (see Cycle), then the spokes
//     hub → ring[i] in ascending i. The ring is the outer face.
//
// Complexity:
//   • Time: O(k) vertices + O(2k) edges, each insertion scanning O(k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/planar/core"
)

const (
	methodWheel       = "Wheel"
	methodRandomWheel = "RandomWheel"
)

// Wheel returns a Constructor that builds the wheel W_k with its hub at the
// configured centre and its rim on the configured polygon.
func Wheel(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		return addWheel(g, cfg, k, methodWheel)
	}
}

// RandomWheel returns a Constructor that builds Wheel(k) with k drawn
// uniformly from [lo, hi]. Requires an RNG (WithSeed/WithRand).
func RandomWheel(lo, hi int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if lo < minCycleNodes || hi < lo {
			return fmt.Errorf("%s: range [%d, %d] (min %d): %w",
				methodRandomWheel, lo, hi, minCycleNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomWheel, ErrNeedRandSource)
		}

		return addWheel(g, cfg, lo+cfg.rng.Intn(hi-lo+1), methodRandomWheel)
	}
}

func addWheel(g *core.Graph, cfg builderConfig, k int, method string) error {
	if k < minCycleNodes {
		return fmt.Errorf("%s: k=%d < min=%d: %w", method, k, minCycleNodes, ErrTooFewVertices)
	}

	hub := g.AddVertex(cfg.center)
	ring, err := addRing(g, cfg, k, method)
	if err != nil {
		return err
	}
	for _, r := range ring {
		if _, err = g.AddEdge(hub, r); err != nil {
			return fmt.Errorf("%s: spoke %d→%d: %w: %w", method, hub, r, ErrConstructFailed, err)
		}
	}

	return nil
}
