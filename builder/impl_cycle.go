// SPDX-License-Identifier: MIT
// Package: planar/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Vertex i sits at angle i·2π/n on the configured polygon.
//   • Edges i → (i+1)%n in ascending i; the ring becomes the outer face.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges, each edge insertion scanning O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/geometry"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex ring C_n as the outer face.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		_, err := addRing(g, cfg, n, methodCycle)
		return err
	}
}

// addRing places n vertices on the configured polygon, chains them and makes
// the ring the outer face. It returns the ring ids in polygon order.
func addRing(g *core.Graph, cfg builderConfig, n int, method string) ([]core.VertexID, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minCycleNodes, ErrTooFewVertices)
	}

	ring := make([]core.VertexID, n)
	for i, p := range geometry.RegularPolygon(n, cfg.center, cfg.radius) {
		ring[i] = g.AddVertex(p)
	}
	for i := 0; i < n; i++ {
		u, v := ring[i], ring[(i+1)%n]
		if _, err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%s: AddEdge(%d, %d): %w: %w", method, u, v, ErrConstructFailed, err)
		}
	}
	if err := g.SetOuterFace(ring); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return ring, nil
}
