// SPDX-License-Identifier: MIT
// File: trace.go
// Role: Recover the outer boundary from the current geometry.

package core

import (
	"fmt"
	"slices"
)

// TraceOuterFace walks the unbounded face of the current straight-line
// drawing and returns it counter-clockwise. It does not touch the stored face.
//
// The walk starts at the leftmost (then lowest) vertex of non-zero degree,
// leaves along its steepest neighbour, and at each step turns onto the edge
// immediately clockwise of the one it arrived on. Isolated vertices are
// ignored; with several components only the one holding the start is traced.
//
// Errors: ErrInvalidFace when the graph has no edge, or when the boundary is
// not a simple cycle (a bridge or cut vertex sits on it).
//
// Complexity: O(E·Δ log Δ).
func (g *Graph) TraceOuterFace() ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	start := NoVertex
	var sp *vertex
	g.vertices.each(func(_ int, vx *vertex) {
		if vx.degree() == 0 {
			return
		}
		if sp == nil || vx.pos.X < sp.pos.X || (vx.pos.X == sp.pos.X && vx.pos.Y < sp.pos.Y) {
			start, sp = vx.id, vx
		}
	})
	if sp == nil {
		return nil, fmt.Errorf("TraceOuterFace: no edges: %w", ErrInvalidFace)
	}

	order := g.radialOrderLocked(start)
	first := order[len(order)-1]

	face := []VertexID{start}
	seen := map[VertexID]struct{}{start: {}}
	prev, cur := start, first
	for steps := 0; ; steps++ {
		if steps > 2*g.edges.len() {
			return nil, fmt.Errorf("TraceOuterFace: walk did not close: %w", ErrInvalidFace)
		}
		if cur == start {
			break
		}
		if _, dup := seen[cur]; dup {
			return nil, fmt.Errorf("TraceOuterFace: vertex %d revisited: %w", cur, ErrInvalidFace)
		}
		seen[cur] = struct{}{}
		face = append(face, cur)

		around := g.radialOrderLocked(cur)
		i := slices.Index(around, prev)
		prev, cur = cur, around[(i-1+len(around))%len(around)]
	}
	if len(face) < 3 {
		return nil, fmt.Errorf("TraceOuterFace: %d boundary vertices: %w", len(face), ErrInvalidFace)
	}
	if i := slices.Index(order, prev); order[(i-1+len(order))%len(order)] != first {
		return nil, fmt.Errorf("TraceOuterFace: cut vertex %d: %w", start, ErrInvalidFace)
	}
	// The walk runs clockwise; hand the cycle back counter-clockwise from start.
	slices.Reverse(face[1:])

	return face, nil
}
