// SPDX-License-Identifier: MIT
// File: radial.go
// Role: Angular ordering of neighbours around a vertex.

package core

import (
	"fmt"
	"sort"
)

// RadialOrder returns v's neighbours sorted counter-clockwise by the angle
// atan2(Δy, Δx) of the direction from v towards each neighbour, starting just
// above -π. Equal angles fall back to ascending id.
//
// Complexity: O(d log d) for d = deg(v).
func (g *Graph) RadialOrder(v VertexID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.vertices.get(int(v)) == nil {
		return nil, fmt.Errorf("RadialOrder(%d): %w", v, ErrVertexNotFound)
	}

	return g.radialOrderLocked(v), nil
}

func (g *Graph) radialOrderLocked(v VertexID) []VertexID {
	vx := g.vertices.get(int(v))
	out := append([]VertexID(nil), vx.neighbours...)
	angle := make(map[VertexID]float64, len(out))
	for _, nb := range out {
		angle[nb] = vx.pos.AngleTo(g.vertices.get(int(nb)).pos)
	}
	sort.Slice(out, func(i, j int) bool {
		ai, aj := angle[out[i]], angle[out[j]]
		if ai != aj {
			return ai < aj
		}
		return out[i] < out[j]
	})

	return out
}
