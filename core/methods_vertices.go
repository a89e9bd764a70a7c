// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns snapshots sorted by VertexID ascending.
//   - Neighbours() preserves edge-insertion order.
//
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"

	"github.com/katalvlaran/planar/geometry"
	"go.uber.org/zap"
)

// AddVertex creates an isolated, unfixed vertex at p (snapped to the grid) and
// returns its handle. The lowest reclaimed id is reused first.
//
// Complexity: O(log F) where F is the number of reclaimed slots.
func (g *Graph) AddVertex(p geometry.Point) VertexID {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(p)
}

func (g *Graph) addVertexLocked(p geometry.Point) VertexID {
	id := g.vertices.insert(func(idx int) *vertex {
		return &vertex{id: VertexID(idx), pos: p.Snap()}
	})
	// An isolated vertex is the new minimum.
	g.minDegree = 0

	return VertexID(id)
}

// DeleteVertex removes v together with every incident edge.
//
// Steps:
//  1. Detach each incident edge from the far endpoint and free the edge slot.
//  2. Free the vertex slot and rescan MaxDegree/MinDegree.
//  3. If v was on the outer face, drop it from the cycle; when the remaining
//     sequence is no longer a valid face the outer face is cleared.
//
// Complexity: O(deg(v)·Δ + V) where Δ is the largest neighbour degree.
func (g *Graph) DeleteVertex(v VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.vertices.get(int(v)) == nil {
		return fmt.Errorf("DeleteVertex(%d): %w", v, ErrVertexNotFound)
	}
	g.deleteVertexLocked(v)
	g.dropFromFaceLocked(v)

	return nil
}

// deleteVertexLocked cascades edge removal and frees the slot. The outer face
// is left untouched; callers decide how to repair it.
func (g *Graph) deleteVertexLocked(v VertexID) {
	vx := g.vertices.get(int(v))
	for i, eid := range vx.edges {
		if nb := g.vertices.get(int(vx.neighbours[i])); nb != nil {
			nb.detach(eid)
		}
		g.unindexEdgeLocked(g.edges.get(int(eid)))
		g.edges.remove(int(eid))
	}
	g.vertices.remove(int(v))
	g.refreshDegreeBoundsLocked()
}

// refreshDegreeBoundsLocked rescans every vertex for the degree extremes.
// Graphs here hold a few dozen vertices, so the O(V) scan is acceptable.
func (g *Graph) refreshDegreeBoundsLocked() {
	g.maxDegree, g.minDegree = g.degreeBoundsLocked()
}

// degreeBoundsLocked returns (max, min) degree over all vertices, (0, 0) when empty.
func (g *Graph) degreeBoundsLocked() (int, int) {
	maxD, minD := 0, 0
	first := true
	g.vertices.each(func(_ int, vx *vertex) {
		d := vx.degree()
		if first {
			maxD, minD, first = d, d, false
			return
		}
		maxD = max(maxD, d)
		minD = min(minD, d)
	})

	return maxD, minD
}

// HasVertex reports whether v names a live vertex.
func (g *Graph) HasVertex(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.get(int(v)) != nil
}

// Vertex returns a snapshot of v.
func (g *Graph) Vertex(v VertexID) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vx := g.vertices.get(int(v))
	if vx == nil {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", v, ErrVertexNotFound)
	}

	return vx.snapshot(), nil
}

// Vertices returns snapshots of all vertices sorted by id.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, 0, g.vertices.len())
	g.vertices.each(func(_ int, vx *vertex) {
		out = append(out, vx.snapshot())
	})

	return out
}

// VertexIDs returns all vertex handles sorted ascending.
func (g *Graph) VertexIDs() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]VertexID, 0, g.vertices.len())
	g.vertices.each(func(idx int, _ *vertex) {
		out = append(out, VertexID(idx))
	})

	return out
}

// VertexCount returns the number of live vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices.len()
}

// Neighbours returns v's neighbours in edge-insertion order.
func (g *Graph) Neighbours(v VertexID) ([]VertexID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vx := g.vertices.get(int(v))
	if vx == nil {
		return nil, fmt.Errorf("Neighbours(%d): %w", v, ErrVertexNotFound)
	}

	return append([]VertexID(nil), vx.neighbours...), nil
}

// IncidentEdges returns v's edges; entry i leads to Neighbours(v)[i].
func (g *Graph) IncidentEdges(v VertexID) ([]EdgeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vx := g.vertices.get(int(v))
	if vx == nil {
		return nil, fmt.Errorf("IncidentEdges(%d): %w", v, ErrVertexNotFound)
	}

	return append([]EdgeID(nil), vx.edges...), nil
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v VertexID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vx := g.vertices.get(int(v))
	if vx == nil {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}

	return vx.degree(), nil
}

// Adjacent reports whether u and v share an edge. Unknown handles are never adjacent.
func (g *Graph) Adjacent(u, v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ux := g.vertices.get(int(u))

	return ux != nil && ux.adjacentTo(v)
}

// MaxDegree returns the highest current vertex degree (0 for an empty graph).
func (g *Graph) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxDegree
}

// MinDegree returns the lowest current vertex degree (0 for an empty graph).
func (g *Graph) MinDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.minDegree
}

// SetVertexAttr stores a caller-defined display attribute on v.
// The graph never interprets it.
func (g *Graph) SetVertexAttr(v VertexID, attr string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	vx := g.vertices.get(int(v))
	if vx == nil {
		return fmt.Errorf("SetVertexAttr(%d): %w", v, ErrVertexNotFound)
	}
	vx.attr = attr

	return nil
}

// MovePositions overwrites the positions of the given vertices (snapped to
// the grid) and recomputes the segment of every incident edge. All handles
// are validated first; on error nothing moves. Planarity of the new positions
// is the caller's responsibility (layout solvers guarantee it for their
// inputs).
//
// Complexity: O(Σ deg(v)) over the moved vertices.
func (g *Graph) MovePositions(pos map[VertexID]geometry.Point) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for id := range pos {
		if g.vertices.get(int(id)) == nil {
			return fmt.Errorf("MovePositions(%d): %w", id, ErrVertexNotFound)
		}
	}
	for id, p := range pos {
		g.vertices.get(int(id)).pos = p.Snap()
	}
	for id := range pos {
		for _, eid := range g.vertices.get(int(id)).edges {
			g.refreshSegmentLocked(g.edges.get(int(eid)))
		}
	}
	g.log.Debug("positions moved", zap.Int("count", len(pos)))

	return nil
}
