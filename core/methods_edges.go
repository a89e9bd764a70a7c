// File: methods_edges.go
// Role: Edge insertion with planarity checks & edge queries.
//
// AddEdge validation order (first failure wins, nothing mutates on error):
//   1. both endpoints exist           → ErrVertexNotFound
//   2. u ≠ v                          → ErrLoopNotAllowed
//   3. u, v not yet adjacent          → ErrAlreadyAdjacent
//   4. straight segment u→v is clean  → ErrCrossing
//
// Determinism:
//   - Edges() returns snapshots sorted by EdgeID ascending.

package core

import (
	"fmt"

	"github.com/katalvlaran/planar/geometry"
	"go.uber.org/zap"
)

// AddEdge joins u and v with a straight edge if the embedding stays planar.
// When both endpoints lie on the outer face the new chord cuts the face.
//
// Complexity: O(log E + k + V), k edges near the candidate segment.
func (g *Graph) AddEdge(u, v VertexID) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ux, vx := g.vertices.get(int(u)), g.vertices.get(int(v))
	if ux == nil || vx == nil {
		return NoEdge, fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrVertexNotFound)
	}
	if u == v {
		return NoEdge, fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrLoopNotAllowed)
	}
	if ux.adjacentTo(v) {
		return NoEdge, fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrAlreadyAdjacent)
	}
	seg := geometry.NewSegment(ux.pos, vx.pos)
	if blocker, ok := g.crossesLocked(seg, u, v, NoVertex); ok {
		return NoEdge, fmt.Errorf("AddEdge(%d, %d): blocked by %s: %w", u, v, blocker, ErrCrossing)
	}

	eid := g.addEdgeUncheckedLocked(u, v)
	if g.onFaceLocked(u) && g.onFaceLocked(v) {
		g.cutOuterFaceLocked(u, v)
	}
	g.log.Debug("edge added",
		zap.Int("edge", int(eid)), zap.Int("u", int(u)), zap.Int("v", int(v)),
		zap.Int("maxDegree", g.maxDegree))

	return eid, nil
}

// addEdgeUncheckedLocked inserts u–v without validation and updates the
// degree trackers. Callers guarantee both vertices exist and the edge is new
// and planar. The outer face is not touched.
func (g *Graph) addEdgeUncheckedLocked(u, v VertexID) EdgeID {
	ux, vx := g.vertices.get(int(u)), g.vertices.get(int(v))
	id := g.edges.insert(func(idx int) *edge {
		return &edge{id: EdgeID(idx), u: u, v: v, seg: geometry.NewSegment(ux.pos, vx.pos)}
	})
	eid := EdgeID(id)
	g.indexEdgeLocked(g.edges.get(id))
	ux.attach(eid, v)
	vx.attach(eid, u)

	g.maxDegree = max(g.maxDegree, ux.degree(), vx.degree())
	// Only a vertex that was at the minimum can raise it.
	if ux.degree()-1 == g.minDegree || vx.degree()-1 == g.minDegree {
		g.refreshDegreeBoundsLocked()
	}

	return eid
}

// refreshSegmentLocked recomputes e's segment from its endpoints' positions.
func (g *Graph) refreshSegmentLocked(e *edge) {
	g.unindexEdgeLocked(e)
	e.seg = geometry.NewSegment(g.vertices.get(int(e.u)).pos, g.vertices.get(int(e.v)).pos)
	g.indexEdgeLocked(e)
}

// crossesLocked reports the first existing edge that conflicts with seg, whose
// endpoints are the vertices a and b. Edges incident to ignore are skipped
// (Split uses it for the vertex being replaced). A vertex other than a, b and
// ignore lying on seg also counts as a conflict.
func (g *Graph) crossesLocked(seg geometry.Segment, a, b, ignore VertexID) (string, bool) {
	for _, eid := range g.edgesNearLocked(seg) {
		e := g.edges.get(int(eid))
		if ignore != NoVertex && e.hasEndpoint(ignore) {
			continue
		}
		if segmentsConflict(seg, a, b, e.seg, e.u, e.v) {
			return fmt.Sprintf("edge %d", e.id), true
		}
	}
	var blocker string
	g.vertices.each(func(_ int, vx *vertex) {
		if blocker != "" || vx.id == a || vx.id == b || vx.id == ignore {
			return
		}
		if seg.Contains(vx.pos) {
			blocker = fmt.Sprintf("vertex %d", vx.id)
		}
	})

	return blocker, blocker != ""
}

// segmentsConflict decides whether segment s (endpoints sa, sb) and segment t
// (endpoints ta, tb) may coexist in a straight-line embedding.
//
// Edges sharing an endpoint vertex meet there: a single crossing point is that
// vertex and is fine, while a collinear overlap is fine only when it shrinks to
// the shared point. Unrelated edges must not touch at all.
func segmentsConflict(s geometry.Segment, sa, sb VertexID, t geometry.Segment, ta, tb VertexID) bool {
	in := geometry.Intersect(s, t)
	if !in.Found() {
		return false
	}
	if sa != ta && sa != tb && sb != ta && sb != tb {
		return true
	}
	if in.Kind == geometry.Crossing {
		return false
	}

	return !s.HasEndpoint(in.Point)
}

// HasEdge reports whether e names a live edge.
func (g *Graph) HasEdge(e EdgeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.get(int(e)) != nil
}

// Edge returns a snapshot of e.
func (g *Graph) Edge(e EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ex := g.edges.get(int(e))
	if ex == nil {
		return Edge{}, fmt.Errorf("Edge(%d): %w", e, ErrEdgeNotFound)
	}

	return ex.snapshot(), nil
}

// Edges returns snapshots of all edges sorted by id.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges.len())
	g.edges.each(func(_ int, e *edge) {
		out = append(out, e.snapshot())
	})

	return out
}

// EdgeCount returns the number of live edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges.len()
}
