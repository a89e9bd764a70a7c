// File: view.go
// Role: Read-only views: drawing traversal, summary statistics, and the
// invariant checker used by tests and the generator's debug mode.
// Concurrency:
//   - Read lock for the whole traversal; Drawer callbacks must not call back
//     into mutating Graph methods.

package core

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/planar/geometry"
)

// Stats summarises a Graph.
type Stats struct {
	Vertices  int
	Edges     int
	MaxDegree int
	MinDegree int
	// OuterFace is the length of the boundary cycle (0 when unset).
	OuterFace int
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return fmt.Sprintf("V=%d E=%d deg=[%d,%d] face=%d",
		s.Vertices, s.Edges, s.MinDegree, s.MaxDegree, s.OuterFace)
}

// Stats returns a consistent snapshot of the graph's counters.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return Stats{
		Vertices:  g.vertices.len(),
		Edges:     g.edges.len(),
		MaxDegree: g.maxDegree,
		MinDegree: g.minDegree,
		OuterFace: len(g.outerFace),
	}
}

// Draw feeds every edge, then every vertex, to d in ascending id order.
// Vertices are drawn last so they sit on top of the edges.
func (g *Graph) Draw(d Drawer) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	g.edges.each(func(_ int, e *edge) { d.DrawEdge(e.snapshot()) })
	g.vertices.each(func(_ int, v *vertex) { d.DrawVertex(v.snapshot()) })
}

// CheckInvariants verifies the structural and geometric invariants of the
// embedding and returns every violation joined into one error wrapping
// ErrInvariant, or nil.
//
// Complexity: O(E² + E·V) because of the pairwise planarity scan.
func (g *Graph) CheckInvariants() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvariant))
	}

	// Adjacency lockstep and simple-graph property.
	g.vertices.each(func(_ int, vx *vertex) {
		if len(vx.edges) != len(vx.neighbours) {
			fail("vertex %d: %d edges but %d neighbours", vx.id, len(vx.edges), len(vx.neighbours))
			return
		}
		seen := make(map[VertexID]struct{}, len(vx.neighbours))
		for i, eid := range vx.edges {
			nb := vx.neighbours[i]
			if nb == vx.id {
				fail("vertex %d: self-loop", vx.id)
			}
			if _, dup := seen[nb]; dup {
				fail("vertex %d: parallel edges to %d", vx.id, nb)
			}
			seen[nb] = struct{}{}
			e := g.edges.get(int(eid))
			if e == nil || !e.hasEndpoint(vx.id) || !e.hasEndpoint(nb) {
				fail("vertex %d: edge %d does not join it to %d", vx.id, eid, nb)
			}
		}
	})

	// Every edge is registered on both endpoints and its segment is current.
	g.edges.each(func(_ int, e *edge) {
		ux, vx := g.vertices.get(int(e.u)), g.vertices.get(int(e.v))
		if ux == nil || vx == nil {
			fail("edge %d: dangling endpoint", e.id)
			return
		}
		if !ux.adjacentTo(e.v) || !vx.adjacentTo(e.u) {
			fail("edge %d: not registered on both endpoints", e.id)
		}
		if !e.seg.HasEndpoint(ux.pos) || !e.seg.HasEndpoint(vx.pos) {
			fail("edge %d: segment %s stale", e.id, e.seg)
		}
	})

	// The edge index holds exactly the live edges under their current boxes.
	g.edges.each(func(_ int, e *edge) {
		if !slices.Contains(g.edgesNearLocked(e.seg), e.id) {
			fail("edge %d: missing from index", e.id)
		}
	})
	if box, ok := g.index.Extent(); ok {
		n := 0
		_ = g.index.RangeSearch(box, func(int) error { n++; return nil })
		if n != g.edges.len() {
			fail("index holds %d entries for %d edges", n, g.edges.len())
		}
	} else if g.edges.len() > 0 {
		fail("index empty with %d edges", g.edges.len())
	}

	// Degree trackers.
	maxD, minD := g.degreeBoundsLocked()
	if maxD != g.maxDegree || minD != g.minDegree {
		fail("degree bounds [%d,%d], want [%d,%d]", g.minDegree, g.maxDegree, minD, maxD)
	}

	// Fixed flags agree with the outer face, which is a valid cycle.
	onFace := make(map[VertexID]struct{}, len(g.outerFace))
	for _, id := range g.outerFace {
		onFace[id] = struct{}{}
	}
	g.vertices.each(func(_ int, vx *vertex) {
		if _, ok := onFace[vx.id]; ok != vx.fixed {
			fail("vertex %d: fixed=%t but on face=%t", vx.id, vx.fixed, ok)
		}
	})
	if len(g.outerFace) > 0 {
		if err := g.validateFaceLocked(g.outerFace); err != nil {
			fail("outer face: %v", err)
		}
	}

	// Distinct vertices occupy distinct points.
	at := make(map[geometry.Point]VertexID, g.vertices.len())
	g.vertices.each(func(_ int, vx *vertex) {
		if other, dup := at[vx.pos]; dup {
			fail("vertices %d and %d coincide at %s", other, vx.id, vx.pos)
		}
		at[vx.pos] = vx.id
	})

	// Pairwise planarity and no vertex inside an edge.
	edges := make([]*edge, 0, g.edges.len())
	g.edges.each(func(_ int, e *edge) { edges = append(edges, e) })
	for i, a := range edges {
		for _, b := range edges[i+1:] {
			if segmentsConflict(a.seg, a.u, a.v, b.seg, b.u, b.v) {
				fail("edges %d and %d cross", a.id, b.id)
			}
		}
		g.vertices.each(func(_ int, vx *vertex) {
			if !a.hasEndpoint(vx.id) && a.seg.Contains(vx.pos) {
				fail("vertex %d lies on edge %d", vx.id, a.id)
			}
		})
	}

	return errors.Join(errs...)
}

// Positions returns the current position of every vertex keyed by id.
func (g *Graph) Positions() map[VertexID]geometry.Point {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[VertexID]geometry.Point, g.vertices.len())
	g.vertices.each(func(idx int, vx *vertex) { out[VertexID(idx)] = vx.pos })

	return out
}
