// SPDX-License-Identifier: MIT
// File: split.go
// Role: Vertex split, the growth operation of the embedding.
//
// Split(n, A, B) replaces n by two adjacent vertices u and v. u inherits the
// edges towards A, v those towards B.
//
// Validation (first failure wins, nothing mutates on error):
//   1. n exists                                        → ErrVertexNotFound
//   2. A ∪ B is exactly N(n), without repeats           → ErrSplitIncomplete
//   3. |A| ≥ 2 and |B| ≥ 2                              → ErrSplitGroupTooSmall
//   4. each group is one run in RadialOrder(n)          → ErrSplitNotContiguous
//   5. the planned straight edges stay planar           → ErrSplitNotPlanar
//
// Placement:
//   - n fixed: u takes n's position, v the centroid of B ∪ {u}.
//   - n free:  each axis solves
//       (|A|+1)·u − v = ΣA
//       −u + (|B|+1)·v = ΣB
//     so u is the centroid of A ∪ {v} and v the centroid of B ∪ {u}.

package core

import (
	"fmt"

	"github.com/katalvlaran/planar/geometry"
	"github.com/katalvlaran/planar/matrix"
	"go.uber.org/zap"
)

// Placeholder ids for u and v while the split is only planned.
const (
	plannedU VertexID = -2
	plannedV VertexID = -3
)

// Split replaces n with two new adjacent vertices and returns them as (u, v):
// u is joined to every vertex of groupA, v to every vertex of groupB.
// Both new vertices carry n's display attribute. When n lay on the outer face
// the face is patched so that it stays a valid cycle.
//
// Complexity: O(d·(log E + k) + V) for the planarity pre-check of d new edges.
func (g *Graph) Split(n VertexID, groupA, groupB []VertexID) (VertexID, VertexID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	nx := g.vertices.get(int(n))
	if nx == nil {
		return NoVertex, NoVertex, fmt.Errorf("Split(%d): %w", n, ErrVertexNotFound)
	}
	if err := g.checkPartitionLocked(nx, groupA, groupB); err != nil {
		return NoVertex, NoVertex, fmt.Errorf("Split(%d): %w", n, err)
	}
	if len(groupA) < 2 || len(groupB) < 2 {
		return NoVertex, NoVertex, fmt.Errorf("Split(%d): |A|=%d |B|=%d: %w",
			n, len(groupA), len(groupB), ErrSplitGroupTooSmall)
	}
	if !g.radiallyContiguousLocked(n, groupA) {
		return NoVertex, NoVertex, fmt.Errorf("Split(%d): %w", n, ErrSplitNotContiguous)
	}

	pu, pv, err := g.splitPositionsLocked(nx, groupA, groupB)
	if err != nil {
		return NoVertex, NoVertex, fmt.Errorf("Split(%d): %w", n, err)
	}
	if reason, bad := g.splitBlockedLocked(n, pu, pv, groupA, groupB); bad {
		return NoVertex, NoVertex, fmt.Errorf("Split(%d): %s: %w", n, reason, ErrSplitNotPlanar)
	}

	// Allocate before deleting n so the old id is never handed out again here.
	u := g.addVertexLocked(pu)
	v := g.addVertexLocked(pv)
	g.vertices.get(int(u)).attr = nx.attr
	g.vertices.get(int(v)).attr = nx.attr

	faceIdx := g.faceIndexLocked(n)
	g.deleteVertexLocked(n)
	for _, a := range groupA {
		g.addEdgeUncheckedLocked(u, a)
	}
	for _, b := range groupB {
		g.addEdgeUncheckedLocked(v, b)
	}
	g.addEdgeUncheckedLocked(u, v)
	if faceIdx >= 0 {
		g.splitOuterFaceLocked(faceIdx, u, v)
	}

	g.log.Debug("vertex split",
		zap.Int("vertex", int(n)), zap.Int("u", int(u)), zap.Int("v", int(v)),
		zap.Int("groupA", len(groupA)), zap.Int("groupB", len(groupB)),
		zap.Bool("boundary", faceIdx >= 0))

	return u, v, nil
}

// checkPartitionLocked verifies that A and B split N(n) exactly.
func (g *Graph) checkPartitionLocked(nx *vertex, groupA, groupB []VertexID) error {
	seen := make(map[VertexID]struct{}, nx.degree())
	for _, group := range [][]VertexID{groupA, groupB} {
		for _, id := range group {
			if !nx.adjacentTo(id) {
				return fmt.Errorf("%d is not a neighbour: %w", id, ErrSplitIncomplete)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("%d listed twice: %w", id, ErrSplitIncomplete)
			}
			seen[id] = struct{}{}
		}
	}
	if len(seen) != nx.degree() {
		return fmt.Errorf("%d of %d neighbours assigned: %w", len(seen), nx.degree(), ErrSplitIncomplete)
	}

	return nil
}

// radiallyContiguousLocked reports whether groupA (and thus its complement)
// occupies one contiguous run of n's radial order, viewed cyclically.
func (g *Graph) radiallyContiguousLocked(n VertexID, groupA []VertexID) bool {
	inA := make(map[VertexID]bool, len(groupA))
	for _, id := range groupA {
		inA[id] = true
	}
	order := g.radialOrderLocked(n)
	transitions := 0
	for i, id := range order {
		if inA[id] != inA[order[(i+1)%len(order)]] {
			transitions++
		}
	}

	return transitions == 2
}

// splitPositionsLocked computes the grid positions of u and v.
func (g *Graph) splitPositionsLocked(nx *vertex, groupA, groupB []VertexID) (geometry.Point, geometry.Point, error) {
	ptsA, ptsB := g.positionsLocked(groupA), g.positionsLocked(groupB)
	if nx.fixed {
		pu := nx.pos
		pv := geometry.Centroid(append(ptsB, pu)...).Snap()
		return pu, pv, nil
	}

	sumA, sumB := sum(ptsA), sum(ptsB)
	a, err := matrix.NewDenseFrom([][]float64{
		{float64(len(groupA) + 1), -1},
		{-1, float64(len(groupB) + 1)},
	})
	if err != nil {
		return geometry.Point{}, geometry.Point{}, err
	}
	xs, err := matrix.Solve(a, []float64{sumA.X, sumB.X})
	if err != nil {
		return geometry.Point{}, geometry.Point{}, fmt.Errorf("x axis: %w", err)
	}
	ys, err := matrix.Solve(a, []float64{sumA.Y, sumB.Y})
	if err != nil {
		return geometry.Point{}, geometry.Point{}, fmt.Errorf("y axis: %w", err)
	}

	return geometry.Pt(xs[0], ys[0]), geometry.Pt(xs[1], ys[1]), nil
}

func (g *Graph) positionsLocked(ids []VertexID) []geometry.Point {
	out := make([]geometry.Point, len(ids))
	for i, id := range ids {
		out[i] = g.vertices.get(int(id)).pos
	}

	return out
}

func sum(pts []geometry.Point) geometry.Point {
	var out geometry.Point
	for _, p := range pts {
		out = out.Add(p)
	}

	return out
}

// plannedEdge is a straight edge that a split would create.
type plannedEdge struct {
	a, b VertexID
	seg  geometry.Segment
}

// splitBlockedLocked checks the planned edges u–A, v–B and u–v against the
// graph without n, against each other, and against vertex positions.
func (g *Graph) splitBlockedLocked(n VertexID, pu, pv geometry.Point, groupA, groupB []VertexID) (string, bool) {
	if pu.Equal(pv) {
		return "new vertices coincide", true
	}
	planned := make([]plannedEdge, 0, len(groupA)+len(groupB)+1)
	for _, a := range groupA {
		planned = append(planned, plannedEdge{plannedU, a, geometry.NewSegment(pu, g.vertices.get(int(a)).pos)})
	}
	for _, b := range groupB {
		planned = append(planned, plannedEdge{plannedV, b, geometry.NewSegment(pv, g.vertices.get(int(b)).pos)})
	}
	planned = append(planned, plannedEdge{plannedU, plannedV, geometry.NewSegment(pu, pv)})

	// New positions must not sit on surviving vertices or edges.
	var taken string
	g.vertices.each(func(_ int, vx *vertex) {
		if taken == "" && vx.id != n && (vx.pos.Equal(pu) || vx.pos.Equal(pv)) {
			taken = fmt.Sprintf("new vertex on vertex %d", vx.id)
		}
	})
	if taken != "" {
		return taken, true
	}
	for _, p := range []geometry.Point{pu, pv} {
		for _, eid := range g.edgesNearLocked(geometry.NewSegment(p, p)) {
			if e := g.edges.get(int(eid)); !e.hasEndpoint(n) && e.seg.Contains(p) {
				return fmt.Sprintf("new vertex on edge %d", e.id), true
			}
		}
	}

	for i, p := range planned {
		if blocker, bad := g.crossesLocked(p.seg, p.a, p.b, n); bad {
			return fmt.Sprintf("planned edge %d blocked by %s", i, blocker), true
		}
		for j := i + 1; j < len(planned); j++ {
			q := planned[j]
			if segmentsConflict(p.seg, p.a, p.b, q.seg, q.a, q.b) {
				return fmt.Sprintf("planned edges %d and %d cross", i, j), true
			}
		}
	}

	return "", false
}
