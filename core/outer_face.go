// SPDX-License-Identifier: MIT
// File: outer_face.go
// Role: Outer-face bookkeeping.
//
// The outer face is stored as a cyclic sequence of vertex ids. Exactly the
// vertices on it carry fixed=true. Three operations reshape it:
//   - SetOuterFace replaces it wholesale (validated).
//   - cutOuterFaceLocked handles a chord between two boundary vertices.
//   - splitOuterFaceLocked substitutes a split vertex with its replacements.

package core

import (
	"fmt"

	"github.com/katalvlaran/planar/geometry"
	"go.uber.org/zap"
)

// SetOuterFace declares ids as the outer face. The previous face's vertices
// become free and the new ones fixed.
//
// Errors: ErrVertexNotFound for an unknown id, ErrInvalidFace when ids has
// fewer than three entries, repeats a vertex, or two consecutive entries
// (with wraparound) are not adjacent.
//
// Complexity: O(k·Δ) for k = len(ids).
func (g *Graph) SetOuterFace(ids []VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.validateFaceLocked(ids); err != nil {
		return fmt.Errorf("SetOuterFace: %w", err)
	}
	g.setOuterFaceLocked(ids)

	return nil
}

// validateFaceLocked checks that ids form a simple cycle in the graph.
func (g *Graph) validateFaceLocked(ids []VertexID) error {
	if len(ids) < 3 {
		return fmt.Errorf("%d vertices: %w", len(ids), ErrInvalidFace)
	}
	seen := make(map[VertexID]struct{}, len(ids))
	for _, id := range ids {
		if g.vertices.get(int(id)) == nil {
			return fmt.Errorf("vertex %d: %w", id, ErrVertexNotFound)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("vertex %d repeated: %w", id, ErrInvalidFace)
		}
		seen[id] = struct{}{}
	}
	for i, id := range ids {
		next := ids[(i+1)%len(ids)]
		if !g.vertices.get(int(id)).adjacentTo(next) {
			return fmt.Errorf("%d and %d not adjacent: %w", id, next, ErrInvalidFace)
		}
	}

	return nil
}

// setOuterFaceLocked installs ids without validation, moving the fixed flags.
func (g *Graph) setOuterFaceLocked(ids []VertexID) {
	for _, id := range g.outerFace {
		if vx := g.vertices.get(int(id)); vx != nil {
			vx.fixed = false
		}
	}
	g.outerFace = append([]VertexID(nil), ids...)
	for _, id := range g.outerFace {
		g.vertices.get(int(id)).fixed = true
	}
}

// OuterFace returns a copy of the outer-face cycle, or nil if none is set.
func (g *Graph) OuterFace() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if len(g.outerFace) == 0 {
		return nil
	}

	return append([]VertexID(nil), g.outerFace...)
}

// OnOuterFace reports whether v lies on the outer face.
func (g *Graph) OnOuterFace(v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.onFaceLocked(v)
}

func (g *Graph) onFaceLocked(v VertexID) bool {
	vx := g.vertices.get(int(v))

	return vx != nil && vx.fixed
}

// faceIndexLocked returns v's position in the outer face, or -1.
func (g *Graph) faceIndexLocked(v VertexID) int {
	for i, id := range g.outerFace {
		if id == v {
			return i
		}
	}

	return -1
}

// cutOuterFaceLocked reshapes the face after the chord u–v was added between
// two boundary vertices. The chord splits the cycle into two arcs, each of
// which closes into a cycle through the chord:
//
//   - chord outside the face polygon: the arc enclosing the larger area is
//     kept, since the pocket between chord and boundary joins the interior;
//   - chord inside: the arc with more positions is kept when nothing lies
//     between it and the chord, else the shorter one when its side is empty,
//     else the face is left as is (the chord is interior to both sides).
//
// On a tie in positions the arc running from the higher index back round to
// the lower one counts as the longer. Dropped vertices become free.
//
// Example: face [0 1 2 3 4 5] with chord 0–2 becomes [0 2 3 4 5].
func (g *Graph) cutOuterFaceLocked(u, v VertexID) {
	n := len(g.outerFace)
	iu, iv := g.faceIndexLocked(u), g.faceIndexLocked(v)
	if iu < 0 || iv < 0 {
		return
	}
	lo, hi := min(iu, iv), max(iu, iv)
	if hi-lo == 1 || hi-lo == n-1 {
		// Already consecutive on the face: nothing to cut.
		return
	}

	start, other := lo, hi
	if hi-lo > n-(hi-lo) {
		start, other = hi, lo
	}
	long, short := g.arcLocked(start, other), g.arcLocked(other, start)

	var face []VertexID
	chord := geometry.NewSegment(g.vertices.get(int(u)).pos, g.vertices.get(int(v)).pos)
	switch {
	case !g.polygonLocked(g.outerFace).Contains(chord.Midpoint()):
		face = long
		if g.polygonLocked(short).Area() > g.polygonLocked(long).Area() {
			face = short
		}
	case g.regionEmptyLocked(long):
		face = long
	case g.regionEmptyLocked(short):
		face = short
	default:
		g.log.Debug("outer face kept", zap.Int("u", int(u)), zap.Int("v", int(v)))
		return
	}
	g.log.Debug("outer face cut",
		zap.Int("u", int(u)), zap.Int("v", int(v)),
		zap.Int("before", n), zap.Int("after", len(face)))
	g.setOuterFaceLocked(face)
}

// arcLocked returns [f[a] f[b] f[b+1] … f[a-1]] over the current face f: the
// cycle closed by the chord f[a]–f[b] that keeps the vertices from b round to a.
func (g *Graph) arcLocked(a, b int) []VertexID {
	n := len(g.outerFace)
	arc := make([]VertexID, 0, n)
	arc = append(arc, g.outerFace[a])
	for i := b; i != a; i = (i + 1) % n {
		arc = append(arc, g.outerFace[i])
	}

	return arc
}

// polygonLocked returns the current positions of ids as a polygon.
func (g *Graph) polygonLocked(ids []VertexID) geometry.Polygon {
	pg := make(geometry.Polygon, len(ids))
	for i, id := range ids {
		pg[i] = g.vertices.get(int(id)).pos
	}

	return pg
}

// regionEmptyLocked reports whether the polygon bounded by cycle holds no
// other vertex and no diagonal edge between cycle vertices.
func (g *Graph) regionEmptyLocked(cycle []VertexID) bool {
	pg := g.polygonLocked(cycle)
	at := make(map[VertexID]int, len(cycle))
	for i, id := range cycle {
		at[id] = i
	}

	empty := true
	g.vertices.each(func(_ int, vx *vertex) {
		if _, on := at[vx.id]; !on && empty && pg.Contains(vx.pos) {
			empty = false
		}
	})
	if !empty {
		return false
	}
	k := len(cycle)
	g.edges.each(func(_ int, e *edge) {
		i, okU := at[e.u]
		j, okV := at[e.v]
		if !okU || !okV || !empty {
			return
		}
		if d := (i - j + k) % k; d == 1 || d == k-1 {
			return
		}
		if pg.Contains(e.seg.Midpoint()) {
			empty = false
		}
	})

	return empty
}

// splitOuterFaceLocked replaces boundary vertex old, at index idx, with the
// split products u (group A side) and v (group B side). Which of them end up
// on the boundary depends on the face neighbours l and r of old:
//
//	l and r both only adjacent to v → [.. l v r ..]
//	l and r both adjacent to u     → [.. l u r ..]
//	l adjacent to u                → [.. l u v r ..]
//	otherwise                      → [.. l v u r ..]
func (g *Graph) splitOuterFaceLocked(idx int, u, v VertexID) {
	n := len(g.outerFace)
	l := g.outerFace[(idx-1+n)%n]
	r := g.outerFace[(idx+1)%n]
	ux := g.vertices.get(int(u))

	lu, ru := ux.adjacentTo(l), ux.adjacentTo(r)
	var repl []VertexID
	switch {
	case !lu && !ru:
		repl = []VertexID{v}
	case lu && ru:
		repl = []VertexID{u}
	case lu:
		repl = []VertexID{u, v}
	default:
		repl = []VertexID{v, u}
	}

	face := make([]VertexID, 0, n+1)
	face = append(face, g.outerFace[:idx]...)
	face = append(face, repl...)
	face = append(face, g.outerFace[idx+1:]...)
	g.setOuterFaceLocked(face)
}

// dropFromFaceLocked removes a deleted vertex from the face. When the result
// is not a cycle of at least three consecutively adjacent vertices the outer
// face is cleared and every vertex becomes free.
func (g *Graph) dropFromFaceLocked(v VertexID) {
	idx := g.faceIndexLocked(v)
	if idx < 0 {
		return
	}
	face := append(append([]VertexID(nil), g.outerFace[:idx]...), g.outerFace[idx+1:]...)
	g.outerFace = face
	if g.validateFaceLocked(face) != nil {
		g.log.Debug("outer face cleared", zap.Int("deleted", int(v)))
		g.setOuterFaceLocked(nil)
	}
}
