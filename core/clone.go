// File: clone.go
// Role: Deep copies of a Graph.
// Determinism:
//   - Clone keeps every VertexID/EdgeID and the free-slot state, so the next
//     allocation on the clone yields the same id as on the source.
// Concurrency:
//   - Read lock on the source only.

package core

// Clone returns a deep copy of g: vertices, edges, edge index, outer face,
// degree trackers and the logger.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph(WithLogger(g.log))
	out.vertices = cloneArena(&g.vertices, func(v *vertex) *vertex {
		cp := *v
		cp.edges = append([]EdgeID(nil), v.edges...)
		cp.neighbours = append([]VertexID(nil), v.neighbours...)
		return &cp
	})
	out.edges = cloneArena(&g.edges, func(e *edge) *edge {
		cp := *e
		return &cp
	})
	out.rebuildIndexLocked()
	out.maxDegree, out.minDegree = g.maxDegree, g.minDegree
	out.outerFace = append([]VertexID(nil), g.outerFace...)

	return out
}

func cloneArena[T any](a *arena[T], cp func(*T) *T) arena[T] {
	out := arena[T]{
		slots: make([]*T, len(a.slots)),
		free:  append(freeList(nil), a.free...),
		live:  a.live,
	}
	for i, v := range a.slots {
		if v != nil {
			out.slots[i] = cp(v)
		}
	}

	return out
}
