// SPDX-License-Identifier: MIT
// Package: planar/generate
//
// choose.go: pure selection helpers (no RNG, no graph mutation).

package generate

import (
	"math"

	"github.com/katalvlaran/planar/core"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// boundaryPairs lists the index pairs (i, j), i < j, of a radial order of
// length d that are not cyclically consecutive and leave at least two
// entries on either side: j−i ≥ 2 and d−(j−i) ≥ 2. The result is empty for
// d < 4.
func boundaryPairs(d int) [][2]int {
	var out [][2]int
	for i := 0; i < d; i++ {
		for j := i + 2; j < d; j++ {
			if d-(j-i) >= 2 {
				out = append(out, [2]int{i, j})
			}
		}
	}

	return out
}

// partition cuts the cyclic order after positions i and j: B is the run
// order[i+1..j], A the run order[j+1..] followed by order[..i].
func partition(order []core.VertexID, i, j int) ([]core.VertexID, []core.VertexID) {
	groupB := append([]core.VertexID(nil), order[i+1:j+1]...)
	groupA := append(append([]core.VertexID(nil), order[j+1:]...), order[:i+1]...)

	return groupA, groupB
}

// mostIsolated returns the vertex whose nearest other vertex is farthest away
// (squared Euclidean distance); ties keep the lowest id.
// Complexity: O(V log V) expected.
func mostIsolated(vs []core.Vertex) core.VertexID {
	if len(vs) == 0 {
		return core.NoVertex
	}
	pts := make(kdtree.Points, len(vs))
	for i, v := range vs {
		pts[i] = kdtree.Point{v.Pos.X, v.Pos.Y}
	}
	tree := kdtree.New(pts, true)

	best, bestDist := core.NoVertex, -1.0
	for _, v := range vs {
		// The two closest points are v itself and its nearest neighbour.
		keep := kdtree.NewNKeeper(2)
		tree.NearestSet(keep, kdtree.Point{v.Pos.X, v.Pos.Y})
		found, nearest := 0, 0.0
		for _, cd := range keep.Heap {
			if cd.Comparable == nil {
				continue
			}
			found++
			nearest = math.Max(nearest, cd.Dist)
		}
		if found < 2 {
			nearest = math.Inf(1)
		}
		if nearest > bestDist {
			best, bestDist = v.ID, nearest
		}
	}

	return best
}
