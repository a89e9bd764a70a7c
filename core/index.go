// SPDX-License-Identifier: MIT
// File: index.go
// Role: R-tree over edge bounding boxes.
//
// Every live edge has exactly one entry, keyed by EdgeID and boxed by its
// current segment. Whoever changes e.seg must unindex before and index after.

package core

import (
	"math"
	"slices"

	"github.com/katalvlaran/planar/geometry"
	"github.com/peterstace/simplefeatures/rtree"
)

// segmentBox is the axis-aligned bounding box of s.
func segmentBox(s geometry.Segment) rtree.Box {
	return rtree.Box{
		MinX: math.Min(s.Start.X, s.End.X),
		MinY: math.Min(s.Start.Y, s.End.Y),
		MaxX: math.Max(s.Start.X, s.End.X),
		MaxY: math.Max(s.Start.Y, s.End.Y),
	}
}

func (g *Graph) indexEdgeLocked(e *edge) {
	g.index.Insert(segmentBox(e.seg), int(e.id))
}

func (g *Graph) unindexEdgeLocked(e *edge) {
	g.index.Delete(segmentBox(e.seg), int(e.id))
}

// edgesNearLocked returns, in ascending order, the edges whose boxes touch
// the box of s.
func (g *Graph) edgesNearLocked(s geometry.Segment) []EdgeID {
	var out []EdgeID
	_ = g.index.RangeSearch(segmentBox(s), func(id int) error {
		out = append(out, EdgeID(id))
		return nil
	})
	slices.Sort(out)

	return out
}

// rebuildIndexLocked discards the index and inserts every live edge.
func (g *Graph) rebuildIndexLocked() {
	g.index = rtree.RTree{}
	g.edges.each(func(_ int, e *edge) { g.indexEdgeLocked(e) })
}
