// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.
//
// Every fixture is built on integer coordinates so expected positions and
// intersections are exact.

package core_test

import (
	"testing"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/geometry"
	"github.com/stretchr/testify/require"
)

// addVertices inserts pts in order and returns their ids.
func addVertices(g *core.Graph, pts ...geometry.Point) []core.VertexID {
	ids := make([]core.VertexID, len(pts))
	for i, p := range pts {
		ids[i] = g.AddVertex(p)
	}
	return ids
}

// mustCycle joins ids[i]–ids[i+1] (with wraparound) and makes the cycle the outer face.
func mustCycle(t *testing.T, g *core.Graph, ids []core.VertexID) {
	t.Helper()
	for i := range ids {
		_, err := g.AddEdge(ids[i], ids[(i+1)%len(ids)])
		require.NoError(t, err)
	}
	require.NoError(t, g.SetOuterFace(ids))
}

// newHexagon returns a convex hexagon, counter-clockwise from (0,0), as the outer face.
//
//	      4(0,20)   3(10,20)
//	5(-10,10)            2(20,10)
//	      0(0,0)    1(10,0)
func newHexagon(t *testing.T) (*core.Graph, []core.VertexID) {
	t.Helper()
	g := core.NewGraph()
	ids := addVertices(g,
		geometry.Pt(0, 0), geometry.Pt(10, 0), geometry.Pt(20, 10),
		geometry.Pt(10, 20), geometry.Pt(0, 20), geometry.Pt(-10, 10))
	mustCycle(t, g, ids)
	return g, ids
}

// newWheel4 returns a hub (id 0) at the origin joined to the rim
// 1(10,0) 2(0,10) 3(-10,0) 4(0,-10); the rim is the outer face.
func newWheel4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	hub := g.AddVertex(geometry.Pt(0, 0))
	rim := addVertices(g, geometry.Pt(10, 0), geometry.Pt(0, 10), geometry.Pt(-10, 0), geometry.Pt(0, -10))
	for _, r := range rim {
		_, err := g.AddEdge(hub, r)
		require.NoError(t, err)
	}
	mustCycle(t, g, rim)
	return g
}

// newCornerFan returns a square face 0(0,0) 1(20,0) 2(20,20) 3(0,20) with two
// interior vertices 4(10,4) and 5(4,10) triangulating it, so corner 0 has
// degree four.
func newCornerFan(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	ids := addVertices(g,
		geometry.Pt(0, 0), geometry.Pt(20, 0), geometry.Pt(20, 20), geometry.Pt(0, 20),
		geometry.Pt(10, 4), geometry.Pt(4, 10))
	mustCycle(t, g, ids[:4])
	for _, pair := range [][2]int{{0, 4}, {0, 5}, {4, 5}, {4, 1}, {5, 3}, {4, 2}, {5, 2}} {
		_, err := g.AddEdge(ids[pair[0]], ids[pair[1]])
		require.NoError(t, err)
	}
	require.Equal(t, []core.VertexID{0, 1, 2, 3}, g.OuterFace())
	return g
}
