// SPDX-License-Identifier: MIT
// Package core_test verifies vertex splitting.

package core_test

import (
	"testing"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_InteriorHub(t *testing.T) {
	g := newWheel4(t)
	require.NoError(t, g.SetVertexAttr(0, "#00ffff"))

	u, v, err := g.Split(0, []core.VertexID{1, 2}, []core.VertexID{3, 4})
	require.NoError(t, err)
	assert.Equal(t, core.VertexID(5), u)
	assert.Equal(t, core.VertexID(6), v)
	assert.False(t, g.HasVertex(0))

	vu, err := g.Vertex(u)
	require.NoError(t, err)
	vv, err := g.Vertex(v)
	require.NoError(t, err)
	// 3u − v = 10 and −u + 3v = −10 on both axes: ±2.5, snapped away from zero.
	assert.Equal(t, geometry.Pt(3, 3), vu.Pos)
	assert.Equal(t, geometry.Pt(-3, -3), vv.Pos)
	assert.Equal(t, 3, vu.Degree)
	assert.Equal(t, 3, vv.Degree)
	assert.Equal(t, "#00ffff", vu.Attr)
	assert.Equal(t, "#00ffff", vv.Attr)

	assert.True(t, g.Adjacent(u, v))
	assert.True(t, g.Adjacent(u, 1) && g.Adjacent(u, 2))
	assert.True(t, g.Adjacent(v, 3) && g.Adjacent(v, 4))
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 9, g.EdgeCount())
	assert.Equal(t, 3, g.MaxDegree())
	assert.Equal(t, 3, g.MinDegree())
	assert.Equal(t, []core.VertexID{1, 2, 3, 4}, g.OuterFace())
	require.NoError(t, g.CheckInvariants())
}

func TestSplit_BoundaryVertex(t *testing.T) {
	g := newCornerFan(t)
	order, err := g.RadialOrder(0)
	require.NoError(t, err)
	require.Equal(t, []core.VertexID{1, 4, 5, 3}, order)

	u, v, err := g.Split(0, []core.VertexID{1, 4}, []core.VertexID{5, 3})
	require.NoError(t, err)

	vu, _ := g.Vertex(u)
	vv, _ := g.Vertex(v)
	assert.Equal(t, geometry.Pt(0, 0), vu.Pos)
	// Mean of (4,10), (0,20) and (0,0) is (4/3, 10).
	assert.Equal(t, geometry.Pt(1, 10), vv.Pos)

	// l=3 is reached through v, r=1 through u.
	assert.Equal(t, []core.VertexID{v, u, 1, 2, 3}, g.OuterFace())
	assert.True(t, vu.Fixed)
	assert.True(t, vv.Fixed)
	require.NoError(t, g.CheckInvariants())
}

func TestSplit_Validation(t *testing.T) {
	cases := []struct {
		name string
		n    core.VertexID
		a, b []core.VertexID
		want error
	}{
		{"unknown", 42, []core.VertexID{1, 2}, []core.VertexID{3, 4}, core.ErrVertexNotFound},
		{"missing neighbour", 0, []core.VertexID{1, 2}, []core.VertexID{3}, core.ErrSplitIncomplete},
		{"repeat", 0, []core.VertexID{1, 2}, []core.VertexID{3, 3, 4}, core.ErrSplitIncomplete},
		{"stranger", 0, []core.VertexID{1, 2}, []core.VertexID{3, 4, 0}, core.ErrSplitIncomplete},
		{"small group", 0, []core.VertexID{1}, []core.VertexID{2, 3, 4}, core.ErrSplitGroupTooSmall},
		{"interleaved", 0, []core.VertexID{1, 3}, []core.VertexID{2, 4}, core.ErrSplitNotContiguous},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newWheel4(t)
			before := g.Stats()
			_, _, err := g.Split(tc.n, tc.a, tc.b)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, before, g.Stats())
			assert.True(t, g.HasVertex(0))
		})
	}
}

func TestSplit_NotPlanar(t *testing.T) {
	g := newWheel4(t)
	// u lands on (3,3) and v on (-3,-3); (1,1) sits on the u–v edge.
	blocker := g.AddVertex(geometry.Pt(1, 1))
	require.NoError(t, g.CheckInvariants())

	before := g.Stats()
	_, _, err := g.Split(0, []core.VertexID{1, 2}, []core.VertexID{3, 4})
	require.ErrorIs(t, err, core.ErrSplitNotPlanar)
	assert.Equal(t, before, g.Stats())
	assert.True(t, g.HasVertex(0))
	assert.True(t, g.HasVertex(blocker))
}

func TestSplit_SnappedOntoVertex(t *testing.T) {
	g := newWheel4(t)
	// u would snap to (3,3).
	squatter := g.AddVertex(geometry.Pt(3, 3))

	_, _, err := g.Split(0, []core.VertexID{1, 2}, []core.VertexID{3, 4})
	require.ErrorIs(t, err, core.ErrSplitNotPlanar)
	assert.Contains(t, err.Error(), "on vertex")
	assert.True(t, g.HasVertex(0))
	assert.True(t, g.HasVertex(squatter))
	require.NoError(t, g.CheckInvariants())
}

func TestSplit_ThenGrow(t *testing.T) {
	g := newWheel4(t)
	u, v, err := g.Split(0, []core.VertexID{1, 2}, []core.VertexID{3, 4})
	require.NoError(t, err)

	// The old slot is reused by the next vertex.
	w := g.AddVertex(geometry.Pt(-4, 1))
	assert.Equal(t, core.VertexID(0), w)
	_, err = g.AddEdge(w, v)
	require.NoError(t, err)
	_, err = g.AddEdge(w, 3)
	require.NoError(t, err)
	_, err = g.AddEdge(w, u)
	require.NoError(t, err)
	require.NoError(t, g.CheckInvariants())
}
