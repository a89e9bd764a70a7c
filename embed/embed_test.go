// SPDX-License-Identifier: MIT
package embed_test

import (
	"testing"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/embed"
	"github.com/katalvlaran/planar/geometry"
	"github.com/katalvlaran/planar/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// squareWithCentre builds the face (0,0) (0,10) (10,10) (10,0) and one
// interior vertex at (3,7) joined to all four corners.
func squareWithCentre(t *testing.T) (*core.Graph, core.VertexID) {
	t.Helper()
	g := core.NewGraph()
	face := []core.VertexID{
		g.AddVertex(geometry.Pt(0, 0)),
		g.AddVertex(geometry.Pt(0, 10)),
		g.AddVertex(geometry.Pt(10, 10)),
		g.AddVertex(geometry.Pt(10, 0)),
	}
	for i := range face {
		_, err := g.AddEdge(face[i], face[(i+1)%len(face)])
		require.NoError(t, err)
	}
	require.NoError(t, g.SetOuterFace(face))
	c := g.AddVertex(geometry.Pt(3, 7))
	for _, f := range face {
		_, err := g.AddEdge(c, f)
		require.NoError(t, err)
	}
	return g, c
}

// splitWheel is a four-spoke wheel whose hub was split into two vertices.
func splitWheel(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	hub := g.AddVertex(geometry.Pt(0, 0))
	rim := []core.VertexID{
		g.AddVertex(geometry.Pt(10, 0)), g.AddVertex(geometry.Pt(0, 10)),
		g.AddVertex(geometry.Pt(-10, 0)), g.AddVertex(geometry.Pt(0, -10)),
	}
	for i, r := range rim {
		_, err := g.AddEdge(hub, r)
		require.NoError(t, err)
		_, err = g.AddEdge(r, rim[(i+1)%len(rim)])
		require.NoError(t, err)
	}
	require.NoError(t, g.SetOuterFace(rim))
	_, _, err := g.Split(hub, rim[:2], rim[2:])
	require.NoError(t, err)
	return g
}

// requireEquilibrium asserts every free vertex sits at its neighbours' mean,
// up to grid snapping of the vertex and of its free neighbours.
func requireEquilibrium(t *testing.T, g *core.Graph) {
	t.Helper()
	pos := g.Positions()
	for _, v := range g.Vertices() {
		if v.Fixed {
			continue
		}
		nbs, err := g.Neighbours(v.ID)
		require.NoError(t, err)
		pts := make([]geometry.Point, len(nbs))
		for i, nb := range nbs {
			pts[i] = pos[nb]
		}
		mean := geometry.Centroid(pts...)
		assert.InDelta(t, mean.X, v.Pos.X, 1, "vertex %d x", v.ID)
		assert.InDelta(t, mean.Y, v.Pos.Y, 1, "vertex %d y", v.ID)
		assert.Equal(t, v.Pos.Snap(), v.Pos, "vertex %d off grid", v.ID)
	}
}

func TestBarycentric_SquareCentre(t *testing.T) {
	g, c := squareWithCentre(t)
	res, err := embed.Barycentric(g)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Fixed)
	assert.Equal(t, 1, res.Free)
	assert.Equal(t, [2]bool{true, true}, res.Solved)

	v, err := g.Vertex(c)
	require.NoError(t, err)
	assert.InDelta(t, 5, v.Pos.X, 1e-9)
	assert.InDelta(t, 5, v.Pos.Y, 1e-9)

	// Face corners do not move.
	corner, _ := g.Vertex(2)
	assert.Equal(t, geometry.Pt(10, 10), corner.Pos)
	require.NoError(t, g.CheckInvariants())
}

func TestReembed_PlacesFaceOnPolygon(t *testing.T) {
	g := splitWheel(t)
	face := g.OuterFace()
	res, err := embed.Reembed(g, face, embed.WithCenter(geometry.Pt(0, 0)), embed.WithRadius(100))
	require.NoError(t, err)
	assert.Equal(t, 4, res.Fixed)
	assert.Equal(t, 2, res.Free)

	want := geometry.RegularPolygon(len(face), geometry.Pt(0, 0), 100)
	for i, id := range face {
		v, err := g.Vertex(id)
		require.NoError(t, err)
		assert.InDelta(t, want[i].X, v.Pos.X, 1e-9)
		assert.InDelta(t, want[i].Y, v.Pos.Y, 1e-9)
		assert.True(t, v.Fixed)
	}
	requireEquilibrium(t, g)
	require.NoError(t, g.CheckInvariants())
}

func TestReembed_NewFaceUnfixesOld(t *testing.T) {
	g, c := squareWithCentre(t)
	face := []core.VertexID{0, 1, c}
	_, err := embed.Reembed(g, face)
	require.NoError(t, err)

	assert.Equal(t, face, g.OuterFace())
	for _, id := range []core.VertexID{2, 3} {
		v, _ := g.Vertex(id)
		assert.False(t, v.Fixed)
	}
	requireEquilibrium(t, g)
}

func TestBarycentric_DegenerateKeepsPositions(t *testing.T) {
	g, _ := squareWithCentre(t)
	lonely := g.AddVertex(geometry.Pt(4, 4))

	obs, logs := observer.New(zapcore.DebugLevel)
	_, err := embed.Barycentric(g, embed.WithLogger(zap.New(obs)))
	require.ErrorIs(t, err, embed.ErrDegenerateSystem)
	require.ErrorIs(t, err, matrix.ErrSingular)

	// Both axes fail; each dumps its coefficient matrix.
	dumps := logs.FilterMessage("degenerate system").All()
	require.Len(t, dumps, 2)
	// Row 0 is the centre (degree 4), row 1 the isolated vertex.
	assert.Equal(t, "[4, 0]\n[0, 0]\n", dumps[0].ContextMap()["matrix"])

	v, _ := g.Vertex(lonely)
	assert.Equal(t, geometry.Pt(4, 4), v.Pos)
	c, _ := g.Vertex(4)
	assert.Equal(t, geometry.Pt(3, 7), c.Pos)
}

func TestErrors(t *testing.T) {
	_, err := embed.Barycentric(nil)
	assert.ErrorIs(t, err, embed.ErrNilGraph)
	_, err = embed.Reembed(nil, nil)
	assert.ErrorIs(t, err, embed.ErrNilGraph)

	g := core.NewGraph()
	g.AddVertex(geometry.Pt(0, 0))
	_, err = embed.Barycentric(g)
	assert.ErrorIs(t, err, embed.ErrNoOuterFace)
	_, err = embed.Reembed(g, []core.VertexID{0})
	assert.ErrorIs(t, err, embed.ErrNoOuterFace)

	sq, _ := squareWithCentre(t)
	_, err = embed.Reembed(sq, []core.VertexID{0, 2, 1, 3})
	assert.ErrorIs(t, err, core.ErrInvalidFace)
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { embed.WithRadius(0) })
	assert.Panics(t, func() { embed.WithResidualTolerance(-1) })
	assert.NotPanics(t, func() { embed.WithLogger(nil) })
}
