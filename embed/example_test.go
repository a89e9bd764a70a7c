package embed_test

import (
	"fmt"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/embed"
	"github.com/katalvlaran/planar/geometry"
)

// ExampleBarycentric pulls an off-centre interior vertex to the middle of a square face.
func ExampleBarycentric() {
	g := core.NewGraph()
	face := []core.VertexID{
		g.AddVertex(geometry.Pt(0, 0)),
		g.AddVertex(geometry.Pt(0, 10)),
		g.AddVertex(geometry.Pt(10, 10)),
		g.AddVertex(geometry.Pt(10, 0)),
	}
	for i := range face {
		g.AddEdge(face[i], face[(i+1)%len(face)])
	}
	g.SetOuterFace(face)
	c := g.AddVertex(geometry.Pt(2, 8))
	for _, f := range face {
		g.AddEdge(c, f)
	}

	res, err := embed.Barycentric(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := g.Vertex(c)
	fmt.Println(res)
	fmt.Println("centre:", v.Pos)

	// Output:
	// fixed=4 free=1 x=true y=true
	// centre: (5, 5)
}
