// Package planar grows random planar graphs and draws them with straight
// edges, keeping every intermediate state a valid planar embedding.
//
// 🚀 What is planar?
//
//	An in-memory toolkit built from small, focused packages:
//		• Geometry: points, segments, exact segment intersection, polygons
//		• Core: thread-safe Graph with vertex split and an outer face
//		• Embed: barycentric (Tutte) layout on a fixed convex boundary
//		• Builder: wheels and cycles placed on a regular polygon
//		• Generate: the seeded random driver (add edge / split vertex)
//		• Render: PNG and SVG output
//
// ✨ Guarantees
//
//   - Planarity is checked before every mutation; a refused mutation leaves
//     the graph untouched and reports a sentinel error.
//   - Outer-face vertices are exactly the fixed ones.
//   - Seeded runs are reproducible.
//
// Under the hood:
//
//	geometry/  Point, Segment, Intersect, Polygon
//	core/      Graph, AddEdge, Split, SetOuterFace, TraceOuterFace
//	matrix/    Dense + Gaussian elimination with partial pivoting
//	embed/     Barycentric, Reembed
//	builder/   BuildGraph, Wheel, RandomWheel, Cycle
//	generate/  Generator, Step, Run
//	render/    RenderPNG, PNGFile, WriteSVG
//	cmd/planargen  command-line front end
//
// Quick ASCII example: splitting the hub of a four-spoke wheel
//
//	    2              2
//	    │            ╱ │
//	3───0───1  →  3─6──5─1
//	    │            │ ╱
//	    4            4
//
// leaves two degree-3 vertices joined by a new edge.
//
//	go run ./cmd/planargen --seed 42 --out graph.png
package planar
