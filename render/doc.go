// SPDX-License-Identifier: MIT

// Package render draws a planar graph embedding as a raster PNG (through
// fogleman/gg) or as an SVG document.
//
// Both back-ends implement core.Drawer and share one frame: the bounding box
// of the vertex positions, scaled uniformly into the image with padding and
// the y axis pointing up. Edges are stroked first, then every vertex is
// filled as a disc:
//
//   - a vertex whose Attr is a hex colour ("#rgb" or "#rrggbb") uses it;
//   - otherwise outer-face (fixed) vertices are yellow and the rest red.
//
// Quick start:
//
//	err := render.PNGFile(g, "graph.png", render.WithSize(1024, 1024))
package render
