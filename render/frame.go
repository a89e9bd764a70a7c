// SPDX-License-Identifier: MIT
// Package: planar/render
//
// frame.go: world → image mapping and vertex colours.

package render

import (
	"errors"
	"math"
	"strings"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/geometry"
)

// ErrEmptyGraph is returned when there is nothing to frame.
var ErrEmptyGraph = errors.New("render: graph has no vertices")

// Bounds returns the box spanned by the vertex positions of g.
// ok is false for a graph without vertices.
func Bounds(g *core.Graph) (r geom.Rect, ok bool) {
	for _, v := range g.Vertices() {
		c := geom.Coord{X: v.Pos.X, Y: v.Pos.Y}
		if !ok {
			r, ok = geom.Rect{Min: c, Max: c}, true
			continue
		}
		r.ExpandToContainCoord(c)
	}

	return r, ok
}

// frame maps world coordinates into a width×height image, y up.
type frame struct {
	min    geom.Coord
	scale  float64
	offX   float64
	offY   float64
	height float64
}

func newFrame(bounds geom.Rect, cfg config) frame {
	w, h := float64(cfg.width), float64(cfg.height)
	innerW, innerH := w-2*cfg.padding, h-2*cfg.padding
	bw, bh := bounds.Width(), bounds.Height()

	scale := 1.0
	switch {
	case bw > 0 && bh > 0:
		scale = math.Min(innerW/bw, innerH/bh)
	case bw > 0:
		scale = innerW / bw
	case bh > 0:
		scale = innerH / bh
	}

	return frame{
		min:    bounds.Min,
		scale:  scale,
		offX:   cfg.padding + (innerW-bw*scale)/2,
		offY:   cfg.padding + (innerH-bh*scale)/2,
		height: h,
	}
}

// project returns the image position of p.
func (f frame) project(p geometry.Point) geom.Coord {
	return geom.Coord{
		X: f.offX + (p.X-f.min.X)*f.scale,
		Y: f.height - (f.offY + (p.Y-f.min.Y)*f.scale),
	}
}

// vertexColour picks the fill of v.
func vertexColour(v core.Vertex, pal Palette) string {
	switch {
	case isHexColour(v.Attr):
		return v.Attr
	case v.Fixed:
		return pal.Fixed
	default:
		return pal.Free
	}
}

// isHexColour accepts "#rgb" and "#rrggbb".
func isHexColour(s string) bool {
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return false
	}
	for _, r := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}

	return true
}
