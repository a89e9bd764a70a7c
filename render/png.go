// SPDX-License-Identifier: MIT
// Package: planar/render
//
// png.go: raster back-end on a gg.Context.

package render

import (
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/jbeda/geom"
	"github.com/katalvlaran/planar/core"
)

// PNG draws onto an in-memory RGBA canvas. It implements core.Drawer.
type PNG struct {
	dc  *gg.Context
	fr  frame
	cfg config
}

// NewPNG returns a canvas filled with the background colour and framed on bounds.
func NewPNG(bounds geom.Rect, opts ...Option) *PNG {
	cfg := newConfig(opts)
	dc := gg.NewContext(cfg.width, cfg.height)
	dc.SetHexColor(cfg.palette.Background)
	dc.DrawRectangle(0, 0, float64(cfg.width), float64(cfg.height))
	dc.Fill()
	dc.SetLineCapRound()

	return &PNG{dc: dc, fr: newFrame(bounds, cfg), cfg: cfg}
}

// DrawEdge strokes e's segment.
func (p *PNG) DrawEdge(e core.Edge) {
	a, b := p.fr.project(e.Segment.Start), p.fr.project(e.Segment.End)
	p.dc.SetHexColor(p.cfg.palette.Edge)
	p.dc.SetLineWidth(p.cfg.lineWidth)
	p.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	p.dc.Stroke()
}

// DrawVertex fills a disc at v.
func (p *PNG) DrawVertex(v core.Vertex) {
	c := p.fr.project(v.Pos)
	p.dc.SetHexColor(vertexColour(v, p.cfg.palette))
	p.dc.DrawCircle(c.X, c.Y, p.cfg.vertexRadius)
	p.dc.Fill()
}

// Image returns the canvas.
func (p *PNG) Image() image.Image { return p.dc.Image() }

// Encode writes the canvas as PNG.
func (p *PNG) Encode(w io.Writer) error { return p.dc.EncodePNG(w) }

// Save writes the canvas to a PNG file.
func (p *PNG) Save(path string) error { return p.dc.SavePNG(path) }

// RenderPNG frames g, draws it and returns the canvas.
func RenderPNG(g *core.Graph, opts ...Option) (*PNG, error) {
	bounds, ok := Bounds(g)
	if !ok {
		return nil, fmt.Errorf("RenderPNG: %w", ErrEmptyGraph)
	}
	p := NewPNG(bounds, opts...)
	g.Draw(p)

	return p, nil
}

// PNGFile renders g into the PNG file at path.
func PNGFile(g *core.Graph, path string, opts ...Option) error {
	p, err := RenderPNG(g, opts...)
	if err != nil {
		return err
	}
	if err = p.Save(path); err != nil {
		return fmt.Errorf("PNGFile(%q): %w", path, err)
	}

	return nil
}
