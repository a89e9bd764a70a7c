// SPDX-License-Identifier: MIT
// Package: planar/render
//
// svg.go: vector back-end writing plain SVG elements.

package render

import (
	"fmt"
	"io"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/planar/core"
)

// SVG streams elements to a writer. It implements core.Drawer; the first
// write error is kept and reported by Close.
type SVG struct {
	w   io.Writer
	fr  frame
	cfg config
	err error
}

// NewSVG writes the document header and background onto w.
func NewSVG(w io.Writer, bounds geom.Rect, opts ...Option) *SVG {
	cfg := newConfig(opts)
	s := &SVG{w: w, fr: newFrame(bounds, cfg), cfg: cfg}
	s.printf(`<?xml version="1.0"?>
<svg version="1.1" width="%d" height="%d" viewBox="0 0 %d %d"
     xmlns="http://www.w3.org/2000/svg">
`, cfg.width, cfg.height, cfg.width, cfg.height)
	s.printf("<rect width='100%%' height='100%%' fill='%s'/>\n", cfg.palette.Background)

	return s
}

func (s *SVG) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

// DrawEdge writes a <line>.
func (s *SVG) DrawEdge(e core.Edge) {
	a, b := s.fr.project(e.Segment.Start), s.fr.project(e.Segment.End)
	s.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' stroke='%s' stroke-width='%g' stroke-linecap='round'/>\n",
		a.X, a.Y, b.X, b.Y, s.cfg.palette.Edge, s.cfg.lineWidth)
}

// DrawVertex writes a <circle>.
func (s *SVG) DrawVertex(v core.Vertex) {
	c := s.fr.project(v.Pos)
	s.printf("<circle cx='%f' cy='%f' r='%g' fill='%s'/>\n",
		c.X, c.Y, s.cfg.vertexRadius, vertexColour(v, s.cfg.palette))
}

// Close ends the document and returns the first write error.
func (s *SVG) Close() error {
	s.printf("</svg>\n")

	return s.err
}

// WriteSVG frames g and writes it to w as one SVG document.
func WriteSVG(w io.Writer, g *core.Graph, opts ...Option) error {
	bounds, ok := Bounds(g)
	if !ok {
		return fmt.Errorf("WriteSVG: %w", ErrEmptyGraph)
	}
	s := NewSVG(w, bounds, opts...)
	g.Draw(s)
	if err := s.Close(); err != nil {
		return fmt.Errorf("WriteSVG: %w", err)
	}

	return nil
}
