// SPDX-License-Identifier: MIT
// Package: planar/render
//
// options.go: functional options and defaults shared by both back-ends.

package render

import "fmt"

// Defaults.
const (
	DefaultWidth        = 800
	DefaultHeight       = 800
	DefaultPadding      = 20.0
	DefaultVertexRadius = 3.0
	DefaultLineWidth    = 1.0
)

// Palette holds hex colours for the parts of a drawing.
type Palette struct {
	Background string
	Edge       string
	Fixed      string
	Free       string
}

// DefaultPalette: orange edges on black, yellow boundary, red interior.
var DefaultPalette = Palette{
	Background: "#000000",
	Edge:       "#ffa500",
	Fixed:      "#ffff00",
	Free:       "#ff0000",
}

type config struct {
	width, height int
	padding       float64
	vertexRadius  float64
	lineWidth     float64
	palette       Palette
}

// Option configures a renderer.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		width:        DefaultWidth,
		height:       DefaultHeight,
		padding:      DefaultPadding,
		vertexRadius: DefaultVertexRadius,
		lineWidth:    DefaultLineWidth,
		palette:      DefaultPalette,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSize sets the image size in pixels. Panics unless both are positive.
func WithSize(width, height int) Option {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: WithSize(%d, %d): size must be positive", width, height))
	}
	return func(c *config) { c.width, c.height = width, height }
}

// WithPadding sets the margin around the drawing. Panics if negative.
func WithPadding(p float64) Option {
	if p < 0 {
		panic(fmt.Sprintf("render: WithPadding(%g): must be ≥ 0", p))
	}
	return func(c *config) { c.padding = p }
}

// WithVertexRadius sets the disc radius of vertices. Panics unless positive.
func WithVertexRadius(r float64) Option {
	if r <= 0 {
		panic(fmt.Sprintf("render: WithVertexRadius(%g): must be > 0", r))
	}
	return func(c *config) { c.vertexRadius = r }
}

// WithLineWidth sets the edge stroke width. Panics unless positive.
func WithLineWidth(w float64) Option {
	if w <= 0 {
		panic(fmt.Sprintf("render: WithLineWidth(%g): must be > 0", w))
	}
	return func(c *config) { c.lineWidth = w }
}

// WithPalette replaces the colours. Empty fields keep the defaults; any
// other value must be a hex colour or WithPalette panics.
func WithPalette(p Palette) Option {
	for _, s := range []string{p.Background, p.Edge, p.Fixed, p.Free} {
		if s != "" && !isHexColour(s) {
			panic(fmt.Sprintf("render: WithPalette: %q is not a hex colour", s))
		}
	}
	return func(c *config) {
		if p.Background != "" {
			c.palette.Background = p.Background
		}
		if p.Edge != "" {
			c.palette.Edge = p.Edge
		}
		if p.Fixed != "" {
			c.palette.Fixed = p.Fixed
		}
		if p.Free != "" {
			c.palette.Free = p.Free
		}
	}
}
