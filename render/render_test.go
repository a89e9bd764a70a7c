// SPDX-License-Identifier: MIT
// Package render: frame arithmetic and pixel checks on small wheels.

package render

import (
	"bytes"
	"errors"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jbeda/geom"
	"github.com/katalvlaran/planar/builder"
	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red    = color.RGBA{R: 255, A: 255}
	yellow = color.RGBA{R: 255, G: 255, A: 255}
	green  = color.RGBA{G: 255, A: 255}
	black  = color.RGBA{A: 255}
)

// wheel4 has its hub (0) at the origin and the rim 1..4 at distance 10.
func wheel4(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithCenter(geometry.Pt(0, 0)), builder.WithRadius(10)},
		builder.Wheel(4))
	require.NoError(t, err)
	return g
}

func pixel(p *PNG, c geom.Coord) color.RGBA {
	return color.RGBAModel.Convert(p.Image().At(int(c.X), int(c.Y))).(color.RGBA)
}

func TestBounds(t *testing.T) {
	_, ok := Bounds(core.NewGraph())
	assert.False(t, ok)

	r, ok := Bounds(wheel4(t))
	require.True(t, ok)
	assert.InDelta(t, -10, r.Min.X, 1e-9)
	assert.InDelta(t, -10, r.Min.Y, 1e-9)
	assert.InDelta(t, 10, r.Max.X, 1e-9)
	assert.InDelta(t, 10, r.Max.Y, 1e-9)
}

func TestFrame_Project(t *testing.T) {
	cfg := newConfig([]Option{WithSize(120, 120), WithPadding(10)})

	f := newFrame(geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: 10, Y: 10}}, cfg)
	assert.Equal(t, geom.Coord{X: 10, Y: 110}, f.project(geometry.Pt(0, 0)))
	assert.Equal(t, geom.Coord{X: 110, Y: 10}, f.project(geometry.Pt(10, 10)))

	// A wide box is centred vertically.
	f = newFrame(geom.Rect{Min: geom.Coord{X: 0, Y: 0}, Max: geom.Coord{X: 20, Y: 10}}, cfg)
	assert.Equal(t, geom.Coord{X: 10, Y: 85}, f.project(geometry.Pt(0, 0)))

	// A single point sits in the middle.
	pt := geom.Coord{X: 3, Y: 4}
	f = newFrame(geom.Rect{Min: pt, Max: pt}, cfg)
	assert.Equal(t, geom.Coord{X: 60, Y: 60}, f.project(geometry.Pt(3, 4)))
}

func TestVertexColour(t *testing.T) {
	pal := DefaultPalette
	assert.Equal(t, pal.Fixed, vertexColour(core.Vertex{Fixed: true}, pal))
	assert.Equal(t, pal.Free, vertexColour(core.Vertex{}, pal))
	assert.Equal(t, "#0f0", vertexColour(core.Vertex{Fixed: true, Attr: "#0f0"}, pal))
	assert.Equal(t, pal.Free, vertexColour(core.Vertex{Attr: "green"}, pal))

	for s, want := range map[string]bool{
		"#abc": true, "#A1B2C3": true, "abc": false, "#abcd": false, "#ggg": false, "": false,
	} {
		assert.Equal(t, want, isHexColour(s), s)
	}
}

func TestRenderPNG_Colours(t *testing.T) {
	g := wheel4(t)
	p, err := RenderPNG(g, WithSize(120, 120), WithPadding(10))
	require.NoError(t, err)

	b := p.Image().Bounds()
	assert.Equal(t, 120, b.Dx())
	assert.Equal(t, 120, b.Dy())

	assert.Equal(t, red, pixel(p, p.fr.project(geometry.Pt(0, 0))), "interior hub")
	assert.Equal(t, yellow, pixel(p, p.fr.project(geometry.Pt(10, 0))), "rim vertex")
	assert.Equal(t, black, pixel(p, geom.Coord{X: 1, Y: 1}), "background")

	mid := p.fr.project(geometry.Pt(5, 0))
	assert.NotEqual(t, black, pixel(p, mid), "spoke")

	require.NoError(t, g.SetVertexAttr(0, "#00ff00"))
	p, err = RenderPNG(g, WithSize(120, 120), WithPadding(10))
	require.NoError(t, err)
	assert.Equal(t, green, pixel(p, p.fr.project(geometry.Pt(0, 0))))
}

func TestPNGFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wheel.png")
	require.NoError(t, PNGFile(wheel4(t), path, WithSize(64, 64)))
	assert.FileExists(t, path)

	var buf bytes.Buffer
	p, err := RenderPNG(wheel4(t), WithSize(64, 64))
	require.NoError(t, err)
	require.NoError(t, p.Encode(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	require.ErrorIs(t, PNGFile(core.NewGraph(), path), ErrEmptyGraph)
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, wheel4(t), WithPalette(Palette{Edge: "#123456"})))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, 8, strings.Count(out, "<line "))
	assert.Equal(t, 5, strings.Count(out, "<circle "))
	assert.Equal(t, 8, strings.Count(out, "stroke='#123456'"))
	assert.Equal(t, 4, strings.Count(out, "fill='"+DefaultPalette.Fixed+"'"))
	assert.Equal(t, 1, strings.Count(out, "fill='"+DefaultPalette.Free+"'"))

	require.ErrorIs(t, WriteSVG(&buf, core.NewGraph()), ErrEmptyGraph)
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteSVG_WriteError(t *testing.T) {
	require.ErrorIs(t, WriteSVG(failingWriter{}, wheel4(t)), errWrite)
}

func TestOptionsPanic(t *testing.T) {
	assert.Panics(t, func() { WithSize(0, 10) })
	assert.Panics(t, func() { WithPadding(-1) })
	assert.Panics(t, func() { WithVertexRadius(0) })
	assert.Panics(t, func() { WithLineWidth(-2) })
	assert.Panics(t, func() { WithPalette(Palette{Free: "red"}) })
	assert.NotPanics(t, func() { WithPalette(Palette{Free: "#f00"}) })
}
