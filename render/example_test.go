package render_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/planar/builder"
	"github.com/katalvlaran/planar/render"
)

// ExampleWriteSVG renders a wheel and counts the emitted elements.
func ExampleWriteSVG() {
	g, _ := builder.BuildGraph(nil, nil, builder.Wheel(6))

	var sb strings.Builder
	if err := render.WriteSVG(&sb, g, render.WithSize(400, 400)); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("lines:", strings.Count(sb.String(), "<line "))
	fmt.Println("discs:", strings.Count(sb.String(), "<circle "))

	// Output:
	// lines: 12
	// discs: 7
}
