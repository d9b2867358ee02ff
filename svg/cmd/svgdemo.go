//go:build ignore

package main

import (
	"github.com/coolbutuseless/minixml"
	"github.com/coolbutuseless/minixml/svg"
	"github.com/jphsd/graphics2d/image"
)

// Build an SVG document with the element API, save the XML and a rendering
func main() {
	grad, gradRef := svg.LinearGradient(
		svg.Stop{Offset: 0, Color: "gold"},
		svg.Stop{Offset: 1, Color: "tomato"},
	)

	doc := svg.New(400, 300)
	doc.Append(
		svg.Defs(grad),
		svg.Rect(0, 0, 400, 300, minixml.Attr("fill", "#eee")),
		svg.Rect(40, 40, 120, 80, minixml.Attr("fill", gradRef)),
		svg.Circle(260, 120, 60,
			minixml.Attr("fill", "steelblue"),
			minixml.Attr("stroke", "navy"),
			minixml.Attr("stroke-width", 3),
		),
		svg.Path("M 40 220 Q 120 160 200 220 Q 280 280 360 220",
			minixml.Attr("fill", "none"),
			minixml.Attr("stroke", "seagreen"),
		),
	)

	if err := doc.Save("svgdemo.svg"); err != nil {
		panic(err)
	}
	image.SaveImage(svg.Image(doc), "svgdemo")
}
