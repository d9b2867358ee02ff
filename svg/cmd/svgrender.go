//go:build ignore

package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/coolbutuseless/minixml"
	"github.com/coolbutuseless/minixml/svg"
	"github.com/jphsd/graphics2d/color"
	"github.com/jphsd/graphics2d/image"
)

// Read an SVG file and render it to an image
func main() {
	imgf := flag.Bool("i", false, "size the canvas from the svg element")
	flag.Parse()

	// Get the file name from the command line or read stdin
	args := flag.Args()
	fn := "/dev/stdin"
	if len(args) > 0 {
		fn = args[0]
	}

	f, err := os.Open(fn)
	if err != nil {
		panic(err)
	}
	defer f.Close()

	// Read the SVG into an element tree
	doc, err := minixml.ParseDocument(bufio.NewReader(f))
	if err != nil {
		panic(err)
	}

	if *imgf {
		img := svg.Image(doc)
		image.SaveImage(img, "svgrender-i")
	} else {
		width, height := 1000, 1000
		img := image.NewRGBA(width, height, color.White)
		svg.Draw(img, doc)
		image.SaveImage(img, "svgrender-d")
	}
}
