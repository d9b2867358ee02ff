// Package svg builds SVG documents as minixml element trees and rasterizes
// them with graphics2d. The builders return ordinary elements, so documents
// can be mixed freely with hand-built nodes, serialized with AsText/Save or
// handed to Draw for rendering.
package svg

import (
	"fmt"
	"strconv"
	"strings"

	xml "github.com/coolbutuseless/minixml"
	"github.com/google/uuid"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// New returns an svg document root sized width by height, with xmlns and a
// matching viewBox.
func New(width, height int, args ...xml.Arg) *xml.Element {
	e := xml.NewDocument("svg",
		xml.Attr("xmlns", Namespace),
		xml.Attr("width", width),
		xml.Attr("height", height),
		xml.Attr("viewBox", fmt.Sprintf("0 0 %d %d", width, height)),
	)
	return e.Update(args...)
}

// Group returns a g element.
func Group(args ...xml.Arg) *xml.Element {
	return xml.NewElement("g", args...)
}

// Rect returns a rect element at x,y sized w by h.
func Rect(x, y, w, h float64, args ...xml.Arg) *xml.Element {
	return xml.NewElement("rect",
		xml.Attr("x", num(x)), xml.Attr("y", num(y)),
		xml.Attr("width", num(w)), xml.Attr("height", num(h)),
	).Update(args...)
}

// Circle returns a circle element centered at cx,cy with radius r.
func Circle(cx, cy, r float64, args ...xml.Arg) *xml.Element {
	return xml.NewElement("circle",
		xml.Attr("cx", num(cx)), xml.Attr("cy", num(cy)), xml.Attr("r", num(r)),
	).Update(args...)
}

// Ellipse returns an ellipse element centered at cx,cy with radii rx,ry.
func Ellipse(cx, cy, rx, ry float64, args ...xml.Arg) *xml.Element {
	return xml.NewElement("ellipse",
		xml.Attr("cx", num(cx)), xml.Attr("cy", num(cy)),
		xml.Attr("rx", num(rx)), xml.Attr("ry", num(ry)),
	).Update(args...)
}

// Line returns a line element from x1,y1 to x2,y2.
func Line(x1, y1, x2, y2 float64, args ...xml.Arg) *xml.Element {
	return xml.NewElement("line",
		xml.Attr("x1", num(x1)), xml.Attr("y1", num(y1)),
		xml.Attr("x2", num(x2)), xml.Attr("y2", num(y2)),
	).Update(args...)
}

// Polyline returns a polyline element through the given x,y pairs.
func Polyline(points []float64, args ...xml.Arg) *xml.Element {
	return xml.NewElement("polyline", xml.Attr("points", pointsAttr(points))).Update(args...)
}

// Polygon returns a closed polygon element through the given x,y pairs.
func Polygon(points []float64, args ...xml.Arg) *xml.Element {
	return xml.NewElement("polygon", xml.Attr("points", pointsAttr(points))).Update(args...)
}

// Path returns a path element with the given path description.
func Path(d string, args ...xml.Arg) *xml.Element {
	return xml.NewElement("path", xml.Attr("d", d)).Update(args...)
}

// Defs returns a defs element wrapping the given children.
func Defs(children ...*xml.Element) *xml.Element {
	e := xml.NewElement("defs")
	for _, c := range children {
		e.Append(c)
	}
	return e
}

// Use returns a use element referencing href, e.g. "#myid".
func Use(href string, args ...xml.Arg) *xml.Element {
	return xml.NewElement("use", xml.Attr("href", href)).Update(args...)
}

// Stop is a gradient stop: an offset in [0,1] and an SVG color.
type Stop struct {
	Offset float64
	Color  string
}

// LinearGradient returns a linearGradient def carrying a fresh unique id
// together with the "url(#id)" reference to use as a fill or stroke value.
// Place the returned element inside Defs.
func LinearGradient(stops ...Stop) (*xml.Element, string) {
	id := UniqueID("gradient")
	g := xml.NewElement("linearGradient", xml.Attr("id", id))
	for _, s := range stops {
		g.Add("stop",
			xml.Attr("offset", num(s.Offset)),
			xml.Attr("stop-color", s.Color),
		)
	}
	return g, "url(#" + id + ")"
}

// UniqueID returns a document-unique id value for def/use cross-references.
func UniqueID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func pointsAttr(points []float64) string {
	parts := make([]string, 0, (len(points)+1)/2)
	for i := 0; i+1 < len(points); i += 2 {
		parts = append(parts, num(points[i])+","+num(points[i+1]))
	}
	return strings.Join(parts, " ")
}
