package svg

import (
	"image/draw"

	xml "github.com/coolbutuseless/minixml"
	g2d "github.com/jphsd/graphics2d"
	"github.com/jphsd/graphics2d/color"
	"github.com/jphsd/graphics2d/image"
	"github.com/jphsd/graphics2d/util"
)

// Renderer carries the inherited drawing state while walking an element
// tree. Groups copy the renderer before descending so fill and stroke
// changes stay scoped to their subtree.
type Renderer struct {
	Img  draw.Image
	Fill *g2d.Pen
	Pen  *g2d.Pen
	Xfm  *g2d.Aff3
}

// NewRenderer returns a renderer targeting dst. The SVG default for fill is
// black and for stroke is none.
func NewRenderer(dst draw.Image) *Renderer {
	return &Renderer{dst, g2d.BlackPen, nil, g2d.NewAff3()}
}

// Copy returns a renderer with the same target and an independent state.
func (r *Renderer) Copy() *Renderer {
	return &Renderer{r.Img, r.Fill, r.Pen, r.Xfm.Copy()}
}

// Draw renders the SVG element tree rooted at root into dst.
func Draw(dst draw.Image, root *xml.Element) {
	NewRenderer(dst).Process(root)
}

// Image renders root onto a fresh white canvas sized from its width and
// height attributes, falling back to 1000x1000.
func Image(root *xml.Element) draw.Image {
	w := int(ParseValue(root.AttrValue("width", "")))
	h := int(ParseValue(root.AttrValue("height", "")))
	if w <= 0 {
		w = 1000
	}
	if h <= 0 {
		h = 1000
	}
	img := image.NewRGBA(w, h, color.White)
	Draw(img, root)
	return img
}

// Process dispatches on the element name. Unknown names and non-rendered
// containers are skipped; the walk is not SVG DOM aware beyond this switch.
func (r *Renderer) Process(elt *xml.Element) {
	switch elt.Name() {
	case "svg":
		// TODO viewBox scaling
		r.children(elt)
	case "g":
		ng := r.Copy()
		ng.Fill, ng.Pen = r.fillStroke(elt)
		ng.children(elt)
	case "path":
		r.shape(elt, g2d.NewShape(PathsFromDescription(elt.AttrValue("d", ""))...))
	case "rect":
		x := ParseValue(elt.AttrValue("x", ""))
		y := ParseValue(elt.AttrValue("y", ""))
		w := ParseValue(elt.AttrValue("width", ""))
		h := ParseValue(elt.AttrValue("height", ""))
		p := g2d.Polygon([]float64{x, y}, []float64{x + w, y}, []float64{x + w, y + h}, []float64{x, y + h})
		r.shape(elt, g2d.NewShape(p))
	case "circle":
		cx := ParseValue(elt.AttrValue("cx", ""))
		cy := ParseValue(elt.AttrValue("cy", ""))
		p := g2d.Circle([]float64{cx, cy}, ParseValue(elt.AttrValue("r", "")))
		r.shape(elt, g2d.NewShape(p))
	case "ellipse":
		cx := ParseValue(elt.AttrValue("cx", ""))
		cy := ParseValue(elt.AttrValue("cy", ""))
		rx := ParseValue(elt.AttrValue("rx", ""))
		ry := ParseValue(elt.AttrValue("ry", ""))
		p := g2d.Ellipse([]float64{cx, cy}, rx, ry, 0)
		r.shape(elt, g2d.NewShape(p))
	case "line":
		p1 := []float64{ParseValue(elt.AttrValue("x1", "")), ParseValue(elt.AttrValue("y1", ""))}
		p2 := []float64{ParseValue(elt.AttrValue("x2", "")), ParseValue(elt.AttrValue("y2", ""))}
		r.shape(elt, g2d.NewShape(g2d.Line(p1, p2)))
	case "polyline":
		if p := polyPath(elt.AttrValue("points", ""), false); p != nil {
			r.shape(elt, g2d.NewShape(p))
		}
	case "polygon":
		if p := polyPath(elt.AttrValue("points", ""), true); p != nil {
			r.shape(elt, g2d.NewShape(p))
		}
	case "defs", "title", "desc", "metadata":
		// definitions and metadata are not rendered
	}
}

func (r *Renderer) children(elt *xml.Element) {
	for _, c := range elt.ChildElements() {
		r.Process(c)
	}
}

func (r *Renderer) shape(elt *xml.Element, shape *g2d.Shape) {
	fill, stroke := r.fillStroke(elt)
	if fill != nil {
		g2d.FillShape(r.Img, shape, fill)
	}
	if stroke != nil {
		g2d.DrawShape(r.Img, shape, stroke)
	}
}

// fillStroke resolves the fill and stroke pens for elt against the
// renderer's inherited state. The style attribute stomps on the
// presentation attributes.
func (r *Renderer) fillStroke(elt *xml.Element) (*g2d.Pen, *g2d.Pen) {
	fill := r.Fill
	pen := r.Pen
	style := styleOf(elt)

	if v, ok := style["fill"]; ok {
		if col := ParseColor(v); col != nil {
			fill = g2d.NewPen(col, 1)
		} else {
			fill = nil
		}
	}
	if v, ok := style["stroke"]; ok {
		if col := ParseColor(v); col != nil {
			sw, _ := ParseValueUnit(style["stroke-width"])
			if util.Equals(sw, 0) {
				sw = 1 // SVG default stroke width
			}
			pen = g2d.NewPen(col, sw)
		} else {
			pen = nil
		}
	}
	return fill, pen
}

func polyPath(points string, closed bool) *g2d.Path {
	cs := coords(points)
	if len(cs) < 4 {
		return nil
	}
	p := g2d.NewPath([]float64{cs[0], cs[1]})
	for i := 2; i+1 < len(cs); i += 2 {
		p.AddStep([]float64{cs[i], cs[i+1]})
	}
	if closed {
		p.Close()
	}
	return p
}
