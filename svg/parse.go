package svg

import (
	"regexp"
	"strconv"
	"strings"

	xml "github.com/coolbutuseless/minixml"
	g2d "github.com/jphsd/graphics2d"
	"github.com/jphsd/graphics2d/color"
	stdcol "image/color"
)

var (
	// One path command with its coordinate run
	cmdpat = regexp.MustCompile(`[MmLlHhVvCcQqZz][^MmLlHhVvCcQqZzAaSsTt]*`)
	// A decimal number, sign and exponent allowed
	numpat = regexp.MustCompile(`[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)
	// A lower case word, used to peel units off values
	unitpat = regexp.MustCompile(`[a-z%]+$`)
)

// PathsFromDescription converts an SVG path description into graphics2d
// paths. The M, L, H, V, C, Q and Z commands are supported in absolute and
// relative form; arc and smooth-curve commands are skipped.
func PathsFromDescription(desc string) []*g2d.Path {
	var res []*g2d.Path
	var path *g2d.Path
	cx, cy := 0.0, 0.0
	sx, sy := 0.0, 0.0 // subpath start, Z returns here

	ensure := func() {
		if path == nil {
			path = g2d.NewPath([]float64{cx, cy})
			sx, sy = cx, cy
		}
	}

	for _, cmd := range cmdpat.FindAllString(desc, -1) {
		c := cmd[0]
		cs := coords(cmd[1:])
		rel := c >= 'a'
		switch c {
		case 'M', 'm':
			if path != nil {
				res = append(res, path)
				path = nil
			}
			for i := 0; i+1 < len(cs); i += 2 {
				if rel {
					cx, cy = cx+cs[i], cy+cs[i+1]
				} else {
					cx, cy = cs[i], cs[i+1]
				}
				if i == 0 {
					path = g2d.NewPath([]float64{cx, cy})
					sx, sy = cx, cy
				} else {
					// Additional pairs are treated as LineTo
					path.AddStep([]float64{cx, cy})
				}
			}
		case 'L', 'l':
			ensure()
			for i := 0; i+1 < len(cs); i += 2 {
				if rel {
					cx, cy = cx+cs[i], cy+cs[i+1]
				} else {
					cx, cy = cs[i], cs[i+1]
				}
				path.AddStep([]float64{cx, cy})
			}
		case 'H', 'h':
			ensure()
			for _, v := range cs {
				if rel {
					cx += v
				} else {
					cx = v
				}
				path.AddStep([]float64{cx, cy})
			}
		case 'V', 'v':
			ensure()
			for _, v := range cs {
				if rel {
					cy += v
				} else {
					cy = v
				}
				path.AddStep([]float64{cx, cy})
			}
		case 'C', 'c':
			ensure()
			for i := 0; i+5 < len(cs); i += 6 {
				ox, oy := 0.0, 0.0
				if rel {
					ox, oy = cx, cy
				}
				p1 := []float64{ox + cs[i], oy + cs[i+1]}
				p2 := []float64{ox + cs[i+2], oy + cs[i+3]}
				cx, cy = ox+cs[i+4], oy+cs[i+5]
				path.AddStep(p1, p2, []float64{cx, cy})
			}
		case 'Q', 'q':
			ensure()
			for i := 0; i+3 < len(cs); i += 4 {
				ox, oy := 0.0, 0.0
				if rel {
					ox, oy = cx, cy
				}
				p1 := []float64{ox + cs[i], oy + cs[i+1]}
				cx, cy = ox+cs[i+2], oy+cs[i+3]
				path.AddStep(p1, []float64{cx, cy})
			}
		case 'Z', 'z':
			if path != nil {
				path.Close()
				res = append(res, path)
				path = nil
				cx, cy = sx, sy
			}
		}
	}
	if path != nil {
		res = append(res, path)
	}
	return res
}

// coords extracts every number in s, tolerating comma, whitespace and
// sign-run separators.
func coords(s string) []float64 {
	matches := numpat.FindAllString(s, -1)
	res := make([]float64, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		res = append(res, v)
	}
	return res
}

// ParseValue reads a numeric attribute value, ignoring any trailing unit.
// Empty or unparseable values yield zero.
func ParseValue(s string) float64 {
	v, _ := ParseValueUnit(s)
	return v
}

// ParseValueUnit reads a numeric attribute value and its unit suffix, if
// any, e.g. "2.5em" yields 2.5 and "em".
func ParseValueUnit(s string) (float64, string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ""
	}
	unit := unitpat.FindString(s)
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, unit)), 64)
	if err != nil {
		return 0, unit
	}
	return v, unit
}

// ParseColor resolves an SVG color value: "none", #XXX and #XXXXXX hex
// forms, and the named colors known to graphics2d. Unresolvable values,
// including url(...) references, yield nil.
func ParseColor(s string) stdcol.Color {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return nil
	}
	if strings.HasPrefix(s, "#") {
		return hexColor(s[1:])
	}
	col, err := color.ByName(s)
	if err != nil {
		return nil
	}
	return col.Color
}

func hexColor(s string) stdcol.Color {
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil
	}
	switch len(s) {
	case 3:
		r := ((v & 0xf00) >> 8) * 0x11
		g := ((v & 0xf0) >> 4) * 0x11
		b := (v & 0xf) * 0x11
		return stdcol.RGBA{uint8(r), uint8(g), uint8(b), 0xff}
	case 6:
		return stdcol.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}
	}
	return nil
}

// styleOf collects elt's presentation attributes and then overlays the
// style attribute's property list on top of them.
func styleOf(elt *xml.Element) map[string]string {
	m := make(map[string]string)
	for _, k := range []string{"fill", "stroke", "stroke-width"} {
		if elt.HasAttr(k) {
			m[k] = elt.AttrValue(k, "")
		}
	}
	for _, decl := range strings.Split(elt.AttrValue("style", ""), ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}
