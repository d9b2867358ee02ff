package svg

import (
	"image/color"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	doc := New(640, 480)
	if !doc.IsDocument() {
		t.Error("New should produce a document root")
	}
	got := doc.AsText()
	for _, want := range []string{
		`xmlns="` + Namespace + `"`,
		`width="640"`,
		`height="480"`,
		`viewBox="0 0 640 480"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("AsText() missing %q:\n%s", want, got)
		}
	}
}

func TestShapeBuilders(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"rect", Rect(1, 2, 3, 4).AsText(), `<rect x="1" y="2" width="3" height="4" />`},
		{"circle", Circle(5, 6, 7).AsText(), `<circle cx="5" cy="6" r="7" />`},
		{"ellipse", Ellipse(1, 2, 3, 4).AsText(), `<ellipse cx="1" cy="2" rx="3" ry="4" />`},
		{"line", Line(0, 0, 10, 10).AsText(), `<line x1="0" y1="0" x2="10" y2="10" />`},
		{"polygon", Polygon([]float64{0, 0, 10, 0, 5, 8}).AsText(), `<polygon points="0,0 10,0 5,8" />`},
		{"polyline", Polyline([]float64{0, 0, 2.5, 1}).AsText(), `<polyline points="0,0 2.5,1" />`},
		{"path", Path("M 0 0 L 1 1").AsText(), `<path d="M 0 0 L 1 1" />`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.text != tt.want {
				t.Errorf("got %q, want %q", tt.text, tt.want)
			}
		})
	}
}

func TestUniqueID(t *testing.T) {
	a := UniqueID("grad")
	b := UniqueID("grad")
	if !strings.HasPrefix(a, "grad-") {
		t.Errorf("UniqueID = %q, want grad- prefix", a)
	}
	if a == b {
		t.Error("two UniqueID calls returned the same value")
	}
}

func TestLinearGradient(t *testing.T) {
	g, ref := LinearGradient(Stop{0, "gold"}, Stop{1, "tomato"})
	id := g.AttrValue("id", "")
	if id == "" {
		t.Fatal("gradient has no id")
	}
	if ref != "url(#"+id+")" {
		t.Errorf("ref = %q, want url(#%s)", ref, id)
	}
	if len(g.ChildElements()) != 2 {
		t.Errorf("stop count = %d, want 2", len(g.ChildElements()))
	}
}

func TestParseValueUnit(t *testing.T) {
	tests := []struct {
		in   string
		v    float64
		unit string
	}{
		{"", 0, ""},
		{"12", 12, ""},
		{"2.5em", 2.5, "em"},
		{"-4px", -4, "px"},
		{"50%", 50, "%"},
	}
	for _, tt := range tests {
		v, unit := ParseValueUnit(tt.in)
		if v != tt.v || unit != tt.unit {
			t.Errorf("ParseValueUnit(%q) = %v, %q, want %v, %q", tt.in, v, unit, tt.v, tt.unit)
		}
	}
}

func TestParseColor(t *testing.T) {
	if ParseColor("none") != nil {
		t.Error("none should resolve to nil")
	}
	if ParseColor("url(#grad-1)") != nil {
		t.Error("url references are not resolvable colors")
	}
	if got := ParseColor("#f00"); got != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("#f00 = %v", got)
	}
	if got := ParseColor("#00ff00"); got != (color.RGBA{0, 0xff, 0, 0xff}) {
		t.Errorf("#00ff00 = %v", got)
	}
	if ParseColor("black") == nil {
		t.Error("named colors should resolve")
	}
	if ParseColor("#12") != nil {
		t.Error("bad hex length should resolve to nil")
	}
}

func TestPathsFromDescription(t *testing.T) {
	paths := PathsFromDescription("M 0 0 L 10 0 10 10 Z")
	if len(paths) != 1 {
		t.Fatalf("len(paths) = %d, want 1", len(paths))
	}
	paths = PathsFromDescription("M0,0 L10,0 M20,20 l10,10")
	if len(paths) != 2 {
		t.Errorf("len(paths) = %d, want 2", len(paths))
	}
	if paths := PathsFromDescription(""); len(paths) != 0 {
		t.Errorf("empty description produced %d paths", len(paths))
	}
}

func TestCoords(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"1 2", []float64{1, 2}},
		{"1,2", []float64{1, 2}},
		{"1-2", []float64{1, -2}},
		{"1.5e2 -.5", []float64{150, -0.5}},
	}
	for _, tt := range tests {
		got := coords(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("coords(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("coords(%q)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestImageSmoke(t *testing.T) {
	doc := New(40, 30)
	doc.Append(Rect(5, 5, 10, 10))
	img := Image(doc)
	b := img.Bounds()
	if b.Dx() != 40 || b.Dy() != 30 {
		t.Errorf("image bounds = %v, want 40x30", b)
	}
}
