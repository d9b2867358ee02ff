package minixml

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSelfClosing(t *testing.T) {
	for _, name := range []string{"name", "a", "long-tag_1"} {
		e := NewElement(name)
		if got, want := e.AsText(), "<"+name+" />"; got != want {
			t.Errorf("AsText() = %q, want %q", got, want)
		}
	}
}

func TestStringMatchesAsText(t *testing.T) {
	e := NewElement("e", Attr("a", "1"), Text("x"))
	if e.String() != e.AsText() {
		t.Error("String() and AsText() disagree")
	}
}

func TestDeclarationDefaults(t *testing.T) {
	decl := `<?xml version="1.0" encoding="UTF-8"?>`

	e := NewElement("e")
	if strings.Contains(e.AsText(), decl) {
		t.Error("element default should not include the declaration")
	}
	if got := e.AsText(WithDeclaration(true)); !strings.HasPrefix(got, decl+"\n") {
		t.Errorf("WithDeclaration(true) missing declaration: %q", got)
	}

	d := NewDocument("e")
	if got := d.AsText(); got != decl+"\n<e />" {
		t.Errorf("document default = %q, want declaration first", got)
	}
	if got := d.AsText(WithDeclaration(false)); got != "<e />" {
		t.Errorf("WithDeclaration(false) = %q", got)
	}
}

func TestWithDepth(t *testing.T) {
	e := NewElement("e", Text("x"))
	want := "  <e>\n    x\n  </e>"
	if got := e.AsText(WithDepth(1)); got != want {
		t.Errorf("AsText(WithDepth(1)) = %q, want %q", got, want)
	}
	// The declaration always stays at column zero
	d := NewDocument("e")
	got := d.AsText(WithDepth(2))
	if !strings.HasPrefix(got, `<?xml`) {
		t.Errorf("declaration must not be indented: %q", got)
	}
	if !strings.Contains(got, "\n    <e />") {
		t.Errorf("element not indented to depth 2: %q", got)
	}
}

func TestNestedIndentation(t *testing.T) {
	root := NewElement("a")
	root.Add("b").Add("c", Text("deep"))
	want := strings.Join([]string{
		"<a>",
		"  <b>",
		"    <c>",
		"      deep",
		"    </c>",
		"  </b>",
		"</a>",
	}, "\n")
	if got := root.AsText(); got != want {
		t.Errorf("AsText() =\n%s\nwant:\n%s", got, want)
	}
}

func TestValuesNotEscaped(t *testing.T) {
	// Serialization inserts attribute values and text exactly as given;
	// escaping is the caller's job.
	e := NewElement("e", Attr("a", `x<&"`), Text("1 < 2 & 3"))
	want := "<e a=\"x<&\"\">\n  1 < 2 & 3\n</e>"
	if got := e.AsText(); got != want {
		t.Errorf("AsText() = %q, want %q", got, want)
	}

	esc := NewElement("e", Attr("a", Escape(`x<&"`))).Append(EscapedText("1 < 2"))
	want = "<e a=\"x&lt;&amp;&quot;\">\n  1 &lt; 2\n</e>"
	if got := esc.AsText(); got != want {
		t.Errorf("escaped AsText() = %q, want %q", got, want)
	}
}

func TestSerializationDoesNotMutate(t *testing.T) {
	e := NewElement("e", Attr("a", "1"))
	e.Add("b", Text("t"))
	first := e.AsText()
	for i := 0; i < 3; i++ {
		if got := e.AsText(); got != first {
			t.Fatalf("serialization changed between calls: %q", got)
		}
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	e := NewElement("e")
	if err := e.Fprint(&buf); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if got := buf.String(); got != "<e />\n" {
		t.Errorf("Fprint wrote %q", got)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xml")

	d := NewDocument("root")
	d.Add("child", Text("hello"))
	if err := d.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got, want := string(b), d.AsText()+"\n"; got != want {
		t.Errorf("file contents = %q, want %q", got, want)
	}
}

func TestSaveFailure(t *testing.T) {
	e := NewElement("e")
	err := e.Save(filepath.Join(t.TempDir(), "no", "such", "dir", "out.xml"))
	if err == nil {
		t.Fatal("expected an error for an unwritable path")
	}
	var fe *FileError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FileError, got %T: %v", err, err)
	}
	if fe.Op != "save" {
		t.Errorf("Op = %q, want save", fe.Op)
	}
	if fe.Path == "" {
		t.Error("FileError should carry the offending path")
	}
}
