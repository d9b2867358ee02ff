package minixml

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	indentUnit  = "  "
	declaration = `<?xml version="1.0" encoding="UTF-8"?>`
)

func indent(depth int) string { return strings.Repeat(indentUnit, depth) }

// WriteOption adjusts a single serialization call.
type WriteOption func(*writeSettings)

type writeSettings struct {
	depth int
	decl  bool
}

// WithDeclaration overrides whether the XML declaration line is emitted.
// The default is false for elements and true for documents.
func WithDeclaration(on bool) WriteOption {
	return func(s *writeSettings) { s.decl = on }
}

// WithDepth sets the starting indentation depth. The declaration, when
// emitted, always stays at column zero.
func WithDepth(depth int) WriteOption {
	return func(s *writeSettings) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func (e *Element) settings(opts []WriteOption) writeSettings {
	s := writeSettings{decl: e.decl}
	for _, o := range opts {
		if o != nil {
			o(&s)
		}
	}
	return s
}

// AsText serializes the element tree to indented XML text, one structural
// line per tag or text child, newline-joined without a trailing newline.
// It does not mutate the tree.
func (e *Element) AsText(opts ...WriteOption) string {
	s := e.settings(opts)
	var lines []string
	if s.decl {
		lines = append(lines, declaration)
	}
	lines = e.appendLines(lines, s.depth)
	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer with the element's default serialization.
func (e *Element) String() string { return e.AsText() }

// Print writes the serialized tree to stdout with a trailing newline and
// returns the element.
func (e *Element) Print(opts ...WriteOption) *Element {
	fmt.Println(e.AsText(opts...))
	return e
}

// Fprint writes the serialized tree to w with a trailing newline.
func (e *Element) Fprint(w io.Writer, opts ...WriteOption) error {
	_, err := io.WriteString(w, e.AsText(opts...)+"\n")
	return err
}

// Save serializes the tree and writes it to the file at path, one XML
// structural line per text line. A failed write is reported as a *FileError.
func (e *Element) Save(path string, opts ...WriteOption) error {
	if err := os.WriteFile(path, []byte(e.AsText(opts...)+"\n"), 0644); err != nil {
		return &FileError{Op: "save", Path: path, Cause: err}
	}
	return nil
}

func (t Text) appendLines(dst []string, depth int) []string {
	return append(dst, indent(depth)+string(t))
}

func (e *Element) appendLines(dst []string, depth int) []string {
	open := indent(depth) + "<" + e.name + e.attrString()
	if len(e.children) == 0 {
		return append(dst, open+" />")
	}
	dst = append(dst, open+">")
	for _, c := range e.children {
		dst = c.appendLines(dst, depth+1)
	}
	return append(dst, indent(depth)+"</"+e.name+">")
}

// attrString renders the attribute suffix of an opening tag: valued
// attributes first, then markers, each in insertion order. Values are
// quote-wrapped but inserted as given, they are not escaped here.
func (e *Element) attrString() string {
	var sb strings.Builder
	for _, a := range e.attrs {
		if a.marker {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(a.key)
		sb.WriteString(`="`)
		sb.WriteString(a.val)
		sb.WriteByte('"')
	}
	for _, a := range e.attrs {
		if !a.marker {
			continue
		}
		sb.WriteByte(' ')
		sb.WriteString(a.key)
	}
	return sb.String()
}
