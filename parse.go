package minixml

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strings"
)

// Decoder is a wrapper around xml.Decoder and holds the functions to be
// called when tokens are encountered. Functions that are left as nil are
// skipped by Process.
type Decoder struct {
	Decoder      *xml.Decoder
	StartElement func(token xml.StartElement) error
	EndElement   func(token xml.EndElement) error
	CharData     func(token xml.CharData) error
	Comment      func(token xml.Comment) error
	ProcInst     func(token xml.ProcInst) error
	Directive    func(token xml.Directive) error
}

// NewDecoder creates a new Decoder that will read from the supplied
// io.Reader.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{Decoder: xml.NewDecoder(r)}
}

// Process performs the tokenization of the reader data and calls the user
// supplied functions.
func (d *Decoder) Process() error {
	for {
		tok, err := d.Decoder.Token()
		if tok == nil {
			if err == io.EOF {
				break
			}
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if d.StartElement != nil {
				err = d.StartElement(t.Copy())
			}
		case xml.EndElement:
			if d.EndElement != nil {
				err = d.EndElement(t)
			}
		case xml.CharData:
			if d.CharData != nil {
				err = d.CharData(t.Copy())
			}
		case xml.Comment:
			if d.Comment != nil {
				err = d.Comment(t.Copy())
			}
		case xml.ProcInst:
			if d.ProcInst != nil {
				err = d.ProcInst(t.Copy())
			}
		case xml.Directive:
			if d.Directive != nil {
				err = d.Directive(t.Copy())
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// RawNode is the parser's intermediate view of the input: an element with a
// name, attributes in source order and an ordered list of child nodes, or a
// run of character data. Comments, directives and processing instructions
// are not represented.
type RawNode struct {
	Name     string
	Attrs    []xml.Attr
	Text     string
	IsText   bool
	Children []*RawNode
	parent   *RawNode
}

// BuildTree inserts its own functions into the decoder, consumes the input
// and returns the raw node tree for the single root element.
func (d *Decoder) BuildTree() (*RawNode, error) {
	var root, cur *RawNode

	// Save existing functions
	sef := d.StartElement
	eef := d.EndElement
	cdf := d.CharData

	d.StartElement = func(se xml.StartElement) error {
		if root != nil && cur == nil {
			return errors.New("multiple root elements")
		}
		n := &RawNode{Name: se.Name.Local, Attrs: se.Attr, parent: cur}
		if root == nil {
			root = n
		} else {
			cur.Children = append(cur.Children, n)
		}
		cur = n
		return nil
	}
	d.EndElement = func(ee xml.EndElement) error {
		cur = cur.parent
		return nil
	}
	d.CharData = func(cd xml.CharData) error {
		if cur == nil {
			// Ignore character data outside the root
			return nil
		}
		cur.Children = append(cur.Children, &RawNode{Text: string(cd), IsText: true, parent: cur})
		return nil
	}

	err := d.Process()

	// Restore previous functions
	d.StartElement = sef
	d.EndElement = eef
	d.CharData = cdf

	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}

// ParseOption adjusts a single parse call.
type ParseOption func(*parseSettings)

type parseSettings struct {
	keepWhitespace bool
	strict         bool
}

// KeepWhitespace retains character data exactly as read. By default text is
// trimmed of surrounding whitespace and whitespace-only runs, such as the
// indentation this package itself writes, are dropped.
func KeepWhitespace(on bool) ParseOption {
	return func(s *parseSettings) { s.keepWhitespace = on }
}

// Strict controls the decoder's strict mode. It defaults to true.
func Strict(on bool) ParseOption {
	return func(s *parseSettings) { s.strict = on }
}

// ParseDocument reads XML from r and returns it as a document root. A failed
// parse returns a *ParseError and no partial tree.
func ParseDocument(r io.Reader, opts ...ParseOption) (*Element, error) {
	return parse(r, true, opts)
}

// ParseElement reads XML from r and returns it as a plain element.
func ParseElement(r io.Reader, opts ...ParseOption) (*Element, error) {
	return parse(r, false, opts)
}

// ParseDocumentString reads XML from the string s into a document root.
func ParseDocumentString(s string, opts ...ParseOption) (*Element, error) {
	return ParseDocument(strings.NewReader(s), opts...)
}

// ParseElementString reads XML from the string s into a plain element.
func ParseElementString(s string, opts ...ParseOption) (*Element, error) {
	return ParseElement(strings.NewReader(s), opts...)
}

// LoadDocument reads the XML file at path into a document root. An
// unreadable file returns a *FileError, malformed content a *ParseError.
func LoadDocument(path string, opts ...ParseOption) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Op: "load", Path: path, Cause: err}
	}
	defer f.Close()
	return ParseDocument(f, opts...)
}

func parse(r io.Reader, asDocument bool, opts []ParseOption) (*Element, error) {
	s := parseSettings{strict: true}
	for _, o := range opts {
		if o != nil {
			o(&s)
		}
	}
	d := NewDecoder(r)
	d.Decoder.Strict = s.strict
	root, err := d.BuildTree()
	if err != nil {
		return nil, newParseError(err)
	}
	return fromRaw(root, asDocument, s), nil
}

// fromRaw converts a raw node into the element model, leaf-first. Character
// data with no markup of its own becomes a literal text child; anything else
// becomes a nested element. Only the outermost call may produce a document.
func fromRaw(n *RawNode, asDocument bool, s parseSettings) *Element {
	var e *Element
	if asDocument {
		e = NewDocument(n.Name)
	} else {
		e = NewElement(n.Name)
	}
	for _, a := range n.Attrs {
		e.Update(Attr(a.Name.Local, a.Value))
	}
	for _, c := range n.Children {
		if c.IsText {
			txt := c.Text
			if !s.keepWhitespace {
				txt = strings.Trim(txt, " \t\r\n")
				if txt == "" {
					continue
				}
			}
			e.Append(Text(txt))
		} else {
			e.Append(fromRaw(c, false, s))
		}
	}
	return e
}
