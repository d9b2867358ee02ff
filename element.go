package minixml

import (
	"fmt"
	"strings"
)

// Node is an entry in an element's child list, either literal Text or a
// nested *Element.
type Node interface {
	dup() Node
	appendLines(dst []string, depth int) []string
}

// Text is a literal text child. It is serialized verbatim on its own line at
// the child indent level. Content containing reserved characters must be
// escaped by the caller, see Escape and EscapedText.
type Text string

func (t Text) dup() Node { return t }

func (t Text) apply(e *Element) { e.children = append(e.children, t) }

// EscapedText returns a Text child with the five XML-reserved characters
// replaced by their entity references. Escape exactly once, at the point the
// text enters the tree.
func EscapedText(s string) Text { return Text(Escape(s)) }

// Arg configures an element during construction or Update. Attribute args
// modify the attribute set, child args append to the child list; args are
// applied in the order given.
type Arg interface {
	apply(e *Element)
}

type attrArg struct {
	key    string
	val    string
	marker bool
	del    bool
}

func (a attrArg) apply(e *Element) {
	if a.del {
		for i := range e.attrs {
			if e.attrs[i].key == a.key {
				e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
				return
			}
		}
		return
	}
	// Last write wins, keys keep their original position
	for i := range e.attrs {
		if e.attrs[i].key == a.key {
			e.attrs[i].val = a.val
			e.attrs[i].marker = a.marker
			return
		}
	}
	e.attrs = append(e.attrs, attr{a.key, a.val, a.marker})
}

// Attr sets the attribute key to value, overwriting any previous value or
// marker. Non-string values are coerced with fmt.Sprint.
func Attr(key string, value any) Arg {
	return attrArg{key: key, val: fmt.Sprint(value)}
}

// Marker sets key as a no-value marker attribute, rendered as a bare name
// with no "=".
func Marker(key string) Arg {
	return attrArg{key: key, marker: true}
}

// DeleteAttr removes the attribute key. Deleting an absent key is a no-op.
func DeleteAttr(key string) Arg {
	return attrArg{key: key, del: true}
}

type childArg struct{ n Node }

func (c childArg) apply(e *Element) {
	if c.n != nil {
		e.children = append(e.children, c.n)
	}
}

// Child appends el to the child list.
func Child(el *Element) Arg { return childArg{el} }

type attr struct {
	key    string
	val    string
	marker bool
}

// Element is a mutable XML node: a tag name, ordered attributes and an
// ordered list of child nodes. The name is fixed at construction. An element
// appended to a parent is owned by that parent; appending the same element
// into two trees aliases it in both, use Copy for an independent subtree.
type Element struct {
	name     string
	attrs    []attr
	children []Node
	decl     bool // emit the XML declaration by default
}

// NewElement returns a new element with the given tag name, then applies
// args as Update would. It panics with *ArgumentError if name is empty.
func NewElement(name string, args ...Arg) *Element {
	mustName("NewElement", name)
	e := &Element{name: name}
	return e.Update(args...)
}

// NewDocument returns a new document root element. A document behaves
// exactly like an element except that top-level serialization includes the
// XML declaration by default. It panics with *ArgumentError if name is empty.
func NewDocument(name string, args ...Arg) *Element {
	mustName("NewDocument", name)
	e := &Element{name: name, decl: true}
	return e.Update(args...)
}

func mustName(fn, name string) {
	if name == "" {
		panic(&ArgumentError{Func: fn, Reason: "element name must be a non-empty string", Value: name})
	}
}

// Name returns the element's tag name.
func (e *Element) Name() string { return e.name }

// IsDocument reports whether the element was created as a document root.
func (e *Element) IsDocument() bool { return e.decl }

// Update applies args in order and returns the element for chaining. With no
// args it is a no-op.
func (e *Element) Update(args ...Arg) *Element {
	for _, a := range args {
		if a != nil {
			a.apply(e)
		}
	}
	return e
}

// Append adds nodes to the end of the child list in the order given and
// returns the element.
func (e *Element) Append(nodes ...Node) *Element {
	for _, n := range nodes {
		if n != nil {
			e.children = append(e.children, n)
		}
	}
	return e
}

// InsertAt inserts nodes as a contiguous block starting at child index i.
// Indices below zero prepend and indices beyond the current length append.
// Existing children from i onward shift right. Returns the element.
func (e *Element) InsertAt(i int, nodes ...Node) *Element {
	if i < 0 {
		i = 0
	}
	if i > len(e.children) {
		i = len(e.children)
	}
	out := make([]Node, 0, len(e.children)+len(nodes))
	out = append(out, e.children[:i]...)
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	out = append(out, e.children[i:]...)
	e.children = out
	return e
}

// Add creates a new child element with the given name and args, appends it
// and returns the child, not the receiver, so calls chain downward:
//
//	root.Add("node").Add("leaf", minixml.Text("hi"))
//
// It panics with *ArgumentError if name is empty.
func (e *Element) Add(name string, args ...Arg) *Element {
	mustName("Add", name)
	c := &Element{name: name}
	c.Update(args...)
	e.children = append(e.children, c)
	return c
}

// Remove deletes the children at the given zero-based indices, all at once,
// preserving the order of the remainder. Out-of-range indices are ignored.
// Returns the element.
func (e *Element) Remove(indices ...int) *Element {
	if len(indices) == 0 {
		return e
	}
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	kept := make([]Node, 0, len(e.children))
	for i, c := range e.children {
		if !drop[i] {
			kept = append(kept, c)
		}
	}
	e.children = kept
	return e
}

// Copy returns a deep clone of the element. Attributes are duplicated and
// every descendant element is cloned recursively; the clone shares no
// mutable state with the original. The tree is acyclic by construction so no
// cycle detection is needed.
func (e *Element) Copy() *Element {
	ne := &Element{name: e.name, decl: e.decl}
	if len(e.attrs) > 0 {
		ne.attrs = make([]attr, len(e.attrs))
		copy(ne.attrs, e.attrs)
	}
	if len(e.children) > 0 {
		ne.children = make([]Node, len(e.children))
		for i, c := range e.children {
			ne.children[i] = c.dup()
		}
	}
	return ne
}

func (e *Element) dup() Node { return e.Copy() }

// Len returns the number of children.
func (e *Element) Len() int { return len(e.children) }

// HasAttr reports whether the attribute key is set, as a value or a marker.
func (e *Element) HasAttr(key string) bool {
	for i := range e.attrs {
		if e.attrs[i].key == key {
			return true
		}
	}
	return false
}

// AttrValue returns the value of the attribute key, or dflt if the key is
// not set. Marker attributes return the empty string.
func (e *Element) AttrValue(key, dflt string) string {
	for i := range e.attrs {
		if e.attrs[i].key == key {
			return e.attrs[i].val
		}
	}
	return dflt
}

// ChildElements returns the children that are elements, in order.
func (e *Element) ChildElements() []*Element {
	var elts []*Element
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			elts = append(elts, el)
		}
	}
	return elts
}

// SelectElement returns the first child element with the given tag name, or
// nil if there is none.
func (e *Element) SelectElement(name string) *Element {
	for _, c := range e.children {
		if el, ok := c.(*Element); ok && el.name == name {
			return el
		}
	}
	return nil
}

// TextContent returns the element's immediate text children concatenated in
// order. Nested elements are not descended into.
func (e *Element) TextContent() string {
	var sb strings.Builder
	for _, c := range e.children {
		if t, ok := c.(Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
