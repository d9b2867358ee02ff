// Package minixml builds XML documents as in-memory trees of named elements
// and serializes them to indented, well-formed XML text.
//
// An Element has a tag name, an ordered set of attributes and an ordered list
// of children, where each child is either literal Text or a nested *Element.
// Trees are assembled with NewElement/NewDocument and mutated in place with
// Update, Append, InsertAt, Add and Remove. Serialization (AsText, Print,
// Save) is a read-only recursive traversal producing one structural line per
// tag or text child, indented two spaces per nesting level.
//
//	e := minixml.NewElement("thing")
//	e.Add("node", minixml.Attr("style", "color: blue;")).
//		Add("mytag", minixml.Text("Some example text."))
//	fmt.Println(e)
//
// Existing XML can be read back into the same model with ParseDocument and
// ParseElement, so previously written documents can be mutated and saved
// again.
//
// Text and attribute values are emitted exactly as given. Nothing is escaped
// implicitly; use Escape or EscapedText at the point text enters the tree.
//
// A tree is owned by a single goroutine. Copy produces a fully independent
// clone for use elsewhere.
package minixml
