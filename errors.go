package minixml

import (
	"encoding/xml"
	"fmt"
)

// ArgumentError reports an invalid argument to a constructor, such as an
// empty element name. Constructors deliver it by panic since a tree cannot
// be built past a nameless element.
type ArgumentError struct {
	Func   string
	Reason string
	Value  any
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("minixml: %s: %s (got %q)", e.Func, e.Reason, fmt.Sprint(e.Value))
}

// ParseError reports malformed input XML. Line is the 1-based input line
// when the underlying decoder provides one, otherwise zero.
type ParseError struct {
	Line  int
	Cause error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("minixml: parse error at line %d: %v", e.Line, e.Cause)
	}
	return fmt.Sprintf("minixml: parse error: %v", e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// newParseError wraps a decoder error, lifting the line number out of
// xml.SyntaxError when present.
func newParseError(cause error) error {
	if se, ok := cause.(*xml.SyntaxError); ok {
		return &ParseError{Line: se.Line, Cause: cause}
	}
	return &ParseError{Cause: cause}
}

// FileError reports a failed file operation during Save or LoadDocument.
type FileError struct {
	Op    string
	Path  string
	Cause error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("minixml: %s %q: %v", e.Op, e.Path, e.Cause)
}

func (e *FileError) Unwrap() error { return e.Cause }
