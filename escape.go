package minixml

import "strings"

// Escape replaces the five XML-reserved characters with their entity
// references: & < > ' " become &amp; &lt; &gt; &apos; &quot;. The ampersand
// is replaced first so the entities introduced by the later substitutions
// are left intact.
//
// Escape is not idempotent: applying it to already-escaped text escapes the
// ampersands again. Call it exactly once, when text enters the tree; the
// serializer never escapes on its own.
func Escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
