package minixml

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello world", "hello world"},
		{"angle and amp", "<a & b>", "&lt;a &amp; b&gt;"},
		{"quotes", `"quoted"`, "&quot;quoted&quot;"},
		{"apostrophe", "it's", "it&apos;s"},
		{"all five", `<>&'"`, "&lt;&gt;&amp;&apos;&quot;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeNotIdempotent(t *testing.T) {
	// Double application escapes the ampersands of the first pass again
	if got := Escape(Escape("&")); got != "&amp;amp;" {
		t.Errorf("Escape(Escape(\"&\")) = %q, want &amp;amp;", got)
	}
	if got := Escape(Escape("<")); got != "&amp;lt;" {
		t.Errorf("Escape(Escape(\"<\")) = %q, want &amp;lt;", got)
	}
}
