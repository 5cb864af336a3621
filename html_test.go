package rtml

import (
	"strings"
	"testing"
)

func TestWriteTextEscapesOnce(t *testing.T) {
	h := &HTML{}
	h.WriteText(`<b>&"fish"</b>`)
	got := h.String()
	want := "&lt;b&gt;&amp;&#34;fish&#34;&lt;/b&gt;"
	if got != want {
		t.Errorf("WriteText = %q, want %q", got, want)
	}
	// escaping the already-escaped text must differ: a single pass happened
	h2 := &HTML{}
	h2.WriteText(got)
	if h2.String() == got {
		t.Error("re-escaping produced identical output; escaping is not single-pass")
	}
}

func TestWriteRawDoesNotEscape(t *testing.T) {
	h := &HTML{}
	h.WriteRaw("<b>bold</b>")
	if h.String() != "<b>bold</b>" {
		t.Errorf("WriteRaw = %q", h.String())
	}
}

func TestEscapeScript(t *testing.T) {
	tests := []struct{ in, want string }{
		{"alert(1)", "alert(1)"},
		{"</script><script>evil()", `<\/script><script>evil()`},
		{"<!-- sneaky", `<\!-- sneaky`},
		{"a < b && b > c", "a < b && b > c"},
	}
	for _, tt := range tests {
		if got := EscapeScript(tt.in); got != tt.want {
			t.Errorf("EscapeScript(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewPrependsDoctype(t *testing.T) {
	h := New()
	Native(h, "html").Close()
	got := h.String()
	if !strings.HasPrefix(got, "<!DOCTYPE html>") {
		t.Errorf("missing doctype: %q", got)
	}
	if h.Content() != "<html></html>" {
		t.Errorf("Content = %q", h.Content())
	}
}

func TestNestingBufferSkipsDoctype(t *testing.T) {
	inner := New()
	inner.WriteText("hi")
	outer := &HTML{}
	Write(outer, inner)
	if outer.String() != "hi" {
		t.Errorf("nested buffer = %q, want %q", outer.String(), "hi")
	}
}

func TestWriteValues(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"a<b", "a&lt;b"},
		{RawSrc("<i>x</i>"), "<i>x</i>"},
		{42, "42"},
		{3.5, "3.5"},
		{true, "true"},
		{nil, ""},
		{[]string{"a", "<"}, "a&lt;"},
	}
	for _, tt := range tests {
		h := &HTML{}
		Write(h, tt.in)
		if h.String() != tt.want {
			t.Errorf("Write(%v) = %q, want %q", tt.in, h.String(), tt.want)
		}
	}
}

func TestWriteFragment(t *testing.T) {
	h := &HTML{}
	Write(h, Fragment(func(h *HTML) { h.WriteText("inside") }))
	if h.String() != "inside" {
		t.Errorf("Write(Fragment) = %q", h.String())
	}
	Write(h, Fragment(nil))
}

// Sibling and nested writes must appear in source order, depth first.
func TestWriteOrdering(t *testing.T) {
	h := &HTML{}
	Native(h, "ul").Body(func(h *HTML) {
		Native(h, "li").Body(func(h *HTML) {
			h.WriteRaw("one")
			Native(h, "em").Body(func(h *HTML) { h.WriteRaw("deep") })
		})
		Native(h, "li").Body(func(h *HTML) { h.WriteRaw("two") })
	})
	want := "<ul><li>one<em>deep</em></li><li>two</li></ul>"
	if h.String() != want {
		t.Errorf("got %q, want %q", h.String(), want)
	}
}
