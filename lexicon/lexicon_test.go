package lexicon

import "testing"

func TestVoid(t *testing.T) {
	void := []string{"area", "base", "br", "col", "embed", "hr", "img", "input", "link", "meta", "source", "track", "wbr"}
	for _, name := range void {
		if !Void(name) {
			t.Errorf("Void(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"div", "span", "script", "a", "p"} {
		if Void(name) {
			t.Errorf("Void(%q) = true, want false", name)
		}
	}
}

func TestRawText(t *testing.T) {
	if !RawText("script") || !RawText("style") {
		t.Error("script and style should be raw-text elements")
	}
	if RawText("div") {
		t.Error("div should not be a raw-text element")
	}
}

func TestNative(t *testing.T) {
	for _, name := range []string{"div", "a", "input", "dialog", "template"} {
		if !Native(name) {
			t.Errorf("Native(%q) = false, want true", name)
		}
	}
	for _, name := range []string{"my-widget", "foo", "DIV2"} {
		if Native(name) {
			t.Errorf("Native(%q) = true, want false", name)
		}
	}
}

func TestAttrKind(t *testing.T) {
	tests := []struct {
		tag, attr string
		want      Kind
		ok        bool
	}{
		{"a", "href", Value, true},
		{"a", "download", FlagOrValue, true},
		{"input", "checked", Flag, true},
		{"input", "maxlength", Number, true},
		{"del", "datetime", DateTime, true},
		{"div", "class", Value, true},
		{"div", "hidden", Flag, true},
		{"a", "data-user", Any, true},
		{"a", "hx-get", Any, true},
		{"a", "madeup", 0, false},
		{"input", "srcset", 0, false},
	}
	for _, tt := range tests {
		got, ok := AttrKind(tt.tag, tt.attr)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("AttrKind(%q, %q) = %v, %v; want %v, %v", tt.tag, tt.attr, got, ok, tt.want, tt.ok)
		}
	}
}

func TestValidTagName(t *testing.T) {
	valid := []string{"my-widget", "x", "foo.bar", "a_b", "emoji-é"}
	for _, name := range valid {
		if !ValidTagName(name) {
			t.Errorf("ValidTagName(%q) = false, want true", name)
		}
	}
	invalid := []string{"", "my widget", "a<b", "tag!", "a=b"}
	for _, name := range invalid {
		if ValidTagName(name) {
			t.Errorf("ValidTagName(%q) = true, want false", name)
		}
	}
}

func TestValidAttrKey(t *testing.T) {
	valid := []string{"href", "data-x", "hx-swap-oob", "xlink:href", "@click"}
	for _, key := range valid {
		if !ValidAttrKey(key) {
			t.Errorf("ValidAttrKey(%q) = false, want true", key)
		}
	}
	invalid := []string{"", "a b", `a"b`, "a'b", "a>b", "a/b", "a=b", "a\tb", "a\x00b"}
	for _, key := range invalid {
		if ValidAttrKey(key) {
			t.Errorf("ValidAttrKey(%q) = true, want false", key)
		}
	}
}

func TestSetter(t *testing.T) {
	tests := []struct{ in, want string }{
		{"href", "Href"},
		{"accept_charset", "AcceptCharset"},
		{"hx-swap-oob", "HxSwapOob"},
		{"maxWidth", "MaxWidth"},
		{"title", "Title"},
	}
	for _, tt := range tests {
		if got := Setter(tt.in); got != tt.want {
			t.Errorf("Setter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
