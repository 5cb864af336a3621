package rtml

import (
	"strings"
	"testing"
)

func render(build func(h *HTML)) string {
	h := &HTML{}
	build(h)
	return h.String()
}

func TestAttrTriState(t *testing.T) {
	// absent, bare flag, and empty value are three distinct renderings
	tests := []struct {
		name  string
		build func(h *HTML)
		want  string
	}{
		{"flag off", func(h *HTML) { Native(h, "input").Flag("checked", false).Close() }, "<input/>"},
		{"flag on", func(h *HTML) { Native(h, "input").Flag("checked", true).Close() }, "<input checked/>"},
		{"empty value", func(h *HTML) { Native(h, "input").Attr("value", "").Close() }, `<input value=""/>`},
		{"value", func(h *HTML) { Native(h, "input").Attr("value", "x").Close() }, `<input value="x"/>`},
		{"unset", func(h *HTML) { Native(h, "input").Set("value", Unset()).Close() }, "<input/>"},
	}
	for _, tt := range tests {
		if got := render(tt.build); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAttrValueEscaping(t *testing.T) {
	got := render(func(h *HTML) {
		Native(h, "div").Attr("title", `say "hi" & go`).Close()
	})
	want := `<div title="say &quot;hi&quot; &amp; go"></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAttrOrderKeepsFirstPosition(t *testing.T) {
	got := render(func(h *HTML) {
		Native(h, "div").
			Attr("id", "a").
			Attr("class", "x").
			Attr("id", "b").
			Close()
	})
	want := `<div id="b" class="x"></div>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestVoidElements(t *testing.T) {
	for _, name := range []string{"br", "hr", "img", "input", "meta", "link"} {
		got := render(func(h *HTML) { Native(h, name).Close() })
		want := "<" + name + "/>"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestVoidElementRejectsBody(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Body on a void element should panic")
		}
	}()
	render(func(h *HTML) {
		Native(h, "br").Body(func(h *HTML) {})
	})
}

func TestNonVoidAlwaysGetsCloseTag(t *testing.T) {
	got := render(func(h *HTML) { Native(h, "div").Close() })
	if got != "<div></div>" {
		t.Errorf("got %q, want %q", got, "<div></div>")
	}
}

func TestCustomElement(t *testing.T) {
	got := render(func(h *HTML) {
		Custom(h, "my-widget").Attr("state", "on").Body(func(h *HTML) {
			h.WriteText("hi")
		})
	})
	want := `<my-widget state="on">hi</my-widget>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCustomElementRejectsBadName(t *testing.T) {
	for _, name := range []string{"", "my widget", "a<b", "x=y"} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Errorf("Custom(%q) should panic", name)
					return
				}
				if !strings.Contains(r.(string), name) && name != "" {
					t.Errorf("panic message %q does not name %q", r, name)
				}
			}()
			render(func(h *HTML) { Custom(h, name).Close() })
		}()
	}
}

func TestCustomAttrRejectsBadKey(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("CustomAttr with a malformed key should panic")
		}
	}()
	render(func(h *HTML) {
		Custom(h, "my-widget").CustomAttr("bad key", "v").Close()
	})
}

func TestScriptBody(t *testing.T) {
	got := render(func(h *HTML) {
		Native(h, "script").ScriptBody("console.log('</script>')")
	})
	want := `<script>console.log('<\/script>')</script>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestScriptBodyRaw(t *testing.T) {
	got := render(func(h *HTML) {
		Native(h, "script").Attr("type", "module").ScriptBody(RawSrc("let x = 1"))
	})
	want := `<script type="module">let x = 1</script>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestScriptBodyOnNonRawText(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ScriptBody on a normal element should panic")
		}
	}()
	render(func(h *HTML) { Native(h, "div").ScriptBody("x") })
}
