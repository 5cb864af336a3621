package rtml

import (
	"strings"
	"testing"
)

func TestHTMLPage(t *testing.T) {
	h := New()
	HTMLPage(h).
		Title("Home").
		Mobile(true).
		StyleSheets([]string{"/main.css"}).
		Scripts([]string{"/app.js"}).
		Body(func(h *HTML) {
			Native(h, "h1").Body(func(h *HTML) { h.WriteText("Hello") })
		})
	got := h.String()
	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		`<meta charset="utf-8"/>`,
		`<meta name="viewport" content="width=device-width, initial-scale=1"/>`,
		"<title>Home</title>",
		`<link href="/main.css" rel="stylesheet"/>`,
		`<script src="/app.js"></script>`,
		"<body><h1>Hello</h1></body>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("page output missing %q:\n%s", want, got)
		}
	}
}

func TestHTMLPageDefaultLang(t *testing.T) {
	h := &HTML{}
	HTMLPage(h).Title("x").Lang("de").Close()
	if !strings.Contains(h.String(), `<html lang="de">`) {
		t.Errorf("lang not applied: %s", h.String())
	}
}

// The typed-builder guarantee: reaching a terminal call without every
// mandatory field set aborts the render.
func TestHTMLPageMissingTitlePanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("rendering without a title should panic")
		}
		msg := r.(string)
		if !strings.Contains(msg, "HTMLPage") || !strings.Contains(msg, "title") {
			t.Errorf("panic %q should name the component and field", msg)
		}
	}()
	h := &HTML{}
	HTMLPage(h).Mobile(true).Close()
}

// Re-setting a field warns and keeps the first value.
func TestHTMLPageResetKeepsFirst(t *testing.T) {
	h := &HTML{}
	HTMLPage(h).Title("first").Title("second").Close()
	if !strings.Contains(h.String(), "<title>first</title>") {
		t.Errorf("second Title call should not override the first: %s", h.String())
	}
}
