package parser

import (
	"strings"
	"testing"

	"github.com/rtml-dev/rtml/ast"
)

func parse(t *testing.T, src string) *ast.File {
	t.Helper()
	f, err := ParseFile("test.rtml", src)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	return f
}

func parseBody(t *testing.T, body string) []ast.Node {
	t.Helper()
	f := parse(t, "package views\n\ncomponent T() "+body+"\n")
	if len(f.Components) != 1 {
		t.Fatalf("got %d components, want 1", len(f.Components))
	}
	return f.Components[0].Body
}

func TestParseFileHeader(t *testing.T) {
	f := parse(t, `package views

import (
	"strings"
)

component Empty() {
}
`)
	if f.Package != "views" {
		t.Errorf("package = %q", f.Package)
	}
	if !strings.Contains(f.Imports, `"strings"`) {
		t.Errorf("imports not captured: %q", f.Imports)
	}
	if len(f.Components) != 1 || f.Components[0].Name != "Empty" {
		t.Fatalf("components = %+v", f.Components)
	}
}

func TestParseParams(t *testing.T) {
	f := parse(t, `package views
component Card(title string, wide bool, items []string, max int = 10, body rtml.Fragment) {
}
`)
	c := f.Components[0]
	if len(c.Params) != 5 {
		t.Fatalf("got %d params", len(c.Params))
	}
	tests := []struct {
		name, typ, def string
		optional       bool
	}{
		{"title", "string", "", false},
		{"wide", "bool", "", true},
		{"items", "[]string", "", true},
		{"max", "int", "10", true},
		{"body", "rtml.Fragment", "", false},
	}
	for i, tt := range tests {
		p := c.Params[i]
		if p.Name != tt.name || p.Type != tt.typ || p.Default != tt.def || p.Optional() != tt.optional {
			t.Errorf("param %d = %+v, want %+v", i, p, tt)
		}
	}
}

func TestParamErrors(t *testing.T) {
	tests := []struct{ src, msg string }{
		{"package v\ncomponent C[T any]() {}\n", "generic"},
		{"package v\ncomponent C(self string) {}\n", "receiver"},
		{"package v\ncomponent C(body rtml.Fragment, body rtml.Fragment) {}\n", "body"},
	}
	for _, tt := range tests {
		if _, err := ParseFile("test.rtml", tt.src); err == nil {
			t.Errorf("%s declaration should fail: %q", tt.msg, tt.src)
		}
	}
}

func TestHTMLElement(t *testing.T) {
	nodes := parseBody(t, `{
	<div class="card" hidden data-test="x" hx::swap::oob="true">
		"hello"
	</div>
}`)
	if len(nodes) != 1 {
		t.Fatalf("got %d nodes", len(nodes))
	}
	el := nodes[0].(*ast.Element)
	if el.Tag.Kind != ast.TagPath || el.Tag.Name != "div" {
		t.Fatalf("tag = %+v", el.Tag)
	}
	wantAttrs := []struct {
		kind  ast.KeyKind
		key   string
		value string
		flag  bool
	}{
		{ast.KeyIdent, "class", `"card"`, false},
		{ast.KeyIdent, "hidden", "", true},
		{ast.KeyString, "data-test", `"x"`, false},
		{ast.KeyHx, "hx-swap-oob", `"true"`, false},
	}
	if len(el.Attrs) != len(wantAttrs) {
		t.Fatalf("attrs = %+v", el.Attrs)
	}
	for i, want := range wantAttrs {
		a := el.Attrs[i]
		if a.Kind != want.kind || a.Key != want.key || a.Value != want.value || a.Flag != want.flag {
			t.Errorf("attr %d = %+v, want %+v", i, a, want)
		}
	}
	if len(el.Children) != 1 {
		t.Fatalf("children = %+v", el.Children)
	}
	if text := el.Children[0].(*ast.Text); text.Value != "hello" {
		t.Errorf("text = %q", text.Value)
	}
	if el.Close == nil || el.Close.Wildcard || el.Close.Name != "div" {
		t.Errorf("close = %+v", el.Close)
	}
}

// = may be surrounded by whitespace; a flag attribute stays a flag.
func TestHTMLAttrSpacedEquals(t *testing.T) {
	nodes := parseBody(t, `{
	<input class = "x" checked/>
}`)
	el := nodes[0].(*ast.Element)
	if len(el.Attrs) != 2 {
		t.Fatalf("attrs = %+v", el.Attrs)
	}
	if a := el.Attrs[0]; a.Key != "class" || a.Value != `"x"` || a.Flag {
		t.Errorf("class = %+v", a)
	}
	if a := el.Attrs[1]; a.Key != "checked" || !a.Flag {
		t.Errorf("checked = %+v", a)
	}
}

func TestHTMLSelfCloseAndWildcard(t *testing.T) {
	nodes := parseBody(t, `{
	<br/>
	<div>"x"</_>
}`)
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes", len(nodes))
	}
	if !nodes[0].(*ast.Element).SelfClosing {
		t.Error("br should be self-closing")
	}
	div := nodes[1].(*ast.Element)
	if div.Close == nil || !div.Close.Wildcard {
		t.Errorf("close = %+v", div.Close)
	}
}

func TestHTMLMismatchedCloseTag(t *testing.T) {
	_, err := ParseFile("test.rtml", "package v\ncomponent C() {\n\t<div>\"x\"</span>\n}\n")
	if err == nil {
		t.Fatal("mismatched close tag should fail")
	}
	if !strings.Contains(err.Error(), "</span>") {
		t.Errorf("error should name the close tag: %v", err)
	}
}

func TestHTMLControlFlow(t *testing.T) {
	nodes := parseBody(t, `{
	if count > 0 {
		"some"
	} else if count == 0 {
		"none"
	} else {
		"negative"
	}
	for _, x := range items {
		{x}
	}
	while queue.Next() {
		"tick"
	}
}`)
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes", len(nodes))
	}
	ifn := nodes[0].(*ast.If)
	if ifn.Cond != "count > 0" {
		t.Errorf("cond = %q", ifn.Cond)
	}
	if ifn.Else == nil || ifn.Else.If == nil || ifn.Else.If.Cond != "count == 0" {
		t.Fatalf("else-if = %+v", ifn.Else)
	}
	if ifn.Else.If.Else == nil || len(ifn.Else.If.Else.Body) != 1 {
		t.Errorf("final else = %+v", ifn.Else.If.Else)
	}
	forn := nodes[1].(*ast.For)
	if forn.Header != "_, x := range items" {
		t.Errorf("for header = %q", forn.Header)
	}
	while := nodes[2].(*ast.While)
	if while.Cond != "queue.Next()" {
		t.Errorf("while cond = %q", while.Cond)
	}
}

// A composite literal brace in a condition must not end the capture early.
func TestExprCaptureCompositeLiteral(t *testing.T) {
	nodes := parseBody(t, `{
	if p == (Point{1, 2}) {
		"origin"
	}
}`)
	ifn := nodes[0].(*ast.If)
	if ifn.Cond != "p == (Point{1, 2})" {
		t.Errorf("cond = %q", ifn.Cond)
	}
}

func TestHTMLCallNode(t *testing.T) {
	nodes := parseBody(t, `{
	<Avatar(user, 64)/>
}`)
	call := nodes[0].(*ast.FunctionCall)
	if call.Name != "Avatar" || call.Args != "user, 64" {
		t.Errorf("call = %+v", call)
	}
}

func TestHTMLComputedTagAndAttr(t *testing.T) {
	nodes := parseBody(t, `{
	<{tagName} {keyExpr}="v">"x"</_>
}`)
	el := nodes[0].(*ast.Element)
	if el.Tag.Kind != ast.TagExpr || el.Tag.Expr != "tagName" {
		t.Errorf("tag = %+v", el.Tag)
	}
	if len(el.Attrs) != 1 || el.Attrs[0].Kind != ast.KeyExpr || el.Attrs[0].Expr != "keyExpr" {
		t.Errorf("attrs = %+v", el.Attrs)
	}
}

func TestHTMLScriptBody(t *testing.T) {
	nodes := parseBody(t, `{
	<script>let name = $name;</script>
}`)
	el := nodes[0].(*ast.Element)
	if el.Script == nil || el.Script.Source != "let name = $name;" {
		t.Errorf("script = %+v", el.Script)
	}
}

func TestHTMLErrorsAccumulate(t *testing.T) {
	_, err := ParseFile("test.rtml", `package v
component C() {
	<div>"x"</span>
	<div>"y"</p>
}
`)
	list, ok := err.(ErrorList)
	if !ok {
		t.Fatalf("error type %T", err)
	}
	if len(list) < 2 {
		t.Errorf("got %d diagnostics, want both mismatches: %v", len(list), list)
	}
}

func TestErrorFormat(t *testing.T) {
	e := &Error{Path: "views/card.rtml", Pos: ast.Position{Line: 3, Column: 7}, Msg: "mismatched close tag", Hint: "use </_>"}
	want := "views/card.rtml:3:7: mismatched close tag (use </_>)"
	if e.Error() != want {
		t.Errorf("got %q, want %q", e.Error(), want)
	}
}

func TestRustyElement(t *testing.T) {
	nodes := parseBody(t, `[
	div(.card.wide, #main, data-test: "x", hidden)[
		"hello",
		{title},
	]
]`)
	el := nodes[0].(*ast.Element)
	if el.Tag.Kind != ast.TagPath || el.Tag.Name != "div" {
		t.Fatalf("tag = %+v", el.Tag)
	}
	wantAttrs := []struct {
		kind  ast.KeyKind
		key   string
		value string
		flag  bool
	}{
		{ast.KeyIdent, "class", `"card wide"`, false},
		{ast.KeyIdent, "id", `"main"`, false},
		{ast.KeyString, "data-test", `"x"`, false},
		{ast.KeyIdent, "hidden", "", true},
	}
	if len(el.Attrs) != len(wantAttrs) {
		t.Fatalf("attrs = %+v", el.Attrs)
	}
	for i, want := range wantAttrs {
		a := el.Attrs[i]
		if a.Kind != want.kind || a.Key != want.key || a.Value != want.value || a.Flag != want.flag {
			t.Errorf("attr %d = %+v, want %+v", i, a, want)
		}
	}
	if len(el.Children) != 2 {
		t.Fatalf("children = %+v", el.Children)
	}
	if text := el.Children[0].(*ast.Text); text.Value != "hello" {
		t.Errorf("text = %q", text.Value)
	}
	if block := el.Children[1].(*ast.Block); block.Expr != "title" {
		t.Errorf("block = %q", block.Expr)
	}
}

func TestRustyControlFlow(t *testing.T) {
	nodes := parseBody(t, `[
	if ok [ "yes" ] else [ "no" ],
	for t in tags [ {t} ],
	for (i, t) in tags [ {i} ],
	while q.Next() [ "tick" ],
]`)
	if len(nodes) != 4 {
		t.Fatalf("got %d nodes", len(nodes))
	}
	ifn := nodes[0].(*ast.If)
	if ifn.Cond != "ok" || ifn.Else == nil || len(ifn.Else.Body) != 1 {
		t.Errorf("if = %+v", ifn)
	}
	if forn := nodes[1].(*ast.For); forn.Header != "_, t := range tags" {
		t.Errorf("for header = %q", forn.Header)
	}
	if forn := nodes[2].(*ast.For); forn.Header != "i, t := range tags" {
		t.Errorf("indexed for header = %q", forn.Header)
	}
	if while := nodes[3].(*ast.While); while.Cond != "q.Next()" {
		t.Errorf("while cond = %q", while.Cond)
	}
}

func TestRustyIndexCaptureKeepsBrackets(t *testing.T) {
	// the [ opening an index expression must stay inside the condition
	nodes := parseBody(t, `[
	if flags[0] [ "on" ]
]`)
	ifn := nodes[0].(*ast.If)
	if ifn.Cond != "flags[0]" {
		t.Errorf("cond = %q", ifn.Cond)
	}
}

func TestRustyScriptBody(t *testing.T) {
	nodes := parseBody(t, `[
	script(type: "module")[let x = $n;]
]`)
	el := nodes[0].(*ast.Element)
	if el.Script == nil || el.Script.Source != "let x = $n;" {
		t.Errorf("script = %+v", el.Script)
	}
}

func TestRustyFirstErrorIsFatal(t *testing.T) {
	_, err := ParseFile("test.rtml", `package v
component C() [
	div(=)[],
	span(=)[],
]
`)
	list, ok := err.(ErrorList)
	if !ok {
		t.Fatalf("error type %T", err)
	}
	if len(list) != 1 {
		t.Errorf("got %d diagnostics, want exactly 1: %v", len(list), list)
	}
}
