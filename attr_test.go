package rtml

import (
	"testing"
	"time"
)

func TestToAttr(t *testing.T) {
	now := time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC)
	str := "deref"
	tests := []struct {
		name string
		in   any
		want ValueOrFlag
	}{
		{"true is a flag", true, Flagged()},
		{"false is absent", false, Unset()},
		{"nil is absent", nil, Unset()},
		{"string", "x", Value("x")},
		{"empty string still renders", "", Value("")},
		{"int", 7, Value("7")},
		{"float", 1.5, Value("1.5")},
		{"time", now, Value("2024-05-17T10:30:00Z")},
		{"nil pointer", (*string)(nil), Unset()},
		{"pointer", &str, Value("deref")},
	}
	for _, tt := range tests {
		if got := ToAttr(tt.in); got != tt.want {
			t.Errorf("%s: ToAttr(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestJSValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"Bob", `"Bob"`},
		{42, "42"},
		{true, "true"},
		{[]int{1, 2}, "[1,2]"},
		{map[string]int{"a": 1}, `{"a":1}`},
		{`</script>`, `"</script>"`},
	}
	for _, tt := range tests {
		if got := JSValue(tt.in); got != tt.want {
			t.Errorf("JSValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

type jsLit string

func (l jsLit) JS() string { return string(l) }

func TestJSValueStringer(t *testing.T) {
	if got := JSValue(jsLit("window.user")); got != "window.user" {
		t.Errorf("JSValue(JSStringer) = %q", got)
	}
}

func TestScriptText(t *testing.T) {
	got := ScriptText("const name =", `"Bob"`, ";")
	if got != `const name = "Bob" ;` {
		t.Errorf("ScriptText = %q", got)
	}
}
