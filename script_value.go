package rtml

import (
	"encoding/json"
	"fmt"
	"strings"
)

// JSStringer lets a type control its own script representation instead of
// going through JSON.
type JSStringer interface {
	JS() string
}

// JSValue serializes a Go value into a JS expression for script splices.
func JSValue(v any) string {
	if js, ok := v.(JSStringer); ok {
		return js.JS()
	}
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("rtml: value is not serializable for script use: %v", err))
	}
	return string(b)
}

// ScriptText joins transpiled script segments with single spaces. Generated
// code interleaves literal JS with JSValue results through this.
func ScriptText(parts ...string) string {
	return strings.Join(parts, " ")
}
