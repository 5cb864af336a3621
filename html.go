// Package rtml is the runtime for rtml-generated components: the output
// buffer, escaping primitives, the element builder protocol, and the support
// helpers generated builders call into.
package rtml

import (
	"fmt"
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"
)

const doctype = "<!DOCTYPE html>"

// HTML is the output buffer a render pass writes into. The zero value is a
// bare buffer; New seeds the buffer with the doctype for page rendering.
type HTML struct {
	b strings.Builder
}

// New returns a buffer seeded with the HTML5 doctype.
func New() *HTML {
	h := &HTML{}
	h.b.WriteString(doctype)
	return h
}

// String returns everything written so far, doctype included when the buffer
// was created with New.
func (h *HTML) String() string { return h.b.String() }

// Content returns the buffer without a leading doctype. Nesting one buffer
// into another goes through this so the doctype appears at most once.
func (h *HTML) Content() string {
	return strings.TrimPrefix(h.b.String(), doctype)
}

// WriteRaw writes s without any escaping. Generated code uses this for
// literal text that was already escaped at compile time.
func (h *HTML) WriteRaw(s string) { h.b.WriteString(s) }

// WriteText HTML-escapes s and writes it.
func (h *HTML) WriteText(s string) { h.b.WriteString(xhtml.EscapeString(s)) }

// WriteScript writes s as script content, breaking the two sequences that
// could terminate or comment out the surrounding script element.
func (h *HTML) WriteScript(s string) { h.b.WriteString(EscapeScript(s)) }

var scriptEscaper = strings.NewReplacer(
	"</script", `<\/script`,
	"<!--", `<\!--`,
)

// EscapeScript neutralizes `</script` and `<!--` inside script content.
func EscapeScript(s string) string { return scriptEscaper.Replace(s) }

var attrEscaper = strings.NewReplacer(`"`, "&quot;", "&", "&amp;")

func (h *HTML) writeAttrValue(s string) { h.b.WriteString(attrEscaper.Replace(s)) }

// Fragment is the children closure passed to element and component bodies.
type Fragment func(h *HTML)

// NoBody is the empty fragment used when a children slot stays unset.
func NoBody(*HTML) {}

// RawSrc is trusted, pre-escaped markup written through without another
// escape pass.
type RawSrc string

// Write renders any supported value into the buffer: strings are escaped,
// RawSrc is written through, fragments are invoked, numbers are formatted,
// nil values and nil fragments are skipped, and slices render element-wise.
func Write(h *HTML, v any) {
	switch v := v.(type) {
	case nil:
	case string:
		h.WriteText(v)
	case RawSrc:
		h.WriteRaw(string(v))
	case Fragment:
		if v != nil {
			v(h)
		}
	case func(*HTML):
		if v != nil {
			v(h)
		}
	case *HTML:
		h.WriteRaw(v.Content())
	case int:
		h.b.WriteString(strconv.Itoa(v))
	case int64:
		h.b.WriteString(strconv.FormatInt(v, 10))
	case float64:
		h.b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case bool:
		h.b.WriteString(strconv.FormatBool(v))
	case fmt.Stringer:
		h.WriteText(v.String())
	case []string:
		for _, s := range v {
			h.WriteText(s)
		}
	case []any:
		for _, e := range v {
			Write(h, e)
		}
	default:
		h.WriteText(fmt.Sprint(v))
	}
}
