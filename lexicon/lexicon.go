// Package lexicon holds the static tag and attribute tables consulted by the
// compiler and, for names that are only known at run time, by the rtml
// runtime. Everything here is data; no state survives a lookup.
package lexicon

import (
	"strings"
	"unicode"

	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind constrains the values an attribute accepts.
type Kind int

const (
	// Value accepts any string-like value.
	Value Kind = iota
	// Flag is a boolean attribute: present or absent, never holding a value.
	Flag
	// FlagOrValue accepts either a bare flag or a string value (e.g. download).
	FlagOrValue
	// Number accepts a numeric value.
	Number
	// DateTime accepts a timestamp value (e.g. del's datetime).
	DateTime
	// Any accepts anything convertible to an attribute value.
	Any
)

// Tag describes one native HTML element.
type Tag struct {
	Name    string
	Void    bool
	RawText bool
	Attrs   map[string]Kind
}

// https://html.spec.whatwg.org/#void-elements
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"link": true, "meta": true, "source": true, "track": true,
	"wbr": true,
}

// Elements whose body is raw text, not nested markup.
var rawTextElements = map[string]bool{
	"script": true,
	"style":  true,
}

// Global attributes, valid on every native element.
// https://developer.mozilla.org/en-US/docs/Web/HTML/Global_attributes
var globalAttrs = map[string]Kind{
	"accesskey":       Value,
	"autocapitalize":  Value,
	"autofocus":       Flag,
	"class":           Value,
	"contenteditable": Value,
	"dir":             Value,
	"draggable":       Value,
	"hidden":          Flag,
	"id":              Value,
	"lang":            Value,
	"role":            Value,
	"slot":            Value,
	"spellcheck":      Value,
	"style":           Value,
	"tabindex":        Number,
	"title":           Value,
	"translate":       Value,
}

// Per-element attributes beyond the global set.
var elementAttrs = map[string]map[string]Kind{
	"a": {
		"download": FlagOrValue, "href": Value, "hreflang": Value,
		"ping": Value, "referrerpolicy": Value, "rel": Value,
		"target": Value, "type": Value,
	},
	"form": {
		"accept-charset": Value, "autocomplete": Value, "name": Value,
		"rel": Value, "action": Value, "enctype": Value, "method": Value,
		"novalidate": Flag, "target": Value,
	},
	"button": {
		"disabled": Flag, "form": Value, "formaction": Value,
		"formenctype": Value, "formmethod": Value, "formnovalidate": Flag,
		"formtarget": Value, "name": Value, "popovertarget": Value,
		"popovertargetaction": Value, "type": Value, "value": Value,
	},
	"input": {
		"accept": Value, "alt": Value, "autocomplete": Value,
		"capture": Value, "checked": Flag, "disabled": Flag,
		"form": Value, "formaction": Value, "formenctype": Value,
		"formmethod": Value, "formnovalidate": Flag, "formtarget": Value,
		"height": Number, "max": Value, "maxlength": Number,
		"min": Value, "minlength": Number, "multiple": Flag,
		"name": Value, "pattern": Value, "placeholder": Value,
		"popovertarget": Value, "popovertargetaction": Value,
		"readonly": Flag, "required": Flag, "size": Number,
		"src": Value, "step": Value, "type": Value, "value": Value,
		"width": Number,
	},
	"script": {
		"async": Flag, "crossorigin": Value, "defer": Flag,
		"integrity": Value, "nomodule": Flag, "nonce": Value,
		"referrerpolicy": Value, "src": Value, "type": Value,
	},
	"img": {
		"alt": Value, "crossorigin": Value, "decoding": Value,
		"height": Number, "ismap": Flag, "loading": Value,
		"referrerpolicy": Value, "sizes": Value, "src": Value,
		"srcset": Value, "usemap": Value, "width": Number,
	},
	"link": {
		"as": Value, "crossorigin": Value, "href": Value,
		"hreflang": Value, "integrity": Value, "media": Value,
		"referrerpolicy": Value, "rel": Value, "sizes": Value,
		"type": Value,
	},
	"meta": {
		"charset": Value, "content": Value, "http-equiv": Value,
		"name": Value,
	},
	"del": {"cite": Value, "datetime": DateTime},
	"ins": {"cite": Value, "datetime": DateTime},
	"time": {"datetime": DateTime},
	"object": {
		"data": Value, "form": Value, "height": Number, "name": Value,
		"type": Value, "width": Number,
	},
	"label":  {"for": Value, "form": Value},
	"select": {"autocomplete": Value, "disabled": Flag, "form": Value, "multiple": Flag, "name": Value, "required": Flag, "size": Number},
	"option": {"disabled": Flag, "label": Value, "selected": Flag, "value": Value},
	"textarea": {
		"autocomplete": Value, "cols": Number, "disabled": Flag,
		"form": Value, "maxlength": Number, "minlength": Number,
		"name": Value, "placeholder": Value, "readonly": Flag,
		"required": Flag, "rows": Number, "wrap": Value,
	},
	"ol":       {"reversed": Flag, "start": Number, "type": Value},
	"li":       {"value": Number},
	"html":     {"xmlns": Value},
	"source":   {"media": Value, "sizes": Value, "src": Value, "srcset": Value, "type": Value},
	"track":    {"default": Flag, "kind": Value, "label": Value, "src": Value, "srclang": Value},
	"iframe":   {"allow": Value, "height": Number, "loading": Value, "name": Value, "referrerpolicy": Value, "sandbox": Value, "src": Value, "srcdoc": Value, "width": Number},
	"td":       {"colspan": Number, "headers": Value, "rowspan": Number},
	"th":       {"abbr": Value, "colspan": Number, "headers": Value, "rowspan": Number, "scope": Value},
	"dialog":   {"open": Flag},
	"details":  {"open": Flag},
	"progress": {"max": Number, "value": Number},
	"meter":    {"high": Number, "low": Number, "max": Number, "min": Number, "optimum": Number, "value": Number},
}

// Void reports whether name is a void element (no children, no closing tag).
func Void(name string) bool { return voidElements[name] }

// RawText reports whether name's body is raw text handled by the script path.
func RawText(name string) bool { return rawTextElements[name] }

// Native reports whether name is a standard HTML element.
func Native(name string) bool {
	return atom.Lookup([]byte(name)) != 0
}

// Element returns the table entry for a native element name. The second
// return is false for names outside the native set; such names are custom
// elements and are not attribute-checked.
func Element(name string) (Tag, bool) {
	if !Native(name) {
		return Tag{}, false
	}
	return Tag{
		Name:    name,
		Void:    voidElements[name],
		RawText: rawTextElements[name],
		Attrs:   elementAttrs[name],
	}, true
}

// AttrKind resolves the value constraint for an attribute of a native
// element. data-* and hx-* attributes are always accepted.
func AttrKind(tag, attr string) (Kind, bool) {
	if strings.HasPrefix(attr, "data-") || strings.HasPrefix(attr, "hx-") {
		return Any, true
	}
	if k, ok := globalAttrs[attr]; ok {
		return k, true
	}
	if attrs, ok := elementAttrs[tag]; ok {
		if k, ok := attrs[attr]; ok {
			return k, true
		}
		return 0, false
	}
	// Elements without a detailed table accept any well-formed key.
	return Any, true
}

// https://html.spec.whatwg.org/multipage/custom-elements.html#prod-potentialcustomelementname
// Only the character classes are enforced, not the existence of a `-`.
var tagNameRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0xB7, Hi: 0xB7, Stride: 1},
		{Lo: 0xC0, Hi: 0xD6, Stride: 1},
		{Lo: 0xD8, Hi: 0xF6, Stride: 1},
		{Lo: 0xF8, Hi: 0x37D, Stride: 1},
		{Lo: 0x37F, Hi: 0x1FFF, Stride: 1},
		{Lo: 0x200C, Hi: 0x200D, Stride: 1},
		{Lo: 0x203F, Hi: 0x2040, Stride: 1},
		{Lo: 0x2070, Hi: 0x218F, Stride: 1},
		{Lo: 0x2C00, Hi: 0x2FEF, Stride: 1},
		{Lo: 0x3001, Hi: 0xD7FF, Stride: 1},
		{Lo: 0xF900, Hi: 0xFDCF, Stride: 1},
		{Lo: 0xFDF0, Hi: 0xFFFD, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10000, Hi: 0xEFFFF, Stride: 1},
	},
}

// ValidTagName reports whether name satisfies the character classes of the
// potential-custom-element-name production.
func ValidTagName(name string) bool {
	if name == "" {
		return false
	}
	for _, c := range strings.ToLower(name) {
		switch {
		case c == '-' || c == '.' || c == '_':
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case unicode.Is(tagNameRanges, c):
		default:
			return false
		}
	}
	return true
}

// ValidAttrKey reports whether key is a well-formed attribute name.
// https://www.w3.org/TR/2011/WD-html5-20110525/syntax.html#attributes-0
func ValidAttrKey(key string) bool {
	if key == "" {
		return false
	}
	for _, c := range key {
		if unicode.IsSpace(c) || unicode.IsControl(c) {
			return false
		}
		switch c {
		case 0, '"', '\'', '>', '/', '=':
			return false
		}
	}
	return true
}

var titleCaser = cases.Title(language.Und, cases.NoLower)

// Setter maps a field or attribute name to the exported Go setter name used
// by generated builders: snake_case and kebab-case segments become PascalCase
// (accept_charset -> AcceptCharset, hx-swap-oob -> HxSwapOob).
func Setter(name string) string {
	segs := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(titleCaser.String(s))
	}
	return b.String()
}
