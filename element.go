package rtml

import (
	"fmt"

	"github.com/rtml-dev/rtml/lexicon"
)

// Element buffers one element's attributes until the body call renders the
// open tag. Attributes keep the position of their first set; setting the
// same key again replaces the value in place.
type Element struct {
	h       *HTML
	name    string
	void    bool
	rawText bool
	keys    []string
	attrs   map[string]ValueOrFlag
	index   map[string]int
}

// Native starts a native element. The generator has already validated the
// tag name against the lexicon.
func Native(h *HTML, name string) *Element {
	return &Element{
		h:       h,
		name:    name,
		void:    lexicon.Void(name),
		rawText: lexicon.RawText(name),
		attrs:   map[string]ValueOrFlag{},
		index:   map[string]int{},
	}
}

// Custom starts a custom element from a run-time name, panicking when the
// name fails the custom-element name production.
func Custom(h *HTML, name string) *Element {
	if !lexicon.ValidTagName(name) {
		panic(fmt.Sprintf("rtml: invalid custom element name %q", name))
	}
	return CustomUnchecked(h, name)
}

// CustomUnchecked starts a custom element whose name was validated at
// compile time.
func CustomUnchecked(h *HTML, name string) *Element {
	return &Element{
		h:     h,
		name:  name,
		attrs: map[string]ValueOrFlag{},
		index: map[string]int{},
	}
}

func (e *Element) put(key string, v ValueOrFlag) *Element {
	if _, ok := e.index[key]; !ok {
		e.index[key] = len(e.keys)
		e.keys = append(e.keys, key)
	}
	e.attrs[key] = v
	return e
}

// Attr sets a valued attribute.
func (e *Element) Attr(key, value string) *Element {
	return e.put(key, Value(value))
}

// Flag sets a boolean attribute; on=false leaves it absent.
func (e *Element) Flag(key string, on bool) *Element {
	if !on {
		return e.put(key, Unset())
	}
	return e.put(key, Flagged())
}

// Set stores any tri-state directly.
func (e *Element) Set(key string, v ValueOrFlag) *Element {
	return e.put(key, v)
}

// CustomAttr sets an attribute whose key is only known at run time,
// panicking on malformed keys.
func (e *Element) CustomAttr(key string, v any) *Element {
	if !lexicon.ValidAttrKey(key) {
		panic(fmt.Sprintf("rtml: invalid attribute name %q", key))
	}
	return e.put(key, ToAttr(v))
}

func (e *Element) open() {
	e.h.WriteRaw("<" + e.name)
	for _, key := range e.keys {
		switch a := e.attrs[key]; a.state {
		case attrFlag:
			e.h.WriteRaw(" " + key)
		case attrValue:
			e.h.WriteRaw(" " + key + `="`)
			e.h.writeAttrValue(a.value)
			e.h.WriteRaw(`"`)
		}
	}
}

// Body renders the open tag, the children, and the close tag. Void elements
// never take a body.
func (e *Element) Body(f Fragment) {
	if e.void {
		panic(fmt.Sprintf("rtml: void element <%s> cannot have a body", e.name))
	}
	e.open()
	e.h.WriteRaw(">")
	if f != nil {
		f(e.h)
	}
	e.h.WriteRaw("</" + e.name + ">")
}

// Close renders the element without children. Void elements self-close;
// everything else renders an empty body.
func (e *Element) Close() {
	if e.void {
		e.open()
		e.h.WriteRaw("/>")
		return
	}
	e.Body(nil)
}

// ScriptBody renders a raw-text element around script content. RawSrc passes
// through (escaped at compile time); everything else is script-escaped here.
func (e *Element) ScriptBody(v any) {
	if !e.rawText {
		panic(fmt.Sprintf("rtml: <%s> does not take script content", e.name))
	}
	e.open()
	e.h.WriteRaw(">")
	switch v := v.(type) {
	case nil:
	case RawSrc:
		e.h.WriteRaw(string(v))
	case string:
		e.h.WriteScript(v)
	case fmt.Stringer:
		e.h.WriteScript(v.String())
	default:
		e.h.WriteScript(fmt.Sprint(v))
	}
	e.h.WriteRaw("</" + e.name + ">")
}
