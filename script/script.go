// Package script transpiles the small scripting language allowed inside
// script elements into JavaScript. Output is a sequence of
// segments: literal JS text interleaved with host Go expressions whose
// values are serialized at render time.
package script

import (
	"go/ast"
	goparser "go/parser"
	gotoken "go/token"
	"strconv"
	"strings"
)

// Kind says which of the three accepted script forms the source matched.
type Kind int

const (
	// Literal is a single Go string literal: its text is emitted verbatim
	// (script-escaped at compile time).
	Literal Kind = iota
	// Expr is a single braced Go expression whose value is serialized at
	// render time.
	Expr
	// Program is transpiled source in the scripting language.
	Program
)

// Segment is one piece of transpiled output. Exactly one field is set.
type Segment struct {
	JS     string // literal JavaScript text
	Splice string // Go expression to serialize into the script
}

// Result is a transpiled script body.
type Result struct {
	Kind     Kind
	Literal  string    // Kind == Literal: the unquoted text
	Expr     string    // Kind == Expr: the Go expression
	Segments []Segment // Kind == Program
}

// Transpile converts raw script-element content. It accepts, in order: a
// single Go string literal, a single braced Go expression, or a program in
// the scripting language.
func Transpile(src string) (*Result, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return &Result{Kind: Literal}, nil
	}
	if trimmed[0] == '"' || trimmed[0] == '`' {
		if lit, ok := parseGoString(trimmed); ok {
			return &Result{Kind: Literal, Literal: lit}, nil
		}
	}
	if trimmed[0] == '{' && trimmed[len(trimmed)-1] == '}' {
		inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
		if _, err := goparser.ParseExpr(inner); err == nil {
			return &Result{Kind: Expr, Expr: inner}, nil
		}
	}
	p := &parser{lex: lexer{src: src}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	f, err := p.program()
	if err != nil {
		return nil, err
	}
	return &Result{Kind: Program, Segments: f.segs}, nil
}

func parseGoString(src string) (string, bool) {
	e, err := goparser.ParseExpr(src)
	if err != nil {
		return "", false
	}
	lit, ok := e.(*ast.BasicLit)
	if !ok || lit.Kind != gotoken.STRING {
		return "", false
	}
	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return s, true
}

// frag is a growing run of segments. Appends merge adjacent literal text so
// the final segment list alternates between JS and splices.
type frag struct {
	segs []Segment
}

func text(s string) frag {
	if s == "" {
		return frag{}
	}
	return frag{segs: []Segment{{JS: s}}}
}

func (f frag) append(s string, space bool) frag {
	if s == "" {
		return f
	}
	if n := len(f.segs); n > 0 && f.segs[n-1].Splice == "" {
		segs := append([]Segment{}, f.segs...)
		if space && segs[n-1].JS != "" {
			segs[n-1].JS += " " + s
		} else {
			segs[n-1].JS += s
		}
		return frag{segs: segs}
	}
	return frag{segs: append(append([]Segment{}, f.segs...), Segment{JS: s})}
}

// js appends literal text separated by a space.
func (f frag) js(s string) frag { return f.append(s, true) }

// glue appends literal text with no separator.
func (f frag) glue(s string) frag { return f.append(s, false) }

// splice appends a host expression.
func (f frag) splice(expr string) frag {
	return frag{segs: append(append([]Segment{}, f.segs...), Segment{Splice: expr})}
}

// cat appends another frag, optionally space-separating the seam.
func (f frag) cat(g frag, space bool) frag {
	if len(g.segs) == 0 {
		return f
	}
	out := f
	for i, s := range g.segs {
		switch {
		case s.Splice != "":
			out = out.splice(s.Splice)
		case i == 0:
			out = out.append(s.JS, space)
		default:
			out = out.append(s.JS, false)
		}
	}
	return out
}
