package parser

import (
	"strconv"
	"strings"

	"github.com/rtml-dev/rtml/ast"
	"github.com/rtml-dev/rtml/lexicon"
)

// rustyParser parses `[ … ]` component bodies: comma-separated nodes with
// `tag(attrs)[children]` elements. The first error is fatal.
type rustyParser struct {
	s *scanner
}

func (p *rustyParser) fail(pos ast.Position, msg, hint string) *Error {
	return &Error{Path: p.s.path, Pos: pos, Msg: msg, Hint: hint}
}

// nodes parses until the closing bracket, which is left for the caller.
func (p *rustyParser) nodes() ([]ast.Node, *Error) {
	var out []ast.Node
	for {
		p.s.skipSpace()
		if p.s.eof() || p.s.peek() == ']' {
			return out, nil
		}
		if len(out) > 0 {
			if !p.s.consume(",") {
				return nil, p.fail(p.s.position(), "expected , between nodes", "")
			}
			p.s.skipSpace()
			if p.s.eof() || p.s.peek() == ']' {
				return out, nil
			}
		}
		n, err := p.node()
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
}

func (p *rustyParser) node() (ast.Node, *Error) {
	start := p.s.position()
	switch {
	case p.s.peek() == '"' || p.s.peek() == '`':
		lit, ok := p.s.stringLit()
		if !ok {
			return nil, p.fail(start, "malformed string literal", "")
		}
		val, err := strconv.Unquote(lit)
		if err != nil {
			return nil, p.fail(start, "malformed string literal", "")
		}
		return &ast.Text{Range: ast.NewRange(start, p.s.position()), Value: val}, nil
	case p.s.peek() == '{':
		p.s.next()
		expr, _, cerr := p.s.captureExpr("}", "a block holds one Go expression")
		if cerr != nil {
			return nil, cerr
		}
		p.s.skipSpace()
		if !p.s.consume("}") {
			return nil, p.fail(p.s.position(), "unterminated block", "expected }")
		}
		p.s.skipSpace()
		if p.s.peek() == '(' {
			// {expr}(attrs)[children] is a computed custom element
			tag := ast.Tag{Range: ast.NewRange(start, p.s.position()), Kind: ast.TagExpr, Expr: expr}
			return p.elementAfterTag(start, tag)
		}
		return &ast.Block{Range: ast.NewRange(start, p.s.position()), Expr: expr}, nil
	case p.s.keywordAhead("if"):
		return p.ifNode()
	case p.s.keywordAhead("for"):
		return p.forNode()
	case p.s.keywordAhead("while"):
		return p.whileNode()
	case isIdentStart(p.s.peek()):
		tag, err := p.tagName()
		if err != nil {
			return nil, err
		}
		return p.elementAfterTag(start, tag)
	}
	return nil, p.fail(start, "unexpected content", "expected an element, a string literal, a block, or if/for/while")
}

func (p *rustyParser) tagName() (ast.Tag, *Error) {
	start := p.s.position()
	name := p.s.identPath()
	dashed := false
	for p.s.peek() == '-' && isIdentPart(p.s.peekAt(1)) {
		dashed = true
		p.s.next()
		name += "-" + p.s.ident()
	}
	kind := ast.TagPath
	if dashed {
		kind = ast.TagString
	}
	return ast.Tag{Range: ast.NewRange(start, p.s.position()), Kind: kind, Name: name}, nil
}

func (p *rustyParser) elementAfterTag(start ast.Position, tag ast.Tag) (ast.Node, *Error) {
	el := &ast.Element{Tag: tag}
	p.s.skipSpace()
	if p.s.consume("(") {
		attrs, err := p.attrs()
		if err != nil {
			return nil, err
		}
		el.Attrs = attrs
	}
	p.s.skipSpace()
	if p.s.consume("[") {
		if tag.Kind == ast.TagPath && lexicon.RawText(tag.Name) {
			sb, err := p.rawText(tag.Name)
			if err != nil {
				return nil, err
			}
			el.Script = sb
		} else {
			children, err := p.nodes()
			if err != nil {
				return nil, err
			}
			el.Children = children
			if !p.s.consume("]") {
				return nil, p.fail(p.s.position(), "unterminated element body", "expected ]")
			}
		}
	} else {
		el.SelfClosing = true
	}
	el.Range = ast.NewRange(start, p.s.position())
	return el, nil
}

// attrs parses the parenthesized attribute list. `#id` sets id, `.a.b`
// accumulates classes, `key: value` sets a value, a bare key sets a flag.
func (p *rustyParser) attrs() ([]ast.Attr, *Error) {
	var out []ast.Attr
	classIdx := -1
	first := true
	for {
		p.s.skipSpace()
		if p.s.consume(")") {
			return out, nil
		}
		if !first {
			if !p.s.consume(",") {
				return nil, p.fail(p.s.position(), "expected , or ) in attribute list", "")
			}
			p.s.skipSpace()
			if p.s.consume(")") {
				return out, nil
			}
		}
		first = false
		start := p.s.position()
		switch {
		case p.s.consume("#"):
			id, err := p.nameOrString("id")
			if err != nil {
				return nil, err
			}
			out = append(out, ast.Attr{
				Range: ast.NewRange(start, p.s.position()),
				Kind:  ast.KeyIdent,
				Key:   "id",
				Value: strconv.Quote(id),
			})
		case p.s.peek() == '.':
			var classes []string
			for p.s.consume(".") {
				c, err := p.nameOrString("class")
				if err != nil {
					return nil, err
				}
				classes = append(classes, c)
			}
			if classIdx >= 0 {
				prev, _ := strconv.Unquote(out[classIdx].Value)
				out[classIdx].Value = strconv.Quote(prev + " " + strings.Join(classes, " "))
				continue
			}
			classIdx = len(out)
			out = append(out, ast.Attr{
				Range: ast.NewRange(start, p.s.position()),
				Kind:  ast.KeyIdent,
				Key:   "class",
				Value: strconv.Quote(strings.Join(classes, " ")),
			})
		default:
			a, err := p.attr(start)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
	}
}

func (p *rustyParser) attr(start ast.Position) (ast.Attr, *Error) {
	a := ast.Attr{}
	switch {
	case p.s.peek() == '"' || p.s.peek() == '`':
		lit, ok := p.s.stringLit()
		if !ok {
			return a, p.fail(start, "malformed attribute key literal", "")
		}
		key, err := strconv.Unquote(lit)
		if err != nil {
			return a, p.fail(start, "malformed attribute key literal", "")
		}
		a.Kind = ast.KeyString
		a.Key = key
	case p.s.peek() == '{':
		p.s.next()
		expr, _, cerr := p.s.captureExpr("}", "a computed attribute key holds one Go expression")
		if cerr != nil {
			return a, cerr
		}
		p.s.skipSpace()
		if !p.s.consume("}") {
			return a, p.fail(p.s.position(), "unterminated computed attribute key", "expected }")
		}
		a.Kind = ast.KeyExpr
		a.Expr = expr
	case isIdentStart(p.s.peek()):
		name := p.s.ident()
		switch {
		case p.s.hasPrefix("::"):
			for p.s.consume("::") {
				seg := p.s.ident()
				if seg == "" {
					return a, p.fail(p.s.position(), "malformed attribute path", "expected identifier after ::")
				}
				name += "-" + seg
			}
			a.Kind = ast.KeyHx
			a.Key = name
		case p.s.peek() == '-':
			for p.s.peek() == '-' && isIdentPart(p.s.peekAt(1)) {
				p.s.next()
				name += "-" + p.s.ident()
			}
			a.Kind = ast.KeyString
			a.Key = name
		default:
			a.Kind = ast.KeyIdent
			a.Key = name
		}
	default:
		return a, p.fail(start, "expected attribute", "")
	}

	p.s.skipSpace()
	if p.s.consume(":") {
		p.s.skipSpace()
		expr, _, cerr := p.s.captureExpr(",)", "attribute values are Go expressions")
		if cerr != nil {
			return a, cerr
		}
		a.Value = expr
	} else {
		a.Flag = true
	}
	a.Range = ast.NewRange(start, p.s.position())
	return a, nil
}

func (p *rustyParser) nameOrString(what string) (string, *Error) {
	if p.s.peek() == '"' || p.s.peek() == '`' {
		lit, ok := p.s.stringLit()
		if !ok {
			return "", p.fail(p.s.position(), "malformed "+what+" literal", "")
		}
		v, err := strconv.Unquote(lit)
		if err != nil {
			return "", p.fail(p.s.position(), "malformed "+what+" literal", "")
		}
		return v, nil
	}
	name := p.s.ident()
	if name == "" {
		return "", p.fail(p.s.position(), "expected "+what+" name", "")
	}
	for p.s.peek() == '-' && isIdentPart(p.s.peekAt(1)) {
		p.s.next()
		name += "-" + p.s.ident()
	}
	return name, nil
}

func (p *rustyParser) ifNode() (ast.Node, *Error) {
	start := p.s.position()
	p.s.advance(len("if"))
	p.s.skipSpace()
	cond, _, cerr := p.s.captureExpr("[", "the condition ends at the [ opening the body")
	if cerr != nil {
		return nil, cerr
	}
	p.s.skipSpace()
	if !p.s.consume("[") {
		return nil, p.fail(p.s.position(), "expected [ after if condition", "")
	}
	body, err := p.nodes()
	if err != nil {
		return nil, err
	}
	if !p.s.consume("]") {
		return nil, p.fail(p.s.position(), "unterminated if body", "expected ]")
	}
	n := &ast.If{Cond: cond, Then: body}
	mark := *p.s
	p.s.skipSpace()
	if p.s.keywordAhead("else") {
		p.s.advance(len("else"))
		elseStart := p.s.position()
		p.s.skipSpace()
		if p.s.keywordAhead("if") {
			inner, err := p.ifNode()
			if err != nil {
				return nil, err
			}
			n.Else = &ast.ElseBranch{Range: ast.NewRange(elseStart, p.s.position()), If: inner.(*ast.If)}
		} else {
			if !p.s.consume("[") {
				return nil, p.fail(p.s.position(), "expected [ after else", "")
			}
			body, err := p.nodes()
			if err != nil {
				return nil, err
			}
			if !p.s.consume("]") {
				return nil, p.fail(p.s.position(), "unterminated else body", "expected ]")
			}
			n.Else = &ast.ElseBranch{Range: ast.NewRange(elseStart, p.s.position()), Body: body}
		}
	} else {
		*p.s = mark
	}
	n.Range = ast.NewRange(start, p.s.position())
	return n, nil
}

// forNode parses `for pat in expr [ … ]` and normalizes the sugar into a Go
// range header: `x in xs` iterates values, `(i, x) in xs` adds the index.
func (p *rustyParser) forNode() (ast.Node, *Error) {
	start := p.s.position()
	p.s.advance(len("for"))
	p.s.skipSpace()
	var header string
	if p.s.consume("(") {
		p.s.skipSpace()
		idx := p.s.ident()
		p.s.skipSpace()
		if idx == "" || !p.s.consume(",") {
			return nil, p.fail(p.s.position(), "malformed loop pattern", "expected (index, value)")
		}
		p.s.skipSpace()
		val := p.s.ident()
		p.s.skipSpace()
		if val == "" || !p.s.consume(")") {
			return nil, p.fail(p.s.position(), "malformed loop pattern", "expected (index, value)")
		}
		header = idx + ", " + val + " := range "
	} else {
		val := p.s.ident()
		if val == "" {
			return nil, p.fail(p.s.position(), "expected loop pattern", "")
		}
		header = "_, " + val + " := range "
	}
	p.s.skipSpace()
	if !p.s.keywordAhead("in") {
		return nil, p.fail(p.s.position(), "expected in after loop pattern", "")
	}
	p.s.advance(len("in"))
	p.s.skipSpace()
	iter, _, cerr := p.s.captureExpr("[", "the iterable ends at the [ opening the body")
	if cerr != nil {
		return nil, cerr
	}
	p.s.skipSpace()
	if !p.s.consume("[") {
		return nil, p.fail(p.s.position(), "expected [ after loop header", "")
	}
	body, err := p.nodes()
	if err != nil {
		return nil, err
	}
	if !p.s.consume("]") {
		return nil, p.fail(p.s.position(), "unterminated for body", "expected ]")
	}
	return &ast.For{Range: ast.NewRange(start, p.s.position()), Header: header + iter, Body: body}, nil
}

func (p *rustyParser) whileNode() (ast.Node, *Error) {
	start := p.s.position()
	p.s.advance(len("while"))
	p.s.skipSpace()
	cond, _, cerr := p.s.captureExpr("[", "the condition ends at the [ opening the body")
	if cerr != nil {
		return nil, cerr
	}
	p.s.skipSpace()
	if !p.s.consume("[") {
		return nil, p.fail(p.s.position(), "expected [ after while condition", "")
	}
	body, err := p.nodes()
	if err != nil {
		return nil, err
	}
	if !p.s.consume("]") {
		return nil, p.fail(p.s.position(), "unterminated while body", "expected ]")
	}
	return &ast.While{Range: ast.NewRange(start, p.s.position()), Cond: cond, Body: body}, nil
}

// rawText captures a raw-text element body up to the bracket that closes it,
// tracking nested brackets and string literals so script arrays survive.
func (p *rustyParser) rawText(name string) (*ast.ScriptBody, *Error) {
	start := p.s.position()
	depth := 1
	begin := p.s.pos
	for !p.s.eof() {
		switch c := p.s.peek(); c {
		case '"', '`', '\'':
			if j, ok := skipLiteral(p.s.src, p.s.pos); ok {
				p.s.advance(j - p.s.pos)
				continue
			}
			return nil, p.fail(p.s.position(), "unterminated string in <"+name+"> body", "")
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				src := p.s.src[begin:p.s.pos]
				p.s.next()
				return &ast.ScriptBody{Range: ast.NewRange(start, p.s.position()), Source: src}, nil
			}
		}
		p.s.next()
	}
	return nil, p.fail(start, "unterminated <"+name+"> body", "expected ]")
}
