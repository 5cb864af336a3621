package parser

import (
	"strconv"
	"strings"

	"github.com/rtml-dev/rtml/ast"
	"github.com/rtml-dev/rtml/lexicon"
)

// htmlParser parses `{ … }` component bodies. Errors accumulate; after each
// one the parser skips to a sync point and keeps going.
type htmlParser struct {
	s    *scanner
	errs ErrorList
}

func (p *htmlParser) errorf(pos ast.Position, msg, hint string) {
	p.errs = append(p.errs, &Error{Path: p.s.path, Pos: pos, Msg: msg, Hint: hint})
}

// sync skips forward to the next plausible node start.
func (p *htmlParser) sync() {
	for !p.s.eof() {
		switch p.s.peek() {
		case '<', '{', '}', '"', '`':
			return
		}
		p.s.next()
	}
}

// nodes parses body content until the terminator byte or a close tag.
func (p *htmlParser) nodes(term byte) []ast.Node {
	var out []ast.Node
	for {
		p.s.skipSpace()
		if p.s.eof() {
			return out
		}
		if p.s.peek() == term || p.s.hasPrefix("</") {
			return out
		}
		n := p.node()
		if n == nil {
			p.sync()
			if p.s.peek() == term || p.s.hasPrefix("</") || p.s.eof() {
				return out
			}
			// consume one byte so a bad sync point cannot loop forever
			p.s.next()
			continue
		}
		out = append(out, n)
	}
}

func (p *htmlParser) node() ast.Node {
	start := p.s.position()
	switch {
	case p.s.peek() == '<':
		return p.element()
	case p.s.peek() == '{':
		p.s.next()
		expr, _, err := p.s.captureExpr("}", "an interpolation block holds one Go expression")
		if err != nil {
			p.errs = append(p.errs, err)
			return nil
		}
		p.s.skipSpace()
		if !p.s.consume("}") {
			p.errorf(p.s.position(), "unterminated interpolation block", "expected }")
			return nil
		}
		return &ast.Block{Range: ast.NewRange(start, p.s.position()), Expr: expr}
	case p.s.peek() == '"' || p.s.peek() == '`':
		lit, ok := p.s.stringLit()
		if !ok {
			p.errorf(start, "malformed string literal", "")
			return nil
		}
		val, err := strconv.Unquote(lit)
		if err != nil {
			p.errorf(start, "malformed string literal", "")
			return nil
		}
		return &ast.Text{Range: ast.NewRange(start, p.s.position()), Value: val}
	case p.s.keywordAhead("if"):
		return p.ifNode()
	case p.s.keywordAhead("for"):
		return p.forNode()
	case p.s.keywordAhead("while"):
		return p.whileNode()
	}
	p.errorf(start, "unexpected content", "expected an element, a string literal, an interpolation block, or if/for/while")
	return nil
}

func (p *htmlParser) ifNode() ast.Node {
	start := p.s.position()
	p.s.advance(len("if"))
	p.s.skipSpace()
	cond, _, err := p.s.captureExpr("{", "the condition ends at the { opening the body")
	if err != nil {
		p.errs = append(p.errs, err)
		return nil
	}
	p.s.skipSpace()
	if !p.s.consume("{") {
		p.errorf(p.s.position(), "expected { after if condition", "")
		return nil
	}
	n := &ast.If{Cond: cond}
	n.Then = p.nodes('}')
	if !p.s.consume("}") {
		p.errorf(p.s.position(), "unterminated if body", "expected }")
		return nil
	}
	mark := *p.s
	p.s.skipSpace()
	if p.s.keywordAhead("else") {
		p.s.advance(len("else"))
		elseStart := p.s.position()
		p.s.skipSpace()
		if p.s.keywordAhead("if") {
			inner := p.ifNode()
			if innerIf, ok := inner.(*ast.If); ok {
				n.Else = &ast.ElseBranch{Range: ast.NewRange(elseStart, p.s.position()), If: innerIf}
			}
		} else {
			if !p.s.consume("{") {
				p.errorf(p.s.position(), "expected { after else", "")
				return nil
			}
			body := p.nodes('}')
			if !p.s.consume("}") {
				p.errorf(p.s.position(), "unterminated else body", "expected }")
				return nil
			}
			n.Else = &ast.ElseBranch{Range: ast.NewRange(elseStart, p.s.position()), Body: body}
		}
	} else {
		*p.s = mark
	}
	n.Range = ast.NewRange(start, p.s.position())
	return n
}

func (p *htmlParser) forNode() ast.Node {
	start := p.s.position()
	p.s.advance(len("for"))
	p.s.skipSpace()
	header, _, err := p.s.captureForHeader("{", "the loop header ends at the { opening the body")
	if err != nil {
		p.errs = append(p.errs, err)
		return nil
	}
	p.s.skipSpace()
	if !p.s.consume("{") {
		p.errorf(p.s.position(), "expected { after for header", "")
		return nil
	}
	body := p.nodes('}')
	if !p.s.consume("}") {
		p.errorf(p.s.position(), "unterminated for body", "expected }")
		return nil
	}
	return &ast.For{Range: ast.NewRange(start, p.s.position()), Header: header, Body: body}
}

func (p *htmlParser) whileNode() ast.Node {
	start := p.s.position()
	p.s.advance(len("while"))
	p.s.skipSpace()
	cond, _, err := p.s.captureExpr("{", "the condition ends at the { opening the body")
	if err != nil {
		p.errs = append(p.errs, err)
		return nil
	}
	p.s.skipSpace()
	if !p.s.consume("{") {
		p.errorf(p.s.position(), "expected { after while condition", "")
		return nil
	}
	body := p.nodes('}')
	if !p.s.consume("}") {
		p.errorf(p.s.position(), "unterminated while body", "expected }")
		return nil
	}
	return &ast.While{Range: ast.NewRange(start, p.s.position()), Cond: cond, Body: body}
}

// element parses `<…>` forms: elements, call nodes, and stray close tags
// (reported as errors).
func (p *htmlParser) element() ast.Node {
	start := p.s.position()
	p.s.next() // <
	if p.s.peek() == '/' {
		p.errorf(start, "close tag without a matching open tag", "")
		p.skipPastTagEnd()
		return nil
	}
	p.s.skipSpace()

	tag, ok := p.tagName()
	if !ok {
		p.skipPastTagEnd()
		return nil
	}

	// <F(args)/> writes the call's result into the output
	if tag.Kind == ast.TagPath && p.s.peek() == '(' {
		args, ok := p.balancedParens()
		if !ok {
			p.errorf(p.s.position(), "unterminated argument list", "expected )")
			return nil
		}
		p.s.skipSpace()
		if !p.s.consume("/>") {
			p.errorf(p.s.position(), "call nodes must self-close", "expected />")
			p.skipPastTagEnd()
			return nil
		}
		return &ast.FunctionCall{Range: ast.NewRange(start, p.s.position()), Name: tag.Name, Args: args}
	}

	el := &ast.Element{Tag: tag}
	for {
		p.s.skipSpace()
		if p.s.eof() {
			p.errorf(p.s.position(), "unterminated open tag", "expected > or />")
			return nil
		}
		if p.s.consume("/>") {
			el.SelfClosing = true
			el.Range = ast.NewRange(start, p.s.position())
			return el
		}
		if p.s.consume(">") {
			break
		}
		attr, ok := p.attr()
		if !ok {
			p.skipPastTagEnd()
			return nil
		}
		el.Attrs = append(el.Attrs, attr)
	}

	if tag.Kind == ast.TagPath && lexicon.RawText(tag.Name) {
		el.Script = p.rawText(tag.Name)
	} else {
		el.Children = p.nodes(0)
	}

	closePos := p.s.position()
	if !p.s.consume("</") {
		p.errorf(closePos, "unterminated element <"+tag.DisplayName()+">", "expected a close tag")
		el.Range = ast.NewRange(start, p.s.position())
		return el
	}
	p.s.skipSpace()
	close := &ast.CloseTag{Range: ast.NewRange(closePos, p.s.position())}
	if p.s.consume("_") {
		close.Wildcard = true
	} else {
		close.Name = p.s.identPath()
		for p.s.peek() == '-' && isIdentStart(p.s.peekAt(1)) {
			p.s.next()
			close.Name += "-" + p.s.ident()
		}
		if openName := tag.CloseName(); close.Name != openName {
			p.errorf(closePos, "mismatched close tag </"+close.Name+">",
				"open tag is <"+tag.DisplayName()+">; use </"+openName+"> or </_>")
		}
	}
	p.s.skipSpace()
	if !p.s.consume(">") {
		p.errorf(p.s.position(), "malformed close tag", "expected >")
	}
	close.Range.End = p.s.position()
	el.Close = close
	el.Range = ast.NewRange(start, p.s.position())
	return el
}

func (p *htmlParser) tagName() (ast.Tag, bool) {
	start := p.s.position()
	switch {
	case p.s.peek() == '{':
		p.s.next()
		expr, _, err := p.s.captureExpr("}", "a computed tag name holds one Go expression")
		if err != nil {
			p.errs = append(p.errs, err)
			return ast.Tag{}, false
		}
		p.s.skipSpace()
		if !p.s.consume("}") {
			p.errorf(p.s.position(), "unterminated computed tag name", "expected }")
			return ast.Tag{}, false
		}
		return ast.Tag{Range: ast.NewRange(start, p.s.position()), Kind: ast.TagExpr, Expr: expr}, true
	case p.s.peek() == '"' || p.s.peek() == '`':
		lit, ok := p.s.stringLit()
		if !ok {
			p.errorf(start, "malformed tag name literal", "")
			return ast.Tag{}, false
		}
		name, err := strconv.Unquote(lit)
		if err != nil {
			p.errorf(start, "malformed tag name literal", "")
			return ast.Tag{}, false
		}
		return ast.Tag{Range: ast.NewRange(start, p.s.position()), Kind: ast.TagString, Name: name}, true
	case isIdentStart(p.s.peek()):
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
		return ast.Tag{Range: ast.NewRange(start, p.s.position()), Kind: kind, Name: name}, true
	}
	p.errorf(start, "expected tag name", "")
	return ast.Tag{}, false
}

func (p *htmlParser) attr() (ast.Attr, bool) {
	start := p.s.position()
	a := ast.Attr{}
	switch {
	case p.s.peek() == '{':
		p.s.next()
		expr, _, err := p.s.captureExpr("}", "a computed attribute key holds one Go expression")
		if err != nil {
			p.errs = append(p.errs, err)
			return a, false
		}
		p.s.skipSpace()
		if !p.s.consume("}") {
			p.errorf(p.s.position(), "unterminated computed attribute key", "expected }")
			return a, false
		}
		a.Kind = ast.KeyExpr
		a.Expr = expr
	case p.s.peek() == '"' || p.s.peek() == '`':
		lit, ok := p.s.stringLit()
		if !ok {
			p.errorf(start, "malformed attribute key literal", "")
			return a, false
		}
		key, err := strconv.Unquote(lit)
		if err != nil {
			p.errorf(start, "malformed attribute key literal", "")
			return a, false
		}
		a.Kind = ast.KeyString
		a.Key = key
	case isIdentStart(p.s.peek()):
		name := p.s.ident()
		switch {
		case p.s.hasPrefix("::"):
			// hx::swap::oob rewrites to the hx-swap-oob custom attribute
			for p.s.consume("::") {
				seg := p.s.ident()
				if seg == "" {
					p.errorf(p.s.position(), "malformed attribute path", "expected identifier after ::")
					return a, false
				}
				name += "-" + seg
			}
			a.Kind = ast.KeyHx
			a.Key = name
		case p.s.peek() == '-' || p.s.peek() == ':':
			for {
				if p.s.peek() == '-' && isIdentPart(p.s.peekAt(1)) {
					p.s.next()
					name += "-" + p.s.ident()
					continue
				}
				if p.s.peek() == ':' && p.s.peekAt(1) != ':' && isIdentPart(p.s.peekAt(1)) {
					p.s.next()
					name += ":" + p.s.ident()
					continue
				}
				break
			}
			a.Kind = ast.KeyString
			a.Key = name
		default:
			a.Kind = ast.KeyIdent
			a.Key = name
		}
	default:
		p.errorf(start, "expected attribute", "")
		return a, false
	}

	// whitespace is allowed around = as in HTML
	save := *p.s
	p.s.skipSpace()
	if p.s.consume("=") {
		p.s.skipSpace()
		switch {
		case p.s.peek() == '{':
			p.s.next()
			expr, _, err := p.s.captureExpr("}", "an attribute value block holds one Go expression")
			if err != nil {
				p.errs = append(p.errs, err)
				return a, false
			}
			p.s.skipSpace()
			if !p.s.consume("}") {
				p.errorf(p.s.position(), "unterminated attribute value block", "expected }")
				return a, false
			}
			a.Value = expr
		default:
			expr, _, err := p.s.captureExpr(" \t\n\r>/", "attribute values are Go expressions; brace complex ones")
			if err != nil {
				p.errs = append(p.errs, err)
				return a, false
			}
			a.Value = expr
		}
	} else {
		*p.s = save
		a.Flag = true
	}
	a.Range = ast.NewRange(start, p.s.position())
	return a, true
}

// rawText captures a raw-text element body verbatim up to its close tag.
func (p *htmlParser) rawText(name string) *ast.ScriptBody {
	start := p.s.position()
	end := strings.Index(p.s.src[p.s.pos:], "</"+name)
	if end < 0 {
		p.errorf(start, "unterminated <"+name+"> body", "expected </"+name+">")
		p.s.advance(len(p.s.src) - p.s.pos)
		return &ast.ScriptBody{Range: ast.NewRange(start, p.s.position())}
	}
	src := p.s.src[p.s.pos : p.s.pos+end]
	p.s.advance(end)
	return &ast.ScriptBody{Range: ast.NewRange(start, p.s.position()), Source: src}
}

// balancedParens captures the contents of a parenthesized group, tracking
// nesting and string literals.
func (p *htmlParser) balancedParens() (string, bool) {
	p.s.next() // (
	start := p.s.pos
	depth := 1
	for !p.s.eof() {
		switch c := p.s.peek(); c {
		case '"', '`', '\'':
			if j, ok := skipLiteral(p.s.src, p.s.pos); ok {
				p.s.advance(j - p.s.pos)
				continue
			}
			return "", false
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				args := p.s.src[start:p.s.pos]
				p.s.next()
				return strings.TrimSpace(args), true
			}
		}
		p.s.next()
	}
	return "", false
}

// skipPastTagEnd recovers from a malformed tag by skipping to its closing >.
func (p *htmlParser) skipPastTagEnd() {
	for !p.s.eof() {
		if p.s.next() == '>' {
			return
		}
	}
}
