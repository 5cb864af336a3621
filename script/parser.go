package script

import "strings"

type parser struct {
	lex lexer
	tok token
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) at(kind tokenKind, text string) bool {
	return p.tok.kind == kind && p.tok.text == text
}

func (p *parser) expect(kind tokenKind, text string) error {
	if !p.at(kind, text) {
		return errAt(p.tok.off, "expected %q, found %q", text, p.tok.text)
	}
	return p.advance()
}

// program parses statements until EOF.
func (p *parser) program() (frag, error) {
	var out frag
	for p.tok.kind != tokEOF {
		stmt, err := p.statement(false)
		if err != nil {
			return frag{}, err
		}
		out = out.cat(stmt, true)
	}
	return out, nil
}

// statement parses one statement. Inside a fn body a trailing expression
// without a semicolon becomes a return statement.
func (p *parser) statement(inFn bool) (frag, error) {
	switch {
	case p.at(tokIdent, "let"):
		return p.letStatement()
	case p.at(tokIdent, "fn"):
		return p.fnStatement()
	}
	expr, err := p.expression()
	if err != nil {
		return frag{}, err
	}
	if p.at(tokPunct, ";") {
		if err := p.advance(); err != nil {
			return frag{}, err
		}
		return expr.glue(";"), nil
	}
	atEnd := p.tok.kind == tokEOF || p.at(tokPunct, "}")
	if !atEnd {
		return frag{}, errAt(p.tok.off, "expected ; after expression, found %q", p.tok.text)
	}
	if inFn {
		return text("return").cat(expr, true).glue(";"), nil
	}
	return expr.glue(";"), nil
}

// letStatement handles `let`, `let pub`, and `let mut` bindings, mapped to
// const, var, and let.
func (p *parser) letStatement() (frag, error) {
	if err := p.advance(); err != nil {
		return frag{}, err
	}
	keyword := "const"
	switch {
	case p.at(tokIdent, "pub"):
		keyword = "var"
		if err := p.advance(); err != nil {
			return frag{}, err
		}
	case p.at(tokIdent, "mut"):
		keyword = "let"
		if err := p.advance(); err != nil {
			return frag{}, err
		}
	}
	pat, err := p.pattern()
	if err != nil {
		return frag{}, err
	}
	if err := p.expect(tokPunct, "="); err != nil {
		return frag{}, err
	}
	expr, err := p.expression()
	if err != nil {
		return frag{}, err
	}
	out := text(keyword).js(pat).js("=").cat(expr, true)
	if p.at(tokPunct, ";") {
		if err := p.advance(); err != nil {
			return frag{}, err
		}
	}
	return out.glue(";"), nil
}

// pattern parses a binding pattern and returns its JS form: identifiers pass
// through, tuple and array patterns become array destructuring, struct
// patterns become object destructuring.
func (p *parser) pattern() (string, error) {
	switch {
	case p.tok.kind == tokIdent:
		name := p.tok.text
		return name, p.advance()
	case p.at(tokPunct, "(") || p.at(tokPunct, "["):
		close := ")"
		if p.tok.text == "[" {
			close = "]"
		}
		if err := p.advance(); err != nil {
			return "", err
		}
		var names []string
		for !p.at(tokPunct, close) {
			if len(names) > 0 {
				if err := p.expect(tokPunct, ","); err != nil {
					return "", err
				}
			}
			if p.tok.kind != tokIdent {
				return "", errAt(p.tok.off, "expected identifier in pattern, found %q", p.tok.text)
			}
			names = append(names, p.tok.text)
			if err := p.advance(); err != nil {
				return "", err
			}
		}
		if err := p.advance(); err != nil {
			return "", err
		}
		return "[" + strings.Join(names, ", ") + "]", nil
	case p.at(tokPunct, "{"):
		if err := p.advance(); err != nil {
			return "", err
		}
		var entries []string
		for !p.at(tokPunct, "}") {
			if len(entries) > 0 {
				if err := p.expect(tokPunct, ","); err != nil {
					return "", err
				}
			}
			if p.tok.kind != tokIdent {
				return "", errAt(p.tok.off, "expected identifier in pattern, found %q", p.tok.text)
			}
			entry := p.tok.text
			if err := p.advance(); err != nil {
				return "", err
			}
			if p.at(tokPunct, ":") {
				if err := p.advance(); err != nil {
					return "", err
				}
				if p.tok.kind != tokIdent {
					return "", errAt(p.tok.off, "expected identifier in pattern, found %q", p.tok.text)
				}
				entry += ": " + p.tok.text
				if err := p.advance(); err != nil {
					return "", err
				}
			}
			entries = append(entries, entry)
		}
		if err := p.advance(); err != nil {
			return "", err
		}
		return "{" + strings.Join(entries, ", ") + "}", nil
	}
	return "", errAt(p.tok.off, "expected binding pattern, found %q", p.tok.text)
}

// fnStatement parses `fn name(params) { body }` into a JS function
// declaration.
func (p *parser) fnStatement() (frag, error) {
	if err := p.advance(); err != nil {
		return frag{}, err
	}
	if p.tok.kind != tokIdent {
		return frag{}, errAt(p.tok.off, "expected function name, found %q", p.tok.text)
	}
	name := p.tok.text
	if err := p.advance(); err != nil {
		return frag{}, err
	}
	if err := p.expect(tokPunct, "("); err != nil {
		return frag{}, err
	}
	var params []string
	for !p.at(tokPunct, ")") {
		if len(params) > 0 {
			if err := p.expect(tokPunct, ","); err != nil {
				return frag{}, err
			}
		}
		if p.tok.kind != tokIdent {
			return frag{}, errAt(p.tok.off, "expected parameter name, found %q", p.tok.text)
		}
		params = append(params, p.tok.text)
		if err := p.advance(); err != nil {
			return frag{}, err
		}
	}
	if err := p.advance(); err != nil {
		return frag{}, err
	}
	if err := p.expect(tokPunct, "{"); err != nil {
		return frag{}, err
	}
	out := text("function").js(name).glue("(" + strings.Join(params, ", ") + ")").js("{")
	for !p.at(tokPunct, "}") {
		if p.tok.kind == tokEOF {
			return frag{}, errAt(p.tok.off, "unterminated function body")
		}
		stmt, err := p.statement(true)
		if err != nil {
			return frag{}, err
		}
		out = out.cat(stmt, true)
	}
	if err := p.advance(); err != nil {
		return frag{}, err
	}
	return out.js("}"), nil
}

var binaryOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"==": true, "!=": true, ">": true, ">=": true, "<": true, "<=": true,
	"&&": true, "||": true,
}

// expression parses a flat left-associative chain of binary operators.
// Precedence is deliberately not modeled; parenthesize to group.
func (p *parser) expression() (frag, error) {
	out, err := p.unary()
	if err != nil {
		return frag{}, err
	}
	for p.tok.kind == tokPunct && binaryOps[p.tok.text] {
		op := p.tok.text
		if err := p.advance(); err != nil {
			return frag{}, err
		}
		right, err := p.unary()
		if err != nil {
			return frag{}, err
		}
		out = out.js(op).cat(right, true)
	}
	return out, nil
}

func (p *parser) unary() (frag, error) {
	if p.at(tokPunct, "!") || p.at(tokPunct, "-") {
		op := p.tok.text
		if err := p.advance(); err != nil {
			return frag{}, err
		}
		operand, err := p.unary()
		if err != nil {
			return frag{}, err
		}
		return text(op).cat(operand, false), nil
	}
	return p.postfix()
}

// postfix parses a primary followed by field accesses, calls, and index
// expressions.
func (p *parser) postfix() (frag, error) {
	out, err := p.primary()
	if err != nil {
		return frag{}, err
	}
	for {
		switch {
		case p.at(tokPunct, "."):
			if err := p.advance(); err != nil {
				return frag{}, err
			}
			if p.tok.kind != tokIdent {
				return frag{}, errAt(p.tok.off, "expected field name after ., found %q", p.tok.text)
			}
			out = out.glue("." + p.tok.text)
			if err := p.advance(); err != nil {
				return frag{}, err
			}
		case p.at(tokPunct, "("):
			if err := p.advance(); err != nil {
				return frag{}, err
			}
			out = out.glue("(")
			first := true
			for !p.at(tokPunct, ")") {
				if !first {
					if err := p.expect(tokPunct, ","); err != nil {
						return frag{}, err
					}
					out = out.glue(",").glue(" ")
				}
				first = false
				arg, err := p.expression()
				if err != nil {
					return frag{}, err
				}
				out = out.cat(arg, false)
			}
			if err := p.advance(); err != nil {
				return frag{}, err
			}
			out = out.glue(")")
		case p.at(tokPunct, "["):
			if err := p.advance(); err != nil {
				return frag{}, err
			}
			idx, err := p.expression()
			if err != nil {
				return frag{}, err
			}
			if err := p.expect(tokPunct, "]"); err != nil {
				return frag{}, err
			}
			out = out.glue("[").cat(idx, false).glue("]")
		default:
			return out, nil
		}
	}
}

func (p *parser) primary() (frag, error) {
	tok := p.tok
	switch tok.kind {
	case tokNumber, tokString:
		return text(tok.text), p.advance()
	case tokTemplate:
		// $"Hi ${name}" becomes a JS template literal; the ${...} holes
		// already name JS bindings and pass through untouched.
		return text("`" + tok.text + "`"), p.advance()
	case tokSplice:
		return frag{}.splice(tok.text), p.advance()
	case tokIdent:
		return text(tok.text), p.advance()
	case tokPunct:
		switch tok.text {
		case "(":
			return p.parenOrTuple()
		case "[":
			return p.arrayLiteral()
		case "{":
			return p.objectLiteral()
		}
	}
	return frag{}, errAt(tok.off, "expected expression, found %q", tok.text)
}

// parenOrTuple distinguishes a grouped expression from a tuple literal;
// tuples become JS arrays.
func (p *parser) parenOrTuple() (frag, error) {
	if err := p.advance(); err != nil {
		return frag{}, err
	}
	var elems []frag
	for !p.at(tokPunct, ")") {
		if len(elems) > 0 {
			if err := p.expect(tokPunct, ","); err != nil {
				return frag{}, err
			}
		}
		e, err := p.expression()
		if err != nil {
			return frag{}, err
		}
		elems = append(elems, e)
	}
	if err := p.advance(); err != nil {
		return frag{}, err
	}
	if len(elems) == 1 {
		return text("(").cat(elems[0], false).glue(")"), nil
	}
	return joinElems("[", elems, "]"), nil
}

func (p *parser) arrayLiteral() (frag, error) {
	if err := p.advance(); err != nil {
		return frag{}, err
	}
	var elems []frag
	for !p.at(tokPunct, "]") {
		if len(elems) > 0 {
			if err := p.expect(tokPunct, ","); err != nil {
				return frag{}, err
			}
		}
		e, err := p.expression()
		if err != nil {
			return frag{}, err
		}
		elems = append(elems, e)
	}
	if err := p.advance(); err != nil {
		return frag{}, err
	}
	return joinElems("[", elems, "]"), nil
}

// objectLiteral parses `{a, b: expr}` into a JS object literal.
func (p *parser) objectLiteral() (frag, error) {
	if err := p.advance(); err != nil {
		return frag{}, err
	}
	var elems []frag
	for !p.at(tokPunct, "}") {
		if len(elems) > 0 {
			if err := p.expect(tokPunct, ","); err != nil {
				return frag{}, err
			}
		}
		if p.tok.kind != tokIdent {
			return frag{}, errAt(p.tok.off, "expected field name, found %q", p.tok.text)
		}
		entry := text(p.tok.text)
		if err := p.advance(); err != nil {
			return frag{}, err
		}
		if p.at(tokPunct, ":") {
			if err := p.advance(); err != nil {
				return frag{}, err
			}
			val, err := p.expression()
			if err != nil {
				return frag{}, err
			}
			entry = entry.glue(":").cat(val, true)
		}
		elems = append(elems, entry)
	}
	if err := p.advance(); err != nil {
		return frag{}, err
	}
	return joinElems("{", elems, "}"), nil
}

func joinElems(open string, elems []frag, close string) frag {
	out := text(open)
	for i, e := range elems {
		if i > 0 {
			out = out.glue(", ")
		}
		out = out.cat(e, false)
	}
	return out.glue(close)
}
