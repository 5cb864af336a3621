// Package parser turns .rtml source into the template AST. A file is a
// package clause, optional imports, and component declarations; a component
// body in braces uses the HTML-tag grammar, a body in brackets the bracket
// grammar. The HTML grammar accumulates diagnostics and keeps parsing; the
// bracket grammar stops at its first error.
package parser

import (
	"go/token"

	"github.com/rtml-dev/rtml/ast"
)

func fset() *token.FileSet { return token.NewFileSet() }

// ParseFile parses one .rtml file. The returned error, when non-nil, is an
// ErrorList.
func ParseFile(path, src string) (*ast.File, error) {
	s := newScanner(path, src)
	f := &ast.File{SourcePath: path}
	var errs ErrorList

	s.skipSpace()
	if !s.consume("package") {
		errs = append(errs, &Error{Path: path, Pos: s.position(), Msg: "expected package clause"})
		return f, errs.Err()
	}
	s.skipSpace()
	f.Package = s.ident()
	if f.Package == "" {
		errs = append(errs, &Error{Path: path, Pos: s.position(), Msg: "expected package name"})
		return f, errs.Err()
	}

	s.skipSpace()
	for s.keywordAhead("import") {
		start := s.pos
		s.advance(len("import"))
		s.skipSpace()
		if s.peek() == '(' {
			depth := 0
			for !s.eof() {
				switch s.next() {
				case '(':
					depth++
				case ')':
					depth--
				}
				if depth == 0 {
					break
				}
			}
		} else if _, ok := s.stringLit(); !ok {
			errs = append(errs, &Error{Path: path, Pos: s.position(), Msg: "malformed import"})
			return f, errs.Err()
		}
		if f.Imports != "" {
			f.Imports += "\n"
		}
		f.Imports += s.src[start:s.pos]
		s.skipSpace()
	}

	for {
		s.skipSpace()
		if s.eof() {
			break
		}
		if !s.keywordAhead("component") {
			errs = append(errs, &Error{
				Path: path,
				Pos:  s.position(),
				Msg:  "expected component declaration",
				Hint: "only component declarations may follow the imports",
			})
			break
		}
		c, cerrs := parseComponent(s)
		errs = append(errs, cerrs...)
		if c == nil {
			break
		}
		f.Components = append(f.Components, c)
	}
	return f, errs.Err()
}

// parseComponent parses one declaration. A nil component means parsing
// cannot continue past this point.
func parseComponent(s *scanner) (*ast.Component, ErrorList) {
	var errs ErrorList
	start := s.position()
	s.advance(len("component"))
	s.skipSpace()
	name := s.ident()
	if name == "" {
		errs = append(errs, &Error{Path: s.path, Pos: s.position(), Msg: "expected component name"})
		return nil, errs
	}
	s.skipSpace()
	if s.peek() == '[' {
		errs = append(errs, &Error{
			Path: s.path,
			Pos:  s.position(),
			Msg:  "components cannot be generic",
			Hint: "remove the type parameter list",
		})
		return nil, errs
	}
	if !s.consume("(") {
		errs = append(errs, &Error{Path: s.path, Pos: s.position(), Msg: "expected parameter list"})
		return nil, errs
	}

	c := &ast.Component{Name: name}
	bodyParams := 0
	for {
		s.skipSpace()
		if s.consume(")") {
			break
		}
		if len(c.Params) > 0 && !s.consume(",") {
			errs = append(errs, &Error{Path: s.path, Pos: s.position(), Msg: "expected , or ) in parameter list"})
			return nil, errs
		}
		s.skipSpace()
		if s.consume(")") {
			break
		}
		p, err := parseParam(s)
		if err != nil {
			errs = append(errs, err)
			return nil, errs
		}
		if p.Name == "self" {
			errs = append(errs, &Error{
				Path: s.path,
				Pos:  p.Range.Start,
				Msg:  "components do not take a receiver",
				Hint: "remove the self parameter",
			})
		}
		if p.Name == "body" {
			bodyParams++
			if bodyParams > 1 {
				errs = append(errs, &Error{
					Path: s.path,
					Pos:  p.Range.Start,
					Msg:  "only one body parameter is allowed",
				})
			}
		}
		c.Params = append(c.Params, p)
	}

	s.skipSpace()
	switch s.peek() {
	case '{':
		s.next()
		hp := &htmlParser{s: s}
		c.Body = hp.nodes('}')
		if !s.consume("}") {
			hp.errorf(s.position(), "unterminated component body", "expected }")
		}
		errs = append(errs, hp.errs...)
	case '[':
		s.next()
		rp := &rustyParser{s: s}
		body, err := rp.nodes()
		if err != nil {
			errs = append(errs, err)
			return nil, errs
		}
		if !s.consume("]") {
			errs = append(errs, &Error{Path: s.path, Pos: s.position(), Msg: "unterminated component body", Hint: "expected ]"})
			return nil, errs
		}
		c.Body = body
	default:
		errs = append(errs, &Error{
			Path: s.path,
			Pos:  s.position(),
			Msg:  "expected component body",
			Hint: "components do not declare return values; open the body with { or [",
		})
		return nil, errs
	}
	c.Range = ast.NewRange(start, s.position())
	return c, errs
}

func parseParam(s *scanner) (ast.Param, *Error) {
	start := s.position()
	name := s.ident()
	if name == "" {
		return ast.Param{}, &Error{Path: s.path, Pos: start, Msg: "expected parameter name"}
	}
	s.skipSpace()
	typ, _, err := s.captureExpr(",)=", "expected a parameter type")
	if err != nil {
		return ast.Param{}, err
	}
	p := ast.Param{Name: name, Type: typ}
	s.skipSpace()
	if s.consume("=") {
		s.skipSpace()
		def, _, err := s.captureExpr(",)", "expected a default value expression")
		if err != nil {
			return ast.Param{}, err
		}
		p.Default = def
	}
	p.Range = ast.NewRange(start, s.position())
	return p, nil
}
