package parser

import (
	goparser "go/parser"
	"strings"

	"github.com/rtml-dev/rtml/ast"
)

// captureExpr reads the prefix of the remaining input that parses as a Go
// expression and ends at a top-level occurrence of a stop byte. The scan
// tracks bracket depth, strings, runes, and comments, so stop bytes inside
// nested syntax never cut the expression. A `{` or `[` stop byte only cuts
// when whitespace precedes it; abutting ones belong to the expression, so
// `flags[0]` and `Point{1, 2}` survive while ` [` and ` {` open the body.
func (s *scanner) captureExpr(stops string, hint string) (string, ast.Range, *Error) {
	return s.capture(stops, hint, func(text string) bool {
		_, err := goparser.ParseExpr(text)
		return err == nil
	})
}

// captureForHeader is captureExpr for `for` headers, which are statements
// rather than expressions (`i := 0; i < n; i++`, `_, x := range xs`).
func (s *scanner) captureForHeader(stops string, hint string) (string, ast.Range, *Error) {
	return s.capture(stops, hint, func(text string) bool {
		src := "package p\nfunc _() {\nfor " + text + " {\n}\n}\n"
		_, err := goparser.ParseFile(fset(), "", src, 0)
		return err == nil
	})
}

func (s *scanner) capture(stops string, hint string, valid func(string) bool) (string, ast.Range, *Error) {
	start := s.position()
	var cuts []int
	depth := 0
	i := s.pos
scan:
	for i < len(s.src) {
		c := s.src[i]
		switch {
		case c == '"' || c == '`' || c == '\'':
			j, ok := skipLiteral(s.src, i)
			if !ok {
				break scan
			}
			i = j
			continue
		case c == '/' && i+1 < len(s.src) && s.src[i+1] == '/':
			for i < len(s.src) && s.src[i] != '\n' {
				i++
			}
			continue
		case c == '/' && i+1 < len(s.src) && s.src[i+1] == '*':
			j := strings.Index(s.src[i+2:], "*/")
			if j < 0 {
				break scan
			}
			i += 2 + j + 2
			continue
		}
		if depth == 0 {
			if strings.IndexByte(stops, c) >= 0 {
				opener := c == '{' || c == '['
				if !opener || i == s.pos || isSpaceByte(s.src[i-1]) {
					cuts = append(cuts, i)
				}
			} else if c == 'e' && strings.HasPrefix(s.src[i:], "else") &&
				(i+4 >= len(s.src) || !isIdentPart(s.src[i+4])) &&
				(i == s.pos || !isIdentPart(s.src[i-1])) {
				cuts = append(cuts, i)
			}
			if c == ')' || c == ']' || c == '}' {
				// closes the enclosing block; nothing past this can
				// belong to the expression
				break scan
			}
		}
		switch c {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		}
		i++
	}
	cuts = append(cuts, i)
	// shortest valid candidate wins: a later cut only extends the
	// expression when no earlier one parses
	for _, cut := range cuts {
		text := strings.TrimSpace(s.src[s.pos:cut])
		if text == "" {
			continue
		}
		if valid(text) {
			s.advance(cut - s.pos)
			return text, ast.NewRange(start, s.position()), nil
		}
	}
	return "", ast.Range{}, &Error{
		Path: s.path,
		Pos:  start,
		Msg:  "expected a Go expression",
		Hint: hint,
	}
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// skipLiteral advances past the string, raw string, or rune literal opening
// at src[i], returning the index one past its end.
func skipLiteral(src string, i int) (int, bool) {
	quote := src[i]
	i++
	for i < len(src) {
		switch src[i] {
		case '\\':
			if quote != '`' {
				i++
			}
		case quote:
			return i + 1, true
		case '\n':
			if quote != '`' {
				return 0, false
			}
		}
		i++
	}
	return 0, false
}
