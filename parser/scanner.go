package parser

import (
	"strings"

	"github.com/rtml-dev/rtml/ast"
)

// scanner is a byte cursor over .rtml source with line and column tracking.
// Both grammars share it.
type scanner struct {
	src  string
	path string
	pos  int
	line int
	col  int
}

func newScanner(path, src string) *scanner {
	return &scanner{src: src, path: path, line: 1, col: 1}
}

func (s *scanner) position() ast.Position {
	return ast.Position{Offset: s.pos, Line: s.line, Column: s.col}
}

// positionAt recomputes the position of an arbitrary offset. Used when an
// error is found inside previously captured text.
func (s *scanner) positionAt(off int) ast.Position {
	line, col := 1, 1
	for i := 0; i < off && i < len(s.src); i++ {
		if s.src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return ast.Position{Offset: off, Line: line, Column: col}
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

func (s *scanner) peekAt(n int) byte {
	if s.pos+n >= len(s.src) {
		return 0
	}
	return s.src[s.pos+n]
}

func (s *scanner) next() byte {
	if s.eof() {
		return 0
	}
	c := s.src[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return c
}

// advance moves past n bytes already inspected with peek/hasPrefix.
func (s *scanner) advance(n int) {
	for i := 0; i < n; i++ {
		s.next()
	}
}

func (s *scanner) hasPrefix(p string) bool {
	return strings.HasPrefix(s.src[s.pos:], p)
}

// consume advances past p when it is next in the input.
func (s *scanner) consume(p string) bool {
	if !s.hasPrefix(p) {
		return false
	}
	s.advance(len(p))
	return true
}

// skipSpace skips whitespace and Go-style comments.
func (s *scanner) skipSpace() {
	for !s.eof() {
		switch {
		case s.peek() == ' ' || s.peek() == '\t' || s.peek() == '\n' || s.peek() == '\r':
			s.next()
		case s.hasPrefix("//"):
			for !s.eof() && s.peek() != '\n' {
				s.next()
			}
		case s.hasPrefix("/*"):
			s.advance(2)
			for !s.eof() && !s.hasPrefix("*/") {
				s.next()
			}
			s.advance(2)
		default:
			return
		}
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}

// ident reads a Go identifier, empty when none starts here.
func (s *scanner) ident() string {
	if !isIdentStart(s.peek()) {
		return ""
	}
	start := s.pos
	for !s.eof() && isIdentPart(s.peek()) {
		s.next()
	}
	return s.src[start:s.pos]
}

// identPath reads a dot-separated identifier path (pkg.Name).
func (s *scanner) identPath() string {
	first := s.ident()
	if first == "" {
		return ""
	}
	path := first
	for s.peek() == '.' && isIdentStart(s.peekAt(1)) {
		s.next()
		path += "." + s.ident()
	}
	return path
}

// stringLit reads a Go string literal (interpreted or raw) including its
// quotes. The bool is false when the input here is not a string.
func (s *scanner) stringLit() (string, bool) {
	switch s.peek() {
	case '"':
		start := s.pos
		s.next()
		for !s.eof() {
			switch s.peek() {
			case '\\':
				s.next()
				s.next()
			case '"':
				s.next()
				return s.src[start:s.pos], true
			case '\n':
				return "", false
			default:
				s.next()
			}
		}
		return "", false
	case '`':
		start := s.pos
		s.next()
		for !s.eof() {
			if s.next() == '`' {
				return s.src[start:s.pos], true
			}
		}
		return "", false
	}
	return "", false
}

// keywordAhead reports whether the next token is exactly the given keyword.
func (s *scanner) keywordAhead(kw string) bool {
	if !s.hasPrefix(kw) {
		return false
	}
	return !isIdentPart(s.peekAt(len(kw)))
}
