package script

import "fmt"

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString   // quoted string literal, text includes the quotes
	tokTemplate // $"..." template string, text excludes $ and quotes
	tokSplice   // $ident host splice, text excludes the $
	tokPunct
)

type token struct {
	kind tokenKind
	text string
	off  int
}

// Error is a transpile failure at a byte offset into the script source.
type Error struct {
	Off int
	Msg string
}

func (e *Error) Error() string { return fmt.Sprintf("script: %s", e.Msg) }

func errAt(off int, format string, args ...any) *Error {
	return &Error{Off: off, Msg: fmt.Sprintf(format, args...)}
}

type lexer struct {
	src string
	pos int
}

func (l *lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
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

// two-byte punctuation, checked before single bytes
var punct2 = []string{"==", "!=", ">=", "<=", "&&", "||"}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, off: start}, nil
	}
	c := l.src[l.pos]
	switch {
	case isIdentStart(c):
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokIdent, text: l.src[start:l.pos], off: start}, nil
	case c >= '0' && c <= '9':
		for l.pos < len(l.src) && (l.src[l.pos] >= '0' && l.src[l.pos] <= '9' || l.src[l.pos] == '.' || l.src[l.pos] == '_') {
			l.pos++
		}
		return token{kind: tokNumber, text: l.src[start:l.pos], off: start}, nil
	case c == '"':
		text, err := l.stringLit()
		if err != nil {
			return token{}, err
		}
		return token{kind: tokString, text: text, off: start}, nil
	case c == '$':
		l.pos++
		if l.peekByte() == '"' {
			text, err := l.stringLit()
			if err != nil {
				return token{}, err
			}
			return token{kind: tokTemplate, text: text[1 : len(text)-1], off: start}, nil
		}
		if !isIdentStart(l.peekByte()) {
			return token{}, errAt(start, "expected identifier or string after $")
		}
		is := l.pos
		for l.pos < len(l.src) && isIdentPart(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokSplice, text: l.src[is:l.pos], off: start}, nil
	}
	for _, p := range punct2 {
		if len(l.src)-l.pos >= 2 && l.src[l.pos:l.pos+2] == p {
			l.pos += 2
			return token{kind: tokPunct, text: p, off: start}, nil
		}
	}
	switch c {
	case '+', '-', '*', '/', '<', '>', '!', '=', '(', ')', '[', ']', '{', '}', ',', ';', ':', '.':
		l.pos++
		return token{kind: tokPunct, text: string(c), off: start}, nil
	}
	return token{}, errAt(start, "unexpected character %q", c)
}

// stringLit consumes a double-quoted literal including its quotes.
func (l *lexer) stringLit() (string, error) {
	start := l.pos
	l.pos++ // opening quote
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.pos += 2
		case '"':
			l.pos++
			return l.src[start:l.pos], nil
		default:
			l.pos++
		}
	}
	return "", errAt(start, "unterminated string literal")
}
