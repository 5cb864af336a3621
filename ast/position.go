package ast

import "fmt"

// Position is a location in an .rtml source file.
type Position struct {
	Offset int // byte offset from start of file
	Line   int // 1-indexed line number
	Column int // 1-indexed column number (in bytes)
}

// Range is a span of source code.
type Range struct {
	Start Position
	End   Position
}

// NewRange builds a Range from start and end positions.
func NewRange(start, end Position) Range {
	return Range{Start: start, End: end}
}

// IsValid reports whether the position has been set.
func (p Position) IsValid() bool { return p.Line > 0 }

// IsValid reports whether the range has been set.
func (r Range) IsValid() bool { return r.Start.IsValid() }

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
