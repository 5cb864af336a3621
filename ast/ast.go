// Package ast defines the template tree produced by both markup grammars.
// The two grammars normalize into the same node shapes, so equivalent
// templates compare equal here and lower to identical generated code.
package ast

// File is a parsed .rtml file.
type File struct {
	Package    string
	Imports    string // verbatim import block, possibly empty
	Components []*Component
	SourcePath string
}

// Component is one `component Name(params) { ... }` declaration.
type Component struct {
	Range  Range
	Name   string
	Params []Param
	Body   []Node
}

// Param is a component parameter. A parameter is optional when its type is
// bool, a pointer, or a slice, or when it carries an explicit default. The
// parameter named "body" is the children slot.
type Param struct {
	Range   Range
	Name    string
	Type    string
	Default string // Go expression, empty when none
}

// Optional reports whether the parameter may be left unset by callers.
func (p Param) Optional() bool {
	if p.Default != "" {
		return true
	}
	switch {
	case p.Type == "bool":
		return true
	case len(p.Type) > 0 && (p.Type[0] == '*' || p.Type[0] == '['):
		return true
	}
	return false
}

// Node is the interface for all body nodes.
type Node interface {
	node()
	GetRange() Range
}

// Text is literal text content, stored unescaped.
type Text struct {
	Range Range
	Value string
}

// Block is an opaque Go expression interpolated into the output.
type Block struct {
	Range Range
	Expr  string
}

// If is a conditional with an optional else branch.
type If struct {
	Range Range
	Cond  string
	Then  []Node
	Else  *ElseBranch
}

// ElseBranch is either an else-if chain (If non-nil) or a plain else body.
type ElseBranch struct {
	Range Range
	If    *If
	Body  []Node
}

// For is a loop with a Go for-header. Both grammars normalize their loop
// sugar (`for pat in expr`, plain range headers) into Header before this
// node is built.
type For struct {
	Range  Range
	Header string
	Body   []Node
}

// While is a condition-only loop.
type While struct {
	Range Range
	Cond  string
	Body  []Node
}

// FunctionCall is an inline call node `<F(args)/>` whose result is written
// to the output.
type FunctionCall struct {
	Range Range
	Name  string // possibly a dotted path
	Args  string // verbatim argument list
}

// TagKind discriminates how an element was named.
type TagKind int

const (
	// TagPath is an identifier path: a native tag or a component reference.
	TagPath TagKind = iota
	// TagString is a literal custom-element name, validated against the
	// custom-element name production.
	TagString
	// TagExpr is a computed custom-element name, validated at run time.
	TagExpr
)

// Tag names an element.
type Tag struct {
	Range Range
	Kind  TagKind
	Name  string // TagPath, TagString
	Expr  string // TagExpr
}

// DisplayName renders the tag for diagnostics.
func (t Tag) DisplayName() string {
	if t.Kind == TagExpr {
		return "{" + t.Expr + "}"
	}
	return t.Name
}

// CloseName is the spelling an explicit close tag must use. Computed tags
// have none; they close with the wildcard.
func (t Tag) CloseName() string {
	if t.Kind == TagExpr {
		return ""
	}
	return t.Name
}

// KeyKind discriminates how an attribute was keyed.
type KeyKind int

const (
	// KeyIdent is a plain identifier key, resolved against the lexicon or a
	// component's fields.
	KeyIdent KeyKind = iota
	// KeyHx is an hx::a::b path, already rewritten to its hx-a-b form.
	KeyHx
	// KeyString is a literal custom-attribute key (dashed or quoted).
	KeyString
	// KeyExpr is a computed custom-attribute key, validated at run time.
	KeyExpr
)

// Attr is one attribute on an element. A nil Value means the attribute was
// written as a bare flag.
type Attr struct {
	Range Range
	Kind  KeyKind
	Key   string // KeyIdent, KeyHx, KeyString
	Expr  string // KeyExpr: the key expression
	Value string // Go expression, empty for a bare flag
	Flag  bool   // true when written without a value
}

// ScriptBody is the unparsed source of a raw-text element body. The script
// transpiler consumes it during generation.
type ScriptBody struct {
	Range  Range
	Source string
}

// CloseTag records how an element was closed. A wildcard close `</_>`
// matches any open tag.
type CloseTag struct {
	Range    Range
	Wildcard bool
	Name     string
}

// Element is a markup element: native, custom, or a component reference.
// Exactly one of Children and Script is populated for non-void elements;
// SelfClosing elements have neither.
type Element struct {
	Range       Range
	Tag         Tag
	Attrs       []Attr
	SelfClosing bool
	Children    []Node
	Script      *ScriptBody
	Close       *CloseTag // nil when self-closing
}

func (*Text) node()         {}
func (*Block) node()        {}
func (*If) node()           {}
func (*For) node()          {}
func (*While) node()        {}
func (*FunctionCall) node() {}
func (*Element) node()      {}

func (n *Text) GetRange() Range         { return n.Range }
func (n *Block) GetRange() Range        { return n.Range }
func (n *If) GetRange() Range           { return n.Range }
func (n *For) GetRange() Range          { return n.Range }
func (n *While) GetRange() Range        { return n.Range }
func (n *FunctionCall) GetRange() Range { return n.Range }
func (n *Element) GetRange() Range      { return n.Range }
