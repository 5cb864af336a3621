package generator

import (
	"strconv"
	"strings"

	xhtml "golang.org/x/net/html"

	"github.com/rtml-dev/rtml/ast"
	"github.com/rtml-dev/rtml/lexicon"
)

func (g *gen) nodes(nodes []ast.Node) {
	for _, n := range nodes {
		g.node(n)
	}
}

func (g *gen) node(n ast.Node) {
	switch n := n.(type) {
	case *ast.Text:
		// literal text gets its single escape pass here, at compile time
		g.line("h.WriteRaw(%s)", strconv.Quote(xhtml.EscapeString(n.Value)))
	case *ast.Block:
		g.line("rtml.Write(h, %s)", n.Expr)
	case *ast.If:
		g.ifNode(n)
	case *ast.For:
		g.line("for %s {", n.Header)
		g.indent++
		g.nodes(n.Body)
		g.indent--
		g.line("}")
	case *ast.While:
		g.line("for %s {", n.Cond)
		g.indent++
		g.nodes(n.Body)
		g.indent--
		g.line("}")
	case *ast.FunctionCall:
		g.line("rtml.Write(h, %s(%s))", n.Name, n.Args)
	case *ast.Element:
		g.element(n)
	}
}

func (g *gen) ifNode(n *ast.If) {
	g.line("if %s {", n.Cond)
	g.indent++
	g.nodes(n.Then)
	g.indent--
	for e := n.Else; e != nil; {
		if e.If != nil {
			g.line("} else if %s {", e.If.Cond)
			g.indent++
			g.nodes(e.If.Then)
			g.indent--
			e = e.If.Else
			continue
		}
		g.line("} else {")
		g.indent++
		g.nodes(e.Body)
		g.indent--
		break
	}
	g.line("}")
}

// isComponentRef reports whether a path tag names a component rather than a
// markup element: an exported name, or a dotted package path.
func isComponentRef(name string) bool {
	if strings.Contains(name, ".") {
		return true
	}
	return name[0] >= 'A' && name[0] <= 'Z'
}

func (g *gen) element(n *ast.Element) {
	if n.Tag.Kind == ast.TagPath && isComponentRef(n.Tag.Name) {
		g.componentRef(n)
		return
	}

	var chain strings.Builder
	var tag lexicon.Tag
	native := false
	switch n.Tag.Kind {
	case ast.TagPath:
		if t, ok := lexicon.Element(n.Tag.Name); ok {
			tag, native = t, true
			chain.WriteString("rtml.Native(h, " + strconv.Quote(n.Tag.Name) + ")")
		} else {
			if !lexicon.ValidTagName(n.Tag.Name) {
				g.errorf(n.Tag.Range.Start, "invalid custom element name "+strconv.Quote(n.Tag.Name), "")
				return
			}
			chain.WriteString("rtml.CustomUnchecked(h, " + strconv.Quote(n.Tag.Name) + ")")
		}
	case ast.TagString:
		if !lexicon.ValidTagName(n.Tag.Name) {
			g.errorf(n.Tag.Range.Start, "invalid custom element name "+strconv.Quote(n.Tag.Name), "")
			return
		}
		chain.WriteString("rtml.CustomUnchecked(h, " + strconv.Quote(n.Tag.Name) + ")")
	case ast.TagExpr:
		chain.WriteString("rtml.Custom(h, " + n.Tag.Expr + ")")
	}

	for _, a := range n.Attrs {
		call, ok := g.attrCall(n.Tag, tag, native, a)
		if !ok {
			return
		}
		chain.WriteString(call)
	}

	switch {
	case n.Script != nil:
		if native && !tag.RawText {
			g.errorf(n.Range.Start, "<"+n.Tag.Name+"> does not take script content", "")
			return
		}
		g.scriptBody(chain.String(), n.Script)
	case native && tag.Void:
		if len(n.Children) > 0 {
			g.errorf(n.Range.Start, "void element <"+n.Tag.Name+"> cannot have children", "")
			return
		}
		g.line("%s.Close()", chain.String())
	case native && tag.RawText:
		g.scriptBody(chain.String(), &ast.ScriptBody{Range: n.Range})
	case len(n.Children) == 0:
		g.line("%s.Close()", chain.String())
	default:
		g.line("%s.Body(func(h *rtml.HTML) {", chain.String())
		g.indent++
		g.nodes(n.Children)
		g.indent--
		g.line("})")
	}
}

// attrCall lowers one attribute into a builder call, validating identifier
// keys on native elements against the lexicon.
func (g *gen) attrCall(t ast.Tag, tag lexicon.Tag, native bool, a ast.Attr) (string, bool) {
	switch a.Kind {
	case ast.KeyIdent:
		if native {
			kind, ok := lexicon.AttrKind(tag.Name, a.Key)
			if !ok {
				g.errorf(a.Range.Start, "unknown attribute "+a.Key+" on <"+tag.Name+">",
					"use a data-* attribute or a quoted custom key")
				return "", false
			}
			switch kind {
			case lexicon.Flag:
				if a.Flag {
					return ".Flag(" + strconv.Quote(a.Key) + ", true)", true
				}
				return ".Flag(" + strconv.Quote(a.Key) + ", " + a.Value + ")", true
			case lexicon.Value, lexicon.Number, lexicon.DateTime:
				if a.Flag {
					g.errorf(a.Range.Start, "attribute "+a.Key+" needs a value", "")
					return "", false
				}
			}
		}
		fallthrough
	case ast.KeyHx, ast.KeyString:
		key := a.Key
		if !lexicon.ValidAttrKey(key) {
			g.errorf(a.Range.Start, "invalid attribute name "+strconv.Quote(key), "")
			return "", false
		}
		if a.Flag {
			return ".Flag(" + strconv.Quote(key) + ", true)", true
		}
		if isStringLiteral(a.Value) {
			return ".Attr(" + strconv.Quote(key) + ", " + a.Value + ")", true
		}
		return ".Set(" + strconv.Quote(key) + ", rtml.ToAttr(" + a.Value + "))", true
	case ast.KeyExpr:
		if a.Flag {
			return ".CustomAttr(" + a.Expr + ", true)", true
		}
		return ".CustomAttr(" + a.Expr + ", " + a.Value + ")", true
	}
	return "", false
}

func isStringLiteral(expr string) bool {
	if len(expr) < 2 {
		return false
	}
	return expr[0] == '"' && expr[len(expr)-1] == '"' ||
		expr[0] == '`' && expr[len(expr)-1] == '`'
}

// componentRef lowers a component reference into its builder chain.
// Attributes must be identifier keys; they become field setters.
func (g *gen) componentRef(n *ast.Element) {
	var chain strings.Builder
	chain.WriteString(n.Tag.Name + "(h)")
	for _, a := range n.Attrs {
		if a.Kind != ast.KeyIdent {
			g.errorf(a.Range.Start, "components take only identifier attributes",
				"custom and computed keys apply to markup elements")
			return
		}
		setter := lexicon.Setter(a.Key)
		if a.Flag {
			chain.WriteString("." + setter + "(true)")
		} else {
			chain.WriteString("." + setter + "(" + a.Value + ")")
		}
	}
	if len(n.Children) == 0 && n.Script == nil {
		g.line("%s.Close()", chain.String())
	} else {
		g.line("%s.Body(func(h *rtml.HTML) {", chain.String())
		g.indent++
		g.nodes(n.Children)
		g.indent--
		g.line("})")
	}
	if n.Close != nil && !n.Close.Wildcard {
		// keeps the close tag's name tied to the component for renames
		g.line("_ = %s", n.Tag.Name)
	}
}
