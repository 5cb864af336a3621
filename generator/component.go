package generator

import (
	"github.com/rtml-dev/rtml/ast"
	"github.com/rtml-dev/rtml/lexicon"
)

// component emits the builder type, its setters, and the render body for one
// declaration. Presence is tracked in a bitmap; the terminal call panics on
// unset mandatory fields, so a forgotten setter fails at the render site.
func (g *gen) component(c *ast.Component) {
	if len(c.Params) > 64 {
		g.errorf(c.Range.Start, "too many parameters", "a component supports at most 64")
		return
	}
	elem := c.Name + "Element"
	prefix := lowerFirst(c.Name) + "Set"

	var fields []ast.Param
	var bodyParam *ast.Param
	for i := range c.Params {
		p := c.Params[i]
		fields = append(fields, p)
		if p.Name == "h" || p.Name == "set" {
			g.errorf(p.Range.Start, "parameter name collides with builder internals",
				"rename the "+p.Name+" parameter")
			return
		}
		if p.Name == "body" {
			// the children slot; it has no setter, so the protocol names
			// stay free for it
			bodyParam = &c.Params[i]
			continue
		}
		setter := lexicon.Setter(p.Name)
		if setter == "Body" || setter == "Close" {
			g.errorf(p.Range.Start, "parameter name collides with the builder protocol",
				"rename the "+p.Name+" parameter")
			return
		}
	}

	g.printf("\ntype %s struct {\n", elem)
	g.printf("\th   *rtml.HTML\n")
	g.printf("\tset uint64\n")
	for _, p := range fields {
		g.printf("\t%s %s\n", p.Name, p.Type)
	}
	g.printf("}\n\n")

	if len(fields) > 0 {
		g.printf("const (\n")
		for i, p := range fields {
			if i == 0 {
				g.printf("\t%s%s uint64 = 1 << iota\n", prefix, lexicon.Setter(p.Name))
			} else {
				g.printf("\t%s%s\n", prefix, lexicon.Setter(p.Name))
			}
		}
		g.printf(")\n\n")
	}

	g.printf("func %s(h *rtml.HTML) *%s {\n\treturn &%s{h: h}\n}\n\n", c.Name, elem, elem)

	for _, p := range fields {
		if bodyParam != nil && p.Name == bodyParam.Name {
			continue
		}
		setter := lexicon.Setter(p.Name)
		g.printf("func (e *%s) %s(%s %s) *%s {\n", elem, setter, p.Name, p.Type, elem)
		g.printf("\tif e.set&%s%s != 0 {\n", prefix, setter)
		g.printf("\t\trtml.WarnReset(%q, %q)\n", c.Name, p.Name)
		g.printf("\t\treturn e\n\t}\n")
		g.printf("\te.set |= %s%s\n", prefix, setter)
		g.printf("\te.%s = %s\n", p.Name, p.Name)
		g.printf("\treturn e\n}\n\n")
	}

	if bodyParam != nil {
		g.printf("func (e *%s) Body(%s %s) {\n", elem, bodyParam.Name, bodyParam.Type)
		g.printf("\te.%s = %s\n", bodyParam.Name, bodyParam.Name)
		g.printf("\te.render()\n}\n\n")
		g.printf("func (e *%s) Close() {\n\te.Body(rtml.NoBody)\n}\n\n", elem)
	} else {
		g.printf("func (e *%s) Close() {\n\te.render()\n}\n\n", elem)
	}

	g.printf("func (e *%s) render() {\n", elem)
	for _, p := range fields {
		if bodyParam != nil && p.Name == bodyParam.Name {
			continue
		}
		setter := lexicon.Setter(p.Name)
		switch {
		case !p.Optional():
			g.printf("\tif e.set&%s%s == 0 {\n", prefix, setter)
			g.printf("\t\trtml.MissingField(%q, %q)\n", c.Name, p.Name)
			g.printf("\t}\n")
		case p.Default != "":
			g.printf("\tif e.set&%s%s == 0 {\n", prefix, setter)
			g.printf("\t\te.%s = %s\n", p.Name, p.Default)
			g.printf("\t}\n")
		}
	}
	if bodyParam != nil {
		g.printf("\tif e.%s == nil {\n\t\te.%s = rtml.NoBody\n\t}\n", bodyParam.Name, bodyParam.Name)
	}
	for _, p := range fields {
		g.printf("\t%s := e.%s\n", p.Name, p.Name)
		g.printf("\t_ = %s\n", p.Name)
	}
	g.printf("\th := e.h\n")
	g.printf("\t_ = h\n")
	g.indent = 1
	g.nodes(c.Body)
	g.indent = 0
	g.printf("}\n")
}
