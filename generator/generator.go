// Package generator lowers parsed .rtml files into Go source: one typed
// builder per component plus a render body driving the rtml runtime. Output
// goes through golang.org/x/tools/imports so generated files are always
// formatted and their import blocks pruned.
package generator

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/rtml-dev/rtml/ast"
	"github.com/rtml-dev/rtml/parser"
)

const header = "// Code generated by rtml. DO NOT EDIT.\n\n"

// File generates the Go source for one parsed file. The returned error,
// when non-nil, is a parser.ErrorList.
func File(f *ast.File) ([]byte, error) {
	g := &gen{path: f.SourcePath}

	g.printf(header)
	g.printf("package %s\n\n", f.Package)
	g.printf("import (\n\t%q\n)\n", "github.com/rtml-dev/rtml")
	if f.Imports != "" {
		g.printf("\n%s\n", f.Imports)
	}
	for _, c := range f.Components {
		g.component(c)
	}
	if err := g.errs.Err(); err != nil {
		return nil, err
	}

	out, err := imports.Process(strings.TrimSuffix(f.SourcePath, ".rtml")+"_rtml.go", g.buf.Bytes(), nil)
	if err != nil {
		return nil, parser.ErrorList{{
			Path: f.SourcePath,
			Pos:  ast.Position{Line: 1, Column: 1},
			Msg:  fmt.Sprintf("generated code does not compile: %v", err),
		}}
	}
	return out, nil
}

type gen struct {
	buf    bytes.Buffer
	indent int
	path   string
	errs   parser.ErrorList
}

func (g *gen) errorf(pos ast.Position, msg, hint string) {
	g.errs = append(g.errs, &parser.Error{Path: g.path, Pos: pos, Msg: msg, Hint: hint})
}

func (g *gen) printf(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}

// line writes one indented line of output.
func (g *gen) line(format string, args ...any) {
	g.buf.WriteString(strings.Repeat("\t", g.indent))
	fmt.Fprintf(&g.buf, format, args...)
	g.buf.WriteByte('\n')
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
