package generator

import (
	"strconv"
	"strings"

	"github.com/rtml-dev/rtml"
	"github.com/rtml-dev/rtml/ast"
	"github.com/rtml-dev/rtml/script"
)

// scriptPos advances the script body's start position by a byte offset into
// its source, so transpile errors point at the offending token.
func scriptPos(start ast.Position, src string, off int) ast.Position {
	if off > len(src) {
		off = len(src)
	}
	pos := start
	for i := 0; i < off; i++ {
		pos.Offset++
		if src[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	return pos
}

// scriptBody transpiles a raw-text element body and closes the builder
// chain with the matching ScriptBody call. Literal script text is
// script-escaped here; spliced values are serialized and escaped at render
// time.
func (g *gen) scriptBody(chain string, sb *ast.ScriptBody) {
	res, err := script.Transpile(sb.Source)
	if err != nil {
		serr := err.(*script.Error)
		g.errorf(scriptPos(sb.Range.Start, sb.Source, serr.Off), "script error: "+serr.Msg, "")
		return
	}
	switch res.Kind {
	case script.Literal:
		if res.Literal == "" {
			g.line("%s.ScriptBody(nil)", chain)
			return
		}
		g.line("%s.ScriptBody(rtml.RawSrc(%s))", chain, strconv.Quote(rtml.EscapeScript(res.Literal)))
	case script.Expr:
		g.line("%s.ScriptBody(%s)", chain, res.Expr)
	case script.Program:
		static := true
		for _, s := range res.Segments {
			if s.Splice != "" {
				static = false
				break
			}
		}
		if static {
			var js strings.Builder
			for _, s := range res.Segments {
				js.WriteString(s.JS)
			}
			g.line("%s.ScriptBody(rtml.RawSrc(%s))", chain, strconv.Quote(rtml.EscapeScript(js.String())))
			return
		}
		var args []string
		for _, s := range res.Segments {
			if s.Splice != "" {
				args = append(args, "rtml.JSValue("+s.Splice+")")
			} else {
				args = append(args, strconv.Quote(s.JS))
			}
		}
		g.line("%s.ScriptBody(rtml.ScriptText(%s))", chain, strings.Join(args, ", "))
	}
}
