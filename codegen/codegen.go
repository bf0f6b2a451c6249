// Package codegen renders a merged ast.Program to the retro-console
// scripting dialect's source text.
//
// It is purely functional over the AST in the sense the language
// specification demands: nothing here reaches out to the filesystem or
// holds state across calls to Generate. The only mutable state is the
// output buffer and the indentation level, following the
// bytes.Buffer-plus-indent-counter idiom go-mix's own print visitor
// uses (main/print_visitor.go), and a best-effort symtab.Scope used
// solely to improve the string-concatenation heuristic the
// specification explicitly allows implementations to tighten.
package codegen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/symtab"
	"github.com/rico8ls/rico8c/target"
)

func builtinCatalog() []string {
	names := make([]string, len(target.Builtins))
	for i, b := range target.Builtins {
		names[i] = b.Name
	}
	return names
}

const indentUnit = "  "

// Generator walks a Program and renders it to Lua-family source text.
type Generator struct {
	buf          bytes.Buffer
	level        int
	syms         *symtab.Scope
	traits       map[string]*ast.Trait
	usedBuiltins map[string]bool
}

// New creates a Generator ready to render a single Program. A fresh
// Generator should be used per call to Generate.
func New() *Generator {
	return &Generator{
		syms:         symtab.NewScope(nil),
		traits:       map[string]*ast.Trait{},
		usedBuiltins: map[string]bool{},
	}
}

// Generate renders prog to text. No line of the result ends in
// trailing whitespace. The rendered text is preceded by a manifest
// comment naming every cartridge-runtime builtin (see package target)
// the program actually calls, so a reader (or a downstream packaging
// step deciding which runtime shims to bundle) doesn't have to scan
// the whole file for them.
func Generate(prog *ast.Program) string {
	g := New()
	for _, item := range prog.Items {
		if t, ok := item.(*ast.Trait); ok {
			g.traits[t.Name] = t
		}
	}
	for _, item := range prog.Items {
		g.genItem(item)
	}
	return trimTrailingWhitespace(g.builtinManifest() + g.buf.String())
}

// builtinManifest lists, in catalog order, every target.Builtins entry
// this program called by name, as a leading `--` comment block. Empty
// when the program calls none.
func (g *Generator) builtinManifest() string {
	if len(g.usedBuiltins) == 0 {
		return ""
	}
	var names []string
	for _, b := range builtinCatalog() {
		if g.usedBuiltins[b] {
			names = append(names, b)
		}
	}
	return "-- builtins used: " + strings.Join(names, ", ") + "\n\n"
}

func trimTrailingWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

func (g *Generator) writeIndent() {
	for i := 0; i < g.level; i++ {
		g.buf.WriteString(indentUnit)
	}
}

// line writes one fully-formed statement line at the current
// indentation.
func (g *Generator) line(format string, args ...interface{}) {
	g.writeIndent()
	g.buf.WriteString(fmt.Sprintf(format, args...))
	g.buf.WriteString("\n")
}

func (g *Generator) blank() {
	g.buf.WriteString("\n")
}

func genLiteral(lit ast.Literal) string {
	switch lit.Kind {
	case ast.LitInt:
		return strconv.FormatInt(int64(lit.Int), 10)
	case ast.LitFloat:
		s := strconv.FormatFloat(float64(lit.Flt), 'f', -1, 32)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case ast.LitBool:
		if lit.Bool {
			return "true"
		}
		return "false"
	case ast.LitString:
		return strconv.Quote(lit.Str)
	case ast.LitChar:
		return strconv.Quote(string(lit.Chr))
	default:
		return "nil"
	}
}

// typeZeroValue returns the Lua-side zero-equivalent for a let
// binding declared without an initializer.
func typeZeroValue(ty ast.Type) string {
	pt, ok := ty.(ast.PathType)
	if !ok {
		return "nil"
	}
	switch pt.Name {
	case "i32", "f32", "u8", "usize":
		return "0"
	case "bool":
		return "false"
	case "String":
		return `""`
	default:
		return "nil"
	}
}
