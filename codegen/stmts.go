package codegen

import (
	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/symtab"
)

func (g *Generator) genStmt(stmt ast.Stmt) {
	switch v := stmt.(type) {
	case *ast.LetStmt:
		g.genLet(v)
	case *ast.AssignStmt:
		g.line("%s = %s", g.genExpr(v.Lhs), g.genExpr(v.Rhs))
	case *ast.ExprStmt:
		g.line("%s", g.genExpr(v.X))
	case *ast.ReturnStmt:
		if v.X == nil {
			g.line("return")
		} else {
			g.line("return %s", g.genExpr(v.X))
		}
	case *ast.IfStmt:
		g.genIf(v)
	case *ast.WhileStmt:
		g.line("while %s do", g.genExpr(v.Cond))
		g.level++
		g.genBlock(v.Body)
		g.level--
		g.line("end")
	case *ast.ForStmt:
		g.genFor(v)
	case *ast.MatchStmt:
		g.genMatch(v)
	}
}

func (g *Generator) genBlock(b *ast.Block) {
	parent := g.syms
	g.syms = symtab.NewScope(parent)
	for _, s := range b.Stmts {
		g.genStmt(s)
	}
	g.syms = parent
}

func (g *Generator) genLet(l *ast.LetStmt) {
	g.syms.Bind(l.Name, l.Ty)
	if l.Value != nil {
		g.line("local %s = %s", l.Name, g.genExpr(l.Value))
		return
	}
	g.line("local %s = %s", l.Name, typeZeroValue(l.Ty))
}

// genIf emits a plain Lua if/else. An `else if` arrives as a
// single-statement Else block wrapping a nested IfStmt, which this
// recurses into naturally via genBlock -> genStmt.
func (g *Generator) genIf(s *ast.IfStmt) {
	g.line("if %s then", g.genExpr(s.Cond))
	g.level++
	g.genBlock(s.Then)
	g.level--
	if s.Else != nil {
		g.line("else")
		g.level++
		g.genBlock(s.Else)
		g.level--
	}
	g.line("end")
}

// genFor lowers a range-based for loop to Lua's inclusive numeric for,
// and anything else to ipairs iteration over the evaluated iterable.
func (g *Generator) genFor(s *ast.ForStmt) {
	if rng, ok := s.Iter.(*ast.RangeExpr); ok {
		start := "0"
		if rng.Start != nil {
			start = g.genExpr(rng.Start)
		}
		end := ""
		if rng.End != nil {
			end = g.genExpr(rng.End)
		}
		g.line("for %s=%s,%s do", s.Var, start, end)
		g.level++
		g.genBlock(s.Body)
		g.level--
		g.line("end")
		return
	}
	g.line("for _, %s in ipairs(%s) do", s.Var, g.genExpr(s.Iter))
	g.level++
	g.genBlock(s.Body)
	g.level--
	g.line("end")
}
