package codegen

import (
	"fmt"

	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/symtab"
)

// childWithBindings opens a child scope for a match arm body. Pattern
// bindings have no statically known type, so they are left unbound in
// the symbol table rather than guessed at — the string-concatenation
// heuristic simply falls back to its literal-based default for them.
func childWithBindings(parent *symtab.Scope, _ map[string]string) *symtab.Scope {
	return symtab.NewScope(parent)
}

// genMatch lowers a match statement to `local __match = <scrutinee>`
// followed by an if/elseif chain, one branch per arm in source order.
// Every branch gets a condition, including patterns with no inherent
// discriminant (wildcard, plain ident, struct, tuple) which become a
// bare `true` — this keeps the chain uniform with no separate
// terminal `else`. Arms after such a catch-all branch are emitted but
// never taken, just as they are unreachable in the source.
func (g *Generator) genMatch(m *ast.MatchStmt) {
	scrutName := "__match"
	g.line("local %s = %s", scrutName, g.genExpr(m.Scrutinee))
	for i, arm := range m.Arms {
		cond, bindings := matchCondition(scrutName, arm.Pattern)
		keyword := "elseif"
		if i == 0 {
			keyword = "if"
		}
		g.line("%s %s then", keyword, cond)
		g.level++
		parent := g.syms
		g.syms = childWithBindings(parent, bindings)
		for name, expr := range bindings {
			g.line("local %s = %s", name, expr)
		}
		g.genMatchArmBody(arm.Body)
		g.syms = parent
		g.level--
	}
	g.line("end")
}

func (g *Generator) genMatchArmBody(body ast.Expr) {
	if es, ok := body.(*ast.BlockExpr); ok {
		g.genFuncBody(es.Body)
		return
	}
	g.line("%s", g.genExpr(body))
}

// matchCondition returns the Lua boolean expression deciding whether
// scrutName matches pattern, plus any bindings the pattern introduces
// (name -> Lua expression reading the bound value out of scrutName).
func matchCondition(scrutName string, pattern ast.Pattern) (string, map[string]string) {
	bindings := map[string]string{}
	switch p := pattern.(type) {
	case ast.WildcardPattern:
		return "true", bindings
	case *ast.IdentPattern:
		bindings[p.Name] = scrutName
		return "true", bindings
	case *ast.LiteralPattern:
		return fmt.Sprintf("%s == %s", scrutName, genLiteral(p.Lit)), bindings
	case *ast.EnumPattern:
		cond := fmt.Sprintf(`%s.tag == "%s"`, scrutName, p.VariantName)
		if p.Inner != nil {
			innerBindings := bindEnumInner(scrutName, p.Inner)
			for k, v := range innerBindings {
				bindings[k] = v
			}
		}
		return cond, bindings
	case *ast.StructPattern:
		for _, f := range p.Fields {
			fieldAccess := scrutName + "." + f.Name
			if ip, ok := f.Pattern.(*ast.IdentPattern); ok {
				bindings[ip.Name] = fieldAccess
			}
		}
		return "true", bindings
	case *ast.TuplePattern:
		for i, elem := range p.Elems {
			access := fmt.Sprintf("%s[%d]", scrutName, i+1)
			if ip, ok := elem.(*ast.IdentPattern); ok {
				bindings[ip.Name] = access
			}
		}
		return "true", bindings
	default:
		return "true", bindings
	}
}

// bindEnumInner binds the positional payload slot(s) (a0, a1, ...) of a
// tuple enum variant pattern's inner sub-pattern. Only identifier
// sub-patterns (directly or as tuple elements) bind anything.
func bindEnumInner(scrutName string, inner ast.Pattern) map[string]string {
	bindings := map[string]string{}
	switch p := inner.(type) {
	case *ast.IdentPattern:
		bindings[p.Name] = scrutName + ".a0"
	case *ast.TuplePattern:
		for i, elem := range p.Elems {
			if ip, ok := elem.(*ast.IdentPattern); ok {
				bindings[ip.Name] = fmt.Sprintf("%s.a%d", scrutName, i)
			}
		}
	}
	return bindings
}
