// Package symtab tracks declared variable types through nested lexical
// scopes, adapted from go-mix's runtime Scope chain into a
// compile-time table the generator consults instead of a runtime
// object map.
//
// The generator uses it for exactly one decision: whether a `+`
// between two expressions should lower to Lua's arithmetic `+` or its
// string-concatenation `..`. rico8 has no static type checker, so this
// table is best-effort — it only knows the type of a name if that name
// was bound by a `let` with an explicit annotation, a `const`, or a
// function parameter, in the scope currently open or an enclosing one.
// Anything it can't resolve
// falls back to the generator's shallow literal-based heuristic.
package symtab

import "github.com/rico8ls/rico8c/ast"

// Scope is one lexical scope boundary: a function body, a block, or
// the file-level scope holding globals and consts.
type Scope struct {
	vars   map[string]ast.Type
	parent *Scope
}

// NewScope creates a child scope of parent (nil for the outermost).
func NewScope(parent *Scope) *Scope {
	return &Scope{vars: make(map[string]ast.Type), parent: parent}
}

// Bind records name's declared type in the current scope, shadowing
// any binding of the same name in an enclosing scope.
func (s *Scope) Bind(name string, ty ast.Type) {
	if ty == nil {
		return
	}
	s.vars[name] = ty
}

// Lookup searches this scope and its ancestors for name's declared
// type.
func (s *Scope) Lookup(name string) (ast.Type, bool) {
	if s == nil {
		return nil, false
	}
	if ty, ok := s.vars[name]; ok {
		return ty, true
	}
	return s.parent.Lookup(name)
}

// IsString reports whether name is known, in this scope or an
// ancestor, to have been declared with the `String` path type.
func (s *Scope) IsString(name string) bool {
	ty, ok := s.Lookup(name)
	if !ok {
		return false
	}
	pt, ok := ty.(ast.PathType)
	return ok && pt.Name == "String"
}
