// Package ast defines the shared data model produced by the parser,
// reshaped by the module loader, and consumed by the code generator.
//
// Every sum type in this package (Item, Type, Stmt, Expr, Pattern,
// UseTree) is closed: each variant implements an unexported marker
// method so that no package outside ast can introduce a new case the
// generator doesn't know how to lower. Nodes are plain value-ish structs
// with no back-edges, so reflect.DeepEqual gives correct structural
// equality for the loader's impl-block dedup (see loader.filterByUseTree).
package ast

// Program is the top-level artifact: an ordered list of imports
// followed by an ordered list of items. The loader prepends the
// spliced items of every resolved module to Items and clears Imports.
type Program struct {
	Imports []*UseStatement
	Items   []Item
}

// UseStatement is a single `use a::b::c...;` declaration.
type UseStatement struct {
	// Path holds the raw segments, e.g. ["crate", "module", "sub"].
	// A leading "crate" or "super" is kept as a literal segment so the
	// loader can special-case it during path resolution.
	Path []string
	Tree UseTree
}

// UseTree describes the selection shape at the end of a use path.
type UseTree interface{ useTreeNode() }

// UseGlob is `use path::*;`.
type UseGlob struct{}

// UseSimple is `use path::Name;`.
type UseSimple struct{ Name string }

// UseAlias is `use path::Name as Alias;`.
type UseAlias struct {
	Name  string
	Alias string
}

// UseList is `use path::{a, b as c, ...};`.
type UseList struct{ Items []UseTree }

func (UseGlob) useTreeNode()   {}
func (UseSimple) useTreeNode() {}
func (UseAlias) useTreeNode()  {}
func (UseList) useTreeNode()   {}

// Literal is a constant value attached to a literal expression or
// literal pattern.
type Literal struct {
	Kind LiteralKind
	Int  int32
	Flt  float32
	Bool bool
	Str  string
	Chr  rune
}

// LiteralKind tags which field of Literal is meaningful.
type LiteralKind int

const (
	LitInt LiteralKind = iota
	LitFloat
	LitBool
	LitString
	LitChar
)

// BinaryOp enumerates the 18 binary operators the grammar recognizes.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpAnd
	OpOr
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpBitAnd
	OpBitOr
	OpBitXor
	OpShl
	OpShr
)

// UnaryOp enumerates the two unary operators the generator must lower
// (reference-of is parsed and discarded, so it never reaches the AST).
type UnaryOp int

const (
	OpNot UnaryOp = iota
	OpNeg
)
