package ast

// Expr is the closed sum type for expressions. Precedence is encoded
// only in how the parser constructs these nodes — the tree itself
// carries no precedence information.
type Expr interface{ exprNode() }

// LiteralExpr wraps a Literal in expression position.
type LiteralExpr struct{ Lit Literal }

// Ident is a bare identifier, the `self` keyword, or a flattened path
// expression `Enum::Variant` (stored as the literal string
// "Enum::Variant" — see the design note on textual path resolution).
type Ident struct{ Name string }

// BinaryExpr is `lhs OP rhs`.
type BinaryExpr struct {
	Op          BinaryOp
	Left, Right Expr
}

// UnaryExpr is `OP expr` (logical not or arithmetic negation).
type UnaryExpr struct {
	Op UnaryOp
	X  Expr
}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	Callee Expr
	Args   []Expr
}

// MethodCallExpr is `receiver.name(args...)`.
type MethodCallExpr struct {
	Receiver Expr
	Name     string
	Args     []Expr
}

// FieldExpr is `receiver.name`.
type FieldExpr struct {
	Receiver Expr
	Name     string
}

// IndexExpr is `receiver[index]`.
type IndexExpr struct{ Receiver, Index Expr }

// StructLitExpr is `Name { field: value, ... }`.
type StructLitExpr struct {
	Name   string
	Fields []FieldInit
}

// FieldInit is one `name: value` entry of a struct literal.
type FieldInit struct {
	Name  string
	Value Expr
}

// ArrayLitExpr is `[e1, e2, ...]`.
type ArrayLitExpr struct{ Elems []Expr }

// TupleExpr is `(e1, e2, ...)` with zero or two or more elements — a
// single parenthesized element collapses to that element in the parser.
type TupleExpr struct{ Elems []Expr }

// BlockExpr is a block used in expression position.
type BlockExpr struct{ Body *Block }

// IfExpr wraps an IfStmt used in expression position.
type IfExpr struct{ If *IfStmt }

// MatchExpr wraps a MatchStmt used in expression position.
type MatchExpr struct{ Match *MatchStmt }

// RangeExpr is `[start]..[end]`; either endpoint may be absent.
type RangeExpr struct{ Start, End Expr } // nil means absent

// NoneExpr is the `None` option marker.
type NoneExpr struct{}

// SomeExpr is `Some(inner)`.
type SomeExpr struct{ Inner Expr }

func (*LiteralExpr) exprNode()    {}
func (*Ident) exprNode()          {}
func (*BinaryExpr) exprNode()     {}
func (*UnaryExpr) exprNode()      {}
func (*CallExpr) exprNode()       {}
func (*MethodCallExpr) exprNode() {}
func (*FieldExpr) exprNode()      {}
func (*IndexExpr) exprNode()      {}
func (*StructLitExpr) exprNode()  {}
func (*ArrayLitExpr) exprNode()   {}
func (*TupleExpr) exprNode()      {}
func (*BlockExpr) exprNode()      {}
func (*IfExpr) exprNode()         {}
func (*MatchExpr) exprNode()      {}
func (*RangeExpr) exprNode()      {}
func (*NoneExpr) exprNode()       {}
func (*SomeExpr) exprNode()       {}
