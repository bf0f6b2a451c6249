package ast

// Type is the closed sum type for type annotations. Generics are kept
// on the AST (Struct.Generics, Enum.Generics, ...) but types themselves
// carry no bound/constraint information — there is nothing downstream
// of the parser that checks them.
type Type interface{ typeNode() }

// PathType is a bare name: `i32`, `Point`, `Self`. The parser produces
// the distinguished path "Self" whenever a self-parameter has no
// explicit type annotation.
type PathType struct{ Name string }

// GenericType is a name applied to type arguments: `Vec<i32>`.
type GenericType struct {
	Name string
	Args []Type
}

// RefType is `&T` or `&mut T`. The generator never needs Mut — Lua has
// no reference semantics — but it is kept because the parser must
// still recognize `mut` to stay in sync with the grammar.
type RefType struct {
	Inner Type
	Mut   bool
}

// ArrayType is a fixed-size array type `[T; N]`.
type ArrayType struct {
	Elem Type
	Size int
}

// TupleType is `(T1, T2, ...)`.
type TupleType struct{ Elems []Type }

func (PathType) typeNode()    {}
func (GenericType) typeNode() {}
func (RefType) typeNode()     {}
func (ArrayType) typeNode()   {}
func (TupleType) typeNode()   {}

// SelfType is the distinguished named path the parser substitutes for
// an untyped self-parameter.
const SelfType = "Self"
