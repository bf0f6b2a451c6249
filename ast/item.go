package ast

// Item is the closed sum type for top-level (and module-level)
// declarations. The loader identifies items by name using ItemName,
// and dedups impl blocks by full structural equality.
type Item interface{ itemNode() }

// Field is a single `name: Type` member of a struct or a named enum
// variant.
type Field struct {
	Name string
	Ty   Type
}

// Struct is `struct Name<G...> { field: Ty, ... }`.
type Struct struct {
	Name     string
	Generics []string
	Fields   []Field
}

// VariantFields tags the shape of an enum variant's payload.
type VariantFields interface{ variantFieldsNode() }

type UnitFields struct{}
type TupleFields struct{ Types []Type }
type NamedFields struct{ Fields []Field }

func (UnitFields) variantFieldsNode()  {}
func (TupleFields) variantFieldsNode() {}
func (NamedFields) variantFieldsNode() {}

// Variant is one arm of an enum declaration.
type Variant struct {
	Name   string
	Fields VariantFields
}

// Enum is `enum Name<G...> { Variant, Variant(T), Variant { f: T }, ... }`.
type Enum struct {
	Name     string
	Generics []string
	Variants []Variant
}

// TraitMethod is a method signature inside a trait, with an optional
// default body. The generator never emits the signature itself — only
// a default body, inlined into implementers that don't override it.
type TraitMethod struct {
	Name       string
	Params     []Param
	ReturnType Type // nil if none
	Body       *Block
}

// Trait is `trait Name<G...> { fn method(...); fn other(...) { ... } }`.
type Trait struct {
	Name     string
	Generics []string
	Methods  []TraitMethod
}

// Impl is `impl<G...> [Trait for] Target { fn ... }`. TraitName is
// empty for an inherent impl.
type Impl struct {
	Generics  []string
	TraitName string // "" for an inherent impl
	Target    Type
	Methods   []*Function
}

// Param is one function/method parameter. A self-receiver (bare
// `self`, `&self`, `&mut self`) sets IsSelf with Ty forced to the Self
// path type.
type Param struct {
	Name   string
	Ty     Type
	IsSelf bool
	IsMut  bool
}

// Function is a top-level `fn` item or a method inside an impl/trait.
type Function struct {
	Name       string
	Generics   []string
	Params     []Param
	ReturnType Type // nil if none
	Body       *Block
}

// Const is a file-scope `const NAME: Ty = expr;`.
type Const struct {
	Name string
	Ty   Type
	Val  Expr
}

// Global wraps a file-scope `let` binding so it can live in the Item
// list alongside structs/functions/etc; Stmt is always *LetStmt.
type Global struct{ Stmt Stmt }

func (*Struct) itemNode()  {}
func (*Enum) itemNode()    {}
func (*Trait) itemNode()   {}
func (*Impl) itemNode()    {}
func (*Function) itemNode() {}
func (*Const) itemNode()   {}
func (*Global) itemNode()  {}

// ItemName returns the defining name of an item, or "" for items that
// have no single name of their own (Impl, Global) — mirroring
// get_item_name in the original module loader.
func ItemName(it Item) string {
	switch v := it.(type) {
	case *Struct:
		return v.Name
	case *Enum:
		return v.Name
	case *Trait:
		return v.Name
	case *Function:
		return v.Name
	case *Const:
		return v.Name
	default:
		return ""
	}
}
