package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rico8ls/rico8c/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := Parse(src)
	require.NoError(t, err)
	return prog
}

func TestParseStruct(t *testing.T) {
	prog := mustParse(t, `struct Point { x: i32, y: i32 }`)
	require.Len(t, prog.Items, 1)
	s, ok := prog.Items[0].(*ast.Struct)
	require.True(t, ok)
	require.Equal(t, "Point", s.Name)
	require.Equal(t, []ast.Field{{Name: "x", Ty: ast.PathType{Name: "i32"}}, {Name: "y", Ty: ast.PathType{Name: "i32"}}}, s.Fields)
}

func TestParseEnumVariants(t *testing.T) {
	prog := mustParse(t, `
		enum Shape {
			Circle(i32),
			Rect { w: i32, h: i32 },
			Empty,
		}
	`)
	e := prog.Items[0].(*ast.Enum)
	require.Len(t, e.Variants, 3)
	require.IsType(t, ast.TupleFields{}, e.Variants[0].Fields)
	require.IsType(t, ast.NamedFields{}, e.Variants[1].Fields)
	require.IsType(t, ast.UnitFields{}, e.Variants[2].Fields)
}

func TestParseImplInherentVsTrait(t *testing.T) {
	prog := mustParse(t, `
		impl Point {
			fn len(&self) -> i32 { return 1; }
		}
		impl Drawable for Point {
			fn draw(&self) { return; }
		}
	`)
	inherent := prog.Items[0].(*ast.Impl)
	require.Equal(t, "", inherent.TraitName)
	require.Equal(t, ast.PathType{Name: "Point"}, inherent.Target)

	traitImpl := prog.Items[1].(*ast.Impl)
	require.Equal(t, "Drawable", traitImpl.TraitName)
}

func TestParseFunctionParamsWithSelf(t *testing.T) {
	prog := mustParse(t, `
		impl Point {
			fn set(&mut self, v: i32) { self.x = v; }
		}
	`)
	impl := prog.Items[0].(*ast.Impl)
	params := impl.Methods[0].Params
	require.True(t, params[0].IsSelf)
	require.True(t, params[0].IsMut)
	require.Equal(t, ast.PathType{Name: ast.SelfType}, params[0].Ty)
}

func TestParseBinaryPrecedence(t *testing.T) {
	prog := mustParse(t, `fn f() -> i32 { return 1 + 2 * 3; }`)
	fn := prog.Items[0].(*ast.Function)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	bin := ret.X.(*ast.BinaryExpr)
	require.Equal(t, ast.OpAdd, bin.Op)
	rhs := bin.Right.(*ast.BinaryExpr)
	require.Equal(t, ast.OpMul, rhs.Op)
}

func TestParseStructLiteralVsBlockDisambiguation(t *testing.T) {
	prog := mustParse(t, `
		fn f() {
			let p = Point { x: 1, y: 2 };
			if p.x { return; }
		}
	`)
	fn := prog.Items[0].(*ast.Function)
	letStmt := fn.Body.Stmts[0].(*ast.LetStmt)
	require.IsType(t, &ast.StructLitExpr{}, letStmt.Value)

	ifStmt := fn.Body.Stmts[1].(*ast.IfStmt)
	require.IsType(t, &ast.FieldExpr{}, ifStmt.Cond)
}

func TestParseRangeExpression(t *testing.T) {
	prog := mustParse(t, `fn f() { for i in 0..10 { } }`)
	fn := prog.Items[0].(*ast.Function)
	forStmt := fn.Body.Stmts[0].(*ast.ForStmt)
	rng := forStmt.Iter.(*ast.RangeExpr)
	require.NotNil(t, rng.Start)
	require.NotNil(t, rng.End)
}

func TestParseAsCastIsErased(t *testing.T) {
	prog := mustParse(t, `fn f() -> i32 { return 1 as i32; }`)
	fn := prog.Items[0].(*ast.Function)
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	require.IsType(t, &ast.LiteralExpr{}, ret.X)
}

func TestParseReferenceIsErased(t *testing.T) {
	prog := mustParse(t, `fn f(p: &Point) { let q = &mut p; }`)
	fn := prog.Items[0].(*ast.Function)
	require.Equal(t, ast.RefType{Inner: ast.PathType{Name: "Point"}}, fn.Params[0].Ty)
	letStmt := fn.Body.Stmts[0].(*ast.LetStmt)
	require.IsType(t, &ast.Ident{}, letStmt.Value)
}

func TestParseMatchWithEnumAndWildcard(t *testing.T) {
	prog := mustParse(t, `
		fn f() {
			match s {
				State::Idle => 1,
				State::Run(n) => n,
				_ => 0,
			}
		}
	`)
	fn := prog.Items[0].(*ast.Function)
	match := fn.Body.Stmts[0].(*ast.MatchStmt)
	require.Len(t, match.Arms, 3)
	require.IsType(t, &ast.EnumPattern{}, match.Arms[0].Pattern)
	require.IsType(t, ast.WildcardPattern{}, match.Arms[2].Pattern)
}

func TestParseUseGlobAndList(t *testing.T) {
	prog := mustParse(t, `
		use crate::shapes::*;
		use super::utils::{helper, other as alias};
		fn f() {}
	`)
	require.Len(t, prog.Imports, 2)
	require.Equal(t, []string{"crate", "shapes"}, prog.Imports[0].Path)
	require.IsType(t, ast.UseGlob{}, prog.Imports[0].Tree)

	list := prog.Imports[1].Tree.(ast.UseList)
	require.Len(t, list.Items, 2)
	require.Equal(t, ast.UseAlias{Name: "other", Alias: "alias"}, list.Items[1])
}

func TestParseFailFastOnFirstError(t *testing.T) {
	_, err := Parse(`struct Point { x i32 }`)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}
