package symtab

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rico8ls/rico8c/ast"
)

func TestLookupFindsOwnAndParentBindings(t *testing.T) {
	outer := NewScope(nil)
	outer.Bind("name", ast.PathType{Name: "String"})
	inner := NewScope(outer)
	inner.Bind("count", ast.PathType{Name: "i32"})

	ty, ok := inner.Lookup("name")
	require.True(t, ok)
	require.Equal(t, ast.PathType{Name: "String"}, ty)

	ty, ok = inner.Lookup("count")
	require.True(t, ok)
	require.Equal(t, ast.PathType{Name: "i32"}, ty)

	_, ok = inner.Lookup("missing")
	require.False(t, ok)
}

func TestInnerShadowsOuter(t *testing.T) {
	outer := NewScope(nil)
	outer.Bind("x", ast.PathType{Name: "i32"})
	inner := NewScope(outer)
	inner.Bind("x", ast.PathType{Name: "String"})

	require.True(t, inner.IsString("x"))

	outerTy, _ := outer.Lookup("x")
	require.Equal(t, ast.PathType{Name: "i32"}, outerTy)
}

func TestIsStringFalseForUnknownOrNonString(t *testing.T) {
	s := NewScope(nil)
	s.Bind("n", ast.PathType{Name: "i32"})
	require.False(t, s.IsString("n"))
	require.False(t, s.IsString("unbound"))
}
