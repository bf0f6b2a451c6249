package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rico8ls/rico8c/ast"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProgramInlinesSimpleImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shapes.rico8", `struct Point { x: i32, y: i32 }`)
	main := writeFile(t, dir, "main.rico8", `
		use crate::shapes::Point;
		fn f() {}
	`)

	prog, err := New(dir).LoadProgram(main)
	require.NoError(t, err)
	require.Nil(t, prog.Imports)

	names := itemNames(prog.Items)
	require.Contains(t, names, "Point")
	require.Contains(t, names, "f")
}

func TestLoadProgramGlobPullsEverything(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shapes.rico8", `
		struct Point { x: i32, y: i32 }
		struct Line { a: i32 }
	`)
	main := writeFile(t, dir, "main.rico8", `use crate::shapes::*; fn f() {}`)

	prog, err := New(dir).LoadProgram(main)
	require.NoError(t, err)

	names := itemNames(prog.Items)
	require.Contains(t, names, "Point")
	require.Contains(t, names, "Line")
}

func TestLoadProgramPullsImplBlocksForImportedType(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "shapes.rico8", `
		struct Point { x: i32, y: i32 }
		struct Other { z: i32 }
		impl Point { fn len(&self) -> i32 { return 1; } }
		impl Other { fn noop(&self) {} }
	`)
	main := writeFile(t, dir, "main.rico8", `use crate::shapes::Point; fn f() {}`)

	prog, err := New(dir).LoadProgram(main)
	require.NoError(t, err)

	var impls []*ast.Impl
	for _, item := range prog.Items {
		if impl, ok := item.(*ast.Impl); ok {
			impls = append(impls, impl)
		}
	}
	require.Len(t, impls, 1)
	require.Equal(t, ast.PathType{Name: "Point"}, impls[0].Target)
}

func TestLoadProgramDetectsCircularDependency(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.rico8", `use crate::b::x; fn a_fn() {}`)
	writeFile(t, dir, "b.rico8", `use crate::a::x; fn b_fn() {}`)
	main := writeFile(t, dir, "main.rico8", `use crate::a::a_fn; fn f() {}`)

	_, err := New(dir).LoadProgram(main)
	require.Error(t, err)
	var loadErr *Error
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, ErrCircularDependency, loadErr.Kind)
}

func TestLoadProgramDedupsDiamondImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.rico8", `struct Point { x: i32, y: i32 }`)
	writeFile(t, dir, "a.rico8", `use crate::base::Point; fn a_fn() {}`)
	writeFile(t, dir, "b.rico8", `use crate::base::Point; fn b_fn() {}`)
	main := writeFile(t, dir, "main.rico8", `
		use crate::a::a_fn;
		use crate::b::b_fn;
		fn f() {}
	`)

	prog, err := New(dir).LoadProgram(main)
	require.NoError(t, err)

	count := 0
	for _, item := range prog.Items {
		if ast.ItemName(item) == "Point" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestLoadProgramModuleNotFound(t *testing.T) {
	dir := t.TempDir()
	main := writeFile(t, dir, "main.rico8", `use crate::missing::Thing; fn f() {}`)

	_, err := New(dir).LoadProgram(main)
	require.Error(t, err)
	var loadErr *Error
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, ErrModuleNotFound, loadErr.Kind)
}

func itemNames(items []ast.Item) []string {
	var names []string
	for _, item := range items {
		if name := ast.ItemName(item); name != "" {
			names = append(names, name)
		}
	}
	return names
}
