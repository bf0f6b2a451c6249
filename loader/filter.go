package loader

import (
	"reflect"

	"github.com/samber/lo"

	"github.com/rico8ls/rico8c/ast"
)

// filterByUseTree selects which of a module's items an importing
// `use` statement actually pulls in, following the same shape as the
// original loader's filter_items_by_use_tree: a glob takes everything,
// a simple/aliased import takes the named item plus any impl block
// targeting or implementing that name, and a brace list unions the
// selections of its members plus impl blocks for any name in the list.
func filterByUseTree(items []ast.Item, tree ast.UseTree) []ast.Item {
	switch t := tree.(type) {
	case ast.UseGlob:
		return items

	case ast.UseSimple:
		return selectNamedWithImpls(items, t.Name)

	case ast.UseAlias:
		// Aliasing only affects how the generator prints references to
		// the imported name; the loader still pulls in the item under
		// its original name.
		return selectNamedWithImpls(items, t.Name)

	case ast.UseList:
		var names []string
		for _, sub := range t.Items {
			names = append(names, usedName(sub))
		}

		var result []ast.Item
		for _, sub := range t.Items {
			result = appendUnique(result, filterByUseTree(items, sub)...)
		}
		for _, item := range items {
			impl, ok := item.(*ast.Impl)
			if !ok {
				continue
			}
			if implTargetsAny(impl, names) && !containsItem(result, item) {
				result = append(result, item)
			}
		}
		return result

	default:
		return nil
	}
}

func usedName(tree ast.UseTree) string {
	switch t := tree.(type) {
	case ast.UseSimple:
		return t.Name
	case ast.UseAlias:
		return t.Name
	default:
		return ""
	}
}

func selectNamedWithImpls(items []ast.Item, name string) []ast.Item {
	var result []ast.Item
	for _, item := range items {
		if ast.ItemName(item) == name {
			result = append(result, item)
		}
	}
	for _, item := range items {
		if impl, ok := item.(*ast.Impl); ok && implTargetsAny(impl, []string{name}) {
			result = append(result, item)
		}
	}
	return result
}

// implTargetsAny reports whether impl's target type or trait name
// matches any of names.
func implTargetsAny(impl *ast.Impl, names []string) bool {
	targetName := ""
	if pt, ok := impl.Target.(ast.PathType); ok {
		targetName = pt.Name
	}
	return lo.Contains(names, targetName) || (impl.TraitName != "" && lo.Contains(names, impl.TraitName))
}

func containsItem(items []ast.Item, candidate ast.Item) bool {
	for _, it := range items {
		if reflect.DeepEqual(it, candidate) {
			return true
		}
	}
	return false
}

func appendUnique(dst []ast.Item, items ...ast.Item) []ast.Item {
	for _, it := range items {
		if !containsItem(dst, it) {
			dst = append(dst, it)
		}
	}
	return dst
}
