// Package loader resolves a rico8 program's `use` declarations against
// the filesystem and splices every imported module's items into one
// merged ast.Program, the way the original module loader does before
// handing a program to the generator.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/rico8ls/rico8c/ast"
	"github.com/rico8ls/rico8c/parser"
)

// moduleExtensions are tried in order when resolving a use path to a
// file on disk.
var moduleExtensions = []string{"", ".rico8", ".r8"}

// Error reports why a module could not be loaded.
type Error struct {
	Kind ErrorKind
	Path string
}

type ErrorKind int

const (
	ErrModuleNotFound ErrorKind = iota
	ErrCircularDependency
	ErrIO
	ErrParse
)

func (e *Error) Error() string {
	switch e.Kind {
	case ErrModuleNotFound:
		return fmt.Sprintf("module not found: %s", e.Path)
	case ErrCircularDependency:
		return fmt.Sprintf("circular dependency detected: %s", e.Path)
	case ErrParse:
		return fmt.Sprintf("failed to parse module: %s", e.Path)
	default:
		return fmt.Sprintf("failed to read module: %s", e.Path)
	}
}

// Loader walks use statements starting from a root source file,
// tracking which files have been fully loaded (to dedup shared
// transitive imports) and which are still on the loading stack (to
// detect import cycles).
type Loader struct {
	basePath      string
	loaded        map[string]bool
	loadingStack  []string
}

// New creates a Loader rooted at basePath, the directory `crate::`
// paths resolve against.
func New(basePath string) *Loader {
	return &Loader{basePath: basePath, loaded: map[string]bool{}}
}

// LoadProgram parses mainFile and recursively inlines every module it
// (transitively) imports, returning one Program with Imports cleared.
func (l *Loader) LoadProgram(mainFile string) (*ast.Program, error) {
	program, err := l.parseFile(mainFile)
	if err != nil {
		return nil, err
	}

	l.loadingStack = append(l.loadingStack, mainFile)

	var allItems []ast.Item
	for _, use := range program.Imports {
		items, err := l.loadModuleFromUse(use, mainFile)
		if err != nil {
			return nil, err
		}
		allItems = append(allItems, items...)
	}

	l.loadingStack = l.loadingStack[:len(l.loadingStack)-1]
	l.loaded[mainFile] = true

	allItems = append(allItems, program.Items...)
	program.Items = allItems
	program.Imports = nil
	return program, nil
}

func (l *Loader) parseFile(path string) (*ast.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: ErrIO, Path: path}
	}
	program, err := parser.Parse(string(src))
	if err != nil {
		return nil, &Error{Kind: ErrParse, Path: path}
	}
	return program, nil
}

func (l *Loader) loadModuleFromUse(use *ast.UseStatement, currentFile string) ([]ast.Item, error) {
	modulePath, err := l.resolveUsePath(use.Path, currentFile)
	if err != nil {
		return nil, err
	}

	if lo.Contains(l.loadingStack, modulePath) {
		return nil, &Error{Kind: ErrCircularDependency, Path: modulePath}
	}
	if l.loaded[modulePath] {
		return nil, nil
	}

	modProgram, err := l.parseFile(modulePath)
	if err != nil {
		return nil, err
	}

	l.loadingStack = append(l.loadingStack, modulePath)

	var moduleItems []ast.Item
	for _, nested := range modProgram.Imports {
		items, err := l.loadModuleFromUse(nested, modulePath)
		if err != nil {
			return nil, err
		}
		moduleItems = append(moduleItems, items...)
	}

	l.loadingStack = l.loadingStack[:len(l.loadingStack)-1]
	l.loaded[modulePath] = true

	moduleItems = append(moduleItems, filterByUseTree(modProgram.Items, use.Tree)...)
	return moduleItems, nil
}

// resolveUsePath turns a `use` path's segments into a filesystem path,
// special-casing the `crate` and `super` path-root segments, and tries
// each of moduleExtensions against both the current file's directory
// and the loader's base path.
func (l *Loader) resolveUsePath(segments []string, currentFile string) (string, error) {
	if len(segments) == 0 {
		return "", &Error{Kind: ErrModuleNotFound, Path: "<empty path>"}
	}

	var relPath string
	isCrateRoot := false
	switch segments[0] {
	case "crate":
		relPath = filepath.Join(segments[1:]...)
		isCrateRoot = true
	case "super":
		relPath = filepath.Join(append([]string{".."}, segments[1:]...)...)
	default:
		relPath = filepath.Join(segments...)
	}

	currentDir := filepath.Dir(currentFile)
	if currentDir == "" || currentDir == "." {
		currentDir = l.basePath
	}

	for _, ext := range moduleExtensions {
		candidate := relPath + ext

		if isCrateRoot {
			p := filepath.Join(l.basePath, candidate)
			if fileExists(p) {
				return p, nil
			}
			continue
		}

		if p := filepath.Join(currentDir, candidate); fileExists(p) {
			return p, nil
		}
		if p := filepath.Join(l.basePath, candidate); fileExists(p) {
			return p, nil
		}
	}

	return "", &Error{Kind: ErrModuleNotFound, Path: relPath}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
