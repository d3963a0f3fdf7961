// Package parsetest type-checks small packages in memory for the tests of
// Descgen internals. The descgen package is type-checked from the descgen.go
// at the repository root.
package parsetest

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// PkgPath is the import path of the loaded package.
const PkgPath = "example.com/p"

type importerFunc func(path string) (*types.Package, error)

func (f importerFunc) Import(path string) (*types.Package, error) { return f(path) }

// descgenGo returns the path of descgen.go at the repository root.
func descgenGo() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "descgen.go")
}

// Load parses and type-checks the given files as a package. Keys are file
// names.
func Load(t testing.TB, files map[string]string) *packages.Package {
	t.Helper()
	pkg := load(t, files)
	require.Empty(t, pkg.TypeErrors)
	return pkg
}

// LoadWithErrors is like [Load] but keeps type errors in the TypeErrors of
// the package instead of failing.
func LoadWithErrors(t testing.TB, files map[string]string) *packages.Package {
	t.Helper()
	return load(t, files)
}

func load(t testing.TB, files map[string]string) *packages.Package {
	t.Helper()
	fset := token.NewFileSet()

	src, err := os.ReadFile(descgenGo())
	require.NoError(t, err)
	descgenFile, err := parser.ParseFile(fset, "descgen.go", src, 0)
	require.NoError(t, err)
	descgenPkg, err := (&types.Config{}).Check("github.com/sublee/descgen", fset, []*ast.File{descgenFile}, nil)
	require.NoError(t, err)

	std := importer.ForCompiler(fset, "source", nil)
	var typeErrs []types.Error
	conf := types.Config{
		Error: func(err error) {
			typeErrs = append(typeErrs, err.(types.Error))
		},
		Importer: importerFunc(func(path string) (*types.Package, error) {
			if path == "github.com/sublee/descgen" {
				return descgenPkg, nil
			}
			return std.Import(path)
		}),
	}

	var names []string
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	var syntax []*ast.File
	for _, name := range names {
		file, err := parser.ParseFile(fset, name, files[name], parser.ParseComments)
		require.NoError(t, err)
		syntax = append(syntax, file)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Instances:  make(map[*ast.Ident]types.Instance),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}
	pkg, _ := conf.Check(PkgPath, fset, syntax, info)

	return &packages.Package{
		ID:         pkg.Path(),
		Name:       pkg.Name(),
		PkgPath:    pkg.Path(),
		Types:      pkg,
		Fset:       fset,
		Syntax:     syntax,
		TypesInfo:  info,
		TypeErrors: typeErrs,
	}
}

// LoadOne is a shorthand of [Load] for a package with a single descgen-tagged
// file. The build constraint and package clause are prepended to src.
func LoadOne(t testing.TB, src string) *packages.Package {
	t.Helper()
	return Load(t, map[string]string{
		"p.go": "//go:build descgen\n\npackage p\n\n" + src,
	})
}
