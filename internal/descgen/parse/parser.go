package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// BuildTag is the build tag of files containing Descgen directives.
const BuildTag = "descgen"

// ImportPath is the import path of the package declaring directives.
const ImportPath = "github.com/sublee/descgen"

// IsDescgenImport reports whether an import path refers to the descgen
// package, possibly vendored.
func IsDescgenImport(path string) bool {
	if i := strings.LastIndex(path, "/vendor/"); i != -1 {
		path = path[i+len("/vendor/"):]
	} else {
		path = strings.TrimPrefix(path, "vendor/")
	}
	return path == ImportPath
}

// Parser reads Descgen directives and annotations of a type-checked package.
type Parser struct{ pkg *packages.Package }

// Pkg returns the package being parsed. Parser implements [codefmt.Pkger] by
// this method.
func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a [Parser]. The package must be loaded with its syntax and type
// information.
func New(pkg *packages.Package) (*Parser, error) {
	for _, need := range []struct {
		what string
		ok   bool
	}{
		{"name", pkg.Name != ""},
		{"path", pkg.PkgPath != ""},
		{"types", pkg.Types != nil},
		{"fset", pkg.Fset != nil},
		{"syntax", pkg.Syntax != nil},
		{"types info", pkg.TypesInfo != nil},
	} {
		if !need.ok {
			return nil, fmt.Errorf("need pkg %s", need.what)
		}
	}
	return &Parser{pkg: pkg}, nil
}

// GetDirective returns the name of the descgen function called by call, if
// any.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	if call == nil {
		return "", false
	}
	fn := typeutil.Callee(p.pkg.TypesInfo, call)
	if fn == nil || fn.Pkg() == nil || !IsDescgenImport(fn.Pkg().Path()) {
		return "", false
	}
	return fn.Name(), true
}

// IsDirective reports whether call calls the named descgen function, or any
// descgen function if name is empty.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	got, ok := p.GetDirective(call)
	return ok && (name == "" || got == name)
}

// DescgenGoFiles returns the Go files that have a "//go:build descgen"
// constraint.
func (p *Parser) DescgenGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if hasGoBuildDescgen(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildDescgen checks if the file has a build constraint mentioning the
// descgen tag.
func hasGoBuildDescgen(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		if group.Pos() >= file.Package {
			// Build constraints must appear before the package clause.
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}
			expr.Eval(func(tag string) bool {
				if tag == BuildTag {
					ok = true
				}
				return true
			})
		}
	}
	return ok
}
