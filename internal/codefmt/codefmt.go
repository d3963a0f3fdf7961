// Package codefmt prints Go types, objects, expressions and positions the way
// they read in the package being generated, and writes generated code that
// refers to them.
package codefmt

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

type (
	// Pkger is anything bound to the package being generated.
	Pkger interface{ Pkg() *packages.Package }

	// Poser has a position in the source code.
	Poser interface{ Pos() token.Pos }

	// Ender is a [Poser] which also knows where it ends.
	Ender interface{ End() token.Pos }

	// Objecter stands for a [types.Object], like a constant of an enum.
	Objecter interface{ Object() types.Object }
)

type pos token.Pos

func (p pos) Pos() token.Pos { return token.Pos(p) }

// Pos wraps a bare position as a [Poser].
func Pos(p token.Pos) Poser { return pos(p) }

type span struct{ pos, end token.Pos }

func (s span) Pos() token.Pos { return s.pos }
func (s span) End() token.Pos { return s.end }

// Span returns a [Poser] which also implements [Ender]. Diagnostics created
// with it underline the whole range.
func Span(pos, end token.Pos) Poser { return span{pos, end} }

// printer renders values relative to a package. The zero value prints
// everything qualified and positions as "-:-".
type printer struct {
	pkgPath string
	fset    *token.FileSet
	info    *types.Info
}

func newPrinter(pkg *packages.Package) printer {
	if pkg == nil {
		return printer{}
	}
	return printer{pkg.PkgPath, pkg.Fset, pkg.TypesInfo}
}

func printerOf(pkger Pkger) printer {
	if pkger == nil {
		return printer{}
	}
	return newPrinter(pkger.Pkg())
}

// qualifier omits the name of the current package.
func (p printer) qualifier(pkg *types.Package) string {
	if pkg == nil || pkg.Path() == p.pkgPath {
		return ""
	}
	return pkg.Name()
}

// typ prints a type, e.g., "time.Weekday" or "Status".
func (p printer) typ(t types.Type) string {
	return types.TypeString(t, p.qualifier)
}

// obj prints a reference to an object, e.g., "time.Monday" or "Connected".
func (p printer) obj(obj types.Object) string {
	if q := p.qualifier(obj.Pkg()); q != "" {
		return q + "." + obj.Name()
	}
	return obj.Name()
}

// expr prints an expression as Go source.
func (p printer) expr(expr ast.Expr) string {
	fset := p.fset
	if fset == nil {
		fset = token.NewFileSet()
	}
	var b strings.Builder
	if err := format.Node(&b, fset, expr); err != nil {
		panic(err)
	}
	return b.String()
}

func (p printer) position(at token.Pos) token.Position {
	if p.fset == nil {
		return token.Position{}
	}
	return p.fset.Position(at)
}

// wd is the working directory captured at start. Positions are printed
// relative to it.
var wd, _ = os.Getwd()

// positionString prints "file:line:column". The file is relative to the
// working directory if possible.
func positionString(at token.Position) string {
	if !at.IsValid() {
		return "-:-"
	}
	name := at.Filename
	if rel, err := filepath.Rel(wd, name); err == nil {
		name = rel
	}
	return fmt.Sprintf("%s:%d:%d", name, at.Line, at.Column)
}
