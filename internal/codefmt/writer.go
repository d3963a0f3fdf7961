package codefmt

import (
	"cmp"
	"go/ast"
	"go/token"
	"go/types"
	"io"
	"slices"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer writes generated code for a package. Packages referred by the written
// types and objects are collected to be imported by the generated file.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	p       printer
	imports map[string]ImportSpec // by local name
	ns      NS
}

// ImportSpec is an import of the generated file.
type ImportSpec struct {
	Name string
	Path string

	// Aliased is true if Name differs from the package's own name.
	Aliased bool
}

// NewWriter creates a [Writer] without a namespace. Use [Writer.WithNS] to
// allocate local names.
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		p:       newPrinter(pkg),
		imports: make(map[string]ImportSpec),
	}
}

func (w *Writer) Write(b []byte) (int, error) { return w.w.Write(b) }

// Printf writes with the verbs of [Sprintf]. Packages of %o and %t arguments
// are imported.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	for _, arg := range args {
		w.importFor(arg)
	}
	return w.p.fprintf(w.w, format, args...)
}

// Name allocates a local name in the namespace of the writer.
func (w *Writer) Name(name string) string { return w.ns.Name(name) }

// WithNS returns a writer sharing the output and imports but allocating names
// in ns.
func (w *Writer) WithNS(ns NS) *Writer {
	clone := *w
	clone.ns = ns
	return &clone
}

// Imports returns the collected imports sorted by name.
func (w *Writer) Imports() []ImportSpec {
	specs := make([]ImportSpec, 0, len(w.imports))
	for _, spec := range w.imports {
		specs = append(specs, spec)
	}
	slices.SortFunc(specs, func(a, b ImportSpec) int { return cmp.Compare(a.Name, b.Name) })
	return specs
}

func (w *Writer) importFor(arg any) {
	var obj types.Object
	switch x := arg.(type) {
	case types.Object:
		obj = x
	case Objecter:
		obj = x.Object()
	case *types.Pointer:
		w.importFor(x.Elem())
	case *types.Named:
		obj = x.Obj()
	}
	if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() == w.pkg.PkgPath {
		return
	}
	w.Import(obj.Pkg().Path(), obj.Pkg().Name())
}

// Import imports a package and returns its local name. The name is the one
// preferred, or the package's own name if name is empty, suffixed if it is
// taken by another import or a package-level object.
//
//	name := w.Import("github.com/sublee/descgen", "descgen")
//	w.Printf("var _ %s.Describer = *new(T)\n", name)
func (w *Writer) Import(path, name string) string {
	own := name
	for _, imp := range w.pkg.Types.Imports() {
		if imp.Path() == path {
			own = imp.Name()
			break
		}
	}
	if name == "" {
		name = own
	}

	for candidate := range candidates(name) {
		if spec, ok := w.imports[candidate]; ok {
			if spec.Path == path {
				return candidate
			}
			continue
		}
		if w.pkg.Types.Scope().Lookup(candidate) != nil {
			continue
		}
		w.imports[candidate] = ImportSpec{Name: candidate, Path: path, Aliased: candidate != own}
		return candidate
	}
	panic("unreachable")
}

// RewriteImports requalifies references to imported packages in node with the
// names imported by w. Declarations copied from several files can then share
// one import declaration. Dot-imported identifiers are qualified.
func RewriteImports[T ast.Node](w *Writer, node T) T {
	qualified := func(at token.Pos, pkg *types.Package, sel *ast.Ident) *ast.SelectorExpr {
		name := w.Import(pkg.Path(), pkg.Name())
		return &ast.SelectorExpr{
			X:   &ast.Ident{NamePos: at, Name: name},
			Sel: sel,
		}
	}

	return astutil.Apply(node, func(c *astutil.Cursor) bool {
		switch x := c.Node().(type) {
		case *ast.SelectorExpr:
			id, ok := x.X.(*ast.Ident)
			if !ok {
				return true
			}
			pkgName, ok := w.pkg.TypesInfo.ObjectOf(id).(*types.PkgName)
			if !ok {
				return true
			}
			c.Replace(qualified(id.NamePos, pkgName.Imported(), &ast.Ident{NamePos: x.Sel.NamePos, Name: x.Sel.Name}))
			return false

		case *ast.Ident:
			obj := w.pkg.TypesInfo.ObjectOf(x)
			if obj == nil {
				return false
			}
			pkg := obj.Pkg()
			if pkg == nil || pkg.Path() == w.pkg.PkgPath || obj.Parent() != pkg.Scope() {
				return true
			}
			c.Replace(qualified(x.NamePos, pkg, &ast.Ident{NamePos: x.NamePos, Name: x.Name}))
			return false
		}
		return true
	}, nil).(T)
}
