package descgeninternal

import (
	"go/ast"
	"go/token"
	"go/types"
	"regexp"

	"github.com/sublee/descgen/internal/descgen/parse"
)

var reMissingMethod = regexp.MustCompile(`does not implement .*\(missing method (\w+)\)`)

// Pending is the set of methods which directives are going to generate.
//
// Packages are type-checked with the descgen build tag, which excludes the
// generated file. So a call of a generated method, such as
// Status.Description(), does not type-check until the file is generated. Such
// type errors are tolerated while every other error still fails.
type Pending map[pendingMethod]struct{}

// pendingMethod is keyed by paths and names rather than objects because test
// variants of a package have their own objects.
type pendingMethod struct {
	pkgPath  string
	typeName string
	method   string
}

// Add marks the methods of the directives as pending.
func (pm Pending) Add(dirs ...parse.Directive) {
	for _, dir := range dirs {
		obj := dir.Enum.Obj()
		pm[pendingMethod{obj.Pkg().Path(), obj.Name(), dir.Method}] = struct{}{}
	}
}

// Has reports whether the method of the type is pending. A pointer to an enum
// has the methods of the enum.
func (pm Pending) Has(typ types.Type, method string) bool {
	if typ == nil {
		return false
	}
	if ptr, ok := types.Unalias(typ).(*types.Pointer); ok {
		typ = ptr.Elem()
	}
	named, ok := types.Unalias(typ).(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}
	_, ok = pm[pendingMethod{named.Obj().Pkg().Path(), named.Obj().Name(), method}]
	return ok
}

// Tolerates returns a predicate reporting whether a type error in files is
// caused by a pending method. These errors are tolerated:
//
//	A.Description undefined (type S has no field or method Description)
//	cannot use A (...) as descgen.Describer value ...: S does not implement descgen.Describer (missing method Description)
func (pm Pending) Tolerates(info *types.Info, files []*ast.File) func(types.Error) bool {
	sels := make(map[token.Pos]bool)
	exprs := make(map[token.Pos][]types.Type)

	if len(pm) != 0 && info != nil {
		for _, file := range files {
			ast.Inspect(file, func(n ast.Node) bool {
				sel, ok := n.(*ast.SelectorExpr)
				if !ok {
					return true
				}
				if _, ok := info.Selections[sel]; ok {
					return true
				}
				if pm.Has(info.TypeOf(sel.X), sel.Sel.Name) {
					sels[sel.Sel.Pos()] = true
				}
				return true
			})
		}
		for expr, tv := range info.Types {
			if tv.Type != nil && !tv.IsType() {
				exprs[expr.Pos()] = append(exprs[expr.Pos()], tv.Type)
			}
		}
	}

	return func(err types.Error) bool {
		if sels[err.Pos] {
			return true
		}
		m := reMissingMethod.FindStringSubmatch(err.Msg)
		if m == nil {
			return false
		}
		for _, typ := range exprs[err.Pos] {
			if pm.Has(typ, m[1]) {
				return true
			}
		}
		return false
	}
}
