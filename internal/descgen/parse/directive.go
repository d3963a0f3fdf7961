package parse

import (
	"errors"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"iter"
	"regexp"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/descgen/internal/codefmt"
	"github.com/sublee/descgen/internal/typeinfo"
)

const (
	// DefaultMethod is the name of the generated method unless renamed by
	// descgen.Method.
	DefaultMethod = "Description"

	// DefaultKey is the key of annotations unless changed by
	// descgen.Annotation.
	DefaultKey = "descgen"
)

var reKey = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Directive represents a request to generate a describing method, declared by
// descgen.Describe or descgen.DescribeOptional.
type Directive struct {
	// Enum is the type to describe. It is always a named type with a basic
	// underlying type declared in the current package.
	Enum *types.Named

	// Optional is true for descgen.DescribeOptional.
	Optional bool

	// Method is the name of the generated method.
	Method string

	// Key is the annotation key. Annotations are written as "//<Key>:".
	Key string

	pkg  *packages.Package
	pos  token.Pos
	call *ast.CallExpr
}

// Pkg returns the package where the directive is declared. Directive
// implements [codefmt.Pkger] by this method.
func (d Directive) Pkg() *packages.Package { return d.pkg }

// Pos returns the position of the directive call. Directive implements
// [codefmt.Poser] by this method.
func (d Directive) Pos() token.Pos { return d.pos }

// End returns the end position of the directive call.
func (d Directive) End() token.Pos { return d.call.End() }

// Prefix returns the leading text of annotations this directive reads, such as
// "//descgen:".
func (d Directive) Prefix() string { return "//" + d.Key + ":" }

// Contract returns the name of the interface the generated method implements,
// or "" if the method was renamed.
func (d Directive) Contract() string {
	if d.Method != DefaultMethod {
		return ""
	}
	if d.Optional {
		return "OptionalDescriber"
	}
	return "Describer"
}

// String returns a string representation of the directive. For example,
// "descgen.Describe[Status]".
func (d Directive) String() string {
	name := "Describe"
	if d.Optional {
		name = "DescribeOptional"
	}
	return codefmt.Sprintf(d, "descgen.%s[%t]", name, d.Enum)
}

// ParseDirectives parses all [Directive]s in descgen-tagged files. The result
// is in source order. A type may be described several times only if each
// directive generates a different method. Valid directives are returned even
// if others fail, along with the joined errors of the invalid ones.
func (p *Parser) ParseDirectives() ([]Directive, error) {
	var errs error
	var dirs []Directive

	type methodKey struct {
		enum   *types.TypeName
		method string
	}
	seen := make(map[methodKey]Directive)

	for _, file := range p.DescgenGoFiles() {
		for value, call := range p.findDirectiveCalls(file) {
			name, _ := p.GetDirective(call)
			if name != "Describe" && name != "DescribeOptional" {
				errs = errors.Join(errs, codefmt.Errorf(p, value, "descgen.%s can only be used as an option of descgen.Describe", name))
				continue
			}

			dir, err := p.parseDirective(value, call, name == "DescribeOptional")
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}

			key := methodKey{dir.Enum.Obj(), dir.Method}
			if prev, ok := seen[key]; ok {
				errs = errors.Join(errs, codefmt.Errorf(p, value, `duplicate %s method of %t
	previous declaration at %b`, dir.Method, dir.Enum, prev))
				continue
			}
			seen[key] = dir
			dirs = append(dirs, dir)
		}
	}

	return dirs, errs
}

// findDirectiveCalls iterates package-level values which are Descgen calls in
// the given file, in source order.
func (p *Parser) findDirectiveCalls(file *ast.File) iter.Seq2[ast.Expr, *ast.CallExpr] {
	return func(yield func(ast.Expr, *ast.CallExpr) bool) {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.VAR {
				continue
			}

			for _, spec := range gen.Specs {
				val, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for _, value := range val.Values {
					call, ok := ast.Unparen(value).(*ast.CallExpr)
					if !ok || !p.IsDirective(call, "") {
						continue
					}
					if !yield(value, call) {
						return
					}
				}
			}
		}
	}
}

// IsDirectiveValue reports whether the value expression of a package-level
// variable is a Descgen directive which [Parser.ParseDirectives] consumes.
func (p *Parser) IsDirectiveValue(value ast.Expr) bool {
	call, ok := ast.Unparen(value).(*ast.CallExpr)
	return ok && p.IsDirective(call, "")
}

// parseDirective parses a [Directive] from a descgen.Describe or
// descgen.DescribeOptional call.
func (p *Parser) parseDirective(value ast.Expr, call *ast.CallExpr, optional bool) (Directive, error) {
	dir := Directive{
		Optional: optional,
		Method:   DefaultMethod,
		Key:      DefaultKey,
		pkg:      p.Pkg(),
		pos:      value.Pos(),
		call:     call,
	}

	typ, err := p.typeArg(call)
	if err != nil {
		return Directive{}, err
	}

	enum, err := p.ParseEnum(call, typ, dir.funcName())
	if err != nil {
		return Directive{}, err
	}
	dir.Enum = enum

	var errs error
	for _, arg := range call.Args {
		errs = errors.Join(errs, p.parseOption(&dir, arg))
	}
	if errs != nil {
		return Directive{}, errs
	}

	if obj, ok := typeinfo.TypeOf(enum).Member(dir.Method); ok {
		return Directive{}, codefmt.Errorf(p, call, "%t already has %s %s at %b", enum, objKind(obj), dir.Method, obj)
	}

	return dir, nil
}

func (d Directive) funcName() string {
	if d.Optional {
		return "descgen.DescribeOptional"
	}
	return "descgen.Describe"
}

// typeArg returns the explicit type argument of a directive call.
func (p *Parser) typeArg(call *ast.CallExpr) (types.Type, error) {
	fun := ast.Unparen(call.Fun)
	switch x := fun.(type) {
	case *ast.IndexExpr:
		fun = x.X
	case *ast.IndexListExpr:
		fun = x.X
	}

	var id *ast.Ident
	switch x := ast.Unparen(fun).(type) {
	case *ast.Ident:
		id = x
	case *ast.SelectorExpr:
		id = x.Sel
	}

	inst, ok := p.Pkg().TypesInfo.Instances[id]
	if id == nil || !ok || inst.TypeArgs.Len() != 1 {
		return nil, codefmt.Errorf(p, call, "type argument must be given explicitly: %c", call.Fun)
	}
	return inst.TypeArgs.At(0), nil
}

// parseOption applies a descgen.Method or descgen.Annotation option to the
// directive.
func (p *Parser) parseOption(dir *Directive, arg ast.Expr) error {
	call, ok := ast.Unparen(arg).(*ast.CallExpr)
	if !ok {
		return codefmt.Errorf(p, arg, "option must be a call of descgen.Method or descgen.Annotation; got %c", arg)
	}

	name, ok := p.GetDirective(call)
	if !ok || (name != "Method" && name != "Annotation") {
		return codefmt.Errorf(p, arg, "option must be a call of descgen.Method or descgen.Annotation; got %c", arg)
	}

	s, ok := p.evalString(call.Args[0])
	if !ok {
		return codefmt.Errorf(p, call.Args[0], "descgen.%s requires a constant string; got %c", name, call.Args[0])
	}

	switch name {
	case "Method":
		if !token.IsIdentifier(s) {
			return codefmt.Errorf(p, call.Args[0], "invalid method name %q", s)
		}
		dir.Method = s
	case "Annotation":
		if !reKey.MatchString(s) {
			return codefmt.Errorf(p, call.Args[0], "invalid annotation key %q", s)
		}
		dir.Key = s
	}
	return nil
}

// evalString evaluates a constant string expression.
func (p *Parser) evalString(expr ast.Expr) (string, bool) {
	tv := p.Pkg().TypesInfo.Types[expr]
	if tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}
	return constant.StringVal(tv.Value), true
}

func objKind(obj types.Object) string {
	if _, ok := obj.(*types.Var); ok {
		return "field"
	}
	return "method"
}
