package codefmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io"
)

// Sprintf formats like [fmt.Sprintf] with extra verbs for Go code:
//
//	%o  an object, or a type's name, as referred from the package
//	%t  a type, or the type of an object or expression
//	%c  an expression as source code
//	%b  the position of a [Poser] or an object as "file:line:column"
//
// Other verbs behave as in the fmt package.
func Sprintf(pkger Pkger, format string, args ...any) string {
	return fmt.Sprintf(format, printerOf(pkger).wrap(args)...)
}

func (p printer) fprintf(w io.Writer, format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, p.wrap(args)...)
}

// wrap replaces arguments which the extra verbs understand.
func (p printer) wrap(args []any) []any {
	out := make([]any, len(args))
	for i, x := range args {
		switch x.(type) {
		case token.Pos, ast.Expr, types.Object, types.Type, Poser, Objecter:
			out[i] = codeArg{x, p}
		default:
			out[i] = x
		}
	}
	return out
}

type codeArg struct {
	x any
	p printer
}

func (a codeArg) object() types.Object {
	switch x := a.x.(type) {
	case types.Object:
		return x
	case Objecter:
		return x.Object()
	case *types.Named:
		return x.Obj()
	}
	return nil
}

func (a codeArg) typ() types.Type {
	switch x := a.x.(type) {
	case types.Type:
		return x
	case ast.Expr:
		if a.p.info != nil {
			return a.p.info.TypeOf(x)
		}
		return nil
	}
	if obj := a.object(); obj != nil {
		return obj.Type()
	}
	return nil
}

func (a codeArg) pos() (token.Pos, bool) {
	switch x := a.x.(type) {
	case token.Pos:
		return x, true
	case Poser:
		return x.Pos(), true
	}
	if obj := a.object(); obj != nil {
		return obj.Pos(), true
	}
	return token.NoPos, false
}

// Format implements [fmt.Formatter].
func (a codeArg) Format(s fmt.State, verb rune) {
	var out string
	ok := true

	switch verb {
	case 'o':
		obj := a.object()
		if ok = obj != nil; ok {
			out = a.p.obj(obj)
		}
	case 't':
		typ := a.typ()
		if ok = typ != nil; ok {
			out = a.p.typ(typ)
		}
	case 'c':
		var expr ast.Expr
		expr, ok = a.x.(ast.Expr)
		if ok {
			out = a.p.expr(expr)
		}
	case 'b':
		var at token.Pos
		if at, ok = a.pos(); ok {
			out = positionString(a.p.position(at))
		}
	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), a.x)
		return
	}

	if !ok {
		fmt.Fprintf(s, "%%!%c(%T)", verb, a.x)
		return
	}
	_, _ = io.WriteString(s, out)
}
