package parse

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"github.com/sublee/descgen/internal/codefmt"
)

// Annotation is a directive comment attached to a variant such as
// //descgen:"Charger connected!".
type Annotation struct {
	Comment *ast.Comment

	// Payload is the text after the annotation prefix. A trailing line comment
	// is not included.
	Payload string

	pos token.Pos // of Payload[0]
}

func (a Annotation) Pos() token.Pos { return a.Comment.Pos() }
func (a Annotation) End() token.Pos { return a.Comment.End() }

// Annotations returns the annotations of a variant with the given key in
// source order. It looks in the doc and line comments of the variant's spec.
// For a const declaration without parentheses, the doc comment of the
// declaration is also examined.
func (p *Parser) Annotations(v Variant, key string) []Annotation {
	var groups []*ast.CommentGroup
	if !v.Decl.Lparen.IsValid() {
		groups = append(groups, v.Decl.Doc)
	}
	groups = append(groups, v.Spec.Doc, v.Spec.Comment)

	prefix := "//" + key + ":"
	var anns []Annotation
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, c := range group.List {
			rest, ok := strings.CutPrefix(c.Text, prefix)
			if !ok {
				continue
			}
			anns = append(anns, Annotation{
				Comment: c,
				Payload: stripLineComment(rest),
				pos:     c.Slash + token.Pos(len(prefix)),
			})
		}
	}
	return anns
}

// stripLineComment cuts a payload at its first "//" comment so that
// annotations can be followed by a comment on the same line.
func stripLineComment(payload string) string {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(payload))

	var s scanner.Scanner
	s.Init(file, []byte(payload), func(token.Position, string) {}, scanner.ScanComments)
	for {
		pos, tok, lit := s.Scan()
		switch {
		case tok == token.EOF:
			return payload
		case tok == token.COMMENT && strings.HasPrefix(lit, "//"):
			return payload[:file.Offset(pos)]
		}
	}
}

// FirstString returns the unquoted value of the first token of the payload if
// it is a string literal.
func (a Annotation) FirstString() (string, bool) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(a.Payload))

	var s scanner.Scanner
	s.Init(file, []byte(a.Payload), func(token.Position, string) {}, 0)
	_, tok, lit := s.Scan()
	if tok != token.STRING {
		return "", false
	}
	str, err := strconv.Unquote(lit)
	if err != nil {
		return "", false
	}
	return str, true
}

// Payload is a parsed annotation. Its arguments are parsed in a private file
// set so their positions must be translated by [Payload.Span] before being
// reported.
type Payload struct {
	Annotation
	Args []ast.Expr

	fset *token.FileSet
	file *token.File
}

// payloadOffset is the length of "_(" which wraps a payload to parse it as a
// call expression.
const payloadOffset = 2

// ParsePayload parses the payload of an annotation as a Go argument list.
func (p *Parser) ParsePayload(a Annotation) (*Payload, error) {
	src := "_(" + a.Payload + ")"
	fset := token.NewFileSet()

	expr, err := parser.ParseExprFrom(fset, "", src, parser.SkipObjectResolution)
	if err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) != 0 {
			off := min(max(list[0].Pos.Offset-payloadOffset, 0), len(a.Payload))
			return nil, codefmt.Errorf(p, codefmt.Pos(a.pos+token.Pos(off)), "invalid annotation: %s", list[0].Msg)
		}
		return nil, codefmt.Errorf(p, a, "invalid annotation: %s", err.Error())
	}

	call, ok := expr.(*ast.CallExpr)
	file := fset.File(expr.Pos())
	if !ok || file == nil || call.Ellipsis.IsValid() ||
		file.Offset(call.Lparen) != 1 || file.Offset(call.Rparen) != len(src)-1 {
		return nil, codefmt.Errorf(p, a, "invalid annotation: expected argument list")
	}

	return &Payload{Annotation: a, Args: call.Args, fset: fset, file: file}, nil
}

func (pl *Payload) offset(pos token.Pos) int {
	return pl.file.Offset(pos) - payloadOffset
}

// Span returns the position of an argument expression in the annotated source
// file.
func (pl *Payload) Span(expr ast.Expr) codefmt.Poser {
	return codefmt.Span(
		pl.pos+token.Pos(pl.offset(expr.Pos())),
		pl.pos+token.Pos(pl.offset(expr.End())),
	)
}

// Source returns the source text of an argument expression as written in the
// annotation.
func (pl *Payload) Source(expr ast.Expr) string {
	return pl.Payload[pl.offset(expr.Pos()):pl.offset(expr.End())]
}

// StringLit returns the payload as a single string literal. Otherwise, it
// returns an error telling what was provided instead.
func (p *Parser) StringLit(pl *Payload) (*ast.BasicLit, error) {
	switch len(pl.Args) {
	case 0:
		return nil, codefmt.Errorf(p, pl.Annotation, "expected string literal, provided nothing")
	case 1:
	default:
		return nil, codefmt.Errorf(p, pl.Annotation, "expected a single string literal, provided %d arguments", len(pl.Args))
	}

	arg := pl.Args[0]
	lit, ok := arg.(*ast.BasicLit)
	if !ok {
		return nil, codefmt.Errorf(p, pl.Span(arg), "expected literal, provided expression %s", pl.Source(arg))
	}
	if lit.Kind != token.STRING {
		return nil, codefmt.Errorf(p, pl.Span(arg), "expected string literal, provided %s", lit.Value)
	}
	return lit, nil
}

// Eval evaluates an argument expression of the payload as if it was written at
// the variant. Identifiers are resolved in the file scope of the variant, so
// imported packages and package-level constants are visible.
func (p *Parser) Eval(pl *Payload, v Variant, expr ast.Expr) (types.TypeAndValue, error) {
	tv, err := p.eval(pl.fset, v, expr)
	if err != nil {
		return tv, codefmt.Errorf(p, pl.Span(expr), "%s", err.Error())
	}
	if tv.Value == nil {
		return tv, codefmt.Errorf(p, pl.Span(expr), "format argument %s is not a constant", pl.Source(expr))
	}
	return tv, nil
}

// EvalName evaluates a constant referred by name, possibly qualified by a
// package name, as if it was written at the variant.
func (p *Parser) EvalName(v Variant, name string) (types.TypeAndValue, error) {
	fset := token.NewFileSet()
	expr, err := parser.ParseExprFrom(fset, "", name, parser.SkipObjectResolution)
	if err != nil {
		return types.TypeAndValue{}, errors.New("invalid name " + strconv.Quote(name))
	}

	tv, err := p.eval(fset, v, expr)
	if err != nil {
		return tv, err
	}
	if tv.Value == nil {
		return tv, errors.New("{" + name + "} is not a constant")
	}
	return tv, nil
}

func (p *Parser) eval(fset *token.FileSet, v Variant, expr ast.Expr) (types.TypeAndValue, error) {
	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	if err := types.CheckExpr(fset, p.Pkg().Types, v.Pos(), expr, info); err != nil {
		var typErr types.Error
		if errors.As(err, &typErr) {
			return types.TypeAndValue{}, errors.New(typErr.Msg)
		}
		return types.TypeAndValue{}, err
	}
	return info.Types[expr], nil
}

// IsRune reports whether a constant of the type should be shown as a
// character.
func IsRune(typ types.Type) bool {
	basic, ok := typ.(*types.Basic)
	if !ok {
		return false
	}
	return basic.Kind() == types.UntypedRune || basic.Name() == "rune"
}

// SignedBits returns the size in bits of a typed signed integer type, or 0 for
// other types. int is taken as 64 bits.
func SignedBits(typ types.Type) int {
	basic, ok := typ.Underlying().(*types.Basic)
	if !ok {
		return 0
	}
	switch basic.Kind() {
	case types.Int8:
		return 8
	case types.Int16:
		return 16
	case types.Int32:
		return 32
	case types.Int, types.Int64:
		return 64
	}
	return 0
}
