package branch

import (
	"go/ast"
	"go/token"
	"go/types"
	"strconv"
	"strings"

	"github.com/sublee/descgen/internal/codefmt"
	"github.com/sublee/descgen/internal/constfmt"
	"github.com/sublee/descgen/internal/descgen/parse"
)

// Options controls how annotations are classified.
type Options struct {
	// Format enables format templates in annotations.
	Format bool
}

// Kind is the kind of a [Branch].
type Kind int

const (
	Literal Kind = iota
	Formatted
	Absent
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Formatted:
		return "formatted"
	case Absent:
		return "absent"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Branch is a case of the generated switch statement for one variant.
type Branch struct {
	Variant parse.Variant
	Kind    Kind

	// Text is a Go string literal to return. It is empty for [Absent].
	Text string
}

// Classify produces the branch of a variant from its annotation.
func Classify(p *parse.Parser, dir parse.Directive, v parse.Variant, opts Options) (Branch, error) {
	anns := p.Annotations(v, dir.Key)

	if len(anns) > 1 {
		return Branch{}, codefmt.Errorf(p, anns[1], `duplicate %s annotation on %o
	previous annotation at %b`, dir.Prefix(), v.Const, anns[0])
	}

	if len(anns) == 0 {
		if dir.Optional {
			return Branch{Variant: v, Kind: Absent}, nil
		}
		return Branch{}, codefmt.Errorf(p, v, "missing %s annotation on %o", dir.Prefix(), v.Const)
	}

	ann := anns[0]

	pl, parseErr := p.ParsePayload(ann)
	var lit *ast.BasicLit
	litErr := parseErr
	if parseErr == nil {
		lit, litErr = p.StringLit(pl)
	}

	if litErr == nil {
		s, err := strconv.Unquote(lit.Value)
		if err != nil {
			return Branch{}, codefmt.Errorf(p, pl.Span(lit), "invalid annotation: %s", err.Error())
		}
		if !strings.Contains(s, "{") {
			return Branch{Variant: v, Kind: Literal, Text: lit.Value}, nil
		}
	}

	// The annotation requests formatting from here.
	if !opts.Format {
		if s, ok := ann.FirstString(); ok && strings.Contains(s, "{") {
			return Branch{}, codefmt.Errorf(p, ann, "format arguments require the format capability to be enabled")
		}
		return Branch{}, litErr
	}
	if parseErr != nil {
		return Branch{}, parseErr
	}

	text, err := render(p, pl, v)
	if err != nil {
		return Branch{}, err
	}
	return Branch{Variant: v, Kind: Formatted, Text: strconv.Quote(text)}, nil
}

// render renders a template annotation such as //descgen:"{} of {Max}", n.
func render(p *parse.Parser, pl *parse.Payload, v parse.Variant) (string, error) {
	if len(pl.Args) == 0 {
		return "", codefmt.Errorf(p, pl.Annotation, "expected format template, provided nothing")
	}

	tmpl, ok := pl.Args[0].(*ast.BasicLit)
	if !ok || tmpl.Kind != token.STRING {
		return "", codefmt.Errorf(p, pl.Span(pl.Args[0]), "format template must be a string literal; got %s", pl.Source(pl.Args[0]))
	}
	template, err := strconv.Unquote(tmpl.Value)
	if err != nil {
		return "", codefmt.Errorf(p, pl.Span(tmpl), "invalid annotation: %s", err.Error())
	}

	args := make([]constfmt.Value, 0, len(pl.Args)-1)
	for _, arg := range pl.Args[1:] {
		tv, err := p.Eval(pl, v, arg)
		if err != nil {
			return "", err
		}
		args = append(args, valueOf(tv))
	}

	resolve := func(name string) (constfmt.Value, error) {
		tv, err := p.EvalName(v, name)
		if err != nil {
			return constfmt.Value{}, err
		}
		return valueOf(tv), nil
	}

	text, err := constfmt.Render(template, args, resolve)
	if err != nil {
		return "", codefmt.Errorf(p, pl.Span(tmpl), "invalid format template: %s", err.Error())
	}
	return text, nil
}

func valueOf(tv types.TypeAndValue) constfmt.Value {
	return constfmt.Value{
		Value: tv.Value,
		Rune:  parse.IsRune(tv.Type),
		Bits:  parse.SignedBits(tv.Type),
	}
}
