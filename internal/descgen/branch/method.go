package branch

import (
	"errors"

	"github.com/sublee/descgen/internal/codefmt"
	"github.com/sublee/descgen/internal/descgen/parse"
)

// Method is a describing method to generate for a directive.
type Method struct {
	parse.Directive
	Branches []Branch
}

// Build classifies the annotations of every variant of the directive's enum.
// All errors of the variants are returned together. If any variant fails, no
// method is built.
func Build(p *parse.Parser, dir parse.Directive, opts Options) (*Method, error) {
	variants, aliases := p.Variants(dir.Enum)
	if len(variants) == 0 {
		return nil, codefmt.Errorf(p, dir, "%t has no constants to describe", dir.Enum)
	}

	var errs error
	for _, alias := range aliases {
		anns := p.Annotations(alias, dir.Key)
		if len(anns) == 0 {
			continue
		}
		errs = errors.Join(errs, codefmt.Errorf(p, anns[0], "%o has the same value as %o; annotate %o instead", alias.Const, alias.AliasOf, alias.AliasOf))
	}

	branches := make([]Branch, 0, len(variants))
	for _, v := range variants {
		b, err := Classify(p, dir, v, opts)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		branches = append(branches, b)
	}

	if errs != nil {
		return nil, errs
	}
	return &Method{Directive: dir, Branches: branches}, nil
}

// WriteDefineCode writes the method declaration.
//
//	func (s Status) Description() string {
//		switch s {
//		case Connected:
//			return "Charger connected!"
//		}
//		return ""
//	}
func (m *Method) WriteDefineCode(w *codefmt.Writer) {
	recv := w.Name(codefmt.ReceiverName(m.Enum.Obj().Name()))

	result := "string"
	if m.Optional {
		result = "(string, bool)"
	}
	w.Printf("func (%s %t) %s() %s {\n", recv, m.Enum, m.Method, result)

	w.Printf("switch %s {\n", recv)
	for _, b := range m.Branches {
		w.Printf("case %o:\n", b.Variant.Const)
		switch {
		case b.Kind == Absent:
			w.Printf("return \"\", false\n")
		case m.Optional:
			w.Printf("return %s, true\n", b.Text)
		default:
			w.Printf("return %s\n", b.Text)
		}
	}
	w.Printf("}\n")

	if m.Optional {
		w.Printf("return \"\", false\n")
	} else {
		w.Printf("return \"\"\n")
	}
	w.Printf("}\n\n")
}

// WriteAssertCode writes a compile-time assertion that the enum implements
// descgen.Describer or descgen.OptionalDescriber. Nothing is written if the
// method was renamed.
func (m *Method) WriteAssertCode(w *codefmt.Writer) {
	contract := m.Contract()
	if contract == "" {
		return
	}
	descgenName := w.Import(parse.ImportPath, "descgen")
	w.Printf("var _ %s.%s = *new(%t)\n", descgenName, contract, m.Enum)
}
