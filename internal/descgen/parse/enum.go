package parse

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/sublee/descgen/internal/codefmt"
	"github.com/sublee/descgen/internal/typeinfo"
)

// ParseEnum checks that the type argument of a directive is an enum which
// Descgen can generate a method for. An enum is a named type declared in the
// current package whose underlying type is basic.
func (p *Parser) ParseEnum(at ast.Node, typ types.Type, funcName string) (*types.Named, error) {
	ti := typeinfo.TypeOf(typ)

	if !ti.IsNamed() {
		return nil, codefmt.Errorf(p, at, "%s requires a named type; got %t", funcName, typ)
	}
	if ti.Pkg() != p.Pkg().Types {
		return nil, codefmt.Errorf(p, at, "%s cannot be implemented on %t declared in another package", funcName, typ)
	}
	if ti.IsGeneric() {
		return nil, codefmt.Errorf(p, at, "%s cannot be implemented on generic type %t", funcName, typ)
	}
	if !ti.IsEnum() {
		return nil, codefmt.Errorf(p, at, "%s cannot be implemented on %s types; %t is not an enum", funcName, ti.Kind, typ)
	}
	return ti.Named, nil
}

// Variant is a constant of an enum type.
type Variant struct {
	Const *types.Const
	Ident *ast.Ident
	Spec  *ast.ValueSpec
	Decl  *ast.GenDecl

	// AliasOf is the earlier variant with the same value, if any.
	AliasOf *types.Const
}

// Pos returns the position of the constant name.
func (v Variant) Pos() token.Pos { return v.Ident.Pos() }

// End returns the end position of the constant name.
func (v Variant) End() token.Pos { return v.Ident.End() }

// Object returns the constant. Variant implements [codefmt.Objecter] by this
// method.
func (v Variant) Object() types.Object { return v.Const }

// Variants finds all constants of the enum type in the package. The constants
// are in declaration order and unique by value. Constants whose value is
// already taken by an earlier one are returned as aliases. Constants in test
// files are not variants because the generated file is not a test file.
func (p *Parser) Variants(enum *types.Named) (variants, aliases []Variant) {
	byValue := linkedhashmap.New()

	for _, file := range p.Pkg().Syntax {
		if strings.HasSuffix(p.Pkg().Fset.File(file.Pos()).Name(), "_test.go") {
			continue
		}
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.CONST {
				continue
			}

			for _, spec := range gen.Specs {
				val, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}

				for _, name := range val.Names {
					if name.Name == "_" {
						continue
					}

					con, ok := p.Pkg().TypesInfo.Defs[name].(*types.Const)
					if !ok || con.Parent() != p.Pkg().Types.Scope() {
						continue
					}
					if !types.Identical(con.Type(), enum) {
						continue
					}

					v := Variant{Const: con, Ident: name, Spec: val, Decl: gen}

					key := con.Val().ExactString()
					if prev, ok := byValue.Get(key); ok {
						v.AliasOf = prev.(Variant).Const
						aliases = append(aliases, v)
						continue
					}
					byValue.Put(key, v)
				}
			}
		}
	}

	for _, v := range byValue.Values() {
		variants = append(variants, v.(Variant))
	}
	return variants, aliases
}
