// Package typeinfo classifies types given to Descgen directives.
package typeinfo

import "go/types"

// Type is a type with the parts Descgen looks at. Only a defined type with a
// basic underlying type can be an enum.
type Type struct {
	T     types.Type
	Named *types.Named // nil if not a defined type
	Basic *types.Basic // nil if the underlying type is not basic

	// Kind names the underlying type for error messages, such as "struct" or
	// "uint8".
	Kind string
}

// TypeOf inspects a type.
func TypeOf(t types.Type) Type {
	ti := Type{T: t, Kind: kindOf(t.Underlying())}
	ti.Named, _ = types.Unalias(t).(*types.Named)
	ti.Basic, _ = t.Underlying().(*types.Basic)
	return ti
}

func kindOf(u types.Type) string {
	switch u := u.(type) {
	case *types.Basic:
		return u.Name()
	case *types.Struct:
		return "struct"
	case *types.Interface:
		return "interface"
	case *types.Pointer:
		return "pointer"
	case *types.Signature:
		return "func"
	case *types.Slice:
		return "slice"
	case *types.Map:
		return "map"
	case *types.Chan:
		return "chan"
	case *types.Array:
		return "array"
	case *types.TypeParam:
		return "type parameter"
	}
	return "unknown"
}

func (t Type) String() string { return t.T.String() }

func (t Type) IsNamed() bool { return t.Named != nil }
func (t Type) IsBasic() bool { return t.Basic != nil }

// IsGeneric reports whether the type is declared with type parameters, even if
// it is instantiated.
func (t Type) IsGeneric() bool {
	return t.IsNamed() && t.Named.Origin().TypeParams().Len() != 0
}

// IsEnum reports whether the constants of the type can be switched over by a
// generated method.
func (t Type) IsEnum() bool {
	return t.IsNamed() && t.IsBasic() && !t.IsGeneric() && t.Basic.Info()&types.IsUntyped == 0
}

// Pkg returns the package declaring a defined type, or nil.
func (t Type) Pkg() *types.Package {
	if !t.IsNamed() {
		return nil
	}
	return t.Named.Obj().Pkg()
}

// Member returns the method or field with the given name, including promoted
// ones, as seen from the declaring package.
func (t Type) Member(name string) (types.Object, bool) {
	if !t.IsNamed() {
		return nil, false
	}
	obj, _, _ := types.LookupFieldOrMethod(t.T, true, t.Pkg(), name)
	return obj, obj != nil
}
