// Package descgen provides directives for generating static descriptions of
// enum values.
//
// Descgen turns per-member annotations on an enum into a method that returns
// constant text. The text is decided at generation time and compiled into the
// program as string literals, so calling the method never allocates or
// formats anything at runtime.
//
// To start with Descgen, add a build constraint to files containing Descgen
// directives:
//
//	//go:build descgen
//
// Annotate each member of an enum with a //descgen: directive comment, then
// request the method with [Describe]:
//
//	type ChargerStatus int
//
//	const (
//		//descgen:"Charger connected!"
//		Connected ChargerStatus = iota
//		Disconnected //descgen:"Charger disconnected!"
//	)
//
//	var _ = descgen.Describe[ChargerStatus]()
//
//	// generated: (simplified)
//	func (c ChargerStatus) Description() string {
//		switch c {
//		case Connected:
//			return "Charger connected!"
//		case Disconnected:
//			return "Charger disconnected!"
//		}
//		return ""
//	}
//
// After declaring directives, run the descgen command. It will generate
// descgen_gen.go for your package:
//
//	go run github.com/sublee/descgen/cmd/descgen
//
// The package may call the generated method before it exists. Such calls are
// allowed while generating, and every other compile error is reported.
//
// # Optional descriptions
//
// [Describe] requires every member to be annotated and reports the missing
// ones. When only some members deserve a description, use [DescribeOptional]
// instead. Members without an annotation report no description:
//
//	type BatteryStatus int
//
//	const (
//		Okay BatteryStatus = iota
//		LowBattery //descgen:"Low battery!"
//	)
//
//	var _ = descgen.DescribeOptional[BatteryStatus]()
//
//	// generated: (simplified)
//	func (b BatteryStatus) Description() (string, bool) {
//		switch b {
//		case Okay:
//			return "", false
//		case LowBattery:
//			return "Low battery!", true
//		}
//		return "", false
//	}
//
// # Format templates
//
// When the generator runs with --format, an annotation may be a template
// followed by arguments. Every argument must be a constant, and the template
// is rendered while generating code:
//
//	const Limit = 5
//
//	const (
//		//descgen:"the limit is {Limit}, and the max uint32 is {}", math.MaxUint32
//		ShowLimit SomeStatus = iota
//	)
//
//	// generated: (simplified)
//	case ShowLimit:
//		return "the limit is 5, and the max uint32 is 4294967295"
//
// Placeholders are {} for the next argument, {0} for an argument by index, and
// {Name} for a package-level constant. A placeholder may end with a spec like
// {:?}, {:x}, {:#b}. Literal braces are written as {{ and }}. A negative integer
// of a sized type is rendered in two's complement by {:x}, {:b} and {:o}, so
// int8(-1) is ff while an untyped -1 is -1.
//
// Arguments are Go expressions separated by commas. Named arguments such as
// "{a}", a = 5 cannot be written; declare a constant and refer to it as
// {Name} instead.
//
// An annotation is treated as a template whenever its text contains a brace.
// Without --format, such an annotation is reported instead of being copied
// verbatim.
package descgen

// Describer is implemented by enums with a generated [Describe] method. Every
// member has a description.
type Describer interface {
	Description() string
}

// OptionalDescriber is implemented by enums with a generated
// [DescribeOptional] method. Members without an annotation report ("", false).
type OptionalDescriber interface {
	Description() (string, bool)
}

// Directive is the result of a Descgen directive. It has no use other than
// being assigned to a package-level variable, usually the blank identifier.
type Directive struct{ _ [0]func() }

// Option configures a directive. Options are created by [Method] and
// [Annotation].
type Option interface{ descgenOption() }

// Describe directive generates a method that describes every member of the
// enum type T:
//
//	var _ = descgen.Describe[ChargerStatus]()
//
// T must be a named type declared in the same package with a basic underlying
// type such as int or string. Its members are the package-level constants of
// type T, and each of them must have exactly one annotation. The generated
// method implements [Describer] unless it is renamed by [Method].
func Describe[T any](opts ...Option) Directive {
	panic("descgen: not generated")
}

// DescribeOptional is the optional variant of [Describe]. Members may omit
// their annotation, and the generated method reports whether the member has a
// description. It implements [OptionalDescriber] unless it is renamed by
// [Method].
func DescribeOptional[T any](opts ...Option) Directive {
	panic("descgen: not generated")
}

// Method renames the generated method. The default name is "Description".
//
//	var _ = descgen.Describe[Color](descgen.Method("Label"))
func Method(name string) Option {
	panic("descgen: not generated")
}

// Annotation changes the key of the directive comments to read. The default
// key is "descgen". Different keys allow a single enum to have several
// generated methods:
//
//	const (
//		//descgen:"The color red"
//		//label:"Red"
//		Red Color = iota
//	)
//
//	var (
//		_ = descgen.Describe[Color]()
//		_ = descgen.Describe[Color](descgen.Method("Label"), descgen.Annotation("label"))
//	)
func Annotation(key string) Option {
	panic("descgen: not generated")
}
