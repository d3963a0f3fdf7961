// Package constfmt renders format templates with constant arguments while
// generating code, so that the result can be emitted as a single string
// literal.
//
// A template is literal text with placeholders in braces:
//
//	{}        the next positional argument
//	{1}       the positional argument at index 1
//	{Limit}   the constant named Limit, resolved by the caller
//	{x:spec}  any of the above with a spec
//
// A spec is an optional "#" followed by an optional verb: "?" quotes strings
// and runes, "x", "X", "b" and "o" print integers in another base. "#" adds
// the 0x, 0b or 0o prefix. "{{" and "}}" are literal braces.
//
// Implicit positional placeholders are counted from left to right regardless
// of indexed and named placeholders, and every positional argument must be
// used at least once.
package constfmt

import (
	"fmt"
	"go/constant"
	"go/token"
	"math/big"
	"strconv"
	"strings"
	"unicode"
)

// Value is a constant argument of a template.
type Value struct {
	constant.Value

	// Rune reports whether an integer constant holds a rune. Runes are
	// rendered as the character instead of the code point.
	Rune bool

	// Bits is the size of the signed integer type of a typed constant, or 0.
	// With {:x}, {:b} and {:o}, a negative integer of a sized type is
	// rendered in two's complement, such as ff for int8(-1). Untyped
	// negative integers keep the sign.
	Bits int
}

// Resolver resolves a named placeholder such as {Limit} or {math.MaxInt8}.
type Resolver func(name string) (Value, error)

// Render renders a template with positional arguments. Named placeholders are
// resolved by resolve, which may be nil if the template has none.
func Render(template string, args []Value, resolve Resolver) (string, error) {
	pieces, err := Parse(template)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	next := 0
	used := make([]bool, len(args))

	for _, p := range pieces {
		if !p.IsHole() {
			b.WriteString(p.Text)
			continue
		}

		var v Value
		switch {
		case p.Name != "":
			if resolve == nil {
				return "", fmt.Errorf("cannot resolve {%s}", p.Name)
			}
			v, err = resolve(p.Name)
			if err != nil {
				return "", err
			}

		case p.Index >= 0:
			if p.Index >= len(args) {
				return "", fmt.Errorf("invalid reference to positional argument %d (%s)", p.Index, countArgs(len(args)))
			}
			v = args[p.Index]
			used[p.Index] = true

		default:
			if next >= len(args) {
				return "", fmt.Errorf("{} at position %d has no argument (%s)", next, countArgs(len(args)))
			}
			v = args[next]
			used[next] = true
			next++
		}

		s, err := p.Spec.format(v)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}

	for i, ok := range used {
		if !ok {
			return "", fmt.Errorf("argument %d is never used", i)
		}
	}
	return b.String(), nil
}

func countArgs(n int) string {
	switch n {
	case 0:
		return "no arguments were given"
	case 1:
		return "there is 1 argument"
	}
	return fmt.Sprintf("there are %d arguments", n)
}

// Piece is a chunk of a parsed template. It is either literal text or a hole
// for an argument.
type Piece struct {
	Text string

	hole  bool
	Index int    // explicit positional index, or -1
	Name  string // named constant, or ""
	Spec  Spec
}

// IsHole reports whether the piece is a placeholder.
func (p Piece) IsHole() bool { return p.hole }

// Spec is the parsed part of a placeholder after the colon.
type Spec struct {
	Alt  bool
	Verb byte // 0 for the default form
}

// Parse splits a template into literal text and placeholders.
func Parse(template string) ([]Piece, error) {
	var pieces []Piece
	var lit strings.Builder
	flush := func() {
		if lit.Len() != 0 {
			pieces = append(pieces, Piece{Text: lit.String(), Index: -1})
			lit.Reset()
		}
	}

	for i := 0; i < len(template); {
		switch c := template[i]; c {
		case '{':
			if strings.HasPrefix(template[i:], "{{") {
				lit.WriteByte('{')
				i += 2
				continue
			}

			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unclosed '{' at offset %d; use {{ for a literal brace", i)
			}
			inner := template[i+1 : i+1+end]
			hole, err := parseHole(inner)
			if err != nil {
				return nil, err
			}
			flush()
			pieces = append(pieces, hole)
			i += end + 2

		case '}':
			if strings.HasPrefix(template[i:], "}}") {
				lit.WriteByte('}')
				i += 2
				continue
			}
			return nil, fmt.Errorf("unmatched '}' at offset %d; use }} for a literal brace", i)

		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return pieces, nil
}

func parseHole(inner string) (Piece, error) {
	arg, spec, _ := strings.Cut(inner, ":")
	p := Piece{hole: true, Index: -1}

	switch {
	case arg == "":
	case isDigits(arg):
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Piece{}, fmt.Errorf("invalid placeholder {%s}", inner)
		}
		p.Index = n
	case isConstName(arg):
		p.Name = arg
	default:
		return Piece{}, fmt.Errorf("invalid placeholder {%s}", inner)
	}

	s, err := parseSpec(spec)
	if err != nil {
		return Piece{}, err
	}
	p.Spec = s
	return p, nil
}

func parseSpec(spec string) (Spec, error) {
	var s Spec
	rest := spec
	if strings.HasPrefix(rest, "#") {
		s.Alt = true
		rest = rest[1:]
	}

	switch rest {
	case "":
	case "?", "x", "X", "b", "o":
		s.Verb = rest[0]
	default:
		return Spec{}, fmt.Errorf("unsupported format spec %q", ":"+spec)
	}
	return s, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// isConstName accepts an identifier optionally qualified by a package name.
func isConstName(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return false
	}
	for _, part := range parts {
		if !token.IsIdentifier(part) {
			return false
		}
	}
	return true
}

func (s Spec) format(v Value) (string, error) {
	if v.Value == nil {
		return "", fmt.Errorf("cannot format unknown value")
	}

	switch v.Kind() {
	case constant.String:
		str := constant.StringVal(v.Value)
		switch s.Verb {
		case 0:
			return str, nil
		case '?':
			return strconv.Quote(str), nil
		}

	case constant.Bool:
		if s.Verb == 0 || s.Verb == '?' {
			return strconv.FormatBool(constant.BoolVal(v.Value)), nil
		}

	case constant.Float:
		if s.Verb == 0 || s.Verb == '?' {
			f, _ := constant.Float64Val(v.Value)
			return strconv.FormatFloat(f, 'f', -1, 64), nil
		}

	case constant.Int:
		return s.formatInt(v)
	}

	return "", fmt.Errorf("cannot format %s with %s", describeKind(v), s)
}

func (s Spec) formatInt(v Value) (string, error) {
	n := new(big.Int)
	switch x := constant.Val(v.Value).(type) {
	case int64:
		n.SetInt64(x)
	case *big.Int:
		n.Set(x)
	default:
		return "", fmt.Errorf("cannot format %s", v.ExactString())
	}

	if v.Rune && (s.Verb == 0 || s.Verb == '?') {
		if !n.IsInt64() || !isRune(n.Int64()) {
			return "", fmt.Errorf("%s is not a valid rune", n)
		}
		r := rune(n.Int64())
		if s.Verb == '?' {
			return strconv.QuoteRune(r), nil
		}
		return string(r), nil
	}

	var base int
	var prefix string
	switch s.Verb {
	case 0, '?':
		return n.String(), nil
	case 'x', 'X':
		base, prefix = 16, "0x"
	case 'b':
		base, prefix = 2, "0b"
	case 'o':
		base, prefix = 8, "0o"
	}

	sign := ""
	if n.Sign() < 0 && v.Bits > 0 {
		n.Add(n, new(big.Int).Lsh(big.NewInt(1), uint(v.Bits)))
	}
	if n.Sign() < 0 {
		sign = "-"
		n.Neg(n)
	}
	digits := n.Text(base)
	if s.Verb == 'X' {
		digits = strings.ToUpper(digits)
	}
	if !s.Alt {
		prefix = ""
	}
	return sign + prefix + digits, nil
}

func isRune(n int64) bool {
	return 0 <= n && n <= unicode.MaxRune
}

func describeKind(v Value) string {
	switch v.Kind() {
	case constant.String:
		return "string " + v.ExactString()
	case constant.Complex:
		return "complex " + v.ExactString()
	}
	return v.ExactString()
}

// String returns the spec in the template form such as "{:#x}".
func (s Spec) String() string {
	var b strings.Builder
	b.WriteString("{:")
	if s.Alt {
		b.WriteByte('#')
	}
	if s.Verb != 0 {
		b.WriteByte(s.Verb)
	}
	b.WriteByte('}')
	return b.String()
}
