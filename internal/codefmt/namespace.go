package codefmt

import (
	"go/token"
	"go/types"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NS is a set of names taken in a scope of generated code.
type NS map[string]struct{}

// NewNS creates a namespace where every name of the scope is taken.
func NewNS(scope *types.Scope) NS {
	ns := make(NS, scope.Len())
	for _, name := range scope.Names() {
		ns[name] = struct{}{}
	}
	return ns
}

// Reserve takes a name. It returns false if the name was already taken.
func (ns NS) Reserve(name string) bool {
	if _, ok := ns[name]; ok {
		return false
	}
	ns[name] = struct{}{}
	return true
}

// Name takes a name similar to the given one and returns it. A numeric suffix
// is added if the name is already taken. Keywords get a trailing underscore.
// A nil NS takes nothing.
func (ns NS) Name(name string) string {
	name = normalizeName(name)
	if token.IsKeyword(name) {
		name += "_"
	}
	if ns == nil {
		return name
	}
	for candidate := range candidates(name) {
		if ns.Reserve(candidate) {
			return candidate
		}
	}
	panic("unreachable")
}

// ReceiverName suggests a receiver name for a type: its initial in lower case.
//
// e.g., ReceiverName("ChargerStatus") => "c"
func ReceiverName(typeName string) string {
	r, _ := utf8.DecodeRuneInString(typeName)
	if r == utf8.RuneError || r == '_' {
		return "x"
	}
	return cases.Lower(language.Und).String(string(r))
}

// normalizeName keeps the identifier-safe chunks of name in camel case.
//
// e.g., normalizeName("http status") => "httpStatus"
func normalizeName(name string) string {
	chunks := strings.FieldsFunc(name, func(r rune) bool {
		return !(r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9')
	})
	if len(chunks) == 0 {
		return "x"
	}
	title := cases.Title(language.English)
	for i := 1; i < len(chunks); i++ {
		chunks[i] = title.String(chunks[i])
	}
	return strings.Join(chunks, "")
}

// candidates yields name, then name2, name3 and so on. A name ending with a
// digit is separated from the suffix by "_", e.g., "answer42_2".
func candidates(name string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}
		sep := ""
		if last := name[len(name)-1]; '0' <= last && last <= '9' {
			sep = "_"
		}
		for i := 2; ; i++ {
			if !yield(name + sep + strconv.Itoa(i)) {
				return
			}
		}
	}
}
