//go:build descgen

package testdata

import (
	"math"

	"github.com/sublee/descgen"
)

const Limit = 5

var _ = math.Pi

type T int

const (
	A T = iota //descgen:"limit {Limit}, max {}", math.MaxUint32
	B          //descgen:"{}", Missing // want `undefined: Missing`
	C          //descgen:"{} {}", 1 // want `invalid format template: \{\} at position 1 has no argument \(there is 1 argument\)`
	D          //descgen:Limit, 1 // want `format template must be a string literal; got Limit`
	E          //descgen:"{}", 1.5i // want `invalid format template: cannot format complex`
	F          //descgen:"plain {{braces}}"
	G          //descgen:"{}", len("abc")
	H          //descgen:"{}", 1, 2 // want `invalid format template: argument 1 is never used`
	I          //descgen:"{Nope}" // want `invalid format template: undefined: Nope`
	J          //descgen:"{}", name // want `format argument name is not a constant`
)

var name = "j"

var _ = descgen.Describe[T]()
