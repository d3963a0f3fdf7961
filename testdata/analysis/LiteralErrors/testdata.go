//go:build descgen

package testdata

import "github.com/sublee/descgen"

type Broken int

const (
	A Broken = iota //descgen:42 // want `expected string literal, provided 42`
	B               //descgen:"a", "b" // want `expected a single string literal, provided 2 arguments`
	C               //descgen: // want `expected string literal, provided nothing`
	D               //descgen:strings.ToUpper("x") // want `expected literal, provided expression strings\.ToUpper\("x"\)`
	E               //descgen:'e' // want `expected string literal, provided 'e'`
	F               //descgen:("f") // want `expected literal, provided expression \("f"\)`
	G               //descgen:"g")+("h" // want `invalid annotation: `
	H               //descgen:"unterminated // want `invalid annotation: string literal not terminated`
)

var _ = descgen.Describe[Broken]()
