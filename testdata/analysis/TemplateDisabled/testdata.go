//go:build descgen

package testdata

import "github.com/sublee/descgen"

const X = 5

type T int

const (
	A T = iota //descgen:"value is {X}" // want `format arguments require the format capability to be enabled`
	B          //descgen:"{}", 42 // want `format arguments require the format capability to be enabled`
	C          //descgen:X, 1 // want `expected a single string literal, provided 2 arguments`
	D          //descgen:"\x7b" // want `format arguments require the format capability to be enabled`
	E          //descgen:"no braces"
)

var _ = descgen.Describe[T]()
