//go:build descgen

package main

import "github.com/sublee/descgen"

const X = 5

type SomeStatus int

const (
	Value SomeStatus = iota //descgen:"value is {X}{}", 42
	Plain                   //descgen:"plain text"
)

var _ = descgen.Describe[SomeStatus]()

func main() {
	panic("descgen will fail")
}
