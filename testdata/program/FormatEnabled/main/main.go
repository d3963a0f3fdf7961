//go:build descgen

package main

import (
	"fmt"
	"math"

	"github.com/sublee/descgen"
)

const SOME_CONSTANT = 5

const X = 5

type SomeStatus int

const (
	Ready SomeStatus = iota //descgen:"the constant is {SOME_CONSTANT}, and the max u32 is {}", math.MaxUint32
	Value                   //descgen:"value is {X}{}", 42
	Hex                     //descgen:"{0} is {0:#x} or {0:b}", 255
	Quote                   //descgen:"{:?} and {:?}", "go", 'g'
	Braces                  //descgen:"{{literal}}"
	Plain                   //descgen:"plain text"
	Named                   //descgen:"pi is about {}", math.Pi > 3
)

var _ = descgen.Describe[SomeStatus]()

func main() {
	for s := Ready; s <= Named; s++ {
		fmt.Println(s.Description())
	}
	fmt.Println(math.Sqrt2 > 1)
}
