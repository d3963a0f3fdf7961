//go:build descgen

package main

import (
	"fmt"

	"github.com/sublee/descgen"
)

type Color string

// c shadows the default receiver name of Color.
const c = "c"

const (
	//short:"R"
	Red Color = "red" //descgen:"Red like a rose"

	//short:"G"
	Green Color = "green" //descgen:"Green like grass"

	Blue Color = "blue" //descgen:"Blue like the sky"
)

var (
	_ = descgen.Describe[Color]()
	_ = descgen.DescribeOptional[Color](descgen.Method("Short"), descgen.Annotation("short"))
)

func main() {
	for _, color := range []Color{Red, Green, Blue} {
		short, ok := color.Short()
		fmt.Println(color.Description(), short, ok)
	}
	fmt.Println(c)
}
