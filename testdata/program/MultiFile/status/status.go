package main

import "fmt"

type Phase int

const (
	Solid  Phase = iota //descgen:"solid"
	Liquid              //descgen:"liquid"
	Gas                 //descgen:"gas"
)

func main() {
	for _, p := range []Phase{Solid, Liquid, Gas} {
		fmt.Println(p.Description())
	}
	fmt.Println(describe(Gas))
}
