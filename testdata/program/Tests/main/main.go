package main

import "fmt"

type Level int

const (
	Low  Level = iota //descgen:"low"
	High              //descgen:"high"
)

func main() {
	fmt.Println(Low.Description())
	fmt.Println(High.Description())
}
