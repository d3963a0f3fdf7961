//go:build descgen

package main

import (
	"fmt"

	"github.com/sublee/descgen"
)

type ChargerStatus int

const (
	Connected    ChargerStatus = iota //descgen:"Charger connected!"
	Disconnected                      //descgen:`Charger disconnected!`
	Faulted                           //descgen:"Charger \"faulted\"\t!"
)

var _ = descgen.Describe[ChargerStatus]()

func main() {
	fmt.Println(Connected.Description())
	fmt.Println(Disconnected.Description())
	fmt.Printf("%q\n", Faulted.Description())
	fmt.Printf("%q\n", ChargerStatus(42).Description())

	var d descgen.Describer = Disconnected
	fmt.Println(d.Description())
}
