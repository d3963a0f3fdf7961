//go:build descgen

package main

import "github.com/sublee/descgen"

type ChargerStatus int

const (
	Connected    ChargerStatus = iota //descgen:"Charger connected!"
	Disconnected                      //descgen:"Charger disconnected!"
	Charging
	Faulted
)

var _ = descgen.Describe[ChargerStatus]()

func main() {
	panic("descgen will fail")
}
