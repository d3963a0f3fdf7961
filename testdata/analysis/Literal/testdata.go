//go:build descgen

package testdata

import "github.com/sublee/descgen"

type ChargerStatus int

const (
	Connected    ChargerStatus = iota //descgen:"Charger connected!"
	Disconnected                      //descgen:`Charger disconnected!`
	Charging                          // want `missing //descgen: annotation on Charging`
)

var _ = descgen.Describe[ChargerStatus]()

type Unit string

//descgen:"one meter"
const Meter Unit = "m"

const (
	// Kilometer is a thousand meters.
	//descgen:"one kilometer"
	Kilometer Unit = "km"

	Mile Unit = "mi" //descgen: "one mile" // padded payloads are fine
)

var _ = descgen.Describe[Unit]()
