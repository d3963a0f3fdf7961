package main

import "math"

//go:generate descgen --format .

// ChargerStatus is the state of a charger plugged into a vehicle.
type ChargerStatus int

const (
	Connected    ChargerStatus = iota //descgen:"Charger connected!"
	Disconnected                      //descgen:"Charger disconnected!"
)

// BatteryStatus has a description only for notable levels.
type BatteryStatus int

const (
	Full     BatteryStatus = iota //descgen:"Battery is full"
	Charging                      // nothing to tell
	Low                           //descgen:"Battery is low"
)

// SOME_CONSTANT appears in the description of Ready.
const SOME_CONSTANT = 5

// MaxLevel is the largest battery level reading.
const MaxLevel = math.MaxUint8

type SomeStatus int

const (
	Ready SomeStatus = iota //descgen:"the constant is {SOME_CONSTANT}, and the max u32 is {}", math.MaxUint32
	Level                   //descgen:"level {} of {MaxLevel}", 42
)
