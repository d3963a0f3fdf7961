//go:build descgen

package main

import (
	"fmt"

	"github.com/sublee/descgen"
)

var (
	_ = descgen.Describe[ChargerStatus]()
	_ = descgen.DescribeOptional[BatteryStatus]()
	_ = descgen.Describe[SomeStatus]()
)

func main() {
	fmt.Println(Connected.Description())
	fmt.Println(Disconnected.Description())

	for _, s := range []BatteryStatus{Full, Charging, Low} {
		if desc, ok := s.Description(); ok {
			fmt.Println(desc)
		} else {
			fmt.Println("no description for", int(s))
		}
	}

	fmt.Println(Ready.Description())
	fmt.Println(Level.Description())
}
