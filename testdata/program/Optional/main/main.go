//go:build descgen

package main

import (
	"fmt"

	"github.com/sublee/descgen"
)

type BatteryStatus uint8

const (
	Full     BatteryStatus = iota //descgen:"Battery is full"
	Charging                      // no description
	Low                           //descgen:"Battery is low"
)

var _ = descgen.DescribeOptional[BatteryStatus]()

func main() {
	for _, s := range []BatteryStatus{Full, Charging, Low, 200} {
		desc, ok := s.Description()
		fmt.Printf("%d %q %v\n", s, desc, ok)
	}

	var d descgen.OptionalDescriber = Low
	fmt.Println(d.Description())
}
