//go:build descgen

package testdata

import "github.com/sublee/descgen"

type BatteryStatus int

const (
	Full BatteryStatus = iota //descgen:"Battery is full"
	Charging
	Low //descgen:"Battery is low"
)

var _ = descgen.DescribeOptional[BatteryStatus]()

type Note string

const (
	Do Note = "do" //hint:"first"
	Re Note = "re" //descgen:"ignored"

	//hint:`third`
	Mi Note = "mi"
)

var _ = descgen.DescribeOptional[Note](descgen.Method("Hint"), descgen.Annotation("hint"))
