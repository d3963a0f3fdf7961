package testdata

import (
	"fmt"

	"github.com/sublee/descgen"
)

// Methods are not generated yet, but calling them is fine.
func describeAll() {
	fmt.Println(Connected.Description(), Meter.Description())

	var d descgen.Describer = Kilometer
	fmt.Println(d.Description())
}
