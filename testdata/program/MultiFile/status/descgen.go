//go:build descgen

package main

import (
	"github.com/sublee/descgen"
	str "strings"
)

var _ = descgen.Describe[Phase]()

func describe(p Phase) string {
	return str.ToUpper(p.Description())
}
