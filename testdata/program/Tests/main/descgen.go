//go:build descgen

package main

import "github.com/sublee/descgen"

var _ = descgen.Describe[Level]()
