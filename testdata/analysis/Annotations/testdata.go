//go:build descgen

package testdata

import "github.com/sublee/descgen"

type Level int

const (
	Low     Level = iota //descgen:"low"
	High                 //descgen:"high"
	Default = Low
	Max     = High //descgen:"max" // want `Max has the same value as High; annotate High instead`
)

var _ = descgen.Describe[Level]()

type Twice int

const (
	//descgen:"first"
	One Twice = iota //descgen:"second" // want `duplicate //descgen: annotation on One`
)

var _ = descgen.Describe[Twice]()

type Multi int

const (
	//descgen:"shared"
	X, Y Multi = 1, 2

	_ Multi = 3
)

var _ = descgen.Describe[Multi]()

// Another key on the same enum generates another method.
type Size int

const (
	//label:"S"
	Small Size = iota //descgen:"small"

	//label:"L"
	Large //descgen:"large"

	Huge //descgen:"huge" // want `missing //label: annotation on Huge`
)

var _ = descgen.Describe[Size]()
var _ = descgen.Describe[Size](descgen.Method("Label"), descgen.Annotation("label"))
