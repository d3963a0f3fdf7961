//go:build descgen

package testdata

import "github.com/sublee/descgen"

type Shape struct{ Sides int }

var _ = descgen.Describe[Shape]() // want `descgen.Describe cannot be implemented on struct types; Shape is not an enum`

var _ = descgen.DescribeOptional[int]() // want `descgen.DescribeOptional requires a named type; got int`

type Empty int

var _ = descgen.Describe[Empty]() // want `Empty has no constants to describe`

type Named int

const N Named = 0 //descgen:"n"

func (Named) Description() string { return "hand-written" }

var _ = descgen.Describe[Named]() // want `Named already has method Description at`

type Twice int

const T Twice = 0 //descgen:"t"

var _ = descgen.Describe[Twice]()
var _ = descgen.DescribeOptional[Twice]() // want `duplicate Description method of Twice`

var name = "Label"

var _ = descgen.Describe[Twice](descgen.Method(name))            // want `descgen.Method requires a constant string; got name`
var _ = descgen.Describe[Twice](descgen.Method("not valid"))     // want `invalid method name "not valid"`
var _ = descgen.Describe[Twice](descgen.Annotation("9lives"))    // want `invalid annotation key "9lives"`
var opt = descgen.Method("Title")                                // want `descgen.Method can only be used as an option of descgen.Describe`
var _ = descgen.Describe[Twice](opt)                             // want `option must be a call of descgen.Method or descgen.Annotation; got opt`
var _ = descgen.Describe[Twice](descgen.Method(name + "2"), nil) // want `descgen.Method requires a constant string` `option must be a call of descgen.Method or descgen.Annotation; got nil`
