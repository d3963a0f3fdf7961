package descgeninternal

import (
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/descgen/internal/descgen/branch"
	"github.com/sublee/descgen/internal/descgen/parse/parsetest"
)

func TestPendingTolerates(t *testing.T) {
	pkg := parsetest.LoadWithErrors(t, map[string]string{
		"status.go": `package p

import "github.com/sublee/descgen"

type Status int

const (
	Idle Status = iota //descgen:"idle"
	Busy               //descgen:"busy"
)

func Use() string {
	p := new(Status)
	return Idle.Description() + p.Description() + Status(7).Description()
}

var method = Status.Description

var d descgen.Describer = Busy

func Broken() int { return Idle.Label() }

var n int = "x"
`,
		"descgen.go": `//go:build descgen

package p

import "github.com/sublee/descgen"

var _ = descgen.Describe[Status]()
`,
	})

	dg, err := New(pkg, branch.Options{})
	require.NoError(t, err)
	require.NoError(t, dg.Build())

	pending := make(Pending)
	pending.Add(dg.Directives()...)
	assert.True(t, pending.Has(pkg.Types.Scope().Lookup("Status").Type(), "Description"))
	assert.False(t, pending.Has(pkg.Types.Scope().Lookup("Status").Type(), "Label"))

	tolerates := pending.Tolerates(pkg.TypesInfo, pkg.Syntax)

	var tolerated, unexpected []string
	for _, err := range pkg.TypeErrors {
		if tolerates(err) {
			tolerated = append(tolerated, err.Msg)
		} else {
			unexpected = append(unexpected, err.Msg)
		}
	}
	assert.Len(t, tolerated, 5, "%q", tolerated)
	require.Len(t, unexpected, 2, "%q", unexpected)
	assert.Contains(t, strings.Join(unexpected, "\n"), "Idle.Label undefined")
	assert.Contains(t, strings.Join(unexpected, "\n"), `cannot use "x"`)
}

func TestPendingEmpty(t *testing.T) {
	pkg := parsetest.LoadWithErrors(t, map[string]string{
		"p.go": "package p\n\ntype Status int\n\nconst A Status = 0\n\nvar _ = A.Description()\n",
	})
	require.Len(t, pkg.TypeErrors, 1)

	tolerates := make(Pending).Tolerates(pkg.TypesInfo, pkg.Syntax)
	assert.False(t, tolerates(pkg.TypeErrors[0]))
	assert.False(t, make(Pending).Has(types.Typ[types.Int], "Description"))
}
