// Package descgenanalysis provides an analyzer which reports Descgen errors as
// diagnostics, without generating code.
package descgenanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/descgen/internal/codefmt"
	descgeninternal "github.com/sublee/descgen/internal/descgen"
	"github.com/sublee/descgen/internal/descgen/branch"
)

// Analyzer validates the usage of Descgen in the package. Format templates are
// rejected unless the -format flag is set.
var Analyzer = New(false)

// New creates an analyzer. format is the default value of its -format flag.
func New(format bool) *analysis.Analyzer {
	a := &analysis.Analyzer{
		Name: "descgen",
		Doc:  "linter for descgen directives and annotations",

		// Calls of methods not generated yet are type errors.
		RunDespiteErrors: true,
	}
	a.Flags.BoolVar(&format, "format", format, "allow format templates in annotations")
	a.Run = func(pass *analysis.Pass) (any, error) {
		return run(pass, branch.Options{Format: format})
	}
	return a
}

func run(pass *analysis.Pass, opts branch.Options) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	dg, err := descgeninternal.New(pkg, opts)
	if err != nil {
		return nil, err
	}

	buildErr := dg.Build()

	// Other type errors are reported by the driver. Directives may not be
	// understood in an ill-typed package.
	pending := make(descgeninternal.Pending)
	pending.Add(dg.Directives()...)
	tolerates := pending.Tolerates(pass.TypesInfo, pass.Files)
	for _, err := range pass.TypeErrors {
		if !tolerates(err) {
			return nil, nil
		}
	}

	for _, err := range codefmt.Flatten(buildErr) {
		codeErr, ok := err.(*codefmt.CodeError)
		if !ok {
			return nil, err
		}
		pass.Report(analysis.Diagnostic{
			Pos:     codeErr.Pos(),
			End:     codeErr.End(),
			Message: codeErr.Unwrap().Error(),
		})
	}

	return nil, nil
}
