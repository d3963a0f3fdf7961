package descgeninternal

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"time"

	crdberrors "github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/descgen/internal/codefmt"
	"github.com/sublee/descgen/internal/descgen/branch"
	"github.com/sublee/descgen/internal/descgen/parse"
)

// Version is appended to the header of generated files if set. The command-line
// tool sets it from its -ldflags stamped version.
var Version string

// DefaultOutput is the default name of the generated file in each package.
const DefaultOutput = "descgen_gen.go"

// Options configures [Main].
type Options struct {
	// Tags is comma-separated build tags to use in addition to "descgen".
	Tags string

	// Tests indicates whether to type-check test files too. Directives and
	// variants are read from non-test files only.
	Tests bool

	// Output is the name of the file to generate in each package. If empty,
	// [DefaultOutput] is used.
	Output string

	// Format enables format templates in annotations.
	Format bool

	// Logger receives progress logs. If nil, nothing is logged.
	Logger *zap.Logger
}

// Main generates describing methods for the packages matching patterns, as
// the command-line tool does. Packages are loaded in wd with env, and ctx
// cancels slow loading.
//
// The result maps each output path, relative to wd, to its content. Nothing is
// returned for packages without descgen-tagged files. Errors of all packages
// are joined and sorted. Load and type errors come first, except that calls of
// the methods being generated are allowed before they exist.
func Main(ctx context.Context, wd string, env []string, opts Options, patterns []string) (map[string][]byte, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	outFile := opts.Output
	if outFile == "" {
		outFile = DefaultOutput
	}

	started := time.Now()
	pkgs, err := load(ctx, wd, env, opts, patterns)
	if err != nil {
		return nil, err
	}
	log.Debug("loaded packages",
		zap.Strings("patterns", patterns),
		zap.Int("count", len(pkgs)),
		zap.Duration("elapsed", time.Since(started)),
	)

	// Every package is built before judging type errors, because calls of
	// pending methods in one package may select enums of another.
	var dgs []*Descgen
	var buildErrs error
	pending := make(Pending)

	for _, pkg := range pkgs {
		if pkg.ID != pkg.PkgPath || len(pkg.Syntax) == 0 {
			// Test variants only type-check test files. Their directives
			// are read from the plain package.
			continue
		}

		dg, err := New(pkg, branch.Options{Format: opts.Format})
		if err != nil {
			buildErrs = errors.Join(buildErrs, crdberrors.Wrapf(err, "pkg %q", pkg.PkgPath))
			continue
		}
		buildErrs = errors.Join(buildErrs, dg.Build())
		pending.Add(dg.Directives()...)
		dgs = append(dgs, dg)
	}

	if err := loadErrors(wd, pkgs, pending); err != nil {
		return nil, reorderErrors(err)
	}
	if buildErrs != nil {
		return nil, reorderErrors(buildErrs)
	}

	outs := make(map[string][]byte)
	for _, dg := range dgs {
		pkg := dg.p.Pkg()
		code := dg.Generate()
		if len(code) == 0 {
			log.Debug("no descgen files", zap.String("pkg", pkg.PkgPath))
			continue
		}

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		out := filepath.Join(outDir, outFile)
		outs[out] = code

		log.Debug("generated",
			zap.String("pkg", pkg.PkgPath),
			zap.String("out", out),
			zap.Int("methods", len(dg.Methods())),
		)
	}
	return outs, nil
}

// load loads and type-checks packages with the descgen build tag. Errors are
// left in the packages to be judged by [loadErrors].
func load(ctx context.Context, wd string, env []string, opts Options, patterns []string) ([]*packages.Package, error) {
	tags := parse.BuildTag
	if opts.Tags != "" {
		tags += "," + opts.Tags
	}
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports | packages.NeedDeps |
			packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Context:    ctx,
		Dir:        wd,
		Env:        env,
		BuildFlags: []string{"-tags=" + tags},
		Tests:      opts.Tests,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, crdberrors.Wrap(err, "failed to load packages")
	}
	if len(pkgs) == 0 {
		return nil, crdberrors.Newf("no packages found: %v", patterns)
	}
	return pkgs, nil
}

// loadErrors joins the errors of pkgs and their dependencies, with paths
// relative to wd. Type errors caused by selecting pending methods are skipped.
func loadErrors(wd string, pkgs []*packages.Package, pending Pending) error {
	var errs error
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		tolerated := make(map[packages.Error]bool)
		tolerates := pending.Tolerates(pkg.TypesInfo, pkg.Syntax)
		for _, err := range pkg.TypeErrors {
			if tolerates(err) {
				tolerated[packages.Error{
					Pos:  err.Fset.Position(err.Pos).String(),
					Msg:  err.Msg,
					Kind: packages.TypeError,
				}] = true
			}
		}

		for _, err := range pkg.Errors {
			if tolerated[err] {
				continue
			}
			if path, rowcol, ok := strings.Cut(err.Pos, ":"); ok {
				if rel, relErr := filepath.Rel(wd, path); relErr == nil {
					err.Pos = rel + ":" + rowcol
				}
			}
			errs = errors.Join(errs, err)
		}
	})
	return errs
}

// reorderErrors flattens joined errors and sorts them by message, which starts
// with the position for code errors.
func reorderErrors(errs error) error {
	list := codefmt.Flatten(errs)
	slices.SortStableFunc(list, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return errors.Join(list...)
}
