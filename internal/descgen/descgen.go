package descgeninternal

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/descgen/internal/codefmt"
	"github.com/sublee/descgen/internal/descgen/branch"
	"github.com/sublee/descgen/internal/descgen/parse"
)

// Descgen generates describing methods for the target package. Call [Build]
// and then [Generate] to get the generated code. All potential errors are
// returned by [Build]. Once [Build] succeeds, [Generate] never fails.
type Descgen struct {
	p    *parse.Parser
	opts branch.Options
	ns   codefmt.NS
	buf  *bytes.Buffer
	w    *codefmt.Writer

	dirs    map[token.Pos]parse.Directive
	methods map[token.Pos]*branch.Method
}

// New creates a new [Descgen] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo. And it must not have any errors.
func New(pkg *packages.Package, opts branch.Options) (*Descgen, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Descgen{
		p:    parser,
		opts: opts,
		ns:   codefmt.NewNS(pkg.Types.Scope()),
		buf:  &buf,
		w:    codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build prepares code generation by parsing directives and classifying the
// annotations of every variant. All potential errors are returned by this
// method. It must be called before [Generate].
func (dg *Descgen) Build() error {
	dirs, errs := dg.p.ParseDirectives()

	dg.dirs = make(map[token.Pos]parse.Directive)
	dg.methods = make(map[token.Pos]*branch.Method)

	for _, dir := range dirs {
		dg.dirs[dir.Pos()] = dir

		m, err := branch.Build(dg.p, dir, dg.opts)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		dg.methods[dir.Pos()] = m
	}
	return errs
}

// Generate generates code for the package. It must be called after [Build]
// succeeds. It returns nil if the package has no descgen-tagged files.
func (dg *Descgen) Generate() []byte {
	if len(dg.p.DescgenGoFiles()) == 0 {
		return nil
	}
	dg.writeMethodCode()
	dg.mergeCode()
	return dg.frameCode()
}

// Directives returns the directives parsed by [Build] in source order,
// including those whose methods failed to build.
func (dg *Descgen) Directives() []parse.Directive {
	dirs := slices.Collect(maps.Values(dg.dirs))
	slices.SortFunc(dirs, func(a, b parse.Directive) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})
	return dirs
}

// Methods returns the built methods sorted by the position of their directives.
func (dg *Descgen) Methods() []*branch.Method {
	methods := slices.Collect(maps.Values(dg.methods))
	slices.SortFunc(methods, func(a, b *branch.Method) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})
	return methods
}

// writeMethodCode writes method declarations and interface assertions.
func (dg *Descgen) writeMethodCode() {
	methods := dg.Methods()
	if len(methods) == 0 {
		return
	}

	dg.w.Printf("// descgen: describing methods\n\n")
	for _, m := range methods {
		local := maps.Clone(dg.ns)
		m.WriteDefineCode(dg.w.WithNS(local))
	}

	for _, m := range methods {
		m.WriteAssertCode(dg.w)
	}
	dg.w.Printf("\n")
}

// mergeCode copies the declarations of descgen-tagged files except imports and
// directives. The generated file replaces those files in normal builds, so
// helpers declared next to directives must survive.
func (dg *Descgen) mergeCode() {
	fset := dg.p.Pkg().Fset
	for _, file := range dg.p.DescgenGoFiles() {
		header := fmt.Sprintf("// %s:\n\n", filepath.Base(fset.File(file.Pos()).Name()))

		for _, decl := range file.Decls {
			decl = dg.eraseDirectives(decl)
			if decl == nil {
				continue
			}

			// Imports are collected again while rewriting references.
			decl = codefmt.RewriteImports(dg.w, decl)

			dg.buf.WriteString(header)
			header = ""
			printer.Fprint(dg.buf, fset, &printer.CommentedNode{Node: decl, Comments: file.Comments})
			dg.buf.WriteString("\n\n")
		}
	}
}

// eraseDirectives removes directive values from a declaration. It returns nil
// if nothing is left or the declaration imports packages.
//
//	var ( _ = descgen.Describe[Status]() )        => nil
//	var ( _, n = descgen.Describe[Status](), 42 ) => var ( n = 42 )
func (dg *Descgen) eraseDirectives(decl ast.Decl) ast.Decl {
	gen, ok := decl.(*ast.GenDecl)
	if !ok {
		return decl
	}
	if gen.Tok == token.IMPORT {
		return nil
	}
	if gen.Tok != token.VAR {
		return decl
	}

	specs := make([]ast.Spec, 0, len(gen.Specs))
	for _, spec := range gen.Specs {
		vs := spec.(*ast.ValueSpec)
		kept := &ast.ValueSpec{Doc: vs.Doc, Type: vs.Type, Comment: vs.Comment}
		for i, name := range vs.Names {
			if i < len(vs.Values) {
				if _, ok := dg.dirs[vs.Values[i].Pos()]; ok {
					continue
				}
				kept.Values = append(kept.Values, vs.Values[i])
			}
			kept.Names = append(kept.Names, name)
		}
		if len(kept.Names) == len(vs.Names) {
			specs = append(specs, vs)
		} else if len(kept.Names) != 0 {
			specs = append(specs, kept)
		}
	}
	if len(specs) == 0 {
		return nil
	}

	erased := *gen
	erased.Specs = specs
	return &erased
}

func (dg *Descgen) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/descgen%s. DO NOT EDIT.\n\n", versionSuffix)
	// The build constraint must be separated from the package clause by a
	// blank line. Otherwise, it is a package comment.
	fmt.Fprintf(&buf, "//go:build !%s\n\n", parse.BuildTag)
	fmt.Fprintf(&buf, "package %s\n", dg.p.Pkg().Name)

	if imports := dg.w.Imports(); len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, imp := range imports {
			if imp.Aliased {
				fmt.Fprintf(&buf, "%s %q\n", imp.Name, imp.Path)
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path)
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, dg.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
