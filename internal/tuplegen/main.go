package tuplegeninternal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"
)

var Version string

// Main is the main entry point for tuplegen. It is used by the command-line
// tool directly.
//
// ctx is the context for loading packages. If the loading is too slow, ctx
// can cancel the operation. wd is the path of the working directory. env is
// the environment variables to use when running the tool. tags is the build
// tags to use when loading packages. tests indicates whether to include test
// files. outFile is the name of the output file to generate in each package.
// And patterns are the package patterns to process.
//
// It returns the output file paths with their contents, in the order the
// packages were processed. If any error occurs, it returns a non-nil error.
func Main(ctx context.Context, wd string, env []string, tags string, tests bool, outFile string, patterns []string) (*Outputs, error) {
	pkgs, err := load(ctx, wd, env, tags, tests, patterns)
	if err != nil {
		return nil, err
	}

	outs := NewOutputs()
	var errs error

	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			errs = errors.Join(errs, fmt.Errorf("pkg %q has errors", pkg.Name))
			continue
		}

		tg, err := New(pkg)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		if err := tg.Build(); err != nil {
			errs = errors.Join(errs, err)
			continue
		}

		code := tg.Generate()
		if len(code) == 0 {
			// No records found
			continue
		}

		outDir := filepath.Dir(pkg.GoFiles[0])
		if rel, err := filepath.Rel(wd, outDir); err == nil {
			outDir = rel
		}
		outs.Put(filepath.Join(outDir, outFile), code)
	}
	if errs != nil {
		// Every joined error carries its own full message already.
		return nil, reorderErrors(errs)
	}

	return outs, nil
}

// load resolves the patterns into fully type-checked packages.
func load(ctx context.Context, wd string, env []string, tags string, tests bool, patterns []string) ([]*packages.Package, error) {
	cfg := &packages.Config{
		Mode:    packages.NeedDeps | packages.NeedFiles | packages.NeedImports | packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Context: ctx,
		Dir:     wd,
		Env:     env,
		Tests:   tests,
	}
	if tags != "" {
		cfg.BuildFlags = []string{"-tags=" + tags}
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	var errs error
	for _, pkg := range pkgs {
		for _, pkgErr := range pkg.Errors {
			errs = errors.Join(errs, relErr(wd, pkgErr))
		}
	}
	if errs != nil {
		return nil, errs
	}

	return pkgs, nil
}

// relErr rewrites the position of a loader error relative to wd, which reads
// better in the report.
func relErr(wd string, err packages.Error) error {
	if err.Pos == "" {
		return errors.New(err.Msg)
	}

	path, rowcol, _ := strings.Cut(err.Pos, ":")
	if rel, relErr := filepath.Rel(wd, path); relErr == nil {
		err.Pos = rel + ":" + rowcol
	}
	return err
}

// reorderErrors sorts the collected errors by message, so the report order
// does not depend on the package processing order.
func reorderErrors(errs error) error {
	if errs == nil {
		return nil
	}

	leaves := flattenErrors(nil, errs)
	slices.SortFunc(leaves, func(a, b error) int {
		return strings.Compare(a.Error(), b.Error())
	})
	return errors.Join(leaves...)
}

// flattenErrors unpacks nested joins into their leaf errors. Errors wrapping
// a single error, such as the duplicate field report, stay whole.
func flattenErrors(leaves []error, err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			leaves = flattenErrors(leaves, e)
		}
		return leaves
	}
	return append(leaves, err)
}
