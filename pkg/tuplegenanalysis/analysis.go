package tuplegenanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/tuplegen/internal/codefmt"
	tuplegeninternal "github.com/sublee/tuplegen/internal/tuplegen"
)

// Analyzer validates the usage of tuplegen in the package.
var Analyzer = &analysis.Analyzer{
	Name: "tuplegen",
	Doc:  "linter for tuplegen usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	tg, err := tuplegeninternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := tg.Build(); err != nil {
		report(pass, err)
	}
	return nil, nil
}

// report walks the error tree and turns every positioned error into its own
// diagnostic. The position prefix stays off the message because the
// diagnostic already carries the position.
func report(pass *analysis.Pass, err error) {
	if codeErr, ok := err.(*codefmt.CodeError); ok {
		pass.Report(analysis.Diagnostic{
			Pos:     codeErr.Pos(),
			End:     codeErr.End(),
			Message: codeErr.Unwrap().Error(),
		})
		return
	}

	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			report(pass, e)
		}
	case interface{ Unwrap() error }:
		report(pass, u.Unwrap())
	}
}
