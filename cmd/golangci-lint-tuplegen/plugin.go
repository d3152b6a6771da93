// golangcilinttuplegen package registers the Tuplegen analyzer as a
// golangci-lint module plugin. To build a custom golangci-lint binary with
// the plugin, run this command in this package's directory:
//
//	golangci-lint custom
//
// The resulting golangci-lint-tuplegen binary lints Go code with the
// Tuplegen analyzer included. The analyzer inspects types, so the plugin
// asks for the types-info load mode.
package golangcilinttuplegen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/tuplegen/pkg/tuplegenanalysis"
)

func init() {
	register.Plugin("tuplegen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return TuplegenLinter{}, nil
}

type TuplegenLinter struct{}

func (TuplegenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{tuplegenanalysis.Analyzer}, nil
}

func (TuplegenLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
