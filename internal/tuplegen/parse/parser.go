package parse

import (
	"fmt"

	"golang.org/x/tools/go/packages"
)

// Parser scans an AST of the underlying package to collect tuplegen records.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser]. The package must carry name, path, types, fset,
// syntax, and type info, which [packages.Load] provides with the right mode
// bits.
func New(pkg *packages.Package) (*Parser, error) {
	switch {
	case pkg.Name == "":
		return nil, fmt.Errorf("need pkg name")
	case pkg.PkgPath == "":
		return nil, fmt.Errorf("need pkg path")
	case pkg.Types == nil:
		return nil, fmt.Errorf("need pkg types")
	case pkg.Fset == nil:
		return nil, fmt.Errorf("need pkg fset")
	case pkg.Syntax == nil:
		return nil, fmt.Errorf("need pkg syntax")
	case pkg.TypesInfo == nil:
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}
