package typeinfo_test

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
)

func parse(code string) (*ast.File, *types.Info, *types.Package, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", code, parser.AllErrors)
	if err != nil {
		return nil, nil, nil, err
	}

	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	pkg, err := (&types.Config{}).Check("pkg", fset, []*ast.File{file}, info)
	if err != nil {
		return nil, nil, nil, err
	}

	return file, info, pkg, nil
}

func parseType(typeExpr string) (types.Type, error) {
	_, _, pkg, err := parse(fmt.Sprintf("package p; var x %s", typeExpr))
	if err != nil {
		return nil, err
	}
	x := pkg.Scope().Lookup("x")
	return x.Type(), nil
}
