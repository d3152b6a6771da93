package codefmt

import (
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Formatter renders types, objects, expressions, and positions the way they
// should read from the target package.
type Formatter struct {
	PkgPath   string
	Fset      *token.FileSet
	TypesInfo *types.Info
}

// New derives a Formatter from a loaded package. A nil package yields a zero
// Formatter.
func New(pkg *packages.Package) Formatter {
	if pkg == nil {
		return Formatter{}
	}
	return Formatter{
		PkgPath:   pkg.PkgPath,
		Fset:      pkg.Fset,
		TypesInfo: pkg.TypesInfo,
	}
}

func formatterOf(pkger Pkger) Formatter {
	if pkger == nil {
		return New(nil)
	}
	return New(pkger.Pkg())
}

// qualify is a [types.Qualifier]. Types of the formatter's own package print
// unqualified, every other package prints by name.
func (f Formatter) qualify(pkg *types.Package) string {
	if pkg.Path() == f.PkgPath {
		return ""
	}
	return pkg.Name()
}

// Type spells the type the way the target package refers to it.
//
// e.g., f.Type([types.Type for bytes.Buffer]) => "bytes.Buffer"
func (f Formatter) Type(typ types.Type) string {
	return types.TypeString(typ, f.qualify)
}

// Obj spells a reference to the object, qualified when it lives in another
// package.
//
// e.g., f.Obj([types.Object for time.Time]) => "time.Time"
func (f Formatter) Obj(obj types.Object) string {
	name := obj.Name()
	pkg := obj.Pkg()
	if pkg == nil {
		return name
	}
	if q := f.qualify(pkg); q != "" {
		return q + "." + name
	}
	return name
}

// Expr returns a Go source code representation of the given [ast.Expr].
func (f Formatter) Expr(expr ast.Expr) string {
	var b strings.Builder
	if err := format.Node(&b, f.Fset, expr); err != nil {
		panic(err) // go/printer handles every ast.Expr
	}
	return b.String()
}

// Pos resolves pos against the formatter's file set and formats it.
func (f Formatter) Pos(pos token.Pos) string {
	return FormatPosition(f.Fset.Position(pos))
}

// wd anchors positions so they print relative to where the process started.
var wd, _ = os.Getwd()

// FormatPosition formats a resolved position as "file:line:column", with the
// file relative to the working directory. An invalid position reads "-:-".
func FormatPosition(pos token.Position) string {
	if !pos.IsValid() {
		return "-:-"
	}

	name := pos.Filename
	if rel, err := filepath.Rel(wd, name); err == nil {
		name = rel
	}

	return fmt.Sprintf("%s:%d:%d", name, pos.Line, pos.Column)
}
