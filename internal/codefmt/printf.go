package codefmt

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/tuplegen/internal/typeinfo"
)

type (
	Pkger         interface{ Pkg() *packages.Package }
	Poser         interface{ Pos() token.Pos }
	Ender         interface{ End() token.Pos }
	Exprer        interface{ Expr() ast.Expr }
	Objecter      interface{ Object() types.Object }
	Typer         interface{ Type() types.Type }
	TypeInfoTyper interface{ Type() typeinfo.Type }
)

// Sprintf formats like [fmt.Sprintf] plus the code verbs of [verbArg.Format].
func (f Formatter) Sprintf(format string, args ...any) string {
	return fmt.Sprintf(format, f.wrapArgs(args)...)
}

// Fprintf formats like [fmt.Fprintf] plus the code verbs of [verbArg.Format].
func (f Formatter) Fprintf(w io.Writer, format string, args ...any) (int, error) {
	return fmt.Fprintf(w, format, f.wrapArgs(args)...)
}

// wrapArgs wraps each argument the code verbs understand. Arguments of any
// other type pass through untouched.
func (f Formatter) wrapArgs(args []any) []any {
	for i, arg := range args {
		if wrappable(arg) {
			args[i] = verbArg{arg, f}
		}
	}
	return args
}

func wrappable(arg any) bool {
	switch arg.(type) {
	case token.Pos, token.Position, ast.Expr, types.Object, types.Type:
		return true
	case Poser, Exprer, Objecter, Typer, TypeInfoTyper:
		return true
	}
	return false
}

// verbArg carries one printf argument together with the formatter that knows
// how to render it as code.
type verbArg struct {
	val any
	f   Formatter
}

// Format implements the fmt.Formatter interface.
//
// Supported verbs:
//
//	%o: types.Object (e.g., *types.TypeName, *types.Var) - short form
//	%t: types.Type - short form
//	%c: ast.Expr - code form
//	%b: token.Position - file:line:column form
//
// For other verbs, it falls back to the default formatting of fmt package.
func (a verbArg) Format(s fmt.State, verb rune) {
	switch verb {
	case 'o':
		if obj := a.object(); obj != nil {
			_, _ = s.Write([]byte(a.f.Obj(obj)))
			return
		}
	case 't':
		if typ := a.typ(); typ != nil {
			_, _ = s.Write([]byte(a.f.Type(typ)))
			return
		}
	case 'c':
		if expr := a.expr(); expr != nil {
			_, _ = s.Write([]byte(a.f.Expr(expr)))
			return
		}
	case 'b':
		if pos := a.position(); pos != nil {
			_, _ = s.Write([]byte(FormatPosition(*pos)))
			return
		}
	default:
		fmt.Fprintf(s, fmt.FormatString(s, verb), a.val)
		return
	}
	fmt.Fprintf(s, "[%%%c cannot format %T]", verb, a.val)
}

func (a verbArg) object() types.Object {
	switch v := a.val.(type) {
	case types.Object:
		return v
	case Objecter:
		return v.Object()
	}
	if named, ok := a.carriedType().(*types.Named); ok {
		return named.Obj()
	}
	return nil
}

func (a verbArg) expr() ast.Expr {
	switch v := a.val.(type) {
	case ast.Expr:
		return v
	case Exprer:
		return v.Expr()
	}
	return nil
}

// carriedType resolves a type the argument holds directly, without falling
// back to the object or expression facets.
func (a verbArg) carriedType() types.Type {
	switch v := a.val.(type) {
	case types.Type:
		return v
	case Typer:
		return v.Type()
	case TypeInfoTyper:
		return v.Type().Type()
	}
	return nil
}

func (a verbArg) typ() types.Type {
	if typ := a.carriedType(); typ != nil {
		return typ
	}
	if obj := a.object(); obj != nil {
		return obj.Type()
	}
	if expr := a.expr(); expr != nil {
		return a.f.TypesInfo.TypeOf(expr)
	}
	return nil
}

func (a verbArg) position() *token.Position {
	switch v := a.val.(type) {
	case token.Position:
		return &v
	case token.Pos:
		p := a.f.Fset.Position(v)
		return &p
	case Poser:
		p := a.f.Fset.Position(v.Pos())
		return &p
	}
	if obj := a.object(); obj != nil {
		p := a.f.Fset.Position(obj.Pos())
		return &p
	}
	return nil
}
