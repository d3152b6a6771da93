package codefmt

import (
	"go/ast"
	"go/token"
	"go/types"
	"io"

	"golang.org/x/tools/go/ast/astutil"
	"golang.org/x/tools/go/packages"
)

// Writer is a writer for generated code. It records the packages mentioned by
// formatted types, objects, and expressions so that the caller can render an
// import block afterwards.
type Writer struct {
	w       io.Writer
	pkg     *packages.Package
	fmt     Formatter
	imports map[string]Import
}

// NewWriter creates a new [Writer] writing to w for code generated into pkg.
func NewWriter(w io.Writer, pkg *packages.Package) *Writer {
	return &Writer{
		w:       w,
		pkg:     pkg,
		fmt:     New(pkg),
		imports: make(map[string]Import),
	}
}

// Printf writes a formatted string to the underlying writer using
// [Formatter.Fprintf].
func (w *Writer) Printf(format string, args ...any) (int, error) {
	w.importArgs(args...)
	return w.fmt.Fprintf(w.w, format, args...)
}

// Sprintf creates a formatted string using [Formatter.Sprintf].
func (w *Writer) Sprintf(format string, args ...any) string {
	w.importArgs(args...)
	return w.fmt.Sprintf(format, args...)
}

type Import struct {
	// The imported package.
	*types.Package

	// HasAlias is set when the package goes by a name other than its own.
	HasAlias bool
}

// Imports returns the collected imports, keyed by the name the package goes by
// in the generated code.
func (w *Writer) Imports() map[string]Import {
	return w.imports
}

// importArgs records the packages every code-formattable argument mentions.
func (w *Writer) importArgs(args ...any) {
	for _, arg := range args {
		w.importArg(arg)
	}
}

// The concrete go/types cases must come first. A [types.Object] also
// satisfies [Typer], and dispatching it by its type would lose the object.
func (w *Writer) importArg(arg any) {
	switch arg := arg.(type) {
	case ast.Expr:
		w.importAST(arg)
	case types.Object:
		w.importObj(arg)
	case types.Type:
		w.importType(arg)

	case Exprer:
		w.importAST(arg.Expr())
	case Objecter:
		w.importObj(arg.Object())
	case Typer:
		w.importType(arg.Type())
	case TypeInfoTyper:
		w.importType(arg.Type().Type())
	}
}

// importAST walks the node and records the package of every identifier.
func (w *Writer) importAST(node ast.Node) {
	ast.Inspect(node, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			w.importType(w.pkg.TypesInfo.TypeOf(id))
			w.importObj(w.pkg.TypesInfo.ObjectOf(id))
		}
		return true
	})
}

// importType records packages where the type and its component types are
// defined to import later. A type spelled out in generated code, such as
// map[string]pb.Tag, mentions every package of its components, so the
// recursion must reach them all.
func (w *Writer) importType(typ types.Type) {
	switch typ := typ.(type) {
	case *types.Alias:
		w.importObj(typ.Obj())
	case *types.Pointer:
		w.importType(typ.Elem())
	case *types.Slice:
		w.importType(typ.Elem())
	case *types.Array:
		w.importType(typ.Elem())
	case *types.Chan:
		w.importType(typ.Elem())
	case *types.Map:
		w.importType(typ.Key())
		w.importType(typ.Elem())
	case *types.Signature:
		for i := 0; i < typ.Params().Len(); i++ {
			w.importType(typ.Params().At(i).Type())
		}
		for i := 0; i < typ.Results().Len(); i++ {
			w.importType(typ.Results().At(i).Type())
		}
	case *types.Struct:
		// Only anonymous structs reach here. Named structs stop at the
		// Named case without visiting their underlying type, which also
		// keeps the recursion finite for recursive types.
		for f := range typ.Fields() {
			w.importType(f.Type())
		}
	case *types.Interface:
		for i := 0; i < typ.NumEmbeddeds(); i++ {
			w.importType(typ.EmbeddedType(i))
		}
		for i := 0; i < typ.NumExplicitMethods(); i++ {
			w.importType(typ.ExplicitMethod(i).Type())
		}
	case *types.Union:
		for i := 0; i < typ.Len(); i++ {
			w.importType(typ.Term(i).Type())
		}
	case *types.Named:
		w.importObj(typ.Obj())
		if targs := typ.TypeArgs(); targs != nil {
			for i := 0; i < targs.Len(); i++ {
				w.importType(targs.At(i))
			}
		}
	}
}

// importObj claims an import name for the package that defines obj.
func (w *Writer) importObj(obj types.Object) {
	if obj == nil || obj.Pkg() == nil {
		// Built-in objects live outside any package.
		return
	}

	pkg := obj.Pkg()
	if pkg.Path() == w.pkg.PkgPath {
		// Objects of the target package need no import.
		return
	}

	for name := range DisambiguateName(pkg.Name()) {
		prev, used := w.imports[name]
		switch {
		case used && prev.Package == pkg:
			// Already imported under this name.
			return
		case used:
			// The name belongs to another package. Try the next one.
		case w.pkg.Types.Scope().Lookup(name) != nil:
			// The target package declares this name. Try the next one.
		default:
			w.bind(name, pkg, name != pkg.Name())
			return
		}
	}
}

// bind claims name for pkg in the import table.
func (w *Writer) bind(name string, pkg *types.Package, aliased bool) {
	w.imports[name] = Import{Package: pkg, HasAlias: aliased}
	pkg.SetName(name)
}

// importedName looks up the name the target package already imports path by.
func (w *Writer) importedName(path string) string {
	for _, imp := range w.pkg.Types.Imports() {
		if imp.Path() == path {
			return imp.Name()
		}
	}
	return ""
}

// Import records an import of the package at path and returns the name to
// refer to it by in generated code. The returned name can differ from the
// requested one when something else already claimed it.
//
//	fmtName := w.Import("fmt", "fmt")
//	w.Printf("%s.Println(\"Hello, World!\")", fmtName)
//
// Call [Imports] to render everything recorded so far.
func (w *Writer) Import(path, name string) string {
	pkgName := w.importedName(path)
	if name == "" {
		name = pkgName
	}

	pkg := types.NewPackage(path, name)
	for name := range DisambiguateName(name) {
		prev, used := w.imports[name]
		switch {
		case used && prev.Path() == path:
			// Already imported under this name.
			return name
		case used:
			// The name belongs to another package. Try the next one.
		case w.pkg.Types.Scope().Lookup(name) != nil:
			// The target package declares this name. Try the next one.
		default:
			w.bind(name, pkg, name != pkgName)
			return name
		}
	}

	panic("unreachable")
}

// RewriteImports rewrites package references inside node to the names the
// writer assigned, recording an import for every mentioned package.
func RewriteImports[T ast.Node](w *Writer, node T) T {
	return astutil.Apply(node, func(c *astutil.Cursor) bool {
		switch node := c.Node().(type) {

		// Qualified references, such as "fmt.Println", swap their qualifier.
		case *ast.SelectorExpr:
			qual, ok := node.X.(*ast.Ident)
			if !ok {
				return true
			}

			pkgName, ok := w.pkg.TypesInfo.ObjectOf(qual).(*types.PkgName)
			if !ok {
				// The qualifier is not a package name.
				return true
			}

			imported := pkgName.Imported()
			alias := w.Import(imported.Path(), imported.Name())
			c.Replace(&ast.SelectorExpr{
				X: &ast.Ident{
					NamePos: qual.NamePos,
					Name:    alias,
					Obj:     qual.Obj,
				},
				Sel: &ast.Ident{
					NamePos: qual.NamePos + token.Pos(len(qual.Name)+1),
					Name:    node.Sel.Name,
					Obj:     node.Sel.Obj,
				},
			})
			return false

		// Bare identifiers from foreign package scopes gain a qualifier.
		case *ast.Ident:
			obj := w.pkg.TypesInfo.ObjectOf(node)
			if obj == nil {
				return false
			}

			pkg := obj.Pkg()
			if pkg == nil || pkg.Path() == w.pkg.PkgPath || obj.Parent() != pkg.Scope() {
				return true
			}

			alias := w.Import(pkg.Path(), pkg.Name())
			c.Replace(&ast.SelectorExpr{
				X: &ast.Ident{
					NamePos: node.NamePos,
					Name:    alias,
				},
				Sel: &ast.Ident{
					NamePos: node.NamePos + token.Pos(len(alias)+1),
					Name:    node.Name,
					Obj:     node.Obj,
				},
			})
			return false
		}

		// Keep walking.
		return true
	}, nil).(T)
}
