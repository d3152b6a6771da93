package ctor

import (
	"go/token"
	"go/types"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sublee/tuplegen/internal/codefmt"
	"github.com/sublee/tuplegen/internal/tuplegen/parse"
)

// baseName derives the constructor name before numbering. The primary
// constructor is New<Record>, or new<Record> when the record is unexported.
// Every other ordering appends From and the field names in order, so
// NewHelloFromTimeMessageCounter reads as the ordering it accepts.
func baseName(rec *parse.Record, fields []parse.Field, primary bool) string {
	prefix := "New"
	if !rec.Exported() {
		prefix = "new"
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(upperFirst(rec.Name()))
	if !primary {
		b.WriteString("From")
		for _, f := range fields {
			b.WriteString(upperFirst(f.Name()))
		}
	}
	return b.String()
}

// paramNames derives a parameter name per field. Names that would shadow an
// identifier the signature mentions, such as the record name, a type
// parameter, or an imported package qualifier, take a numbering suffix
// instead. Go resolves signature types with earlier parameters already in
// scope, so a parameter named time would break a later time.Duration.
func paramNames(rec *parse.Record, fields []parse.Field) []string {
	ns := make(codefmt.NS)
	ns.Reserve("out")
	reserveSignatureNames(ns, rec)

	params := make([]string, len(fields))
	for i, f := range fields {
		params[i] = ns.Name(paramName(f.Name()))
	}
	return params
}

// paramName lowers a field name for use as a parameter. All-caps names lower
// entirely so ID becomes id rather than iD. When lowering lands on a keyword,
// such as a field named Type, the field name is kept as is.
func paramName(name string) string {
	lowered := lowerFirst(name)
	if allUpper(name) {
		lowered = strings.ToLower(name)
	}
	if token.Lookup(lowered).IsKeyword() {
		return name
	}
	return lowered
}

func reserveSignatureNames(ns codefmt.NS, rec *parse.Record) {
	ns.Reserve(rec.Name())
	if rec.TypeParams != nil {
		for _, field := range rec.TypeParams.List {
			for _, id := range field.Names {
				ns.Reserve(id.Name)
			}
		}
	}
	for _, f := range rec.Fields {
		reserveTypeNames(ns, rec, f.Type().Type())
	}
}

// reserveTypeNames reserves every identifier a type renders as: package
// qualifiers, local type names, and predeclared names such as int or error.
func reserveTypeNames(ns codefmt.NS, rec *parse.Record, typ types.Type) {
	switch typ := typ.(type) {
	case *types.Alias:
		reserveObjName(ns, rec, typ.Obj())
	case *types.Basic:
		ns.Reserve(typ.Name())
	case *types.Pointer:
		reserveTypeNames(ns, rec, typ.Elem())
	case *types.Slice:
		reserveTypeNames(ns, rec, typ.Elem())
	case *types.Array:
		reserveTypeNames(ns, rec, typ.Elem())
	case *types.Chan:
		reserveTypeNames(ns, rec, typ.Elem())
	case *types.Map:
		reserveTypeNames(ns, rec, typ.Key())
		reserveTypeNames(ns, rec, typ.Elem())
	case *types.Signature:
		for i := 0; i < typ.Params().Len(); i++ {
			reserveTypeNames(ns, rec, typ.Params().At(i).Type())
		}
		for i := 0; i < typ.Results().Len(); i++ {
			reserveTypeNames(ns, rec, typ.Results().At(i).Type())
		}
	case *types.Struct:
		for i := 0; i < typ.NumFields(); i++ {
			reserveTypeNames(ns, rec, typ.Field(i).Type())
		}
	case *types.Interface:
		for i := 0; i < typ.NumEmbeddeds(); i++ {
			reserveTypeNames(ns, rec, typ.EmbeddedType(i))
		}
		for i := 0; i < typ.NumExplicitMethods(); i++ {
			reserveTypeNames(ns, rec, typ.ExplicitMethod(i).Type())
		}
	case *types.Union:
		for i := 0; i < typ.Len(); i++ {
			reserveTypeNames(ns, rec, typ.Term(i).Type())
		}
	case *types.Named:
		reserveObjName(ns, rec, typ.Obj())
		for i := 0; i < typ.TypeArgs().Len(); i++ {
			reserveTypeNames(ns, rec, typ.TypeArgs().At(i))
		}
	case *types.TypeParam:
		ns.Reserve(typ.Obj().Name())
	}
}

func reserveObjName(ns codefmt.NS, rec *parse.Record, obj types.Object) {
	pkg := obj.Pkg()
	switch {
	case pkg == nil:
		ns.Reserve(obj.Name())
	case pkg.Path() == rec.Pkg().PkgPath:
		ns.Reserve(obj.Name())
	default:
		ns.Reserve(pkg.Name())
	}
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

func allUpper(s string) bool {
	hasUpper := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
