package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/tuplegen"
	"github.com/sublee/tuplegen/internal/codefmt"
	"github.com/sublee/tuplegen/internal/typeinfo"
)

// Kind tells which directive marked a record.
type Kind int

const (
	// KindPermute requests one constructor per field permutation.
	KindPermute Kind = iota

	// KindOrdered requests a single constructor honoring the declared order.
	KindOrdered
)

// Directive returns the directive name that selects the kind.
func (k Kind) Directive() string {
	switch k {
	case KindPermute:
		return tuplegen.DirectivePermute
	case KindOrdered:
		return tuplegen.DirectiveOrdered
	}
	panic("unknown kind")
}

// Record is a struct type marked with a tuplegen directive.
type Record struct {
	Kind   Kind
	Obj    *types.TypeName
	Type   typeinfo.Type
	Fields []Field

	// TypeParams carries the type parameter list as written. Only ordered
	// records may have one.
	TypeParams *ast.FieldList

	spec *ast.TypeSpec
	pkg  *packages.Package
}

func (r *Record) Name() string           { return r.Obj.Name() }
func (r *Record) Exported() bool         { return r.Obj.Exported() }
func (r *Record) Pkg() *packages.Package { return r.pkg }
func (r *Record) Pos() token.Pos         { return r.spec.Name.Pos() }
func (r *Record) End() token.Pos         { return r.spec.Name.End() }

// Field is a single field of a record.
type Field struct {
	v   *types.Var
	typ typeinfo.Type
}

func (f Field) Name() string        { return f.v.Name() }
func (f Field) Type() typeinfo.Type { return f.typ }
func (f Field) Var() *types.Var     { return f.v }
func (f Field) Pos() token.Pos      { return f.v.Pos() }

// ParseRecords finds type declarations marked with a tuplegen directive and
// parses each into a [Record]. Records keep the order they appear in the
// package files, which fixes the order of the generated constructors.
func (p *Parser) ParseRecords() ([]*Record, error) {
	var recs []*Record
	var errs error

	for _, file := range p.Pkg().Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			if len(gen.Specs) > 1 && len(directiveLines(gen.Doc)) != 0 {
				err := codefmt.Errorf(p, gen, "tuplegen directive on a grouped type declaration; move it onto one type spec")
				errs = errors.Join(errs, err)
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)

				// A single-spec declaration usually carries its doc on the
				// declaration, not on the spec.
				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}

				kind, ok, err := p.parseDirective(doc, ts)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				if !ok {
					continue
				}

				rec, err := p.parseRecord(ts, kind)
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				recs = append(recs, rec)
			}
		}
	}

	return recs, errs
}

// directiveLines returns the tuplegen directive lines of a doc comment. A
// directive line starts with "//tuplegen:" without a space, in the same way
// as go:generate, so "// tuplegen:permute" is prose rather than a directive.
func directiveLines(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}

	var lines []string
	for _, comment := range doc.List {
		if rest, ok := strings.CutPrefix(comment.Text, "//tuplegen:"); ok {
			lines = append(lines, "tuplegen:"+rest)
		}
	}
	return lines
}

func (p *Parser) parseDirective(doc *ast.CommentGroup, ts *ast.TypeSpec) (Kind, bool, error) {
	lines := directiveLines(doc)
	if len(lines) == 0 {
		return 0, false, nil
	}
	if len(lines) > 1 {
		return 0, false, codefmt.Errorf(p, ts.Name, "conflicting directives //%s and //%s", lines[0], lines[1])
	}

	name, args, _ := strings.Cut(lines[0], " ")

	var kind Kind
	switch name {
	case tuplegen.DirectivePermute:
		kind = KindPermute
	case tuplegen.DirectiveOrdered:
		kind = KindOrdered
	default:
		return 0, false, codefmt.Errorf(p, ts.Name, "unknown directive //%s", name)
	}

	if strings.TrimSpace(args) != "" {
		return 0, false, codefmt.Errorf(p, ts.Name, "directive //%s does not take arguments", name)
	}

	return kind, true, nil
}

func (p *Parser) parseRecord(ts *ast.TypeSpec, kind Kind) (*Record, error) {
	if ts.Assign.IsValid() {
		return nil, codefmt.Errorf(p, ts.Name, "//%s cannot target a type alias", kind.Directive())
	}

	obj, ok := p.Pkg().TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return nil, codefmt.Errorf(p, ts.Name, "cannot resolve type %s", ts.Name.Name)
	}

	typ := typeinfo.TypeOf(obj.Type())
	if !typ.IsStruct() {
		return nil, codefmt.Errorf(p, ts.Name, "//%s requires a struct type, but %o is %t", kind.Directive(), obj, typeinfo.TypeOf(obj.Type().Underlying()))
	}

	if kind == KindPermute && ts.TypeParams != nil {
		return nil, codefmt.Errorf(p, ts.Name, `//%s cannot target a generic type
	type parameters may instantiate to the same type; use //%s instead`,
			tuplegen.DirectivePermute, tuplegen.DirectiveOrdered)
	}

	rec := &Record{
		Kind:       kind,
		Obj:        obj,
		Type:       typ,
		TypeParams: ts.TypeParams,
		spec:       ts,
		pkg:        p.Pkg(),
	}

	var errs error
	for v := range typ.Struct.Fields() {
		if v.Name() == "_" {
			err := codefmt.Errorf(p, v, "cannot assign blank field of %o in a constructor", obj)
			errs = errors.Join(errs, err)
			continue
		}
		rec.Fields = append(rec.Fields, Field{v: v, typ: typeinfo.TypeOf(v.Type())})
	}
	if errs != nil {
		return nil, errs
	}

	return rec, nil
}
