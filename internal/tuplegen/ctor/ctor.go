// Package ctor plans and writes tuple constructors for record types.
package ctor

import (
	"go/token"
	"strings"

	"github.com/sublee/tuplegen/internal/codefmt"
	"github.com/sublee/tuplegen/internal/tuplegen/parse"
	"github.com/sublee/tuplegen/internal/typeinfo"
)

// Ctor describes one constructor to generate: the target record, the fields
// in the order the constructor accepts them, and the parameter names aligned
// with that order.
type Ctor struct {
	rec     *parse.Record
	name    string
	fields  []parse.Field
	params  []string
	primary bool
}

func newCtor(rec *parse.Record, fields []parse.Field, primary bool, ns codefmt.NS) *Ctor {
	return &Ctor{
		rec:     rec,
		name:    ns.Name(baseName(rec, fields, primary)),
		fields:  fields,
		params:  paramNames(rec, fields),
		primary: primary,
	}
}

func (c *Ctor) Name() string          { return c.name }
func (c *Ctor) Primary() bool         { return c.primary }
func (c *Ctor) Record() *parse.Record { return c.rec }
func (c *Ctor) Pos() token.Pos        { return c.rec.Pos() }

// TupleTypes returns the types the constructor accepts, in positional order.
func (c *Ctor) TupleTypes() []typeinfo.Type {
	types := make([]typeinfo.Type, len(c.fields))
	for i, f := range c.fields {
		types[i] = f.Type()
	}
	return types
}

// FieldBindings returns the field each position assigns to. The i-th
// parameter always lands in the i-th field returned here.
func (c *Ctor) FieldBindings() []string {
	names := make([]string, len(c.fields))
	for i, f := range c.fields {
		names[i] = f.Name()
	}
	return names
}

// WriteDefineCode writes the constructor declaration. The body assigns each
// parameter to its field one statement at a time and returns the named
// result, so the output is already in canonical format.
func (c *Ctor) WriteDefineCode(w *codefmt.Writer) {
	if c.primary {
		w.Printf("// %s builds %s from its fields in declared order.\n", c.name, c.rec.Name())
	} else {
		w.Printf("// %s builds %s from its fields ordered as %s.\n",
			c.name, c.rec.Name(), strings.Join(c.FieldBindings(), ", "))
	}

	decl, use := c.spliceTypeParams(w)
	w.Printf("func %s%s(", c.name, decl)
	for i, f := range c.fields {
		if i > 0 {
			w.Printf(", ")
		}
		w.Printf("%s %t", c.params[i], f)
	}
	w.Printf(") (out %s%s) {\n", c.rec.Name(), use)

	for i, f := range c.fields {
		w.Printf("\tout.%s = %s\n", f.Name(), c.params[i])
	}
	w.Printf("\treturn out\n")
	w.Printf("}\n")
}

// spliceTypeParams renders the type parameter list as written in the source,
// once with constraints for the declaration and once with bare names for the
// result type. Constraints pass through untouched apart from import
// qualifiers, so the generator never has to understand them.
func (c *Ctor) spliceTypeParams(w *codefmt.Writer) (decl, use string) {
	tp := c.rec.TypeParams
	if tp == nil {
		return "", ""
	}

	var all []string
	var groups []string
	for _, field := range tp.List {
		names := make([]string, len(field.Names))
		for i, id := range field.Names {
			names[i] = id.Name
		}
		all = append(all, names...)

		constraint := codefmt.RewriteImports(w, field.Type)
		groups = append(groups, w.Sprintf("%s %c", strings.Join(names, ", "), constraint))
	}

	return "[" + strings.Join(groups, ", ") + "]", "[" + strings.Join(all, ", ") + "]"
}
