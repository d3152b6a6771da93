package ctor

import (
	"slices"

	"github.com/sublee/tuplegen/internal/codefmt"
	"github.com/sublee/tuplegen/internal/permute"
	"github.com/sublee/tuplegen/internal/tuplegen/parse"
)

// Build plans the constructors for a record. For ordered records it returns a
// single constructor honoring the declared field order. For permuted records
// it returns one constructor per ordering of the fields, the declared order
// first, after verifying that no two fields share a type.
//
// Constructor names are claimed in ns, which spans the whole package, so a
// name that is already taken gets a numbering suffix instead of colliding.
func Build(rec *parse.Record, ns codefmt.NS) ([]*Ctor, error) {
	if rec.Kind == parse.KindPermute {
		if err := validateFieldTypes(rec); err != nil {
			return nil, err
		}
	}

	var ctors []*Ctor
	switch rec.Kind {
	case parse.KindOrdered:
		ctors = append(ctors, newCtor(rec, rec.Fields, true, ns))
	case parse.KindPermute:
		permute.ForEach(rec.Fields, func(fields []parse.Field) {
			ctors = append(ctors, newCtor(rec, slices.Clone(fields), len(ctors) == 0, ns))
		})
	}
	return ctors, nil
}
