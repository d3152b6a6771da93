package ctor

import (
	"errors"

	"github.com/sublee/tuplegen/internal/codefmt"
	"github.com/sublee/tuplegen/internal/tuplegen/parse"
	"github.com/sublee/tuplegen/internal/typeinfo"
)

// DuplicateTypeError reports a field whose type already appeared earlier in
// the same record. The later field is the offender; the first occurrence
// stays valid.
type DuplicateTypeError struct {
	Field parse.Field
	Prev  parse.Field

	err error
}

func (e *DuplicateTypeError) Error() string { return e.err.Error() }
func (e *DuplicateTypeError) Unwrap() error { return e.err }

// validateFieldTypes checks that no two fields of the record share a type,
// because permuted constructors tell parameters apart by type alone. Every
// offending field is reported in one run, not just the first. A duplicate
// does not enter the seen set, so a third field of the same type reports
// against the first occurrence again.
//
// Types are compared after resolving aliases: byte duplicates uint8. Named
// types with the same underlying type stay distinct.
func validateFieldTypes(rec *parse.Record) error {
	seen := typeinfo.NewIndex[parse.Field]()

	var errs error
	for _, f := range rec.Fields {
		prev, added := seen.Put(f.Type(), f)
		if added {
			continue
		}

		err := codefmt.Errorf(rec, f, `field types must be unique in %o
	%s (%t) duplicates %s declared at %b`,
			rec.Obj, f.Name(), f, prev.Name(), prev)
		errs = errors.Join(errs, &DuplicateTypeError{Field: f, Prev: prev, err: err})
	}
	return errs
}
