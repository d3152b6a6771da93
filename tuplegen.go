// Package tuplegen provides directives for positional constructor code
// generation.
//
// Tuplegen generates constructor functions that build a struct from plain
// positional arguments. For a struct whose field types are all distinct, any
// ordering of the arguments is unambiguous, so Tuplegen can emit a constructor
// for every permutation of the fields and let callers pass values in whatever
// order they have them.
//
// To start with Tuplegen, mark a struct type with a directive comment:
//
//	//tuplegen:permute
//	type Hello struct {
//		message string
//		time    int32
//		counter uint
//	}
//
// Then run the tuplegen command. It will generate tuplegen_gen.go for your
// package:
//
//	go run github.com/sublee/tuplegen/cmd/tuplegen
//
// The generated file contains one constructor per field ordering. The
// constructor for the declared order carries the plain name, while the others
// spell out their ordering:
//
//	// generated: (simplified)
//	func NewHello(message string, time int32, counter uint) (out Hello) {
//		out.message = message
//		...
//	}
//	func NewHelloFromTimeMessageCounter(time int32, message string, counter uint) (out Hello) {
//		out.time = time
//		...
//	}
//
// Constructors do not validate anything at runtime. Every permutation assigns
// each argument to the field declared with the argument's position in that
// ordering, so the result is determined entirely at generation time.
//
// # Unique field types
//
// Permuted constructors only make sense when no two fields share a type.
// Otherwise two orderings would accept identical signatures and the call site
// could not express which field it means. Tuplegen verifies this before
// generating anything and reports every offending field at once:
//
//	//tuplegen:permute
//	type Hello struct {
//		message string
//		time    int32
//		counter int32
//	}
//
//	main.go:7:2: field types must be unique in Hello
//		counter (int32) duplicates time declared at main.go:6:2
//
// Type aliases resolve to their underlying named type for this check, so a
// field of type byte collides with a field of type uint8.
//
// Distinct named types with the same underlying type do not collide. Wrapping
// primitives in single-purpose named types is the usual way to make a struct
// eligible:
//
//	type (
//		Message string
//		Subject string
//	)
//
//	//tuplegen:permute
//	type Mail struct {
//		message Message
//		subject Subject
//	}
//
// # Declared order only
//
// The number of constructors grows factorially with the number of fields. When
// only the declared order is wanted, or when field types cannot be made
// unique, use the ordered directive instead:
//
//	//tuplegen:ordered
//	type Pair[K comparable, V any] struct {
//		Key   K
//		Value V
//	}
//
//	// generated: (simplified)
//	func NewPair[K comparable, V any](key K, value V) (out Pair[K, V]) {
//		out.Key = key
//		out.Value = value
//		return out
//	}
//
// An ordered record may be generic. Its type parameter list is carried over to
// the constructor as written. Permuted records cannot be generic because type
// parameters may instantiate to the same type, which would break the
// uniqueness guarantee.
package tuplegen

// Directive names recognized by the generator. A directive marks a type
// declaration when it appears alone on a line of the declaration's doc
// comment, prefixed with "//" and no space, in the same way as go:generate:
//
//	//tuplegen:permute
//	type Hello struct{ ... }
const (
	// DirectivePermute requests a constructor per field permutation. The
	// marked struct must have uniquely typed fields.
	DirectivePermute = "tuplegen:permute"

	// DirectiveOrdered requests a single constructor honoring the declared
	// field order. The marked struct may be generic and may repeat field
	// types.
	DirectiveOrdered = "tuplegen:ordered"
)
