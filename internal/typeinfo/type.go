package typeinfo

import (
	"fmt"
	"go/types"
)

// Type breaks a [types.Type] down by kind. A named type carries both Named
// and the fields of its underlying kind, so IsNamed and IsBasic can hold at
// once.
type Type struct {
	T types.Type

	Basic     *types.Basic
	Array     *types.Array
	Slice     *types.Slice
	Map       *types.Map
	Chan      *types.Chan
	Struct    *types.Struct
	Interface *types.Interface
	Pointer   *types.Pointer
	Named     *types.Named

	Elem *Type
	Key  *Type
	Len  int64
}

func (t Type) Type() types.Type { return t.T }
func (t Type) String() string   { return t.T.String() }

func (t Type) IsBasic() bool     { return t.Basic != nil }
func (t Type) IsArray() bool     { return t.Array != nil }
func (t Type) IsSlice() bool     { return t.Slice != nil }
func (t Type) IsMap() bool       { return t.Map != nil }
func (t Type) IsChan() bool      { return t.Chan != nil }
func (t Type) IsStruct() bool    { return t.Struct != nil }
func (t Type) IsInterface() bool { return t.Interface != nil }
func (t Type) IsPointer() bool   { return t.Pointer != nil }
func (t Type) IsNamed() bool     { return t.Named != nil }

// Identical reports whether two types are identical in the [types.Identical]
// sense. Aliases resolve to the type they denote, so byte and uint8 are
// identical while two named types sharing an underlying type are not.
func (t Type) Identical(u Type) bool { return types.Identical(t.T, u.T) }

// child links a component type as a nested Type.
func child(t types.Type) *Type {
	info := TypeOf(t)
	return &info
}

// TypeOf dissects the given type. It accepts any type that can appear as a
// struct field.
func TypeOf(t types.Type) Type {
	info := Type{T: t}

	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		info.Basic = tt
	case *types.Array:
		info.Array = tt
		info.Elem = child(tt.Elem())
		info.Len = tt.Len()
	case *types.Slice:
		info.Slice = tt
		info.Elem = child(tt.Elem())
	case *types.Map:
		info.Map = tt
		info.Key = child(tt.Key())
		info.Elem = child(tt.Elem())
	case *types.Chan:
		info.Chan = tt
		info.Elem = child(tt.Elem())
	case *types.Struct:
		info.Struct = tt
	case *types.Interface:
		info.Interface = tt
	case *types.Pointer:
		info.Pointer = tt
		info.Elem = child(tt.Elem())
	case *types.Named:
		info = TypeOf(tt.Underlying())
		info.T = t
		info.Named = tt
	case *types.Signature, *types.TypeParam:
		// Functions and bare type parameters have no shape to record.
	default:
		panic(fmt.Errorf("unknown type: %T", t))
	}

	return info
}
