package typeinfo

import (
	"golang.org/x/tools/go/types/typeutil"
)

// Index associates values with types. Keys are compared by [types.Identical]
// rather than by pointer, so two mentions of the same type fold into one entry
// even when they are spelled through different aliases.
type Index[T any] struct {
	m *typeutil.Map
}

// NewIndex creates a new [Index].
func NewIndex[T any]() *Index[T] {
	m := new(typeutil.Map)
	m.SetHasher(typeutil.MakeHasher())
	return &Index[T]{m}
}

// Put associates the value with the type. If the type is already present, the
// index is left unchanged and the existing value is returned with false.
func (ix *Index[T]) Put(t Type, v T) (T, bool) {
	if old, ok := ix.m.At(t.T).(T); ok {
		return old, false
	}

	if old := ix.m.Set(t.T, v); old != nil {
		panic("unexpected old value")
	}
	return *new(T), true
}

// Get finds the value associated with the type.
func (ix *Index[T]) Get(t Type) (T, bool) {
	if ix == nil {
		return *new(T), false
	}

	v, ok := ix.m.At(t.T).(T)
	return v, ok
}

// Len returns the number of distinct types in the index.
func (ix *Index[T]) Len() int { return ix.m.Len() }
