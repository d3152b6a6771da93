package testdata

//tuplegen:permute
type greeting struct {
	message string
	count   int
}

// Ordered records skip the uniqueness check, so repeating a type is fine.

//tuplegen:ordered
type span[T any] struct {
	lo T
	hi T
}
