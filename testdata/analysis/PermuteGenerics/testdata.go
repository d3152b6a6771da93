package testdata

//tuplegen:permute
type box[T any] struct { // want `cannot target a generic type`
	value T
	label string
}
