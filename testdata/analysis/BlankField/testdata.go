package testdata

//tuplegen:ordered
type padded struct {
	value uint32
	_     [4]byte // want `cannot assign blank field of padded`
}
