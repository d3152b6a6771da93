package testdata

//tuplegen:permute
type count int // want `requires a struct type, but count is int`

//tuplegen:ordered
type codes []string // want `requires a struct type, but codes is \[\]string`
