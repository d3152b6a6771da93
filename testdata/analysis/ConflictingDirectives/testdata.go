package testdata

//tuplegen:permute
//tuplegen:ordered
type point struct { // want `conflicting directives //tuplegen:permute and //tuplegen:ordered`
	x int
	y uint
}
