package testdata

//tuplegen:permute reverse
type flags struct { // want `directive //tuplegen:permute does not take arguments`
	verbose bool
	level   int
}
