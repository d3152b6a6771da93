package testdata

//tuplegen:shuffle
type deck struct { // want `unknown directive //tuplegen:shuffle`
	top    string
	bottom int
}
