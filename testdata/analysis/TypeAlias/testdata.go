package testdata

//tuplegen:ordered
type alias = struct{ n int } // want `//tuplegen:ordered cannot target a type alias`
