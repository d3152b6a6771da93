package testdata

//tuplegen:permute
type ( // want `tuplegen directive on a grouped type declaration`
	pair struct {
		a int
		b string
	}
	other struct {
		c bool
	}
)
