package testdata

// Every duplicate is reported, not only the first one found.

//tuplegen:permute
type grades struct {
	a int
	b int    // want `b \(int\) duplicates a`
	c int    // want `c \(int\) duplicates a`
	d string
	e string // want `e \(string\) duplicates d`
}
