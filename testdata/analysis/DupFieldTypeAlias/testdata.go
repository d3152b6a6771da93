package testdata

// byte is an alias for uint8, so tag and code share one type identity.

//tuplegen:permute
type packet struct {
	tag  byte
	code uint8 // want `code \(uint8\) duplicates tag`
}
