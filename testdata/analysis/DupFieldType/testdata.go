package testdata

//tuplegen:permute
type Hello struct {
	message string
	time    int32
	counter int32 // want `field types must be unique in Hello`
}
