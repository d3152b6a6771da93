package main

//tuplegen:permute
type Hello struct {
	message string
	time    int32
	counter int32
}

func main() {}
