package main

import "fmt"

//tuplegen:permute
type Hello struct {
	message string
	time    int32
	counter uint
}

func main() {
	a := NewHello("hi", 9, 3)
	b := NewHelloFromCounterTimeMessage(3, 9, "hi")
	if a != b {
		panic("constructors disagree")
	}
	fmt.Println(a.message, a.time, a.counter)
}
