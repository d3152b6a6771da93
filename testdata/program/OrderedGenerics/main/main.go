package main

import "fmt"

//tuplegen:ordered
type Pair[K comparable, V any] struct {
	key   K
	value V
}

func main() {
	p := NewPair("answer", 42)
	fmt.Println(p.key, p.value)
}
