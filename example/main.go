package main

import (
	"fmt"
	"time"
)

//go:generate go tool tuplegen ./...

// Visit gives every field its own type, so each tuple ordering maps to
// exactly one constructor.
//
//tuplegen:permute
type Visit struct {
	page    string
	at      time.Time
	elapsed time.Duration
}

//tuplegen:ordered
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func main() {
	at := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)

	// Output: true
	a := NewVisit("/docs", at, 250*time.Millisecond)
	b := NewVisitFromElapsedAtPage(250*time.Millisecond, at, "/docs")
	fmt.Println(a == b)

	// Output: answer=42
	p := NewPair("answer", 42)
	fmt.Printf("%s=%d\n", p.Key, p.Value)
}
