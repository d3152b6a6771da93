package main

import (
	"fmt"
	"time"

	"example.com/QualifiedImports/pets"
)

func main() {
	p := pets.NewPet("nabi", time.Unix(0, 0).UTC())
	fmt.Println(p.Name, p.Born.Year())
}
