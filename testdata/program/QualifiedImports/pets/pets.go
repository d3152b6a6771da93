package pets

import "time"

//tuplegen:ordered
type Pet struct {
	Name string
	Born time.Time
}
