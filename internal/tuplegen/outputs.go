package tuplegeninternal

import (
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Outputs holds generated files keyed by path. It keeps the order the
// packages were processed, so repeated runs report files in the same order.
type Outputs struct {
	m *linkedhashmap.Map // path -> code
}

// NewOutputs creates an empty [Outputs].
func NewOutputs() *Outputs {
	return &Outputs{m: linkedhashmap.New()}
}

// Put records the generated code for a path. Putting the same path again
// replaces the code but keeps its original position.
func (o *Outputs) Put(path string, code []byte) {
	o.m.Put(path, code)
}

// Get returns the generated code for a path.
func (o *Outputs) Get(path string) ([]byte, bool) {
	v, ok := o.m.Get(path)
	if !ok {
		return nil, false
	}
	return v.([]byte), true
}

// Len returns the number of output files.
func (o *Outputs) Len() int {
	return o.m.Size()
}

// All iterates the outputs in insertion order.
func (o *Outputs) All() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		it := o.m.Iterator()
		for it.Next() {
			if !yield(it.Key().(string), it.Value().([]byte)) {
				return
			}
		}
	}
}

// Paths returns the output paths in insertion order.
func (o *Outputs) Paths() []string {
	paths := make([]string, 0, o.m.Size())
	for path := range o.All() {
		paths = append(paths, path)
	}
	return paths
}
