// Package permute enumerates permutations of a slice.
package permute

import (
	"slices"
)

// ForEach visits every ordering of items exactly once, the original order
// first. There are factorial(len(items)) orderings in total, and ForEach does
// not cap that number. Callers decide how many items are too many.
//
// All visits share one working slice which is reordered in place between
// calls, so nothing is allocated per permutation. The slice passed to visit is
// only valid during the call. Clone it to keep an ordering around.
func ForEach[T any](items []T, visit func([]T)) {
	work := slices.Clone(items)
	visit(work)

	// Heap's algorithm, iterative form. c[i] counts how many swaps position i
	// has initiated. Each swap produces a fresh ordering and rewinds i to the
	// bottom; once c[i] reaches i the position is exhausted and resets.
	c := make([]int, len(work))
	i := 0
	for i < len(work) {
		if c[i] < i {
			if i%2 == 0 {
				work[0], work[i] = work[i], work[0]
			} else {
				work[c[i]], work[i] = work[i], work[c[i]]
			}
			c[i]++
			i = 0
			visit(work)
		} else {
			c[i] = 0
			i++
		}
	}
}
