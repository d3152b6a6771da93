package permute_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sublee/tuplegen/internal/permute"
)

// collect gathers every visited ordering. Each ordering must be cloned
// because ForEach reuses one working slice across visits.
func collect(items []int) [][]int {
	var orderings [][]int
	permute.ForEach(items, func(p []int) {
		orderings = append(orderings, slices.Clone(p))
	})
	return orderings
}

// refPerms generates permutations the naive recursive way as a reference.
func refPerms(items []int) [][]int {
	if len(items) == 0 {
		return [][]int{{}}
	}

	var out [][]int
	for i := range items {
		rest := slices.Concat(items[:i], items[i+1:])
		for _, p := range refPerms(rest) {
			out = append(out, append([]int{items[i]}, p...))
		}
	}
	return out
}

func TestForEachIdentityFirst(t *testing.T) {
	orderings := collect([]int{10, 20, 30})
	require.NotEmpty(t, orderings)
	assert.Equal(t, []int{10, 20, 30}, orderings[0])
}

func TestForEachCount(t *testing.T) {
	factorials := []int{1, 1, 2, 6, 24, 120, 720}

	for n, want := range factorials {
		t.Run(fmt.Sprintf("N%d", n), func(t *testing.T) {
			items := make([]int, n)
			for i := range items {
				items[i] = i
			}
			assert.Len(t, collect(items), want)
		})
	}
}

func TestForEachEmpty(t *testing.T) {
	orderings := collect(nil)
	require.Len(t, orderings, 1)
	assert.Empty(t, orderings[0])
}

func TestForEachSingle(t *testing.T) {
	orderings := collect([]int{7})
	require.Len(t, orderings, 1)
	assert.Equal(t, []int{7}, orderings[0])
}

func TestForEachDistinct(t *testing.T) {
	orderings := collect([]int{1, 2, 3, 4})

	seen := make(map[string]bool)
	for _, p := range orderings {
		key := fmt.Sprint(p)
		assert.False(t, seen[key], "ordering %v visited twice", p)
		seen[key] = true
	}
}

func TestForEachMatchesReference(t *testing.T) {
	got := collect([]int{1, 2, 3, 4})
	want := refPerms([]int{1, 2, 3, 4})

	slices.SortFunc(got, slices.Compare)
	slices.SortFunc(want, slices.Compare)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("permutations mismatch (-want +got):\n%s\ngot: %s", diff, spew.Sdump(got))
	}
}

func TestForEachReusesSlice(t *testing.T) {
	// Without cloning, every retained slice aliases the working copy and ends
	// up holding whatever ordering was visited last.
	var aliased [][]int
	permute.ForEach([]int{1, 2, 3}, func(p []int) {
		aliased = append(aliased, p)
	})

	require.Len(t, aliased, 6)
	for _, p := range aliased {
		assert.Equal(t, aliased[len(aliased)-1], p)
	}
}
