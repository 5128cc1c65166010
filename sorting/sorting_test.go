package sorting

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortbench/record"
)

func randomRecords(rng *rand.Rand, n int, maxID int32) []record.Record {
	out := make([]record.Record, n)
	for i := range out {
		// names carry the input position so stability is observable
		out[i] = record.Record{ID: rng.Int31n(maxID) - maxID/2, Name: fmt.Sprintf("r%d", i)}
	}
	return out
}

func clone(a []record.Record) []record.Record {
	return append([]record.Record(nil), a...)
}

// canonical orders a copy by (ID, Name) so multisets can be compared.
func canonical(a []record.Record) []record.Record {
	c := clone(a)
	sort.Slice(c, func(i, j int) bool {
		if c[i].ID != c[j].ID {
			return c[i].ID < c[j].ID
		}
		return c[i].Name < c[j].Name
	})
	return c
}

func TestSortersSortAndPreservePermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, alg := range All() {
		for _, n := range []int{0, 1, 2, 3, 7, 16, 100, 257} {
			in := randomRecords(rng, n, 50)
			got := clone(in)
			alg.Sorter()(got)

			require.True(t, IsSorted(got), "%s n=%d not sorted", alg, n)
			assert.Equal(t, canonical(in), canonical(got), "%s n=%d changed the multiset", alg, n)
		}
	}
}

func TestStableSortersMatchReferenceStableSort(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, alg := range All() {
		if !alg.Stable() {
			continue
		}
		for trial := 0; trial < 20; trial++ {
			in := randomRecords(rng, 60, 8)
			want := clone(in)
			sort.SliceStable(want, func(i, j int) bool { return want[i].ID < want[j].ID })

			got := clone(in)
			alg.Sorter()(got)
			require.Equal(t, want, got, "%s is not stable", alg)
		}
	}
}

func TestConcreteScenario(t *testing.T) {
	in := []record.Record{{ID: 5, Name: "E"}, {ID: 3, Name: "C"}, {ID: 5, Name: "A"}, {ID: 1, Name: "B"}}

	got := clone(in)
	MergeSort(got)
	assert.Equal(t, []record.Record{{ID: 1, Name: "B"}, {ID: 3, Name: "C"}, {ID: 5, Name: "E"}, {ID: 5, Name: "A"}}, got)

	got = clone(in)
	SelectionSort(got)
	ids := make([]int32, len(got))
	for i, r := range got {
		ids[i] = r.ID
	}
	assert.Equal(t, []int32{1, 3, 5, 5}, ids)
	assert.ElementsMatch(t, []string{"E", "A"}, []string{got[2].Name, got[3].Name})
}

func TestIdempotentOnSortedInput(t *testing.T) {
	sorted := []record.Record{{ID: -2, Name: "a"}, {ID: 0, Name: "b"}, {ID: 0, Name: "c"}, {ID: 9, Name: "d"}}
	for _, alg := range All() {
		got := clone(sorted)
		alg.Sorter()(got)
		assert.Equal(t, sorted, got, "%s", alg)
	}
}

func TestBubbleSinglePassOnSortedInput(t *testing.T) {
	sorted := []record.Record{{ID: 1}, {ID: 2}, {ID: 2}, {ID: 3}, {ID: 10}}
	assert.Equal(t, 1, BubblePasses(clone(sorted)))

	assert.Equal(t, 0, BubblePasses(nil))
	assert.Equal(t, 0, BubblePasses([]record.Record{{ID: 4}}))

	reversed := []record.Record{{ID: 4}, {ID: 3}, {ID: 2}, {ID: 1}}
	assert.Equal(t, 3, BubblePasses(reversed))
	assert.True(t, IsSorted(reversed))
}

func TestBoundaryCases(t *testing.T) {
	for _, alg := range All() {
		var empty []record.Record
		alg.Sorter()(empty)
		assert.Empty(t, empty)

		single := []record.Record{{ID: 42, Name: "only"}}
		alg.Sorter()(single)
		assert.Equal(t, []record.Record{{ID: 42, Name: "only"}}, single)

		asc := []record.Record{{ID: 1, Name: "x"}, {ID: 2, Name: "y"}}
		alg.Sorter()(asc)
		assert.Equal(t, []record.Record{{ID: 1, Name: "x"}, {ID: 2, Name: "y"}}, asc, "%s", alg)

		desc := []record.Record{{ID: 2, Name: "y"}, {ID: 1, Name: "x"}}
		alg.Sorter()(desc)
		assert.Equal(t, []record.Record{{ID: 1, Name: "x"}, {ID: 2, Name: "y"}}, desc, "%s", alg)
	}
}

func TestExtremeIDs(t *testing.T) {
	in := []record.Record{{ID: 2147483647}, {ID: -2147483648}, {ID: 0}, {ID: -1}}
	for _, alg := range All() {
		got := clone(in)
		alg.Sorter()(got)
		assert.Equal(t, []int32{-2147483648, -1, 0, 2147483647},
			[]int32{got[0].ID, got[1].ID, got[2].ID, got[3].ID}, "%s", alg)
	}
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted(nil))
	assert.True(t, IsSorted([]record.Record{{ID: 3}}))
	assert.True(t, IsSorted([]record.Record{{ID: 1}, {ID: 1}, {ID: 2}}))
	assert.False(t, IsSorted([]record.Record{{ID: 2}, {ID: 1}}))
	assert.False(t, IsSorted([]record.Record{{ID: 1}, {ID: 2}, {ID: 5}, {ID: 4}, {ID: 6}}))
}

func TestIsSortedDoesNotMutate(t *testing.T) {
	in := []record.Record{{ID: 3, Name: "c"}, {ID: 1, Name: "a"}}
	before := clone(in)
	IsSorted(in)
	assert.Equal(t, before, in)
}
