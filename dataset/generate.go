package dataset

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"sortbench/record"
)

// Kind selects the ordering of a generated dataset.
type Kind string

const (
	KindRandom       Kind = "random"
	KindReversed     Kind = "reversed"
	KindAlmostSorted Kind = "almost-sorted"
	KindSorted       Kind = "sorted"
)

// Kinds lists every generator kind.
func Kinds() []Kind {
	return []Kind{KindRandom, KindReversed, KindAlmostSorted, KindSorted}
}

// ParseKind accepts a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown dataset kind %q", s)
}

// almostSortedSwapRatio is the fraction of positions disturbed in an
// almost-sorted dataset.
const almostSortedSwapRatio = 0.05

// Generate builds a synthetic dataset of n records. The same seed always
// yields the same dataset.
func Generate(kind Kind, n int, seed uint64) (Dataset, error) {
	if n < 0 {
		return nil, fmt.Errorf("record count must be non-negative, got %d", n)
	}
	src := rand.NewSource(seed)
	ds := make(Dataset, n)

	switch kind {
	case KindSorted:
		for i := range ds {
			ds[i] = record.New(int32(i+1), nameFor(i))
		}
	case KindReversed:
		for i := range ds {
			ds[i] = record.New(int32(n-i), nameFor(i))
		}
	case KindRandom:
		ids := distuv.Uniform{Min: 1, Max: float64(n)*10 + 1, Src: src}
		for i := range ds {
			ds[i] = record.New(int32(ids.Rand()), nameFor(i))
		}
	case KindAlmostSorted:
		for i := range ds {
			ds[i] = record.New(int32(i+1), nameFor(i))
		}
		if n < 2 {
			break
		}
		swaps := max(1, int(float64(n)*almostSortedSwapRatio))
		pos := distuv.Uniform{Min: 0, Max: float64(n), Src: src}
		for s := 0; s < swaps; s++ {
			i, j := clampIndex(pos.Rand(), n), clampIndex(pos.Rand(), n)
			ds[i], ds[j] = ds[j], ds[i]
		}
	default:
		return nil, fmt.Errorf("unknown dataset kind %q", kind)
	}
	return ds, nil
}

func clampIndex(x float64, n int) int {
	i := int(x)
	if i >= n {
		return n - 1
	}
	return i
}

func nameFor(i int) string {
	return fmt.Sprintf("rec%07d", i)
}
