package sorting

import (
	"fmt"
	"strconv"
	"strings"

	"sortbench/record"
)

// Sorter sorts a slice of records in place.
type Sorter func([]record.Record)

// Algorithm is a closed set of sorter variants. The numeric values are the
// menu choices.
type Algorithm int

const (
	Insertion Algorithm = iota + 1
	Selection
	Merge
	Bubble
)

type variant struct {
	name   string
	title  string
	sorter Sorter
	stable bool
}

var registry = map[Algorithm]variant{
	Insertion: {name: "insertion", title: "Insertion Sort", sorter: InsertionSort, stable: true},
	Selection: {name: "selection", title: "Selection Sort", sorter: SelectionSort, stable: false},
	Merge:     {name: "merge", title: "Merge Sort", sorter: MergeSort, stable: true},
	Bubble:    {name: "bubble", title: "Bubble Sort", sorter: BubbleSort, stable: true},
}

// All returns every algorithm in menu order.
func All() []Algorithm {
	return []Algorithm{Insertion, Selection, Merge, Bubble}
}

// Valid reports whether a names a known algorithm.
func (a Algorithm) Valid() bool {
	_, ok := registry[a]
	return ok
}

// Name is the short lowercase name, e.g. "merge".
func (a Algorithm) Name() string {
	if v, ok := registry[a]; ok {
		return v.name
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// String returns the display title, e.g. "Merge Sort".
func (a Algorithm) String() string {
	if v, ok := registry[a]; ok {
		return v.title
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Sorter returns the implementation, or nil for an unknown algorithm.
func (a Algorithm) Sorter() Sorter {
	return registry[a].sorter
}

// Stable reports whether the algorithm preserves the input order of equal IDs.
func (a Algorithm) Stable() bool {
	return registry[a].stable
}

// ParseAlgorithm accepts a menu number ("3") or a name ("merge", "Merge Sort").
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		a := Algorithm(n)
		if !a.Valid() {
			return 0, fmt.Errorf("algorithm choice %d out of range 1-%d", n, len(registry))
		}
		return a, nil
	}
	key := strings.TrimSuffix(strings.ToLower(s), " sort")
	for _, a := range All() {
		if registry[a].name == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown algorithm %q", s)
}
