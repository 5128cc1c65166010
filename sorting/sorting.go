// Package sorting implements the benchmarked comparison sorts over records.
// Every sorter orders a slice in place by ascending ID.
package sorting

import "sortbench/record"

// InsertionSort shifts each record left past larger predecessors. Stable.
func InsertionSort(a []record.Record) {
	for i := 1; i < len(a); i++ {
		key := a[i]
		j := i - 1
		for j >= 0 && key.Less(a[j]) {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = key
	}
}

// SelectionSort swaps the minimum of the unsorted suffix into place.
// Not stable.
func SelectionSort(a []record.Record) {
	for i := 0; i < len(a)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(a); j++ {
			if a[j].Less(a[minIdx]) {
				minIdx = j
			}
		}
		a[i], a[minIdx] = a[minIdx], a[i]
	}
}

// MergeSort is a top-down recursive merge sort. Stable.
func MergeSort(a []record.Record) {
	if len(a) <= 1 {
		return
	}
	mergeSort(a, 0, len(a)-1)
}

// mergeSort sorts a[left..right] inclusive.
func mergeSort(a []record.Record, left, right int) {
	if left >= right {
		return
	}
	mid := left + (right-left)/2
	mergeSort(a, left, mid)
	mergeSort(a, mid+1, right)
	merge(a, left, mid, right)
}

// merge combines the sorted runs a[left..mid] and a[mid+1..right].
// Ties go to the left run.
func merge(a []record.Record, left, mid, right int) {
	l := make([]record.Record, mid-left+1)
	r := make([]record.Record, right-mid)
	copy(l, a[left:mid+1])
	copy(r, a[mid+1:right+1])

	i, j, k := 0, 0, left
	for i < len(l) && j < len(r) {
		if !r[j].Less(l[i]) {
			a[k] = l[i]
			i++
		} else {
			a[k] = r[j]
			j++
		}
		k++
	}
	k += copy(a[k:], l[i:])
	copy(a[k:], r[j:])
}

// BubbleSort repeatedly swaps adjacent inversions, stopping after the
// first pass that swaps nothing. Stable.
func BubbleSort(a []record.Record) {
	BubblePasses(a)
}

// BubblePasses bubble-sorts a and returns the number of passes made.
// Already-sorted input of two or more records takes exactly one pass.
func BubblePasses(a []record.Record) int {
	passes := 0
	for i := 0; i < len(a)-1; i++ {
		passes++
		swapped := false
		for j := 0; j < len(a)-i-1; j++ {
			if a[j+1].Less(a[j]) {
				a[j], a[j+1] = a[j+1], a[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return passes
}

// IsSorted reports whether a is in non-decreasing ID order.
func IsSorted(a []record.Record) bool {
	for i := 0; i+1 < len(a); i++ {
		if a[i+1].Less(a[i]) {
			return false
		}
	}
	return true
}
