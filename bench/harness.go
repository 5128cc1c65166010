// Package bench times sorters over record datasets and reports the results.
package bench

import (
	"errors"
	"fmt"
	"time"

	"sortbench/record"
	"sortbench/sorting"
	"sortbench/utils"
)

// DefaultHead is how many leading records a report captures by default.
const DefaultHead = 10

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Report is the outcome of one timed sort.
type Report struct {
	Algorithm sorting.Algorithm
	Dataset   string
	N         int
	Elapsed   time.Duration
	Sorted    bool
	Head      []record.Record
	// VerifyTime is how long the sortedness check took. It is not part of Elapsed.
	VerifyTime time.Duration
}

// Millis is the elapsed time truncated to whole milliseconds.
func (r Report) Millis() int64 {
	return r.Elapsed.Milliseconds()
}

// Harness runs a single sort and verifies it.
type Harness struct {
	// Head bounds the leading records copied into each Report.
	Head int
}

// Run sorts data in place with alg. Only the sorter call is timed;
// verification and the head copy happen after the clock stops.
func (h Harness) Run(alg sorting.Algorithm, data []record.Record, dataset string) (Report, error) {
	sorter := alg.Sorter()
	if sorter == nil {
		return Report{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}

	elapsed := utils.Time(func() { sorter(data) })
	var sorted bool
	verify := utils.Time(func() { sorted = sorting.IsSorted(data) })

	head := make([]record.Record, min(max(h.Head, 0), len(data)))
	copy(head, data)
	return Report{
		Algorithm: alg,
		Dataset:   dataset,
		N:         len(data),
		Elapsed:   elapsed,
		Sorted:    sorted,
		Head:      head,

		VerifyTime: verify,
	}, nil
}

// Run is Harness.Run with the default head size.
func Run(alg sorting.Algorithm, data []record.Record, dataset string) (Report, error) {
	return Harness{Head: DefaultHead}.Run(alg, data, dataset)
}
