package bench

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"sortbench/dataset"
	"sortbench/sorting"
	"sortbench/utils"
)

// TrialOptions controls repeated measurement.
type TrialOptions struct {
	// Warmup runs are sorted but not recorded.
	Warmup int
	// Iterations is the number of recorded runs; values below 1 mean 1.
	Iterations int
	// Head bounds the records kept in each Report.
	Head int
	// Observe, if set, is called after every recorded run.
	Observe func(rep int, r Report) error
}

// TrialResult aggregates the recorded runs of one algorithm.
type TrialResult struct {
	Algorithm sorting.Algorithm
	Dataset   string
	N         int
	Runs      []time.Duration
	Mean      time.Duration
	StdDev    time.Duration
	Min       time.Duration
	Max       time.Duration
	AllSorted bool
	// CloneTime and VerifyTime sum the copy and sortedness check of every
	// recorded run. Warmup runs are not counted.
	CloneTime  time.Duration
	VerifyTime time.Duration
	// Last is the report of the final recorded run.
	Last Report
}

// SortTime is the summed sort time of all recorded runs.
func (r TrialResult) SortTime() time.Duration {
	var total time.Duration
	for _, d := range r.Runs {
		total += d
	}
	return total
}

// RunTrials sorts a fresh clone of pristine for every warmup and recorded
// run. pristine itself is never handed to a sorter.
func RunTrials(alg sorting.Algorithm, pristine dataset.Dataset, label string, opts TrialOptions) (TrialResult, error) {
	if !alg.Valid() {
		return TrialResult{}, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	iters := max(opts.Iterations, 1)
	h := Harness{Head: opts.Head}

	for i := 0; i < opts.Warmup; i++ {
		alg.Sorter()(pristine.Clone())
	}

	res := TrialResult{
		Algorithm: alg,
		Dataset:   label,
		N:         len(pristine),
		Runs:      make([]time.Duration, 0, iters),
		AllSorted: true,
	}
	for rep := 0; rep < iters; rep++ {
		var work dataset.Dataset
		res.CloneTime += utils.Time(func() { work = pristine.Clone() })
		r, err := h.Run(alg, work, label)
		if err != nil {
			return TrialResult{}, err
		}
		res.Runs = append(res.Runs, r.Elapsed)
		res.VerifyTime += r.VerifyTime
		res.AllSorted = res.AllSorted && r.Sorted
		res.Last = r
		if opts.Observe != nil {
			if err := opts.Observe(rep, r); err != nil {
				return TrialResult{}, fmt.Errorf("observe run %d: %w", rep, err)
			}
		}
	}
	summarize(&res)
	return res, nil
}

func summarize(res *TrialResult) {
	ms := make([]float64, len(res.Runs))
	res.Min, res.Max = res.Runs[0], res.Runs[0]
	for i, d := range res.Runs {
		ms[i] = utils.DurationMS(d)
		res.Min = min(res.Min, d)
		res.Max = max(res.Max, d)
	}
	mean, std := stat.MeanStdDev(ms, nil)
	if len(ms) < 2 || math.IsNaN(std) {
		std = 0
	}
	res.Mean = fromMS(mean)
	res.StdDev = fromMS(std)
}

func fromMS(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// Compare runs every algorithm against its own clones of the same pristine
// dataset, in the order given.
func Compare(algs []sorting.Algorithm, pristine dataset.Dataset, label string, opts TrialOptions) ([]TrialResult, error) {
	out := make([]TrialResult, 0, len(algs))
	for _, alg := range algs {
		res, err := RunTrials(alg, pristine, label, opts)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, nil
}

// Summary converts a trial result into its serializable form.
func (r TrialResult) Summary() utils.RunSummary {
	times := make([]float64, len(r.Runs))
	for i, d := range r.Runs {
		times[i] = utils.DurationMS(d)
	}
	return utils.RunSummary{
		Algorithm: r.Algorithm.Name(),
		Dataset:   r.Dataset,
		N:         r.N,
		TimesMS:   times,
		MeanMS:    utils.DurationMS(r.Mean),
		StdDevMS:  utils.DurationMS(r.StdDev),
		Sorted:    r.AllSorted,
	}
}
