package bench

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"sortbench/dataset"
	"sortbench/record"
	"sortbench/sorting"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sample() dataset.Dataset {
	return dataset.Dataset{
		{ID: 5, Name: "E"}, {ID: 3, Name: "C"}, {ID: 5, Name: "A"}, {ID: 1, Name: "B"},
	}
}

func TestRunSortsAndVerifies(t *testing.T) {
	for _, alg := range sorting.All() {
		data := sample()
		r, err := Run(alg, data, "sample")
		require.NoError(t, err)
		assert.Equal(t, alg, r.Algorithm)
		assert.Equal(t, "sample", r.Dataset)
		assert.Equal(t, 4, r.N)
		assert.True(t, r.Sorted)
		assert.GreaterOrEqual(t, r.Elapsed.Nanoseconds(), int64(0))
		require.Len(t, r.Head, 4)
		assert.Equal(t, int32(1), r.Head[0].ID)
		assert.True(t, sorting.IsSorted(data), "harness sorts the slice it is given")
	}
}

func TestRunHeadIsBounded(t *testing.T) {
	data, err := dataset.Generate(dataset.KindReversed, 25, 1)
	require.NoError(t, err)

	r, err := Run(sorting.Merge, data, "rev")
	require.NoError(t, err)
	require.Len(t, r.Head, DefaultHead)
	for i, rec := range r.Head {
		assert.Equal(t, int32(i+1), rec.ID)
	}

	r, err = Harness{Head: 3}.Run(sorting.Insertion, dataset.Dataset{{ID: 2}, {ID: 1}}, "tiny")
	require.NoError(t, err)
	assert.Len(t, r.Head, 2)

	r, err = Harness{Head: 0}.Run(sorting.Insertion, dataset.Dataset{{ID: 2}, {ID: 1}}, "tiny")
	require.NoError(t, err)
	assert.Empty(t, r.Head)
}

func TestRunHeadIsACopy(t *testing.T) {
	data := sample()
	r, err := Run(sorting.Bubble, data, "s")
	require.NoError(t, err)
	data[0] = record.Record{ID: 99, Name: "changed"}
	assert.Equal(t, int32(1), r.Head[0].ID)
}

func TestRunEmpty(t *testing.T) {
	r, err := Run(sorting.Selection, nil, "empty")
	require.NoError(t, err)
	assert.True(t, r.Sorted)
	assert.Equal(t, 0, r.N)
	assert.Empty(t, r.Head)
}

func TestRunUnknownAlgorithm(t *testing.T) {
	data := sample()
	_, err := Run(sorting.Algorithm(0), data, "s")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
	assert.Equal(t, sample(), data, "no sorter may run")
}

func TestRunTrialsLeavesPristineUntouched(t *testing.T) {
	pristine := sample()
	var reps []int
	res, err := RunTrials(sorting.Selection, pristine, "sample", TrialOptions{
		Warmup:     2,
		Iterations: 3,
		Head:       2,
		Observe: func(rep int, r Report) error {
			reps = append(reps, rep)
			assert.True(t, r.Sorted)
			return nil
		},
	})
	require.NoError(t, err)
	assert.Equal(t, sample(), pristine)
	assert.Equal(t, []int{0, 1, 2}, reps)
	assert.Len(t, res.Runs, 3)
	assert.True(t, res.AllSorted)
	assert.Equal(t, 4, res.N)
	assert.Len(t, res.Last.Head, 2)
	assert.LessOrEqual(t, res.Min, res.Mean)
	assert.LessOrEqual(t, res.Mean, res.Max)
	assert.GreaterOrEqual(t, res.StdDev.Nanoseconds(), int64(0))
}

func TestRunTrialsSingleIterationHasZeroStdDev(t *testing.T) {
	res, err := RunTrials(sorting.Merge, sample(), "s", TrialOptions{})
	require.NoError(t, err)
	require.Len(t, res.Runs, 1)
	assert.Zero(t, res.StdDev)
	assert.Equal(t, res.Runs[0], res.Min)
	assert.Equal(t, res.Runs[0], res.Max)
}

func TestRunTrialsAccountsEveryPhase(t *testing.T) {
	pristine, err := dataset.Generate(dataset.KindRandom, 5000, 11)
	require.NoError(t, err)

	var verify time.Duration
	res, err := RunTrials(sorting.Merge, pristine, "gen", TrialOptions{
		Warmup:     1,
		Iterations: 3,
		Observe: func(_ int, r Report) error {
			assert.Positive(t, r.VerifyTime)
			verify += r.VerifyTime
			return nil
		},
	})
	require.NoError(t, err)
	assert.Positive(t, res.CloneTime)
	assert.Equal(t, verify, res.VerifyTime)
	assert.Equal(t, res.Runs[0]+res.Runs[1]+res.Runs[2], res.SortTime())
	assert.GreaterOrEqual(t, res.SortTime(), res.Max)
}

func TestRunTrialsObserveError(t *testing.T) {
	boom := errors.New("boom")
	_, err := RunTrials(sorting.Merge, sample(), "s", TrialOptions{
		Iterations: 2,
		Observe:    func(int, Report) error { return boom },
	})
	assert.True(t, errors.Is(err, boom))

	_, err = RunTrials(sorting.Algorithm(7), sample(), "s", TrialOptions{})
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
}

func TestCompareUsesIdenticalInput(t *testing.T) {
	pristine, err := dataset.Generate(dataset.KindRandom, 200, 3)
	require.NoError(t, err)
	before := pristine.Clone()

	results, err := Compare(sorting.All(), pristine, "random200", TrialOptions{Iterations: 2, Head: DefaultHead})
	require.NoError(t, err)
	require.Len(t, results, 4)
	assert.Equal(t, before, pristine)

	for i, res := range results {
		assert.Equal(t, sorting.All()[i], res.Algorithm)
		assert.True(t, res.AllSorted)
		ids := make([]int32, len(res.Last.Head))
		for j, r := range res.Last.Head {
			ids[j] = r.ID
		}
		firstIDs := make([]int32, len(results[0].Last.Head))
		for j, r := range results[0].Last.Head {
			firstIDs[j] = r.ID
		}
		assert.Equal(t, firstIDs, ids)
	}

	s := results[2].Summary()
	assert.Equal(t, "merge", s.Algorithm)
	assert.Equal(t, 200, s.N)
	assert.Len(t, s.TimesMS, 2)
	assert.True(t, s.Sorted)
}

func TestWriteReport(t *testing.T) {
	r, err := Run(sorting.Merge, sample(), "data/sample.txt")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, r, NewStyles(false)))
	out := buf.String()
	assert.Contains(t, out, "Sorting data/sample.txt using Merge Sort...")
	assert.Contains(t, out, "Merge Sort completed in 0 ms.")
	assert.Contains(t, out, "Sorting verified: array is sorted correctly.")
	assert.Contains(t, out, "First 4 records after sorting:\n1 B\n3 C\n5 E\n5 A\n")
}

func TestWriteReportUnsorted(t *testing.T) {
	r := Report{Algorithm: sorting.Bubble, Dataset: "x", N: 2, Sorted: false,
		Head: []record.Record{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}}
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, r, NewStyles(false)))
	assert.Contains(t, buf.String(), "Sorting error: array is NOT sorted correctly.")
}

func TestWriteTrialTable(t *testing.T) {
	results, err := Compare([]sorting.Algorithm{sorting.Insertion, sorting.Bubble}, sample(), "sample", TrialOptions{Iterations: 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTrialTable(&buf, results, NewStyles(false)))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Mean ms")
	assert.True(t, strings.HasPrefix(lines[2], "Insertion Sort"))
	assert.True(t, strings.HasPrefix(lines[3], "Bubble Sort"))
	assert.Contains(t, lines[3], "| yes")
}
