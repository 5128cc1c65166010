// Package driver runs the interactive benchmark menu: pick an algorithm,
// pick a dataset from the configured catalog, then sort and report.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"sortbench/bench"
	"sortbench/dataset"
	"sortbench/sorting"
	"sortbench/utils"
)

var (
	ErrInvalidSelection = errors.New("invalid selection")
	ErrEmptyDataset     = errors.New("no records found")
)

// Driver wires the menu to the loader and the benchmark harness.
type Driver struct {
	Catalog []utils.DatasetEntry
	In      io.Reader
	Out     io.Writer
	Options bench.TrialOptions
	Styles  bench.Styles
	// Pause waits for Enter before returning, as a console window would need.
	Pause bool
	// Load reads a dataset; nil means dataset.Load.
	Load   func(path string) (dataset.Dataset, error)
	Logger *zap.Logger

	in *bufio.Reader
}

// Run executes one menu round. Selection and load errors are returned
// before any sorter runs.
func (d *Driver) Run() (bench.TrialResult, error) {
	d.in = bufio.NewReader(d.In)
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	load := d.Load
	if load == nil {
		load = dataset.Load
	}

	alg, err := d.chooseAlgorithm()
	if err != nil {
		return bench.TrialResult{}, err
	}
	entry, err := d.chooseDataset()
	if err != nil {
		return bench.TrialResult{}, err
	}

	start := time.Now()
	stats := &utils.TimingStats{}
	var ds dataset.Dataset
	stats.LoadTime = utils.Time(func() { ds, err = load(entry.Path) })
	if err != nil {
		return bench.TrialResult{}, err
	}
	if len(ds) == 0 {
		return bench.TrialResult{}, fmt.Errorf("%w in %s", ErrEmptyDataset, entry.Path)
	}
	log.Debug("dataset loaded", zap.String("path", entry.Path), zap.Int("records", len(ds)), zap.Duration("took", stats.LoadTime))
	fmt.Fprintf(d.Out, "File %s has %d records.\n", entry.Label, len(ds))

	res, err := bench.RunTrials(alg, ds, entry.Label, d.Options)
	if err != nil {
		return bench.TrialResult{}, err
	}
	stats.CloneTime = res.CloneTime
	stats.SortTime = res.SortTime()
	stats.VerifyTime = res.VerifyTime

	stats.ReportTime = utils.Time(func() {
		err = bench.WriteReport(d.Out, res.Last, d.Styles)
		if err == nil && len(res.Runs) > 1 {
			fmt.Fprintln(d.Out)
			err = bench.WriteTrialTable(d.Out, []bench.TrialResult{res}, d.Styles)
		}
	})
	if err != nil {
		return bench.TrialResult{}, err
	}
	log.Info("benchmark complete",
		zap.String("algorithm", alg.Name()),
		zap.String("dataset", entry.Label),
		zap.Int("records", res.N),
		zap.Duration("mean", res.Mean),
		zap.Bool("sorted", res.AllSorted))
	stats.TotalTime = time.Since(start)
	utils.PrintTimingStats(stats)

	if d.Pause {
		fmt.Fprint(d.Out, "\nPress Enter to exit...")
		_, _ = d.in.ReadString('\n')
	}
	return res, nil
}

func (d *Driver) chooseAlgorithm() (sorting.Algorithm, error) {
	fmt.Fprintln(d.Out, "Choose a sorting algorithm:")
	for _, a := range sorting.All() {
		fmt.Fprintf(d.Out, " %d) %s\n", int(a), a)
	}
	fmt.Fprintf(d.Out, "Enter choice (1-%d): ", len(sorting.All()))

	n, err := d.readChoice()
	if err != nil {
		return 0, fmt.Errorf("%w: error reading algorithm choice: %v", ErrInvalidSelection, err)
	}
	alg := sorting.Algorithm(n)
	if !alg.Valid() {
		return 0, fmt.Errorf("%w: algorithm choice %d", ErrInvalidSelection, n)
	}
	return alg, nil
}

func (d *Driver) chooseDataset() (utils.DatasetEntry, error) {
	if len(d.Catalog) == 0 {
		return utils.DatasetEntry{}, fmt.Errorf("%w: dataset catalog is empty", ErrInvalidSelection)
	}
	fmt.Fprintln(d.Out, "\nChoose a data file:")
	for i, e := range d.Catalog {
		fmt.Fprintf(d.Out, " %d) %s\n", i+1, e.Label)
	}
	fmt.Fprintf(d.Out, "Enter choice (1-%d): ", len(d.Catalog))

	n, err := d.readChoice()
	if err != nil {
		return utils.DatasetEntry{}, fmt.Errorf("%w: error reading file choice: %v", ErrInvalidSelection, err)
	}
	if n < 1 || n > len(d.Catalog) {
		return utils.DatasetEntry{}, fmt.Errorf("%w: file choice %d", ErrInvalidSelection, n)
	}
	return d.Catalog[n-1], nil
}

// readChoice reads one line and parses it as an integer.
func (d *Driver) readChoice() (int, error) {
	line, err := d.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(line))
}
