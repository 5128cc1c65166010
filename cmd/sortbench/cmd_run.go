package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortbench/bench"
	"sortbench/dataset"
	"sortbench/driver"
	"sortbench/sorting"
	"sortbench/utils"
)

var (
	runAlgo      string
	datasetArg   string
	compareAlgos string
	trials       int
	warmup       = -1
	head         = -1
	csvPath      string
	jsonPath     string
)

// runCmd benchmarks one algorithm on one dataset
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Sort one dataset with one algorithm and report",
	Example: `  sortbench run --algo merge --dataset data/random100.txt
  sortbench run -a 1 -d 5 --trials 10 --warmup 2 --csv results/raw.csv`,
	RunE: runBenchmark,
}

// compareCmd benchmarks several algorithms against the same pristine dataset
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Sort copies of one dataset with several algorithms and tabulate",
	RunE:  runCompare,
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	alg, err := sorting.ParseAlgorithm(runAlgo)
	if err != nil {
		return err
	}
	entry := resolveDataset(datasetArg)
	ds, err := loadDataset(entry)
	if err != nil {
		return err
	}

	sink, err := openResults()
	if err != nil {
		return err
	}
	defer sink.close()

	res, err := bench.RunTrials(alg, ds, entry.Label, measureOptions(sink))
	if err != nil {
		return err
	}
	styles := bench.NewStyles(cfg.Color)
	out := cmd.OutOrStdout()
	if err := bench.WriteReport(out, res.Last, styles); err != nil {
		return err
	}
	if len(res.Runs) > 1 {
		fmt.Fprintln(out)
		if err := bench.WriteTrialTable(out, []bench.TrialResult{res}, styles); err != nil {
			return err
		}
	}
	logger.Info("benchmark complete",
		zap.String("algorithm", alg.Name()),
		zap.String("dataset", entry.Label),
		zap.Int("records", res.N),
		zap.Duration("mean", res.Mean),
		zap.Bool("sorted", res.AllSorted))
	return sink.summarize([]bench.TrialResult{res})
}

func runCompare(cmd *cobra.Command, args []string) error {
	algs := sorting.All()
	if list := utils.ParseList(compareAlgos); len(list) > 0 {
		algs = nil
		for _, s := range list {
			a, err := sorting.ParseAlgorithm(s)
			if err != nil {
				return err
			}
			algs = append(algs, a)
		}
	}
	entry := resolveDataset(datasetArg)
	ds, err := loadDataset(entry)
	if err != nil {
		return err
	}

	sink, err := openResults()
	if err != nil {
		return err
	}
	defer sink.close()

	results, err := bench.Compare(algs, ds, entry.Label, measureOptions(sink))
	if err != nil {
		return err
	}
	if err := bench.WriteTrialTable(cmd.OutOrStdout(), results, bench.NewStyles(cfg.Color)); err != nil {
		return err
	}
	for _, r := range results {
		logger.Debug("algorithm measured", zap.String("algorithm", r.Algorithm.Name()), zap.Duration("mean", r.Mean))
	}
	return sink.summarize(results)
}

// resolveDataset accepts a catalog number, a catalog label, or a plain path.
func resolveDataset(arg string) utils.DatasetEntry {
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(cfg.Datasets) {
		return cfg.Datasets[n-1]
	}
	for _, e := range cfg.Datasets {
		if e.Label == arg || e.Path == arg {
			return e
		}
	}
	return utils.DatasetEntry{Label: arg, Path: arg}
}

func loadDataset(entry utils.DatasetEntry) (dataset.Dataset, error) {
	var ds dataset.Dataset
	var err error
	took := utils.Time(func() { ds, err = dataset.Load(entry.Path) })
	if err != nil {
		return nil, err
	}
	if len(ds) == 0 {
		return nil, fmt.Errorf("%w in %s", driver.ErrEmptyDataset, entry.Path)
	}
	logger.Debug("dataset loaded", zap.String("path", entry.Path), zap.Int("records", len(ds)), zap.Duration("took", took))
	return ds, nil
}

// measureOptions merges command flags over the config defaults.
func measureOptions(sink *resultSink) bench.TrialOptions {
	opts := bench.TrialOptions{
		Iterations: cfg.Trials,
		Warmup:     cfg.Warmup,
		Head:       cfg.Head,
		Observe:    sink.observe,
	}
	if trials > 0 {
		opts.Iterations = trials
	}
	if warmup >= 0 {
		opts.Warmup = warmup
	}
	if head >= 0 {
		opts.Head = head
	}
	return opts
}

// resultSink fans recorded runs out to the optional CSV and JSON outputs.
type resultSink struct {
	csv  *bench.CSVWriter
	json string
}

func openResults() (*resultSink, error) {
	s := &resultSink{json: jsonPath}
	path := csvPath
	if path == "" {
		path = cfg.ResultsCSV
	}
	if path != "" {
		w, err := bench.OpenCSV(path)
		if err != nil {
			return nil, err
		}
		s.csv = w
		logger.Debug("recording runs", zap.String("csv", path), zap.String("run_id", w.RunID()))
	}
	return s, nil
}

func (s *resultSink) observe(rep int, r bench.Report) error {
	if s.csv == nil {
		return nil
	}
	return s.csv.Write(rep, r)
}

func (s *resultSink) summarize(results []bench.TrialResult) error {
	if s.json == "" {
		return nil
	}
	runID := uuid.NewString()
	if s.csv != nil {
		runID = s.csv.RunID()
	}
	summary := &utils.SessionSummary{Version: "1", RunID: runID}
	for _, r := range results {
		summary.Runs = append(summary.Runs, r.Summary())
	}
	if err := utils.SaveSummary(s.json, summary); err != nil {
		return fail("writing summary", err)
	}
	return nil
}

func (s *resultSink) close() {
	if s.csv == nil {
		return
	}
	if err := s.csv.Close(); err != nil {
		logger.Warn("closing results CSV", zap.Error(err))
	}
}
