package main

import (
	"github.com/spf13/cobra"

	"sortbench/bench"
	"sortbench/driver"
)

var pauseOnExit bool

func runInteractive(cmd *cobra.Command, args []string) error {
	sink, err := openResults()
	if err != nil {
		return err
	}
	defer sink.close()

	d := &driver.Driver{
		Catalog: cfg.Datasets,
		In:      cmd.InOrStdin(),
		Out:     cmd.OutOrStdout(),
		Options: measureOptions(sink),
		Styles:  bench.NewStyles(cfg.Color),
		Pause:   pauseOnExit,
		Logger:  logger,
	}
	res, err := d.Run()
	if err != nil {
		return err
	}
	return sink.summarize([]bench.TrialResult{res})
}
