package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// catalogCmd lists the configured datasets
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the datasets offered by the interactive menu",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for i, e := range cfg.Datasets {
			if e.Label == e.Path {
				fmt.Fprintf(out, " %d) %s\n", i+1, e.Path)
				continue
			}
			fmt.Fprintf(out, " %d) %s (%s)\n", i+1, e.Label, e.Path)
		}
		return nil
	},
}
