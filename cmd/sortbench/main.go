// sortbench: time classic comparison sorts over record datasets.
//
// Usage:
//
//	sortbench                                   # interactive menu
//	sortbench run --algo merge --dataset data/random100.txt --trials 5
//	sortbench compare --dataset data/almostsorted.txt
//	sortbench gen --kind reversed --n 25000 --out data/totallyreversed.txt
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sortbench/utils"
)

var (
	// Global flags
	verbose    bool
	configPath string
	noColor    bool

	cfg    = utils.DefaultConfig()
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "Benchmark insertion, selection, merge and bubble sort over record datasets",
	Long: `sortbench loads a dataset of "<id> <name>" records, sorts a copy of it by id
with the chosen algorithm, reports the elapsed time in milliseconds, verifies
the result is ordered and prints the first records.

Run without arguments for the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := utils.NewLogger(verbose)
		if err != nil {
			return err
		}
		logger = l
		utils.Verbose = verbose

		loaded, err := utils.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		if noColor {
			cfg.Color = false
		}
		logger.Debug("config loaded", zap.String("path", configPath), zap.Int("datasets", len(cfg.Datasets)))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and phase timing")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "sortbench.yaml", "YAML config with the dataset catalog")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored report headings")
	rootCmd.Flags().BoolVar(&pauseOnExit, "pause", false, "Wait for Enter before exiting")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "Append per-run rows to this CSV file")

	addMeasureFlags(runCmd)
	runCmd.Flags().StringVarP(&runAlgo, "algo", "a", "", "Algorithm: 1-4 or insertion|selection|merge|bubble (required)")
	runCmd.Flags().StringVarP(&datasetArg, "dataset", "d", "", "Dataset path, catalog label or catalog number (required)")
	runCmd.MarkFlagRequired("algo")
	runCmd.MarkFlagRequired("dataset")

	addMeasureFlags(compareCmd)
	compareCmd.Flags().StringVarP(&datasetArg, "dataset", "d", "", "Dataset path, catalog label or catalog number (required)")
	compareCmd.Flags().StringVar(&compareAlgos, "algos", "", "Comma-separated algorithms (default: all)")
	compareCmd.MarkFlagRequired("dataset")

	genCmd.Flags().StringVar(&genKind, "kind", "random", "Dataset kind: random|reversed|almost-sorted|sorted")
	genCmd.Flags().IntVar(&genN, "n", 100, "Number of records")
	genCmd.Flags().Uint64Var(&genSeed, "seed", 42, "Random seed")
	genCmd.Flags().StringVarP(&genOut, "out", "o", "", "Output file (required)")
	genCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(catalogCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Debug("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func addMeasureFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&trials, "trials", 0, "Recorded runs per algorithm (default from config)")
	cmd.Flags().IntVar(&warmup, "warmup", -1, "Unrecorded warmup runs (default from config)")
	cmd.Flags().IntVar(&head, "head", -1, "Leading records to print (default from config)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Append per-run rows to this CSV file")
	cmd.Flags().StringVar(&jsonPath, "json", "", "Write a JSON summary to this file")
}

// fail wraps an error with a user-facing prefix.
func fail(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
