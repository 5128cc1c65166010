package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether timing statistics are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where timing statistics are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// TimingStats holds the wall-clock time of each phase of a benchmark run.
type TimingStats struct {
	TotalTime  time.Duration
	LoadTime   time.Duration
	CloneTime  time.Duration
	SortTime   time.Duration
	VerifyTime time.Duration
	ReportTime time.Duration
}

// Time runs f and returns how long it took, using the monotonic clock.
func Time(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// PrintTimingStats prints the per-phase breakdown.
// Respects the Verbose flag - does nothing if Verbose is false.
func PrintTimingStats(stats *TimingStats) {
	if !Verbose {
		return
	}
	total := stats.TotalTime
	if total <= 0 {
		total = stats.LoadTime + stats.CloneTime + stats.SortTime + stats.VerifyTime + stats.ReportTime
	}
	fmt.Fprintln(Output, "\n=== TIMING STATISTICS ===")
	fmt.Fprintf(Output, "Total time: %v\n", total)
	fmt.Fprintln(Output, "\nBreakdown by phase:")
	fmt.Fprintf(Output, "  Data loading: %v (%.1f%%)\n", stats.LoadTime, percent(stats.LoadTime, total))
	fmt.Fprintf(Output, "  Copy: %v (%.1f%%)\n", stats.CloneTime, percent(stats.CloneTime, total))
	fmt.Fprintf(Output, "  Sort: %v (%.1f%%)\n", stats.SortTime, percent(stats.SortTime, total))
	fmt.Fprintf(Output, "  Verify: %v (%.1f%%)\n", stats.VerifyTime, percent(stats.VerifyTime, total))
	fmt.Fprintf(Output, "  Report: %v (%.1f%%)\n", stats.ReportTime, percent(stats.ReportTime, total))
}

func percent(part, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// DurationMS converts any time.Duration to milli-seconds as float64
func DurationMS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000_000.0
}
