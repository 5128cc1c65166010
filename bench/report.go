package bench

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sortbench/utils"
)

// Styles decorates report headings.
type Styles struct {
	Title lipgloss.Style
	Pass  lipgloss.Style
	Fail  lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when color is false.
func NewStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{Title: plain, Pass: plain, Fail: plain, Muted: plain}
	}
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")),
		Pass:  lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		Fail:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e53935")),
		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
	}
}

// WriteReport prints the elapsed time, the verification outcome and the
// leading records of a run.
func WriteReport(w io.Writer, r Report, s Styles) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", s.Title.Render(fmt.Sprintf("Sorting %s using %s...", r.Dataset, r.Algorithm)))
	fmt.Fprintf(&b, "%s completed in %d ms.\n", r.Algorithm, r.Millis())
	if r.Sorted {
		fmt.Fprintln(&b, s.Pass.Render("Sorting verified: array is sorted correctly."))
	} else {
		fmt.Fprintln(&b, s.Fail.Render("Sorting error: array is NOT sorted correctly."))
	}
	fmt.Fprintf(&b, "First %d records after sorting:\n", len(r.Head))
	for _, rec := range r.Head {
		fmt.Fprintln(&b, rec)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTrialTable prints one row per algorithm with its timing statistics.
func WriteTrialTable(w io.Writer, results []TrialResult, s Styles) error {
	var b strings.Builder
	header := fmt.Sprintf("%-16s | %-28s | %8s | %6s | %10s | %10s | %10s | %10s | %-6s",
		"Algorithm", "Dataset", "N", "Runs", "Mean ms", "StdDev ms", "Min ms", "Max ms", "Sorted")
	fmt.Fprintln(&b, s.Title.Render(header))
	fmt.Fprintln(&b, s.Muted.Render(strings.Repeat("-", len(header))))
	for _, r := range results {
		sorted := s.Pass.Render("yes")
		if !r.AllSorted {
			sorted = s.Fail.Render("NO")
		}
		fmt.Fprintf(&b, "%-16s | %-28s | %8d | %6d | %10.3f | %10.3f | %10.3f | %10.3f | %s\n",
			r.Algorithm, r.Dataset, r.N, len(r.Runs),
			utils.DurationMS(r.Mean), utils.DurationMS(r.StdDev),
			utils.DurationMS(r.Min), utils.DurationMS(r.Max), sorted)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
