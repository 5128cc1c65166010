package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// RunSummary is the serializable outcome of one algorithm on one dataset.
type RunSummary struct {
	Algorithm string    `json:"algorithm"`
	Dataset   string    `json:"dataset"`
	N         int       `json:"n"`
	TimesMS   []float64 `json:"times_ms"`
	MeanMS    float64   `json:"mean_ms"`
	StdDevMS  float64   `json:"stddev_ms"`
	Sorted    bool      `json:"sorted"`
}

// SessionSummary collects every run of one CLI invocation.
type SessionSummary struct {
	Version string       `json:"version"`
	RunID   string       `json:"run_id"`
	Runs    []RunSummary `json:"runs"`
}

// SaveSummary saves a session summary to a JSON file
func SaveSummary(filepath string, summary *SessionSummary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	return os.WriteFile(filepath, data, 0644)
}

// LoadSummary loads a session summary from a JSON file
func LoadSummary(filepath string) (*SessionSummary, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary file: %w", err)
	}
	var summary SessionSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}
	return &summary, nil
}
