package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DatasetEntry maps a display label to a dataset source path.
type DatasetEntry struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// Config holds benchmark configuration
type Config struct {
	// Datasets is the catalog offered by the interactive menu.
	Datasets []DatasetEntry `yaml:"datasets"`

	// Trials and Warmup control repeated measurement; one trial with no
	// warmup reproduces a single timed run.
	Trials int `yaml:"trials"`
	Warmup int `yaml:"warmup"`

	// Head is how many leading records a report shows.
	Head int `yaml:"head"`

	// ResultsCSV, when set, receives one row per measured run.
	ResultsCSV string `yaml:"results_csv"`

	Color bool `yaml:"color"`
}

// DefaultConfig returns the stock catalog under data/.
func DefaultConfig() *Config {
	paths := []string{
		"data/totallyreversed.txt",
		"data/almostsorted.txt",
		"data/random75000.txt",
		"data/random100000.txt",
		"data/random100.txt",
		"data/random25000.txt",
		"data/random50000.txt",
	}
	entries := make([]DatasetEntry, len(paths))
	for i, p := range paths {
		entries[i] = DatasetEntry{Label: p, Path: p}
	}
	return &Config{
		Datasets: entries,
		Trials:   1,
		Warmup:   0,
		Head:     10,
		Color:    true,
	}
}

// LoadConfig reads a YAML config file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// ParseList splits a comma or whitespace separated list, dropping empties.
func ParseList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

// ValidateConfig validates benchmark configuration
func ValidateConfig(config *Config) error {
	if len(config.Datasets) == 0 {
		return fmt.Errorf("at least one dataset must be configured")
	}
	for i, d := range config.Datasets {
		if strings.TrimSpace(d.Path) == "" {
			return fmt.Errorf("dataset %d has no path", i+1)
		}
	}

	if config.Trials <= 0 {
		return fmt.Errorf("trials must be positive")
	}

	if config.Warmup < 0 {
		return fmt.Errorf("warmup must not be negative")
	}

	if config.Head < 0 {
		return fmt.Errorf("head must not be negative")
	}

	return nil
}
