package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jonboulle/clockwork"
	"gopkg.in/yaml.v3"
)

// SWPC X-ray event lists begin in 1996; earlier target years are typos.
const minYear = 1996

// Config holds all tool settings, populated from an optional YAML file
// with environment variable overrides.
type Config struct {
	// Input is the path of the edited-events JSON feed.
	Input string `yaml:"input"`

	// Year and Month select the reporting period. Zero means the current
	// UTC year/month at load time.
	Year  int `yaml:"year"`
	Month int `yaml:"month"`

	// TopRegions caps the most-active-regions list.
	TopRegions int `yaml:"top_regions"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// MetricsFile, when set, receives the run's metrics in Prometheus
	// text exposition format (node_exporter textfile collector layout).
	MetricsFile string `yaml:"metrics_file"`
}

// Load builds a Config from the YAML file at path (skipped when path is
// empty), then applies environment overrides, defaults, and validation.
// The clock supplies the default reporting period.
func Load(path string, clock clockwork.Clock) (*Config, error) {
	cfg := &Config{
		TopRegions: 3,
		LogLevel:   "info",
		LogFormat:  "json",
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	now := clock.Now().UTC()
	if cfg.Year == 0 {
		cfg.Year = now.Year()
	}
	if cfg.Month == 0 {
		cfg.Month = int(now.Month())
	}

	if cfg.Input == "" {
		return nil, errors.New("input feed path is required (input key or FLARE_INPUT)")
	}
	if cfg.Month < 1 || cfg.Month > 12 {
		return nil, fmt.Errorf("month must be 1-12, got %d", cfg.Month)
	}
	if cfg.Year < minYear {
		return nil, fmt.Errorf("year must be %d or later, got %d", minYear, cfg.Year)
	}
	if cfg.TopRegions < 1 {
		return nil, fmt.Errorf("top_regions must be positive, got %d", cfg.TopRegions)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("FLARE_INPUT"); v != "" {
		cfg.Input = v
	}
	if err := envInt("FLARE_YEAR", &cfg.Year); err != nil {
		return err
	}
	if err := envInt("FLARE_MONTH", &cfg.Month); err != nil {
		return err
	}
	if err := envInt("FLARE_TOP_REGIONS", &cfg.TopRegions); err != nil {
		return err
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("METRICS_FILE"); v != "" {
		cfg.MetricsFile = v
	}
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %q", key, v)
	}
	*dst = n
	return nil
}
