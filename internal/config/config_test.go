package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.November, 3, 9, 0, 0, 0, time.UTC)

func testClock(t *testing.T) clockwork.Clock {
	t.Helper()
	return clockwork.NewFakeClockAt(testNow)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FLARE_INPUT", "/data/edited_events.json")

	cfg, err := Load("", testClock(t))
	require.NoError(t, err)

	assert.Equal(t, "/data/edited_events.json", cfg.Input)
	assert.Equal(t, 2025, cfg.Year)
	assert.Equal(t, 11, cfg.Month)
	assert.Equal(t, 3, cfg.TopRegions)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, `
input: /data/edited_events.json
year: 2025
month: 10
top_regions: 5
log_level: debug
log_format: text
metrics_file: /var/lib/node_exporter/flare_summary.prom
`)

	cfg, err := Load(path, testClock(t))
	require.NoError(t, err)

	assert.Equal(t, "/data/edited_events.json", cfg.Input)
	assert.Equal(t, 2025, cfg.Year)
	assert.Equal(t, 10, cfg.Month)
	assert.Equal(t, 5, cfg.TopRegions)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "/var/lib/node_exporter/flare_summary.prom", cfg.MetricsFile)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "input: /data/from_file.json\nmonth: 9\n")
	t.Setenv("FLARE_INPUT", "/data/from_env.json")
	t.Setenv("FLARE_MONTH", "10")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path, testClock(t))
	require.NoError(t, err)

	assert.Equal(t, "/data/from_env.json", cfg.Input)
	assert.Equal(t, 10, cfg.Month)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingInput(t *testing.T) {
	_, err := Load("", testClock(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FLARE_INPUT")
}

func TestLoad_InvalidMonth(t *testing.T) {
	t.Setenv("FLARE_INPUT", "/data/edited_events.json")
	t.Setenv("FLARE_MONTH", "13")

	_, err := Load("", testClock(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "month")
}

func TestLoad_InvalidYear(t *testing.T) {
	t.Setenv("FLARE_INPUT", "/data/edited_events.json")
	t.Setenv("FLARE_YEAR", "1995")

	_, err := Load("", testClock(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "year")
}

func TestLoad_NonNumericEnv(t *testing.T) {
	t.Setenv("FLARE_INPUT", "/data/edited_events.json")
	t.Setenv("FLARE_YEAR", "twenty-five")

	_, err := Load("", testClock(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FLARE_YEAR")
}

func TestLoad_InvalidTopRegions(t *testing.T) {
	t.Setenv("FLARE_INPUT", "/data/edited_events.json")
	t.Setenv("FLARE_TOP_REGIONS", "0")

	_, err := Load("", testClock(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top_regions")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), testClock(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "input: [oops\n")
	_, err := Load(path, testClock(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}
