package feed

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/flare-summary/internal/observability"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edited_events.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid array", func(t *testing.T) {
		path := writeFeed(t, `[{"type":"XRA","begin_datetime":"2025-10-05T01:00:00Z"},{"type":"FLA"}]`)
		events, err := Load(path)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, "XRA", string(events[0].Kind))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read events feed")
	})

	t.Run("malformed top-level structure", func(t *testing.T) {
		path := writeFeed(t, `{"not":"an array"}`)
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode events feed")
	})
}

func loadAndSelect(t *testing.T, feedJSON string, year int, month time.Month) ([]string, *observability.Metrics) {
	t.Helper()
	raw, err := Load(writeFeed(t, feedJSON))
	require.NoError(t, err)

	metrics := observability.NewMetrics()
	events := SelectMonth(raw, year, month, metrics, discardLogger())

	classes := make([]string, len(events))
	for i, ev := range events {
		classes[i] = ev.Class
	}
	return classes, metrics
}

func TestSelectMonth(t *testing.T) {
	t.Run("kind matched case-insensitively", func(t *testing.T) {
		classes, _ := loadAndSelect(t,
			`[{"type":"xra","peak_datetime":"2025-10-05T01:05:00Z","class":"C1.0"}]`,
			2025, time.October)
		assert.Equal(t, []string{"C1.0"}, classes)
	})

	t.Run("other kinds excluded", func(t *testing.T) {
		classes, _ := loadAndSelect(t,
			`[{"type":"FLA","peak_datetime":"2025-10-05T01:05:00Z","class":"C1.0"}]`,
			2025, time.October)
		assert.Empty(t, classes)
	})

	t.Run("adjacent month excluded", func(t *testing.T) {
		classes, _ := loadAndSelect(t,
			`[{"type":"XRA","peak_datetime":"2025-09-30T23:59:00Z","class":"C1.0"}]`,
			2025, time.October)
		assert.Empty(t, classes)
	})

	t.Run("begin used when peak absent", func(t *testing.T) {
		classes, _ := loadAndSelect(t,
			`[{"type":"XRA","begin_datetime":"2025-10-05T01:00:00Z","class":"M2.0"}]`,
			2025, time.October)
		assert.Equal(t, []string{"M2.0"}, classes)
	})

	t.Run("no usable instant dropped", func(t *testing.T) {
		classes, metrics := loadAndSelect(t,
			`[{"type":"XRA","begin_datetime":"garbage","class":"M2.0"}]`,
			2025, time.October)
		assert.Empty(t, classes)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.TimestampParseFailures))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.EventsSkipped.WithLabelValues(observability.SkipNoTimestamp)))
	})

	t.Run("input order preserved", func(t *testing.T) {
		classes, _ := loadAndSelect(t, `[
			{"type":"XRA","peak_datetime":"2025-10-07T01:00:00Z","class":"M1.0"},
			{"type":"XRA","peak_datetime":"2025-10-02T01:00:00Z","class":"C3.0"},
			{"type":"XRA","peak_datetime":"2025-10-20T01:00:00Z","class":"B9.0"}
		]`, 2025, time.October)
		assert.Equal(t, []string{"M1.0", "C3.0", "B9.0"}, classes)
	})

	t.Run("max_datetime preferred over peak_datetime", func(t *testing.T) {
		raw, err := Load(writeFeed(t,
			`[{"type":"XRA","max_datetime":"2025-10-05T01:05:00Z","peak_datetime":"2025-10-06T02:00:00Z","class":"C1.0"}]`))
		require.NoError(t, err)
		events := SelectMonth(raw, 2025, time.October, observability.NewMetrics(), discardLogger())
		require.Len(t, events, 1)
		assert.Equal(t, 5, events[0].Peak.Day())
	})

	t.Run("malformed max_datetime does not fall back", func(t *testing.T) {
		// The first non-absent candidate wins even when it fails to parse.
		raw, err := Load(writeFeed(t,
			`[{"type":"XRA","max_datetime":"bogus","peak_datetime":"2025-10-06T02:00:00Z","begin_datetime":"2025-10-05T01:00:00Z","class":"C1.0"}]`))
		require.NoError(t, err)
		events := SelectMonth(raw, 2025, time.October, observability.NewMetrics(), discardLogger())
		require.Len(t, events, 1)
		assert.Nil(t, events[0].Peak)
		assert.Equal(t, 5, events[0].Representative().Day())
	})

	t.Run("class falls back from particulars1", func(t *testing.T) {
		classes, _ := loadAndSelect(t, `[
			{"type":"XRA","peak_datetime":"2025-10-05T01:05:00Z","particulars1":"X1.2","class":"C9.9"},
			{"type":"XRA","peak_datetime":"2025-10-05T02:05:00Z","class":"C9.9"}
		]`, 2025, time.October)
		assert.Equal(t, []string{"X1.2", "C9.9"}, classes)
	})

	t.Run("duration computed when both ends known", func(t *testing.T) {
		raw, err := Load(writeFeed(t,
			`[{"type":"XRA","begin_datetime":"2025-10-05T01:00:00Z","end_datetime":"2025-10-05T01:12:00Z","class":"C1.0"}]`))
		require.NoError(t, err)
		events := SelectMonth(raw, 2025, time.October, observability.NewMetrics(), discardLogger())
		require.Len(t, events, 1)
		require.NotNil(t, events[0].DurationMin)
		assert.Equal(t, 12.0, *events[0].DurationMin)
	})

	t.Run("numeric region carried as text", func(t *testing.T) {
		raw, err := Load(writeFeed(t,
			`[{"type":"XRA","peak_datetime":"2025-10-05T01:05:00Z","class":"C1.0","region":4274}]`))
		require.NoError(t, err)
		events := SelectMonth(raw, 2025, time.October, observability.NewMetrics(), discardLogger())
		require.Len(t, events, 1)
		assert.Equal(t, "4274", events[0].Region)
	})
}
