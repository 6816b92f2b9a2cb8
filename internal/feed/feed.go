// Package feed loads the SWPC edited-events JSON feed and selects the
// X-ray flare events for a target reporting month.
package feed

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/flare-summary/internal/domain"
	"github.com/couchcryptid/flare-summary/internal/observability"
)

// Load reads and decodes the full feed file. An unreadable file or a
// malformed top-level structure is fatal; per-record field problems are
// handled later, during selection.
func Load(path string) ([]domain.RawEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read events feed: %w", err)
	}
	var events []domain.RawEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode events feed: %w", err)
	}
	return events, nil
}

// SelectMonth filters the feed down to XRA events whose representative
// instant (peak, else begin) falls in the target year/month, preserving
// input order. Records that are not XRA, have no usable instant, or fall
// outside the month are dropped and counted on the skip metric.
func SelectMonth(raw []domain.RawEvent, year int, month time.Month, metrics *observability.Metrics, logger *slog.Logger) []domain.FlareEvent {
	selected := make([]domain.FlareEvent, 0, len(raw))

	for i := range raw {
		ev := &raw[i]
		metrics.EventsScanned.Inc()

		if !strings.EqualFold(string(ev.Kind), domain.KindXRayEvent) {
			metrics.EventsSkipped.WithLabelValues(observability.SkipWrongKind).Inc()
			continue
		}

		begin := parseInstant(ev.BeginDatetime, metrics)
		peak := parseInstant(firstText(ev.MaxDatetime, ev.PeakDatetime), metrics)
		end := parseInstant(ev.EndDatetime, metrics)

		rep := peak
		if rep == nil {
			rep = begin
		}
		if rep == nil {
			metrics.EventsSkipped.WithLabelValues(observability.SkipNoTimestamp).Inc()
			logger.Debug("event dropped", "index", i, "reason", observability.SkipNoTimestamp)
			continue
		}
		if rep.Year() != year || rep.Month() != month {
			metrics.EventsSkipped.WithLabelValues(observability.SkipOutsideMonth).Inc()
			continue
		}

		flare := domain.FlareEvent{
			Begin:  begin,
			Peak:   peak,
			End:    end,
			Class:  string(firstText(ev.Particulars1, ev.Class)),
			Region: string(ev.Region),
			Raw:    ev,
		}
		if begin != nil && end != nil {
			d := end.Sub(*begin).Minutes()
			flare.DurationMin = &d
		}

		metrics.EventsSelected.Inc()
		selected = append(selected, flare)
	}

	logger.Info("events selected",
		"scanned", len(raw),
		"selected", len(selected),
		"year", year,
		"month", int(month),
	)
	return selected
}

// parseInstant parses a timestamp field, counting non-empty values that
// fail to parse. A failed parse degrades to an absent instant.
func parseInstant(field domain.Text, metrics *observability.Metrics) *time.Time {
	s := string(field)
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t := domain.ParseTimestamp(s)
	if t == nil {
		metrics.TimestampParseFailures.Inc()
	}
	return t
}

// firstText returns the first non-empty candidate, mirroring the feed's
// alternate field names (max_datetime/peak_datetime, particulars1/class).
func firstText(candidates ...domain.Text) domain.Text {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}
