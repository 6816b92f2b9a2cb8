package observability

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Skip reasons recorded on the events_skipped_total metric.
const (
	SkipWrongKind    = "wrong_kind"
	SkipNoTimestamp  = "no_timestamp"
	SkipOutsideMonth = "outside_month"
)

// Metrics holds the Prometheus counters and gauges for one summary run.
// Each Metrics owns its registry; the process performs a single batch
// and exits, so nothing is shared or scraped in place.
type Metrics struct {
	registry *prometheus.Registry

	EventsScanned          prometheus.Counter
	EventsSelected         prometheus.Counter
	EventsSkipped          *prometheus.CounterVec // label: reason
	TimestampParseFailures prometheus.Counter
	UnclassifiedEvents     prometheus.Counter
	StrongestFlareRank     prometheus.Gauge
}

// NewMetrics creates and registers all run metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		EventsScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flare_summary",
			Name:      "events_scanned_total",
			Help:      "Total records read from the events feed.",
		}),
		EventsSelected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flare_summary",
			Name:      "events_selected_total",
			Help:      "XRA events inside the target month.",
		}),
		EventsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flare_summary",
			Name:      "events_skipped_total",
			Help:      "Records dropped during selection, by reason.",
		}, []string{"reason"}),
		TimestampParseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flare_summary",
			Name:      "timestamp_parse_failures_total",
			Help:      "Non-empty timestamp fields that failed to parse.",
		}),
		UnclassifiedEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "flare_summary",
			Name:      "unclassified_events_total",
			Help:      "Selected events whose class code yielded no letter.",
		}),
		StrongestFlareRank: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "flare_summary",
			Name:      "strongest_flare_rank",
			Help:      "Severity rank of the month's strongest flare (A=0 through X=4, -1 unclassified).",
		}),
	}

	m.registry.MustRegister(
		m.EventsScanned,
		m.EventsSelected,
		m.EventsSkipped,
		m.TimestampParseFailures,
		m.UnclassifiedEvents,
		m.StrongestFlareRank,
	)

	return m
}

// WriteText writes all gathered metrics in Prometheus text exposition format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
	}
	return nil
}

// WriteTextfile writes the metrics to path for the node_exporter textfile
// collector. The write goes through a temp file and rename so the
// collector never observes a partial file.
func (m *Metrics) WriteTextfile(path string) error {
	var buf bytes.Buffer
	if err := m.WriteText(&buf); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
