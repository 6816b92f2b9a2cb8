// Package pipeline wires the load, aggregate, and render stages into a
// single batch run.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/couchcryptid/flare-summary/internal/config"
	"github.com/couchcryptid/flare-summary/internal/domain"
	"github.com/couchcryptid/flare-summary/internal/feed"
	"github.com/couchcryptid/flare-summary/internal/observability"
	"github.com/couchcryptid/flare-summary/internal/report"
	"github.com/couchcryptid/flare-summary/internal/summary"
)

// Pipeline runs one load-aggregate-render cycle over the configured feed.
type Pipeline struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Pipeline with the given configuration and observability.
func New(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}
}

// Run executes the batch and returns the report lines. The only fatal
// condition is an unreadable or undecodable feed; malformed records
// degrade to skips and absent fields.
func (p *Pipeline) Run(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	month := time.Month(p.cfg.Month)
	p.logger.Info("run started", "input", p.cfg.Input, "year", p.cfg.Year, "month", int(month))

	raw, err := feed.Load(p.cfg.Input)
	if err != nil {
		return nil, err
	}

	events := feed.SelectMonth(raw, p.cfg.Year, month, p.metrics, p.logger)

	s := summary.Summarize(events, p.cfg.TopRegions)
	p.metrics.UnclassifiedEvents.Add(float64(s.Unclassified))
	if s.Strongest != nil {
		p.metrics.StrongestFlareRank.Set(float64(domain.ParseClassCode(s.Strongest.Class).Rank()))
	}

	p.logger.Info("summary built",
		"events", len(events),
		"most_active_day", s.MostActiveDay,
		"top_regions", len(s.TopRegions),
		"generated_at", s.GeneratedAt,
	)

	return report.Render(s, month), nil
}
