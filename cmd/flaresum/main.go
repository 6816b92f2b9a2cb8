// Command flaresum reads a month of SWPC edited-events JSON and prints a
// short natural-language summary of X-ray flare activity: class mix,
// most active day, most active regions, and the strongest flare.
//
// Usage:
//
//	flaresum -config /etc/flaresum/config.yaml
//
// All settings can also come from environment variables (FLARE_INPUT,
// FLARE_YEAR, FLARE_MONTH, FLARE_TOP_REGIONS, LOG_LEVEL, LOG_FORMAT,
// METRICS_FILE). The report goes to stdout; logs go to stderr.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/flare-summary/internal/config"
	"github.com/couchcryptid/flare-summary/internal/observability"
	"github.com/couchcryptid/flare-summary/internal/pipeline"
	"github.com/couchcryptid/flare-summary/internal/report"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath, clockwork.NewRealClock())
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg).With("run_id", uuid.NewString())
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(cfg, logger, metrics)
	lines, err := p.Run(ctx)
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}

	if err := report.Write(os.Stdout, lines); err != nil {
		logger.Error("report write failed", "error", err)
		os.Exit(1)
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Error("metrics textfile write failed", "error", err, "path", cfg.MetricsFile)
		}
	}

	logger.Info("run complete")
}
