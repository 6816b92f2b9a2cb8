// Command feedcheck performs an integrity check on an edited-events feed
// before it goes into a report: it decodes the file, runs the same
// selection flaresum uses, and prints what would be kept and dropped for
// the target month, plus the raw counters when -metrics is set.
//
// Usage:
//
//	go run ./cmd/feedcheck -input data/edited_events.json -year 2025 -month 10
//
// Exits non-zero when the feed is unreadable or structurally invalid.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/couchcryptid/flare-summary/internal/feed"
	"github.com/couchcryptid/flare-summary/internal/observability"
	"github.com/couchcryptid/flare-summary/internal/summary"
)

func main() {
	input := flag.String("input", "", "path of the edited-events JSON feed")
	year := flag.Int("year", 0, "target year")
	month := flag.Int("month", 0, "target month (1-12)")
	showMetrics := flag.Bool("metrics", false, "also print the selection counters in Prometheus text format")
	flag.Parse()

	if *input == "" || *year == 0 || *month < 1 || *month > 12 {
		flag.Usage()
		log.Fatal("required flags: -input, -year, -month")
	}

	if err := run(os.Stdout, *input, *year, time.Month(*month), *showMetrics); err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, input string, year int, month time.Month, showMetrics bool) error {
	raw, err := feed.Load(input)
	if err != nil {
		return err
	}

	metrics := observability.NewMetrics()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := feed.SelectMonth(raw, year, month, metrics, logger)
	s := summary.Summarize(events, 3)

	fmt.Fprintf(w, "feed:     %s\n", input)
	fmt.Fprintf(w, "period:   %04d-%02d\n", year, int(month))
	fmt.Fprintf(w, "scanned:  %d\n", len(raw))
	fmt.Fprintf(w, "selected: %d\n", len(events))

	letters := make([]string, 0, len(s.ClassCounts))
	for letter := range s.ClassCounts {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	for _, letter := range letters {
		fmt.Fprintf(w, "  class %s: %d\n", letter, s.ClassCounts[letter])
	}
	if s.Unclassified > 0 {
		fmt.Fprintf(w, "  unclassified: %d\n", s.Unclassified)
	}
	if s.Strongest != nil {
		fmt.Fprintf(w, "strongest: %s\n", s.Strongest.Class)
	}

	if showMetrics {
		fmt.Fprintln(w)
		if err := metrics.WriteText(w); err != nil {
			return err
		}
	}
	return nil
}
