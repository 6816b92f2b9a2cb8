// Command genmock generates a mock SWPC edited-events JSON feed for
// fixtures and manual flaresum runs. The output is deterministic for a
// given seed and deliberately messy: it mixes event kinds, alternates
// the peak field name, serializes regions as both strings and numbers,
// and sprinkles in the malformed timestamps and class codes that real
// edited feeds show.
//
// Usage:
//
//	go run ./cmd/genmock -out data/mock/edited_events_oct2025.json -year 2025 -month 10 -count 120
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"
)

// mockRecord mirrors the feed's field names. Region is any so it can
// serialize as a string or a bare number.
type mockRecord struct {
	Type          string `json:"type"`
	BeginDatetime string `json:"begin_datetime,omitempty"`
	MaxDatetime   string `json:"max_datetime,omitempty"`
	PeakDatetime  string `json:"peak_datetime,omitempty"`
	EndDatetime   string `json:"end_datetime,omitempty"`
	Particulars1  string `json:"particulars1,omitempty"`
	Region        any    `json:"region,omitempty"`
}

var (
	otherKinds = []string{"FLA", "RBR", "RSP", "BSL"}
	classes    = []string{"A", "B", "B", "C", "C", "C", "C", "M", "M", "X"}
	regions    = []any{"4266", "4274", 4280, "4283", 4290, nil}
)

func main() {
	out := flag.String("out", "", "output path for the mock feed")
	year := flag.Int("year", 2025, "target year")
	month := flag.Int("month", 10, "target month")
	count := flag.Int("count", 120, "number of records to generate")
	seed := flag.Int64("seed", 1, "rand seed; fixed seeds give reproducible feeds")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		log.Fatal("missing required flag: -out")
	}

	if err := run(*out, *year, time.Month(*month), *count, *seed); err != nil {
		log.Fatal(err)
	}
}

func run(out string, year int, month time.Month, count int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	records := make([]mockRecord, 0, count)

	for i := 0; i < count; i++ {
		records = append(records, genRecord(rng, year, month))
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal mock feed: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write mock feed: %w", err)
	}

	fmt.Printf("wrote %d records to %s\n", count, out)
	return nil
}

func genRecord(rng *rand.Rand, year int, month time.Month) mockRecord {
	// Roughly one record in six is another event kind; flaresum must
	// skip those.
	kind := "XRA"
	if rng.Intn(6) == 0 {
		kind = otherKinds[rng.Intn(len(otherKinds))]
	}

	begin := randInstant(rng, year, month)
	peak := begin.Add(time.Duration(2+rng.Intn(15)) * time.Minute)
	end := peak.Add(time.Duration(3+rng.Intn(40)) * time.Minute)

	rec := mockRecord{
		Type:          kind,
		BeginDatetime: begin.Format(time.RFC3339),
		EndDatetime:   end.Format(time.RFC3339),
		Particulars1:  genClass(rng),
		Region:        regions[rng.Intn(len(regions))],
	}

	// The peak field name varies between feed vintages.
	if rng.Intn(2) == 0 {
		rec.MaxDatetime = peak.Format(time.RFC3339)
	} else {
		rec.PeakDatetime = peak.Format(time.RFC3339)
	}

	// Hand-edited damage: occasional garbage timestamps and dropped fields.
	switch rng.Intn(12) {
	case 0:
		rec.BeginDatetime = "n/a"
	case 1:
		rec.EndDatetime = ""
	case 2:
		rec.MaxDatetime = ""
		rec.PeakDatetime = ""
	}

	return rec
}

func randInstant(rng *rand.Rand, year int, month time.Month) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := int(first.AddDate(0, 1, 0).Sub(first).Hours() / 24)
	return first.AddDate(0, 0, rng.Intn(days)).
		Add(time.Duration(rng.Intn(24)) * time.Hour).
		Add(time.Duration(rng.Intn(60)) * time.Minute)
}

func genClass(rng *rand.Rand) string {
	// One in ten codes is broken: empty, letter-only, or junk.
	switch rng.Intn(10) {
	case 0:
		switch rng.Intn(3) {
		case 0:
			return ""
		case 1:
			return classes[rng.Intn(len(classes))]
		default:
			return "???"
		}
	}
	return fmt.Sprintf("%s%.1f", classes[rng.Intn(len(classes))], 1.0+rng.Float64()*8.9)
}
