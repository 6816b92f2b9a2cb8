// Package report renders a Summary as the fixed set of human-readable
// sentences the tool prints. Pure formatting; the only decisions are
// which optional sentences apply.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/couchcryptid/flare-summary/internal/summary"
)

// Placeholder used when a peak time or duration is unknown, and "?" for
// an unnumbered region, matching the published report wording.
const notAvailable = "N/A"

// Render maps the aggregate onto summary sentences in fixed order:
// class mix, most active day, most active regions, strongest flare.
// Sentences whose data is absent are suppressed, except the class mix,
// which always renders. month names the reporting period.
func Render(s *summary.Summary, month time.Month) []string {
	lines := make([]string, 0, 4)
	lines = append(lines, classMixLine(s))

	if s.MostActiveDay != "" {
		lines = append(lines, fmt.Sprintf("“%s was a highly active day (%d flares).”",
			s.MostActiveDay, s.MostActiveDayCount))
	}

	if line, ok := regionsLine(s.TopRegions); ok {
		lines = append(lines, line)
	}

	if s.Strongest != nil {
		lines = append(lines, strongestLine(s, month))
	}

	return lines
}

// Write prints one sentence per line.
func Write(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

// classMixLine recomputes the percentages from the counts rather than
// trusting ByClassPercent, so a zero C+M+X month renders 0.0 without a
// divide-by-zero.
func classMixLine(s *summary.Summary) string {
	c := s.ClassCounts["C"]
	m := s.ClassCounts["M"]
	x := s.ClassCounts["X"]
	total := c + m + x
	if total < 1 {
		total = 1
	}
	pc := float64(c) * 100.0 / float64(total)
	pm := float64(m) * 100.0 / float64(total)
	px := float64(x) * 100.0 / float64(total)

	if x > 0 {
		return fmt.Sprintf("“This month C-class flares lead (≈%.1f%%), M-class are ≈%.1f%%, and X-class ≈%.1f%%.”", pc, pm, px)
	}
	return fmt.Sprintf("“This month C-class flares lead (≈%.1f%%), M-class are ≈%.1f%%, and there were no X-class flares.”", pc, pm)
}

func regionsLine(regions []summary.RegionCount) (string, bool) {
	switch len(regions) {
	case 0:
		return "", false
	case 1:
		return fmt.Sprintf("“Region %s was the most active.”", regions[0].Region), true
	case 2:
		return fmt.Sprintf("“Regions %s and %s were the most active.”",
			regions[0].Region, regions[1].Region), true
	default:
		return fmt.Sprintf("“Regions %s, %s, and %s were the most active.”",
			regions[0].Region, regions[1].Region, regions[2].Region), true
	}
}

func strongestLine(s *summary.Summary, month time.Month) string {
	peakTxt := notAvailable
	if s.Strongest.Peak != nil {
		peakTxt = s.Strongest.Peak.UTC().Format("2006-01-02 15:04") + " UTC"
	}

	durTxt := notAvailable
	if s.StrongestDurationMin != nil {
		durTxt = fmt.Sprintf("~%.0f min", *s.StrongestDurationMin)
	}

	region := s.Strongest.Region
	if region == "" {
		region = "?"
	}

	return fmt.Sprintf("“In %s, the strongest flare was %s (peak %s, duration %s, NOAA region %s).”",
		month, s.Strongest.Class, peakTxt, durTxt, region)
}
