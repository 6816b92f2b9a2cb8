// Package summary aggregates a month of flare events into the figures
// the report renders: class mix, daily activity, region activity, and
// the strongest flare.
package summary

import (
	"sort"
	"time"

	"github.com/couchcryptid/flare-summary/internal/domain"
)

// RegionCount pairs an active region with its flare count.
type RegionCount struct {
	Region string
	Count  int
}

// Summary is the per-run aggregate. Built once from the full selected
// event set and immutable afterwards.
type Summary struct {
	// ClassCounts maps class letter to occurrence count.
	ClassCounts map[string]int

	// DurationsByClass collects begin-to-end minutes per class letter.
	// Nothing downstream reduces these yet; they are kept for trend work.
	DurationsByClass map[string][]float64

	// ByClassPercent maps C, M, X to their share of the C+M+X total.
	// All zero when that total is zero.
	ByClassPercent map[string]float64

	MostActiveDay      string // "YYYY-MM-DD", empty when no event had an instant
	MostActiveDayCount int

	// TopRegions is ordered by count descending, first-seen on ties.
	TopRegions []RegionCount

	Strongest            *domain.FlareEvent
	StrongestDurationMin *float64

	// Unclassified counts selected events whose class code yielded no letter.
	Unclassified int

	GeneratedAt time.Time
}

// cmxLetters are the classes that participate in the percentage mix.
var cmxLetters = []string{"C", "M", "X"}

// Summarize aggregates events in one pass. Tie-breaks are first-seen:
// the day, region, and strongest-flare winners are the earliest entries
// to reach the maximum, independent of map iteration order. topRegions
// caps the region list.
func Summarize(events []domain.FlareEvent, topRegions int) *Summary {
	s := &Summary{
		ClassCounts:      make(map[string]int),
		DurationsByClass: make(map[string][]float64),
		ByClassPercent:   make(map[string]float64, len(cmxLetters)),
		GeneratedAt:      clock.Now().UTC(),
	}

	dayCounts := make(map[string]int)
	var dayOrder []string
	regionCounts := make(map[string]int)
	var regionOrder []string

	var strongestCode domain.ClassCode
	for i := range events {
		ev := &events[i]

		code := domain.ParseClassCode(ev.Class)
		if code.Letter != "" {
			s.ClassCounts[code.Letter]++
		} else {
			s.Unclassified++
		}

		if ev.DurationMin != nil && code.Letter != "" {
			s.DurationsByClass[code.Letter] = append(s.DurationsByClass[code.Letter], *ev.DurationMin)
		}

		if rep := ev.Representative(); rep != nil {
			day := rep.Format("2006-01-02")
			if _, seen := dayCounts[day]; !seen {
				dayOrder = append(dayOrder, day)
			}
			dayCounts[day]++
		}

		if ev.Region != "" {
			if _, seen := regionCounts[ev.Region]; !seen {
				regionOrder = append(regionOrder, ev.Region)
			}
			regionCounts[ev.Region]++
		}

		if s.Strongest == nil || code.StrongerThan(strongestCode) {
			s.Strongest = ev
			strongestCode = code
		}
	}

	for _, day := range dayOrder {
		if dayCounts[day] > s.MostActiveDayCount {
			s.MostActiveDay = day
			s.MostActiveDayCount = dayCounts[day]
		}
	}

	regions := make([]RegionCount, 0, len(regionOrder))
	for _, region := range regionOrder {
		regions = append(regions, RegionCount{Region: region, Count: regionCounts[region]})
	}
	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].Count > regions[j].Count
	})
	if len(regions) > topRegions {
		regions = regions[:topRegions]
	}
	s.TopRegions = regions

	if s.Strongest != nil && s.Strongest.Begin != nil && s.Strongest.End != nil {
		d := s.Strongest.End.Sub(*s.Strongest.Begin).Minutes()
		s.StrongestDurationMin = &d
	}

	cmxTotal := 0
	for _, letter := range cmxLetters {
		cmxTotal += s.ClassCounts[letter]
	}
	for _, letter := range cmxLetters {
		if cmxTotal > 0 {
			s.ByClassPercent[letter] = float64(s.ClassCounts[letter]) * 100.0 / float64(cmxTotal)
		} else {
			s.ByClassPercent[letter] = 0.0
		}
	}

	return s
}
