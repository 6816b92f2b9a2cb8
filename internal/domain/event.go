package domain

import (
	"encoding/json"
	"time"
)

// KindXRayEvent is the SWPC event-type tag for X-ray flare records.
const KindXRayEvent = "XRA"

// RawEvent represents one record of the SWPC edited events feed as
// published. The feed mixes event kinds (XRA, RBR, FLA, ...) in a single
// array; only the fields this service reads are modeled.
type RawEvent struct {
	Kind          Text   `json:"type"`
	BeginDatetime Text   `json:"begin_datetime"`
	MaxDatetime   Text   `json:"max_datetime"`
	PeakDatetime  Text   `json:"peak_datetime"`
	EndDatetime   Text   `json:"end_datetime"`
	Particulars1  Text   `json:"particulars1"`
	Class         Text   `json:"class"`
	Region        Region `json:"region"`
}

// Text is a JSON field that carries a value only when the feed holds a
// string there. Hand-edited feeds sometimes put numbers or nulls where
// strings belong; those decode as absent instead of failing the record.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*t = ""
		return nil
	}
	*t = Text(s)
	return nil
}

// Region is a NOAA active region number. Feeds carry it as either a
// string or a bare number; both normalize to text. Empty means absent.
type Region string

func (r *Region) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Region(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Region(n.String())
		return nil
	}
	*r = ""
	return nil
}

// FlareEvent is the domain-rich representation of one XRA record after
// timestamp parsing and month selection.
type FlareEvent struct {
	Begin *time.Time
	Peak  *time.Time
	End   *time.Time

	// Class is the raw classification code, e.g. "X9.3". Parsed on
	// demand via ParseClassCode; the raw form is what reports print.
	Class  string
	Region string

	// DurationMin is begin-to-end in minutes, nil unless both ends are known.
	DurationMin *float64

	Raw *RawEvent
}

// Representative returns the instant used for date bucketing and month
// selection: the peak when known, otherwise the begin. May be nil only
// for events constructed outside the loader.
func (e *FlareEvent) Representative() *time.Time {
	if e.Peak != nil {
		return e.Peak
	}
	return e.Begin
}
