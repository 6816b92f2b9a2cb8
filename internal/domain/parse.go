package domain

import (
	"strconv"
	"strings"
	"time"
)

// flareClassLetters lists valid class letters in increasing intensity order.
const flareClassLetters = "ABCMX"

// severityRank orders class letters by intensity. Letters outside the
// scale rank -1, below every real class.
var severityRank = map[string]int{"A": 0, "B": 1, "C": 2, "M": 3, "X": 4}

// timestampLayouts are tried in order; first successful parse wins.
// The feed mostly uses RFC 3339, but hand-edited records show naive
// timestamps, space separators, and bare dates.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp normalizes an ISO-8601-style timestamp string into an
// instant. A trailing "Z" is rewritten to an explicit "+00:00" offset
// before parsing; timestamps without an offset are taken as UTC. Returns
// nil for empty or unparseable input, never an error.
func ParseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.HasSuffix(s, "Z") {
		s = s[:len(s)-1] + "+00:00"
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// ClassCode is a parsed flare classification: a class letter and the
// numeric multiplier that follows it. Either component may be absent
// when the source code is malformed.
type ClassCode struct {
	Letter    string
	Magnitude *float64
}

// ParseClassCode splits a classification code like "X9.3" into letter
// and magnitude. The code is trimmed and uppercased; its first character
// must be one of A, B, C, M, X or both components come back absent. A
// remainder that fails float parsing leaves the magnitude absent but
// keeps the letter.
func ParseClassCode(code string) ClassCode {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || !strings.ContainsRune(flareClassLetters, rune(code[0])) {
		return ClassCode{}
	}
	cc := ClassCode{Letter: code[:1]}
	if v, err := strconv.ParseFloat(strings.TrimSpace(code[1:]), 64); err == nil {
		cc.Magnitude = &v
	}
	return cc
}

// Rank returns the letter's severity rank (A=0 through X=4), or -1 when
// the letter is absent or unrecognized.
func (c ClassCode) Rank() int {
	if r, ok := severityRank[c.Letter]; ok {
		return r
	}
	return -1
}

// StrongerThan reports whether c strictly outranks other on the
// (rank, magnitude) key. An absent magnitude compares as zero, so ties
// resolve in favor of the earlier-encountered code at the call site.
func (c ClassCode) StrongerThan(other ClassCode) bool {
	if c.Rank() != other.Rank() {
		return c.Rank() > other.Rank()
	}
	return c.magnitudeOrZero() > other.magnitudeOrZero()
}

func (c ClassCode) magnitudeOrZero() float64 {
	if c.Magnitude == nil {
		return 0
	}
	return *c.Magnitude
}
