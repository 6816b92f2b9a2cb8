// Package domain models NOAA Space Weather Prediction Center (SWPC)
// solar event data.
//
// # Data Source
//
// Records originate from the SWPC edited solar and geophysical event
// lists (https://www.swpc.noaa.gov/products/solar-and-geophysical-event-reports),
// converted upstream to a single JSON array. An edited feed mixes many
// event kinds in one list; the "type" tag distinguishes them:
//
//	XRA  X-ray event (flare), the only kind this service consumes
//	FLA  optical flare observed in H-alpha
//	RBR  fixed-frequency radio burst
//	...  others, all ignored
//
// # Event Timestamps
//
// Each record may carry begin, peak, and end timestamps. The peak field
// appears under two names in the wild: "max_datetime" in the edited
// lists and "peak_datetime" in older conversions. The begin and end
// fields are "begin_datetime" and "end_datetime". Timestamps are
// ISO-8601-ish with a "Z" or explicit offset, but hand-edited records
// also show naive timestamps, space separators, and bare dates. A
// record's representative instant is its peak when known, else its
// begin; records with neither are unusable and dropped.
//
// # Flare Classification
//
// X-ray flares are classified by peak 1-8 Angstrom flux into letter
// classes A, B, C, M, X, each ten times stronger than the previous. The
// letter is followed by a multiplier within the class, e.g. "X9.3". The
// classification code lives in "particulars1" in the edited lists, with
// "class" as the fallback name in older conversions. Codes are
// free-text; whitespace, lowercase letters, and truncated multipliers
// ("M", "C2") all occur. See [ParseClassCode].
//
// # Active Regions
//
// The "region" field is the NOAA/USAF active region number of the
// sunspot group the flare came from, e.g. 4274. Feeds serialize it as
// either a string or a bare number; limb flares and unnumbered regions
// leave it empty. See [Region].
package domain
