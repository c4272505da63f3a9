package core

// normalize.go converts raw spreadsheet cells into canonical values.
//
// Every function here is total: malformed input resolves to a defined
// fallback (empty code, absent score, "N/A" band) instead of an error.

import (
	"math"
	"strconv"
	"strings"
)

// Band is a categorical label derived from a score.
type Band string

const (
	BandVeryStrong Band = "Very Strong"
	BandStrong     Band = "Strong"
	BandModerate   Band = "Moderate"
	BandWeak       Band = "Weak"
	BandNA         Band = "N/A"
)

// Bands lists every band in display order, strongest first.
var Bands = []Band{BandVeryStrong, BandStrong, BandModerate, BandWeak, BandNA}

// Band thresholds are closed lower bounds.
const (
	VeryStrongThreshold = 85.0
	StrongThreshold     = 70.0
	ModerateThreshold   = 55.0
)

// nbsp is the non-breaking space spreadsheets like to leave in copied codes.
const nbsp = "\u00a0"

// NormalizeCode canonicalizes a country code: non-breaking spaces removed,
// surrounding whitespace trimmed, uppercased. Idempotent.
func NormalizeCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(raw, nbsp, "")))
}

// ParseScore parses a trimmed numeric cell.
// Returns false for empty, non-numeric, NaN, or infinite input.
func ParseScore(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// SafeNumeric parses a numeric cell, yielding 0 when it cannot.
func SafeNumeric(raw string) float64 {
	f, _ := ParseScore(raw)
	return f
}

// ScorePtr parses a numeric cell into an optional value.
func ScorePtr(raw string) *float64 {
	f, ok := ParseScore(raw)
	if !ok {
		return nil
	}
	return &f
}

// BandFor maps a parsed score to its band.
func BandFor(score float64) Band {
	switch {
	case score >= VeryStrongThreshold:
		return BandVeryStrong
	case score >= StrongThreshold:
		return BandStrong
	case score >= ModerateThreshold:
		return BandModerate
	default:
		return BandWeak
	}
}

// ScoreBand maps a raw cell to its band, or BandNA when it is not numeric.
func ScoreBand(raw string) Band {
	f, ok := ParseScore(raw)
	if !ok {
		return BandNA
	}
	return BandFor(f)
}

// IsYes reports whether a flag cell reads as affirmative.
func IsYes(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(raw, nbsp, " "))) {
	case "yes", "y", "true":
		return true
	default:
		return false
	}
}
