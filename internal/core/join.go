package core

import "strings"

// codeMarker is the substring that marks a column as holding a country code.
// The tracker tabs have used "Code", "Country Code" and "Country_Code"
// over time, so matching is by substring rather than exact header.
const codeMarker = "code"

// ExtractCode returns the normalized value of the first column, in source
// order, whose lowercased name contains "code". Returns "" when no such
// column exists.
func ExtractCode(r Record) string {
	for _, key := range r.Keys() {
		if strings.Contains(strings.ToLower(key), codeMarker) {
			return NormalizeCode(r.Get(key))
		}
	}
	return ""
}

// MatchesCode reports whether the record's code equals target after
// normalizing both sides. An empty code never matches.
func MatchesCode(r Record, target string) bool {
	target = NormalizeCode(target)
	if target == "" {
		return false
	}
	return ExtractCode(r) == target
}

// groupByCode buckets records by their extracted code, preserving source
// order inside each bucket. Rows with no code are dropped.
func groupByCode(rows []Record) map[string][]Record {
	out := make(map[string][]Record)
	for _, r := range rows {
		code := ExtractCode(r)
		if code == "" {
			continue
		}
		out[code] = append(out[code], r)
	}
	return out
}
