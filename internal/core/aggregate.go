package core

// aggregate.go computes the overview statistics over all country profiles.
//
// Averaging policy: cells that do not parse as numbers are excluded from
// both the numerator and the denominator. A column with no numeric cells
// averages to nil, never to zero. Every average in this file follows it.

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// AveragePrecision is the number of decimal places averages are rounded to.
const AveragePrecision = 1

// BandCount is one bar of the band histogram.
type BandCount struct {
	Band  Band `json:"band"`
	Count int  `json:"count"`
}

// DimensionAverage is the mean of one dimension across countries.
type DimensionAverage struct {
	Label   string   `json:"label"`
	Column  string   `json:"column"`
	Average *float64 `json:"average"`
	Count   int      `json:"count"`
}

// RankedCountry is one entry of a descending score ranking.
type RankedCountry struct {
	Code  string   `json:"code"`
	Name  string   `json:"name"`
	Score *float64 `json:"score"`
	Band  Band     `json:"band"`
	URL   string   `json:"url,omitempty"`
}

// AreaScore is one country's score in a technical area ranking.
type AreaScore struct {
	Code  string  `json:"code"`
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// AreaRanking ranks every country on one technical area.
type AreaRanking struct {
	Label   string      `json:"label"`
	Column  string      `json:"column"`
	Entries []AreaScore `json:"entries"`
}

// BandHistogram counts profiles per band. Every band appears, in Bands
// order, and every profile is counted exactly once.
func BandHistogram(profiles []CountryProfile) []BandCount {
	counts := make(map[Band]int, len(Bands))
	for _, p := range profiles {
		b := p.Band
		if _, known := bandIndex[b]; !known {
			b = BandNA
		}
		counts[b]++
	}
	out := make([]BandCount, len(Bands))
	for i, b := range Bands {
		out[i] = BandCount{Band: b, Count: counts[b]}
	}
	return out
}

var bandIndex = func() map[Band]int {
	m := make(map[Band]int, len(Bands))
	for i, b := range Bands {
		m[b] = i
	}
	return m
}()

// Mean averages the values that are present, rounded to AveragePrecision.
// Returns nil when no value is present.
func Mean(values []*float64) *float64 {
	data := make(stats.Float64Data, 0, len(values))
	for _, v := range values {
		if v != nil {
			data = append(data, *v)
		}
	}
	if len(data) == 0 {
		return nil
	}
	m, err := stats.Mean(data)
	if err != nil {
		return nil
	}
	r, err := stats.Round(m, AveragePrecision)
	if err != nil {
		return nil
	}
	return &r
}

// DimensionAverages averages each dimension across profiles.
func DimensionAverages(profiles []CountryProfile) []DimensionAverage {
	out := make([]DimensionAverage, len(DimensionColumns))
	for i, col := range DimensionColumns {
		values := make([]*float64, 0, len(profiles))
		for _, p := range profiles {
			if i < len(p.Dimensions) && p.Dimensions[i].Score != nil {
				values = append(values, p.Dimensions[i].Score)
			}
		}
		out[i] = DimensionAverage{
			Label:   col.Label,
			Column:  col.Header,
			Average: Mean(values),
			Count:   len(values),
		}
	}
	return out
}

// MeanOverallScore averages the overall scores that parse.
func MeanOverallScore(profiles []CountryProfile) *float64 {
	values := make([]*float64, len(profiles))
	for i, p := range profiles {
		values[i] = p.OverallScore
	}
	return Mean(values)
}

// RankCountries orders all profiles by overall score, highest first.
// A missing score ranks as zero; ties keep source order.
func RankCountries(profiles []CountryProfile) []RankedCountry {
	out := make([]RankedCountry, len(profiles))
	for i, p := range profiles {
		out[i] = RankedCountry{
			Code:  p.Code,
			Name:  p.Name,
			Score: p.OverallScore,
			Band:  p.Band,
			URL:   CountryURL(p.Code),
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return scoreOrZero(out[i].Score) > scoreOrZero(out[j].Score)
	})
	return out
}

func scoreOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// TechnicalAreaRankings ranks every country on each technical area.
// Unlike averages, these include every country; a missing or non-numeric
// cell ranks as zero.
func TechnicalAreaRankings(profiles []CountryProfile) []AreaRanking {
	out := make([]AreaRanking, len(TechnicalAreaColumns))
	for i, col := range TechnicalAreaColumns {
		entries := make([]AreaScore, len(profiles))
		for j, p := range profiles {
			var score float64
			if i < len(p.TechnicalAreas) {
				score = SafeNumeric(p.TechnicalAreas[i].Raw)
			}
			entries[j] = AreaScore{Code: p.Code, Name: p.Name, Score: score}
		}
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].Score > entries[b].Score
		})
		out[i] = AreaRanking{Label: col.Label, Column: col.Header, Entries: entries}
	}
	return out
}
