package core

import (
	"fmt"
	"sort"
)

// Overview is the global summary page.
type Overview struct {
	SnapshotID        string             `json:"snapshotId"`
	Metrics           SummaryMetrics     `json:"metrics"`
	SheetSummary      []SummaryMetric    `json:"sheetSummary"`
	BandCounts        []BandCount        `json:"bandCounts"`
	DimensionAverages []DimensionAverage `json:"dimensionAverages"`
	Ranking           []RankedCountry    `json:"ranking"`
	TechnicalAreas    []AreaRanking      `json:"technicalAreas"`
}

// SummaryMetrics are the headline numbers of the overview.
type SummaryMetrics struct {
	CountryCount            int      `json:"countryCount"`
	MeanOverallScore        *float64 `json:"meanOverallScore"`
	CountriesWithAssessment int      `json:"countriesWithAssessment"`
	ReformPlanCount         int      `json:"reformPlanCount"`
	ClimateReadyCount       int      `json:"climateReadyCount"`
	PracticeCount           int      `json:"practiceCount"`
}

// CountryRow is one line of the country list.
type CountryRow struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	OverallScore string   `json:"overallScore"`
	Score        *float64 `json:"score"`
	Band         Band     `json:"band"`
	URL          string   `json:"url,omitempty"`
}

// MapEntry is the per-code summary used to colour the country map.
type MapEntry struct {
	Name  string   `json:"name"`
	Band  Band     `json:"band"`
	Score *float64 `json:"score"`
	URL   string   `json:"url,omitempty"`
}

// CountryList is the alphabetical country page.
type CountryList struct {
	SnapshotID string              `json:"snapshotId"`
	Countries  []CountryRow        `json:"countries"`
	MapData    map[string]MapEntry `json:"mapData"`
}

// CountryDetail is one country's page.
type CountryDetail struct {
	SnapshotID  string             `json:"snapshotId"`
	Country     CountryProfile     `json:"country"`
	Dimensions  []ScoredValue      `json:"dimensions"`
	Assessments []AssessmentRecord `json:"assessments"`
	Practices   []PracticeRecord   `json:"practices"`
}

// AssembleOverview builds the overview from a snapshot holding all tables.
func AssembleOverview(snap *Snapshot) *Overview {
	profiles := ParseProfiles(snap.Rows(TableCountries))
	assessments := groupByCode(snap.Rows(TableAssessments))
	practices := groupByCode(snap.Rows(TablePractices))

	m := SummaryMetrics{
		CountryCount:     len(profiles),
		MeanOverallScore: MeanOverallScore(profiles),
	}
	// Count each code once even if the profile tab lists it twice.
	seen := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		if p.Code == "" || seen[p.Code] {
			continue
		}
		seen[p.Code] = true

		rows := assessments[p.Code]
		if len(rows) > 0 {
			m.CountriesWithAssessment++
		}
		var reform, climate bool
		for _, r := range rows {
			a := ParseAssessment(r)
			reform = reform || a.HasReformPlan
			climate = climate || a.IsClimateReady
		}
		if reform {
			m.ReformPlanCount++
		}
		if climate {
			m.ClimateReadyCount++
		}
		m.PracticeCount += len(practices[p.Code])
	}

	return &Overview{
		SnapshotID:        snap.ID,
		Metrics:           m,
		SheetSummary:      CleanSummary(snap.Rows(TableDashboardSummary)),
		BandCounts:        BandHistogram(profiles),
		DimensionAverages: DimensionAverages(profiles),
		Ranking:           RankCountries(profiles),
		TechnicalAreas:    TechnicalAreaRankings(profiles),
	}
}

// AssembleCountryList builds the alphabetical list and map lookup.
func AssembleCountryList(snap *Snapshot) *CountryList {
	profiles := ParseProfiles(snap.Rows(TableCountries))

	rows := make([]CountryRow, len(profiles))
	for i, p := range profiles {
		rows[i] = CountryRow{
			Code:         p.Code,
			Name:         p.Name,
			OverallScore: p.OverallRaw,
			Score:        p.OverallScore,
			Band:         p.Band,
			URL:          CountryURL(p.Code),
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Name < rows[j].Name
	})

	mapData := make(map[string]MapEntry, len(rows))
	for _, r := range rows {
		if r.Code == "" {
			continue
		}
		mapData[r.Code] = MapEntry{Name: r.Name, Band: r.Band, Score: r.Score, URL: r.URL}
	}

	return &CountryList{SnapshotID: snap.ID, Countries: rows, MapData: mapData}
}

// AssembleCountryDetail builds one country's page. The first profile whose
// code matches wins. Returns ErrNotFound when none does.
func AssembleCountryDetail(snap *Snapshot, code string) (*CountryDetail, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, notFound(code)
	}

	var (
		profile CountryProfile
		found   bool
	)
	for _, r := range snap.Rows(TableCountries) {
		p := ParseProfile(r)
		if p.Code == code {
			profile, found = p, true
			break
		}
	}
	if !found {
		return nil, notFound(code)
	}

	assessments := make([]AssessmentRecord, 0)
	for _, r := range snap.Rows(TableAssessments) {
		if MatchesCode(r, code) {
			assessments = append(assessments, ParseAssessment(r))
		}
	}
	practices := make([]PracticeRecord, 0)
	for _, r := range snap.Rows(TablePractices) {
		if MatchesCode(r, code) {
			practices = append(practices, ParsePractice(r))
		}
	}

	return &CountryDetail{
		SnapshotID:  snap.ID,
		Country:     profile,
		Dimensions:  profile.Dimensions,
		Assessments: assessments,
		Practices:   practices,
	}, nil
}

func notFound(code string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, code)
}
