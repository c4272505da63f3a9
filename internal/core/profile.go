package core

import "strings"

// ScoredValue is one scored column of a country, kept with its raw text.
type ScoredValue struct {
	Label  string   `json:"label"`
	Column string   `json:"column"`
	Raw    string   `json:"raw"`
	Score  *float64 `json:"score"`
}

// CountryProfile is one row of the country profile tab after normalization.
type CountryProfile struct {
	Code           string        `json:"code"`
	RawCode        string        `json:"rawCode"`
	Name           string        `json:"name"`
	OverallRaw     string        `json:"overallRaw"`
	OverallScore   *float64      `json:"overallScore"`
	Band           Band          `json:"band"`
	Dimensions     []ScoredValue `json:"dimensions"`
	TechnicalAreas []ScoredValue `json:"technicalAreas"`
}

// AssessmentRecord is one assessment tracker row joined to a country.
type AssessmentRecord struct {
	Assessments      string `json:"assessments"`
	LatestYear       string `json:"latestYear"`
	ReformPlan       string `json:"reformPlan"`
	ClimateReady     string `json:"climateReady"`
	OtherAssessments string `json:"otherAssessments"`
	LatestActivities string `json:"latestActivities"`
	ReportLink       string `json:"reportLink"`
	HasReformPlan    bool   `json:"hasReformPlan"`
	IsClimateReady   bool   `json:"isClimateReady"`
}

// PracticeRecord is one good practice catalog row joined to a country.
type PracticeRecord struct {
	Area          string `json:"area"`
	Description   string `json:"description"`
	Replicability string `json:"replicability"`
}

// SummaryMetric is one metric/value row of the dashboard summary tab.
type SummaryMetric struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// ParseProfile builds a profile from a country profile row.
// The "Code" header is preferred; exports without it fall back to the
// first code-like column.
func ParseProfile(r Record) CountryProfile {
	raw := r.Get(ColOverallScore)
	rawCode, ok := r.Lookup(ColCode)
	code := NormalizeCode(rawCode)
	if !ok {
		code = ExtractCode(r)
	}
	return CountryProfile{
		Code:           code,
		RawCode:        rawCode,
		Name:           strings.TrimSpace(r.Get(ColCountry)),
		OverallRaw:     raw,
		OverallScore:   ScorePtr(raw),
		Band:           ScoreBand(raw),
		Dimensions:     scoredValues(r, DimensionColumns),
		TechnicalAreas: scoredValues(r, TechnicalAreaColumns),
	}
}

func scoredValues(r Record, cols []Column) []ScoredValue {
	out := make([]ScoredValue, len(cols))
	for i, c := range cols {
		raw := r.Get(c.Header)
		out[i] = ScoredValue{
			Label:  c.Label,
			Column: c.Header,
			Raw:    raw,
			Score:  ScorePtr(raw),
		}
	}
	return out
}

// ParseProfiles converts every country row, keeping source order.
func ParseProfiles(rows []Record) []CountryProfile {
	out := make([]CountryProfile, len(rows))
	for i, r := range rows {
		out[i] = ParseProfile(r)
	}
	return out
}

// ParseAssessment extracts the tracker fields from a row, tolerating every
// known header spelling.
func ParseAssessment(r Record) AssessmentRecord {
	a := AssessmentRecord{
		Assessments:      r.First(AssessmentCountAliases),
		LatestYear:       r.First(LatestYearAliases),
		ReformPlan:       r.First(ReformPlanAliases),
		ClimateReady:     r.First(ClimateReadyAliases),
		OtherAssessments: r.First(OtherAssessmentsAliases),
		LatestActivities: r.First(LatestActivitiesAliases),
		ReportLink:       r.First(ReportLinkAliases),
	}
	a.HasReformPlan = IsYes(a.ReformPlan)
	a.IsClimateReady = IsYes(a.ClimateReady)
	return a
}

// ParsePractice extracts the catalog fields from a row.
func ParsePractice(r Record) PracticeRecord {
	return PracticeRecord{
		Area:          r.First(PracticeAreaAliases),
		Description:   r.First(DescriptionAliases),
		Replicability: r.First(ReplicabilityAliases),
	}
}

// CleanSummary keeps metric/value rows, dropping blank metrics and rows
// that repeat the header.
func CleanSummary(rows []Record) []SummaryMetric {
	out := make([]SummaryMetric, 0, len(rows))
	for _, r := range rows {
		metric := strings.TrimSpace(r.First(MetricAliases))
		if metric == "" || strings.EqualFold(metric, "metric") {
			continue
		}
		out = append(out, SummaryMetric{Metric: metric, Value: r.First(ValueAliases)})
	}
	return out
}

// CountryURL returns the detail page path for a code, or "" when the code
// is empty.
func CountryURL(code string) string {
	if code == "" {
		return ""
	}
	return "/country/" + code
}
