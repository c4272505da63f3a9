package templates

import (
	"bytes"
	"context"
	"testing"

	"github.com/JonMunkholm/pfmdash/internal/core"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestCountryList_EscapesSheetText(t *testing.T) {
	list := &core.CountryList{
		Countries: []core.CountryRow{
			{Code: "KE", Name: "<b>Kenya</b>", OverallScore: "90", Band: core.BandVeryStrong, URL: "/country/KE"},
			{Code: "", Name: "Nowhere", Band: core.BandNA},
		},
		MapData: map[string]core.MapEntry{
			"KE": {Name: "</script><script>alert(1)</script>", Band: core.BandVeryStrong},
		},
	}

	html := render(t, CountryList(list))
	assert.Contains(t, html, "&lt;b&gt;Kenya&lt;/b&gt;")
	assert.Contains(t, html, `href="/country/KE"`)
	assert.NotContains(t, html, "<script><script>")
	assert.NotContains(t, html, "alert(1)</script>")
	assert.Contains(t, html, "band-very-strong")
	assert.Contains(t, html, "Nowhere")
}

func TestCountryDetail_UnsafeReportLink(t *testing.T) {
	detail := &core.CountryDetail{
		Country: core.CountryProfile{Code: "KE", Name: "Kenya", Band: core.BandStrong},
		Assessments: []core.AssessmentRecord{
			{ReportLink: "javascript:alert(1)"},
			{ReportLink: "https://example.org/ke.pdf"},
		},
		Practices: []core.PracticeRecord{},
	}

	html := render(t, CountryDetail(detail))
	assert.NotContains(t, html, "javascript:alert")
	assert.Contains(t, html, `href="https://example.org/ke.pdf"`)
	assert.Contains(t, html, "No good practices recorded.")
	assert.Contains(t, html, "<title>Kenya | PFM Climate Readiness</title>")
}

func TestOverview_Renders(t *testing.T) {
	mean := 75.0
	ov := &core.Overview{
		Metrics:    core.SummaryMetrics{CountryCount: 2, MeanOverallScore: &mean},
		BandCounts: []core.BandCount{{Band: core.BandWeak, Count: 2}},
		Ranking:    []core.RankedCountry{{Code: "KE", Name: "Kenya", URL: "/country/KE"}},
	}

	html := render(t, Overview(ov))
	assert.Contains(t, html, "<strong>75.0</strong>")
	assert.Contains(t, html, `<a href="/country/KE">Kenya</a>`)
	assert.Contains(t, html, "band-weak")
}

func TestErrorPage(t *testing.T) {
	html := render(t, ErrorPage(502, "Data source unavailable", "Try again", "SRC001"))
	assert.Contains(t, html, "502 Bad Gateway")
	assert.Contains(t, html, "Error code: SRC001")
	assert.Contains(t, html, "Try again")
}

func TestFormatScore(t *testing.T) {
	v := 71.25
	assert.Equal(t, "71.2", formatScore(&v))
	assert.Equal(t, "–", formatScore(nil))
}
