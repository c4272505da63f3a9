package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileRow(code, name, overall string, extra ...string) Record {
	r := RecordOf(ColCode, code, ColCountry, name, ColOverallScore, overall)
	for i := 0; i+1 < len(extra); i += 2 {
		r.Set(extra[i], extra[i+1])
	}
	return r
}

func bandCount(t *testing.T, counts []BandCount, b Band) int {
	t.Helper()
	for _, c := range counts {
		if c.Band == b {
			return c.Count
		}
	}
	t.Fatalf("band %q missing from histogram", b)
	return 0
}

func TestBandHistogram(t *testing.T) {
	profiles := ParseProfiles([]Record{
		profileRow("KE", "Kenya", "90"),
		profileRow("TZ", "Tanzania", "60"),
		profileRow("UG", "Uganda", "72"),
		profileRow("RW", "Rwanda", ""),
		profileRow("BI", "Burundi", "junk"),
	})

	got := BandHistogram(profiles)
	require.Len(t, got, len(Bands))
	for i, b := range Bands {
		assert.Equal(t, b, got[i].Band, "histogram keeps fixed band order")
	}
	assert.Equal(t, 1, bandCount(t, got, BandVeryStrong))
	assert.Equal(t, 1, bandCount(t, got, BandStrong))
	assert.Equal(t, 1, bandCount(t, got, BandModerate))
	assert.Equal(t, 0, bandCount(t, got, BandWeak))
	assert.Equal(t, 2, bandCount(t, got, BandNA))

	total := 0
	for _, c := range got {
		total += c.Count
	}
	assert.Equal(t, len(profiles), total, "every profile counted exactly once")
}

func TestBandHistogram_Empty(t *testing.T) {
	got := BandHistogram(nil)
	require.Len(t, got, len(Bands))
	for _, c := range got {
		assert.Zero(t, c.Count)
	}
}

func TestMean(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	assert.Nil(t, Mean(nil))
	assert.Nil(t, Mean([]*float64{nil, nil}))

	got := Mean([]*float64{f(70), nil, f(75)})
	require.NotNil(t, got)
	assert.Equal(t, 72.5, *got)

	got = Mean([]*float64{f(1), f(2), f(2)})
	require.NotNil(t, got)
	assert.Equal(t, 1.7, *got, "rounded to one decimal")
}

func TestDimensionAverages_DropsInvalid(t *testing.T) {
	dim1 := DimensionColumns[0].Header
	dim2 := DimensionColumns[1].Header
	profiles := ParseProfiles([]Record{
		profileRow("KE", "Kenya", "90", dim1, "80", dim2, ""),
		profileRow("TZ", "Tanzania", "60", dim1, "n/a", dim2, " "),
		profileRow("UG", "Uganda", "70", dim1, "65"),
	})

	got := DimensionAverages(profiles)
	require.Len(t, got, len(DimensionColumns))

	require.NotNil(t, got[0].Average)
	assert.Equal(t, 72.5, *got[0].Average, "non-numeric cell excluded from denominator")
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, DimensionColumns[0].Label, got[0].Label)

	assert.Nil(t, got[1].Average, "no numeric cells yields no value")
	assert.Zero(t, got[1].Count)
}

func TestMeanOverallScore(t *testing.T) {
	profiles := ParseProfiles([]Record{
		profileRow("KE", "Kenya", "90"),
		profileRow("TZ", "Tanzania", "61"),
		profileRow("RW", "Rwanda", "pending"),
	})
	got := MeanOverallScore(profiles)
	require.NotNil(t, got)
	assert.Equal(t, 75.5, *got)

	assert.Nil(t, MeanOverallScore(ParseProfiles([]Record{profileRow("RW", "Rwanda", "")})))
}

func TestRankCountries_StableDescending(t *testing.T) {
	profiles := ParseProfiles([]Record{
		profileRow("A1", "Alpha", "60"),
		profileRow("B2", "Bravo", "90"),
		profileRow("C3", "Charlie", "60"),
		profileRow("D4", "Delta", ""),
		profileRow("E5", "Echo", "75"),
		profileRow("F6", "Foxtrot", "60"),
	})

	got := RankCountries(profiles)
	require.Len(t, got, len(profiles), "all profiles ranked")

	names := make([]string, len(got))
	for i, r := range got {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"Bravo", "Echo", "Alpha", "Charlie", "Foxtrot", "Delta"}, names)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, scoreOrZero(got[i-1].Score), scoreOrZero(got[i].Score))
	}
	assert.Equal(t, "/country/B2", got[0].URL)
	assert.Nil(t, got[len(got)-1].Score)
}

func TestRankCountries_EmptyCodeHasNoURL(t *testing.T) {
	got := RankCountries(ParseProfiles([]Record{profileRow("", "Nowhere", "50")}))
	require.Len(t, got, 1)
	assert.Empty(t, got[0].URL)
}

func TestTechnicalAreaRankings_IncludesEveryCountry(t *testing.T) {
	ta1 := TechnicalAreaColumns[0].Header
	profiles := ParseProfiles([]Record{
		profileRow("KE", "Kenya", "90", ta1, "40"),
		profileRow("TZ", "Tanzania", "60", ta1, "junk"),
		profileRow("UG", "Uganda", "70", ta1, "88"),
		profileRow("RW", "Rwanda", "50"),
	})

	got := TechnicalAreaRankings(profiles)
	require.Len(t, got, len(TechnicalAreaColumns))

	first := got[0]
	assert.Equal(t, TechnicalAreaColumns[0].Label, first.Label)
	require.Len(t, first.Entries, 4, "zero-valued entries are kept")
	assert.Equal(t, "Uganda", first.Entries[0].Name)
	assert.Equal(t, 88.0, first.Entries[0].Score)
	assert.Equal(t, "Kenya", first.Entries[1].Name)
	assert.Equal(t, "Tanzania", first.Entries[2].Name, "ties keep source order")
	assert.Equal(t, 0.0, first.Entries[2].Score)
	assert.Equal(t, "Rwanda", first.Entries[3].Name)

	for _, area := range got[1:] {
		assert.Len(t, area.Entries, 4)
	}
}
