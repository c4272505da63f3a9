package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/JonMunkholm/pfmdash/internal/core"
	"github.com/a-h/templ"
)

// Overview renders the global dashboard page.
func Overview(ov *core.Overview) templ.Component {
	return layout("Global Overview", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &page{w: w}
		m := ov.Metrics

		p.raw(`<section class="cards">`)
		card(p, "Countries", strconv.Itoa(m.CountryCount))
		card(p, "Mean overall score", formatScore(m.MeanOverallScore))
		card(p, "With PEFA assessment", strconv.Itoa(m.CountriesWithAssessment))
		card(p, "With reform plan", strconv.Itoa(m.ReformPlanCount))
		card(p, "Climate ready", strconv.Itoa(m.ClimateReadyCount))
		card(p, "Good practices", strconv.Itoa(m.PracticeCount))
		p.raw(`</section>`)

		if len(ov.SheetSummary) > 0 {
			p.raw(`<h2>Summary</h2><table><tbody>`)
			for _, sm := range ov.SheetSummary {
				p.raw("<tr><th>")
				p.text(sm.Metric)
				p.raw("</th><td>")
				p.text(sm.Value)
				p.raw("</td></tr>")
			}
			p.raw(`</tbody></table>`)
		}

		p.raw(`<h2>Score bands</h2><table><thead><tr><th>Band</th><th>Countries</th></tr></thead><tbody>`)
		for _, bc := range ov.BandCounts {
			p.raw("<tr><td>")
			p.band(bc.Band)
			p.raw("</td><td>")
			p.raw(strconv.Itoa(bc.Count))
			p.raw("</td></tr>")
		}
		p.raw(`</tbody></table>`)

		p.raw(`<h2>Dimension averages</h2><table><thead><tr><th>Dimension</th><th>Average</th><th>Countries scored</th></tr></thead><tbody>`)
		for _, da := range ov.DimensionAverages {
			p.raw("<tr><td>")
			p.text(da.Label)
			p.raw("</td><td>")
			p.text(formatScore(da.Average))
			p.raw("</td><td>")
			p.raw(strconv.Itoa(da.Count))
			p.raw("</td></tr>")
		}
		p.raw(`</tbody></table>`)

		p.raw(`<h2>Country ranking</h2><table><thead><tr><th>#</th><th>Country</th><th>Score</th><th>Band</th></tr></thead><tbody>`)
		for i, rc := range ov.Ranking {
			p.raw("<tr><td>")
			p.raw(strconv.Itoa(i + 1))
			p.raw("</td><td>")
			p.link(rc.URL, rc.Name)
			p.raw("</td><td>")
			p.text(formatScore(rc.Score))
			p.raw("</td><td>")
			p.band(rc.Band)
			p.raw("</td></tr>")
		}
		p.raw(`</tbody></table>`)

		p.raw(`<h2>Technical areas</h2>`)
		for _, area := range ov.TechnicalAreas {
			p.raw("<h3>")
			p.text(area.Label)
			p.raw("</h3><table><tbody>")
			for _, e := range area.Entries {
				p.raw("<tr><td>")
				p.link(core.CountryURL(e.Code), e.Name)
				p.raw("</td><td>")
				p.raw(strconv.FormatFloat(e.Score, 'f', 1, 64))
				p.raw("</td></tr>")
			}
			p.raw("</tbody></table>")
		}
		return p.err
	}))
}

func card(p *page, label, value string) {
	p.raw(`<div class="card"><strong>`)
	p.text(value)
	p.raw(`</strong>`)
	p.text(label)
	p.raw(`</div>`)
}
