package templates

import (
	"context"
	"encoding/json"
	"io"

	"github.com/JonMunkholm/pfmdash/internal/core"
	"github.com/a-h/templ"
)

// CountryList renders the sortable country table. The map entries are
// embedded as a JSON data island for the choropleth script.
func CountryList(list *core.CountryList) templ.Component {
	return layout("Countries", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &page{w: w}

		p.raw(`<table id="countries"><thead><tr><th>Code</th><th>Country</th><th>Overall score</th><th>Band</th></tr></thead><tbody>`)
		for _, c := range list.Countries {
			p.raw("<tr><td>")
			p.text(c.Code)
			p.raw("</td><td>")
			p.link(c.URL, c.Name)
			p.raw("</td><td>")
			p.text(orDash(c.OverallScore))
			p.raw("</td><td>")
			p.band(c.Band)
			p.raw("</td></tr>")
		}
		p.raw(`</tbody></table>`)

		// json.Marshal escapes <, > and & so the island cannot close the script.
		data, err := json.Marshal(list.MapData)
		if err != nil {
			return err
		}
		p.raw(`<script type="application/json" id="map-data">`)
		p.raw(string(data))
		p.raw(`</script>`)
		return p.err
	}))
}

// CountryDetail renders one country's profile with its joined assessments
// and practices.
func CountryDetail(d *core.CountryDetail) templ.Component {
	c := d.Country
	return layout(orDash(c.Name), templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &page{w: w}

		p.raw(`<section class="cards">`)
		card(p, "Code", orDash(c.Code))
		card(p, "Overall score", orDash(c.OverallRaw))
		p.raw(`<div class="card"><strong>`)
		p.band(c.Band)
		p.raw(`</strong>Band</div></section>`)

		scoreTable(p, "Dimensions", d.Dimensions)
		scoreTable(p, "Technical areas", c.TechnicalAreas)

		p.raw(`<h2>PEFA assessments</h2>`)
		if len(d.Assessments) == 0 {
			p.raw(`<p>No assessment records.</p>`)
		} else {
			p.raw(`<table><thead><tr><th>Assessments</th><th>Latest year</th><th>Reform plan</th><th>Climate PEFA</th><th>Other</th><th>Latest activities</th><th>Report</th></tr></thead><tbody>`)
			for _, a := range d.Assessments {
				p.raw("<tr>")
				for _, v := range []string{a.Assessments, a.LatestYear, a.ReformPlan, a.ClimateReady, a.OtherAssessments, a.LatestActivities} {
					p.raw("<td>")
					p.text(orDash(v))
					p.raw("</td>")
				}
				p.raw("<td>")
				if a.ReportLink != "" {
					p.link(a.ReportLink, "Report")
				} else {
					p.text(orDash(""))
				}
				p.raw("</td></tr>")
			}
			p.raw(`</tbody></table>`)
		}

		p.raw(`<h2>Good practices</h2>`)
		if len(d.Practices) == 0 {
			p.raw(`<p>No good practices recorded.</p>`)
		} else {
			p.raw(`<table><thead><tr><th>Area</th><th>Description</th><th>Replicability</th></tr></thead><tbody>`)
			for _, pr := range d.Practices {
				p.raw("<tr><td>")
				p.text(orDash(pr.Area))
				p.raw("</td><td>")
				p.text(orDash(pr.Description))
				p.raw("</td><td>")
				p.text(orDash(pr.Replicability))
				p.raw("</td></tr>")
			}
			p.raw(`</tbody></table>`)
		}
		return p.err
	}))
}

func scoreTable(p *page, title string, values []core.ScoredValue) {
	p.raw("<h2>")
	p.text(title)
	p.raw("</h2><table><tbody>")
	for _, v := range values {
		p.raw("<tr><th>")
		p.text(v.Label)
		p.raw("</th><td>")
		p.text(orDash(v.Raw))
		p.raw("</td><td>")
		p.band(core.ScoreBand(v.Raw))
		p.raw("</td></tr>")
	}
	p.raw("</tbody></table>")
}
