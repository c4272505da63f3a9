// Package templates renders the dashboard pages as templ components.
//
// Components are built with templ.ComponentFunc so the package compiles
// without a templ generate step. Every piece of sheet text goes through
// templ.EscapeString, and every link through templ.URL.
package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/JonMunkholm/pfmdash/internal/core"
	"github.com/a-h/templ"
)

// page accumulates the first write error so components can emit markup
// without checking every call.
type page struct {
	w   io.Writer
	err error
}

func (p *page) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *page) text(s string) {
	p.raw(templ.EscapeString(s))
}

// link writes an anchor, or plain text when href is empty.
func (p *page) link(href, label string) {
	if href == "" {
		p.text(label)
		return
	}
	p.raw(`<a href="`)
	p.raw(templ.EscapeString(string(templ.URL(href))))
	p.raw(`">`)
	p.text(label)
	p.raw(`</a>`)
}

func (p *page) render(ctx context.Context, c templ.Component) {
	if p.err != nil {
		return
	}
	p.err = c.Render(ctx, p.w)
}

// layout wraps body in the document shell shared by every page.
func layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &page{w: w}
		p.raw("<!DOCTYPE html>\n<html lang=\"en\"><head><meta charset=\"utf-8\">")
		p.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.raw("<title>")
		p.text(title)
		p.raw(" | PFM Climate Readiness</title>")
		p.raw("<style>")
		p.raw(stylesheet)
		p.raw("</style></head><body>")
		p.raw(`<nav><a href="/">Overview</a> <a href="/countries">Countries</a></nav><main>`)
		p.raw("<h1>")
		p.text(title)
		p.raw("</h1>")
		p.render(ctx, body)
		p.raw("</main></body></html>")
		return p.err
	})
}

const stylesheet = `body{font-family:system-ui,sans-serif;margin:0;color:#1f2933}
nav{background:#12355b;padding:.75rem 1.5rem}nav a{color:#fff;margin-right:1rem;text-decoration:none}
main{padding:1.5rem;max-width:72rem;margin:auto}
table{border-collapse:collapse;width:100%;margin-bottom:1.5rem}
th,td{border-bottom:1px solid #d9e2ec;padding:.4rem .6rem;text-align:left}
.cards{display:flex;flex-wrap:wrap;gap:1rem;margin-bottom:1.5rem}
.card{border:1px solid #d9e2ec;border-radius:.5rem;padding:.75rem 1rem;min-width:10rem}
.card strong{display:block;font-size:1.5rem}
.band{padding:.1rem .5rem;border-radius:.75rem;font-size:.85rem}
.band-very-strong{background:#c6f6d5}.band-strong{background:#e6fffa}
.band-moderate{background:#fefcbf}.band-weak{background:#fed7d7}.band-na{background:#edf2f7}
.error{border:1px solid #f5a3a3;background:#fff5f5;padding:1rem;border-radius:.5rem}`

// formatScore renders an optional score with one decimal, or a dash.
func formatScore(score *float64) string {
	if score == nil {
		return "–"
	}
	return strconv.FormatFloat(*score, 'f', 1, 64)
}

// orDash substitutes a dash for empty sheet text.
func orDash(s string) string {
	if s == "" {
		return "–"
	}
	return s
}

func bandClass(b core.Band) string {
	switch b {
	case core.BandVeryStrong:
		return "band band-very-strong"
	case core.BandStrong:
		return "band band-strong"
	case core.BandModerate:
		return "band band-moderate"
	case core.BandWeak:
		return "band band-weak"
	default:
		return "band band-na"
	}
}

func (p *page) band(b core.Band) {
	p.raw(`<span class="`)
	p.raw(bandClass(b))
	p.raw(`">`)
	p.text(string(b))
	p.raw(`</span>`)
}
