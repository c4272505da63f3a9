package templates

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
)

// ErrorAlert renders the error box shown in place of a view.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &page{w: w}
		p.raw(`<div class="error" role="alert"><p>`)
		p.text(message)
		p.raw(`</p>`)
		if action != "" {
			p.raw(`<p>`)
			p.text(action)
			p.raw(`</p>`)
		}
		p.raw(`<small>Error code: `)
		p.text(code)
		p.raw(`</small></div>`)
		return p.err
	})
}

// ErrorPage renders a full page around ErrorAlert.
func ErrorPage(status int, message, action, code string) templ.Component {
	title := strconv.Itoa(status) + " " + http.StatusText(status)
	return layout(title, ErrorAlert(message, action, code))
}
