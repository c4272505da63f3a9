// Package sheets provides row sources backed by the published spreadsheet.
//
// [Client] reads tabs through the opensheet JSON bridge; [Workbook] reads
// the same tabs from an exported .xlsx file. Both satisfy core.RowSource
// and report every failure as core.ErrSourceUnavailable.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JonMunkholm/pfmdash/internal/core"
)

// DefaultTimeout bounds every table fetch.
const DefaultTimeout = 30 * time.Second

// DefaultBaseURL is the public opensheet bridge.
const DefaultBaseURL = "https://opensheet.elk.sh"

// maxBodySize caps a single tab payload (16MB).
const maxBodySize = 16 << 20

// Client fetches tabs from the opensheet bridge.
type Client struct {
	baseURL string
	sheetID string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Its Timeout should stay bounded.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// NewClient creates a Client for the given sheet.
func NewClient(baseURL, sheetID string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		sheetID: sheetID,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TableURL returns the bridge URL for a table.
func (c *Client) TableURL(table core.Table) string {
	return c.baseURL + "/" + url.PathEscape(c.sheetID) + "/" + url.PathEscape(table.Tab())
}

// FetchTable downloads and decodes one tab. No retries: a failed fetch
// fails the caller's whole view.
func (c *Client) FetchTable(ctx context.Context, table core.Table) ([]core.Record, error) {
	if !table.Valid() {
		return nil, core.NewSourceError(table, fmt.Errorf("unknown table"))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.TableURL(table), nil)
	if err != nil {
		return nil, core.NewSourceError(table, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, core.NewSourceError(table, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, core.NewSourceError(table, fmt.Errorf("unexpected status %s", resp.Status))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, core.NewSourceError(table, fmt.Errorf("read body: %w", err))
	}

	rows, err := DecodeRows(body)
	if err != nil {
		return nil, core.NewSourceError(table, err)
	}
	return rows, nil
}
