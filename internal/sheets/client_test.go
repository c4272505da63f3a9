package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JonMunkholm/pfmdash/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRows_KeepsKeyOrder(t *testing.T) {
	body := []byte(`[
		{"Notes": "x", "Country  Code ": "  ke ", "Overall Score": 90, "Flag": true, "Empty": null},
		"stray string",
		{"Code": "TZ"}
	]`)

	rows, err := DecodeRows(body)
	require.NoError(t, err)
	require.Len(t, rows, 2, "non-object elements skipped")

	first := rows[0]
	assert.Equal(t, []string{"Notes", "Country  Code ", "Overall Score", "Flag", "Empty"}, first.Keys())
	assert.Equal(t, "90", first.Get("Overall Score"))
	assert.Equal(t, "true", first.Get("Flag"))
	assert.Equal(t, "", first.Get("Empty"))
	assert.Equal(t, "KE", core.ExtractCode(first))
	assert.Equal(t, "TZ", core.ExtractCode(rows[1]))
}

func TestDecodeRows_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed", body: `[{"Code": "KE"`},
		{name: "object", body: `{"error": "sheet not found"}`},
		{name: "html", body: `<html>502</html>`},
		{name: "empty", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRows([]byte(tt.body))
			assert.ErrorIs(t, err, errInvalidPayload)
		})
	}
}

func TestDecodeRows_EmptyArray(t *testing.T) {
	rows, err := DecodeRows([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestClient_FetchTable(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"Code":"KE","Country":"Kenya","Overall Score":"90"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "sheet-123")
	rows, err := c.FetchTable(context.Background(), core.TableCountries)
	require.NoError(t, err)

	assert.Equal(t, "/sheet-123/Country_Profiles", gotPath)
	require.Len(t, rows, 1)
	assert.Equal(t, "Kenya", rows[0].Get("Country"))
}

func TestClient_FetchTable_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[{"Code":`))
			},
		},
		{
			name: "not an array",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"error":"Unable to parse range"}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			rows, err := NewClient(srv.URL, "s").FetchTable(context.Background(), core.TableAssessments)
			assert.Nil(t, rows)
			assert.ErrorIs(t, err, core.ErrSourceUnavailable)
		})
	}
}

func TestClient_FetchTable_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(srv.URL, "s", WithHTTPClient(&http.Client{Timeout: 50 * time.Millisecond}))
	_, err := c.FetchTable(context.Background(), core.TablePractices)
	require.ErrorIs(t, err, core.ErrSourceUnavailable)
	assert.True(t, core.IsTimeout(err))
	assert.Equal(t, "SRC002", core.MapError(err).Code)
}

func TestClient_FetchTable_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "s").FetchTable(context.Background(), core.TableCountries)
	assert.ErrorIs(t, err, core.ErrSourceUnavailable)
}

func TestClient_UnknownTable(t *testing.T) {
	_, err := NewClient("", "s").FetchTable(context.Background(), core.Table("nope"))
	assert.ErrorIs(t, err, core.ErrSourceUnavailable)
}

func TestClient_DefaultTimeout(t *testing.T) {
	c := NewClient("", "s")
	assert.Equal(t, DefaultTimeout, c.http.Timeout)
	assert.Equal(t, DefaultBaseURL+"/s/Dashboard_Summary", c.TableURL(core.TableDashboardSummary))
}
