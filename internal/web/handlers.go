package web

import (
	"net/http"

	"github.com/JonMunkholm/pfmdash/internal/logging"
	"github.com/JonMunkholm/pfmdash/internal/web/templates"
	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
)

// handleOverview renders the global overview page.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := s.service.BuildOverview(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	renderPage(w, r, templates.Overview(ov))
}

// handleCountryList renders the country table.
func (s *Server) handleCountryList(w http.ResponseWriter, r *http.Request) {
	list, err := s.service.BuildCountryList(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	renderPage(w, r, templates.CountryList(list))
}

// handleCountryDetail renders one country's page.
func (s *Server) handleCountryDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := s.service.BuildCountryDetail(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	renderPage(w, r, templates.CountryDetail(detail))
}

// handleAPIOverview returns the overview as JSON.
func (s *Server) handleAPIOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := s.service.BuildOverview(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, ov)
}

// handleAPICountryList returns the country list and map data as JSON.
func (s *Server) handleAPICountryList(w http.ResponseWriter, r *http.Request) {
	list, err := s.service.BuildCountryList(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, list)
}

// handleAPICountryDetail returns one country's detail as JSON.
func (s *Server) handleAPICountryDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := s.service.BuildCountryDetail(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, detail)
}

// handleHealth reports liveness. It does not touch the row source.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]string{"status": "ok"})
}

// renderPage writes c as an HTML page. Render errors after the first byte
// can only be logged.
func renderPage(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render page", "path", r.URL.Path, "error", err)
	}
}
