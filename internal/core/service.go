package core

import (
	"context"
	"log/slog"
)

// Service builds dashboard views from a row source. It holds no data
// between calls: every view fetches a fresh snapshot, so a Service is safe
// for concurrent use.
type Service struct {
	source RowSource
	logger *slog.Logger
}

// NewService creates a Service reading from source.
func NewService(source RowSource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, logger: logger}
}

// BuildOverview fetches every table and assembles the overview.
func (s *Service) BuildOverview(ctx context.Context) (*Overview, error) {
	snap, err := fetchSnapshot(ctx, s.source, s.logger,
		TableDashboardSummary, TableCountries, TableAssessments, TablePractices)
	if err != nil {
		return nil, err
	}
	return AssembleOverview(snap), nil
}

// BuildCountryList fetches the country table and assembles the list.
func (s *Service) BuildCountryList(ctx context.Context) (*CountryList, error) {
	snap, err := fetchSnapshot(ctx, s.source, s.logger, TableCountries)
	if err != nil {
		return nil, err
	}
	return AssembleCountryList(snap), nil
}

// BuildCountryDetail fetches the country and satellite tables and assembles
// one country's page. Returns ErrNotFound for an unknown code.
func (s *Service) BuildCountryDetail(ctx context.Context, code string) (*CountryDetail, error) {
	// Skip the network round trip for codes that can never match.
	if NormalizeCode(code) == "" {
		return nil, notFound(code)
	}
	snap, err := fetchSnapshot(ctx, s.source, s.logger,
		TableCountries, TableAssessments, TablePractices)
	if err != nil {
		return nil, err
	}
	return AssembleCountryDetail(snap, code)
}
