package core

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Table is a logical source table.
type Table string

const (
	TableCountries        Table = "countries"
	TableAssessments      Table = "assessments"
	TablePractices        Table = "practices"
	TableDashboardSummary Table = "dashboardSummary"
)

// Tables lists every logical table.
var Tables = []Table{TableCountries, TableAssessments, TablePractices, TableDashboardSummary}

// tabNames maps logical tables to the spreadsheet tabs that back them.
var tabNames = map[Table]string{
	TableCountries:        "Country_Profiles",
	TableAssessments:      "PEFA_Tracker",
	TablePractices:        "Good_Practices",
	TableDashboardSummary: "Dashboard_Summary",
}

// Tab returns the spreadsheet tab name for the table.
func (t Table) Tab() string {
	return tabNames[t]
}

// Valid reports whether t names a known table.
func (t Table) Valid() bool {
	_, ok := tabNames[t]
	return ok
}

// RowSource fetches one table's full row set in source order.
// Failures must satisfy errors.Is(err, ErrSourceUnavailable).
type RowSource interface {
	FetchTable(ctx context.Context, table Table) ([]Record, error)
}

// Snapshot holds the tables one view reads, all fetched for the same
// request. It is never shared between requests.
type Snapshot struct {
	ID        string
	FetchedAt time.Time
	tables    map[Table][]Record
}

// Rows returns the rows fetched for table, or nil if it was not requested.
func (s *Snapshot) Rows(table Table) []Record {
	return s.tables[table]
}

// NewSnapshot wraps already-fetched tables. Used by tests and callers that
// hold rows from elsewhere.
func NewSnapshot(tables map[Table][]Record) *Snapshot {
	return &Snapshot{
		ID:        uuid.New().String(),
		FetchedAt: time.Now(),
		tables:    tables,
	}
}

// fetchSnapshot fetches the given tables in parallel. The first failure
// cancels the remaining fetches and fails the snapshot.
func fetchSnapshot(ctx context.Context, src RowSource, logger *slog.Logger, tables ...Table) (*Snapshot, error) {
	snap := &Snapshot{
		ID:        uuid.New().String(),
		FetchedAt: time.Now(),
		tables:    make(map[Table][]Record, len(tables)),
	}
	logger = logger.With("snapshot_id", snap.ID)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, table := range tables {
		g.Go(func() error {
			start := time.Now()
			rows, err := src.FetchTable(gctx, table)
			if err != nil {
				logger.Warn("table fetch failed", "table", table, "error", err)
				if !errors.Is(err, ErrSourceUnavailable) {
					err = NewSourceError(table, err)
				}
				return err
			}
			logger.Debug("table fetched",
				"table", table,
				"rows", len(rows),
				"duration_ms", time.Since(start).Milliseconds(),
			)
			mu.Lock()
			snap.tables[table] = rows
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}
