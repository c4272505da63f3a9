package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/JonMunkholm/pfmdash/internal/core"
	"github.com/xuri/excelize/v2"
)

// Workbook reads tabs from an exported .xlsx copy of the spreadsheet.
// Each tab is a sheet named like its online counterpart; the first row
// holds the headers.
//
// The file is opened per fetch, so edits to it show up on the next
// request and nothing is held between requests.
type Workbook struct {
	path string
}

// NewWorkbook creates a Workbook reading from path.
func NewWorkbook(path string) *Workbook {
	return &Workbook{path: path}
}

// FetchTable reads one sheet as records.
func (w *Workbook) FetchTable(ctx context.Context, table core.Table) ([]core.Record, error) {
	if !table.Valid() {
		return nil, core.NewSourceError(table, fmt.Errorf("unknown table"))
	}
	if err := ctx.Err(); err != nil {
		return nil, core.NewSourceError(table, err)
	}

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, core.NewSourceError(table, fmt.Errorf("open workbook: %w", err))
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(table.Tab()); err != nil || idx < 0 {
		return nil, core.NewSourceError(table, fmt.Errorf("sheet %q not found", table.Tab()))
	}

	grid, err := f.GetRows(table.Tab())
	if err != nil {
		return nil, core.NewSourceError(table, fmt.Errorf("read sheet %q: %w", table.Tab(), err))
	}
	return recordsFromGrid(grid), nil
}

// recordsFromGrid turns a header row plus data rows into records. Columns
// with a blank header are dropped, short rows are padded with "", and rows
// with no content are skipped.
func recordsFromGrid(grid [][]string) []core.Record {
	if len(grid) == 0 {
		return nil
	}

	type column struct {
		idx  int
		name string
	}
	var cols []column
	for i, h := range grid[0] {
		if name := strings.TrimSpace(h); name != "" {
			cols = append(cols, column{idx: i, name: h})
		}
	}

	rows := make([]core.Record, 0, len(grid)-1)
	for _, cells := range grid[1:] {
		if isBlankRow(cells) {
			continue
		}
		rec := core.NewRecord(len(cols))
		for _, c := range cols {
			v := ""
			if c.idx < len(cells) {
				v = cells[c.idx]
			}
			rec.Set(c.name, v)
		}
		rows = append(rows, rec)
	}
	return rows
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
