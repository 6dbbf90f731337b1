package checks

import (
	"fmt"
	"slices"

	"movie-grid/core/reconcile"
	"movie-grid/feature/grid"
)

// GridReport describes the consistency of what the grid shows.
type GridReport struct {
	Rows      int      `json:"rows"`
	Columns   int      `json:"columns"`
	Displayed int      `json:"displayed"`
	Problems  []string `json:"problems"`
	Status    string   `json:"status"`
}

// CheckGrid verifies that the row views show unique ids in ascending
// row-major order, within capacity and matching the leading ids of the active
// set. Rows are expected to be filled from their first column.
func CheckGrid(st grid.State) *GridReport {
	report := &GridReport{Rows: st.Rows, Columns: st.Columns, Problems: []string{}, Status: StatusOK}

	var shown []reconcile.ID
	for _, row := range st.Grid {
		gap := false
		for _, cell := range row.Cells {
			if !cell.Occupied {
				gap = true
				continue
			}
			if gap {
				report.Problems = append(report.Problems, fmt.Sprintf("row %d has a gap before column %d", row.Row, cell.Column))
				gap = false
			}
			shown = append(shown, reconcile.ID(cell.ID))
		}
	}
	report.Displayed = len(shown)

	if len(shown) > st.Rows*st.Columns {
		report.Problems = append(report.Problems, fmt.Sprintf("%d ids shown in a %dx%d grid", len(shown), st.Rows, st.Columns))
	}
	if !slices.IsSorted(shown) {
		report.Problems = append(report.Problems, fmt.Sprintf("ids not in ascending row-major order: %v", shown))
	}
	if len(slices.Compact(slices.Clone(shown))) != len(shown) {
		report.Problems = append(report.Problems, fmt.Sprintf("duplicate ids: %v", shown))
	}
	// The active set keeps ids truncated by capacity; only its head is shown.
	head := st.Active[:min(len(st.Active), st.Rows*st.Columns)]
	if !slices.Equal(shown, head) {
		report.Problems = append(report.Problems, fmt.Sprintf("row views show %v but the active set starts %v", shown, head))
	}

	if len(report.Problems) > 0 {
		report.Status = StatusInvalid
	}
	return report
}
