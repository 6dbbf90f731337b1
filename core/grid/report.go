package grid

import (
	"time"

	"movie-grid/core/reconcile"
)

// RowReport describes what one row did during a cycle.
type RowReport struct {
	// Row is the row index, top to bottom.
	Row int `json:"row"`

	// Items are the ids the row shows after the cycle.
	Items []reconcile.ID `json:"items"`

	// Plan is the row's plan for the cycle. Skipped rows carry an empty plan.
	Plan *reconcile.Plan `json:"plan"`

	// Skipped holds the reason the row was left out of the cycle, if it was.
	Skipped string `json:"skipped,omitempty"`
}

// CycleSummary provides aggregate counts for a cycle.
type CycleSummary struct {
	reconcile.PlanSummary

	// Displayed counts items placed in the grid.
	Displayed int `json:"displayed"`

	// Filtered counts collection items excluded by the filter.
	Filtered int `json:"filtered"`

	// Truncated counts items that did not fit in rows*columns.
	Truncated int `json:"truncated"`

	// SkippedRows counts rows that rejected their input.
	SkippedRows int `json:"skipped_rows"`
}

// CycleReport contains the plans and outcome of one animation cycle.
type CycleReport struct {
	// Cycle is the sequence number of the cycle since the grid was created.
	Cycle int `json:"cycle"`

	Rows    []RowReport  `json:"rows"`
	Summary CycleSummary `json:"summary"`

	// Displayed holds the ids shown after the cycle in row-major order.
	Displayed []reconcile.ID `json:"displayed"`

	Started  time.Time     `json:"started"`
	Duration time.Duration `json:"duration"`
}
