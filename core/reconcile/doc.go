// Package reconcile computes per-row animation plans for a grid of items.
//
// A grid is split into rows of a fixed column count. Each Row keeps a snapshot of
// the items it currently shows and, when handed the items it should show next,
// produces a Plan: the cell operations that turn the old arrangement into the new
// one, grouped into three phases that a presentation layer runs in order.
//
// # Phases
//
//  1. Delete: cells whose item was filtered out shrink away.
//  2. Transpose: cells slide to their new column. Cells leaving the row slide to a
//     virtual column outside the visible range; cells entering the row from a
//     neighbouring row slide in from a sideboard.
//  3. Create: items never shown before appear in their column.
//
// # Virtual columns
//
// A row of N columns addresses off-row positions with virtual columns. Left
// sideboard slot k is virtual column -1-k and right sideboard slot k is virtual
// column N+k. Exits produced by one row use the same numbering, so a cell leaving
// row r on the right at column N lines up with the cell entering row r+1 from left
// sideboard slot 0.
//
// # Usage
//
//	row, err := reconcile.NewRow(3)
//	if err != nil {
//	    return err
//	}
//	plan, err := row.SetRowItems(items, active, filtered)
//	for _, action := range plan.Actions(reconcile.PhaseTranspose) {
//	    // drive the row view
//	}
//
// The package never touches visual objects. It only holds items and plans, which
// keeps it testable without a rendering surface.
package reconcile
