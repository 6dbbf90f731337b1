package grid

import "movie-grid/core/reconcile"

// DoneFunc signals that an animation started by a RowMutator has finished.
type DoneFunc func()

// RowMutator defines the capabilities of a row view that the grid drives.
//
// Each method starts an animation and returns immediately. A nil error means the
// mutator took ownership of done and will call it exactly once. A non-nil error
// means the animation was not started and done will not be called.
type RowMutator interface {
	// CreateCell makes a new cell for item at column.
	CreateCell(column int, item reconcile.Item, done DoneFunc) error

	// TransposeCell moves the cell at from to to. Either column may be virtual.
	// When from is virtual the row has no cell for it yet and incoming must hold
	// the item to materialize; otherwise incoming is ignored.
	TransposeCell(from, to int, incoming reconcile.Slot, done DoneFunc) error

	// DeleteCell removes the cell at column.
	DeleteCell(column int, done DoneFunc) error

	// Consolidate commits the cells arranged during the cycle as the row's
	// current cells.
	Consolidate() error
}

// SinkFactory creates the row view for a row index of a grid with the given width.
type SinkFactory func(row, columns int) (RowMutator, error)

// ValidateTranspose checks the incoming item requirement of TransposeCell.
// Mutator implementations call it before starting a transpose.
func ValidateTranspose(from, columns int, incoming reconcile.Slot) error {
	if reconcile.IsVirtual(from, columns) && !incoming.Occupied {
		return ErrVirtualTransposeWithoutItem
	}
	return nil
}
