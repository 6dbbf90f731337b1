package grid

import "errors"

var (
	// ErrInvalidDimensions is returned by Resize for non-positive rows or columns.
	ErrInvalidDimensions = errors.New("grid: rows and columns must be positive")

	// ErrCycleInFlight is returned when an operation needs the grid idle.
	ErrCycleInFlight = errors.New("grid: animation cycle in flight")

	// ErrNotSized is returned by RunCycle before the first successful Resize.
	ErrNotSized = errors.New("grid: grid has no rows")

	// ErrPhaseTimeout is returned when started animations did not all complete in time.
	ErrPhaseTimeout = errors.New("grid: phase did not complete in time")

	// ErrVirtualTransposeWithoutItem is returned by mutators asked to move a cell in
	// from a virtual column without the item to show.
	ErrVirtualTransposeWithoutItem = errors.New("grid: transpose from virtual column requires an item")
)
