// Package grid drives a grid of reconciled rows through animation cycles.
//
// A Grid owns one reconcile.Row and one RowMutator (the row view) per row. Each
// cycle it filters and partitions the incoming collection row-major, asks every
// row for its plan and then runs the phases Delete, Transpose and Create in that
// order. Within a phase every row's actions are started before the grid waits;
// the phase completes only when every started animation has called its done
// callback. Once the Create phase completes the grid records the displayed ids as
// the active set and asks each row view to consolidate.
//
// # Row Mutators
//
// The presentation layer implements RowMutator. Each done callback must be called
// exactly once, synchronously or from any goroutine. Extra calls are ignored and
// logged.
//
// # Policies
//
//   - Resize while a cycle runs is rejected with ErrCycleInFlight.
//   - Items beyond rows*columns after filtering are dropped for the cycle.
//   - A row that rejects its input is skipped for the cycle and reported.
//   - A mutator error or a stuck phase aborts the cycle and hard-resets the rows,
//     keeping the grid dimensions.
//
// # Usage
//
//	g := grid.New(factory, grid.Options{Logger: log, PhaseTimeout: 10 * time.Second})
//	if err := g.Resize(5, 5); err != nil {
//	    return err
//	}
//	report, err := g.RunCycle(ctx, collection, reconcile.NewIDSet())
package grid
