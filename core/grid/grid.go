package grid

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"movie-grid/core/reconcile"

	"go.uber.org/zap"
)

// Options configures a Grid.
type Options struct {
	// Logger receives cycle diagnostics. Nil disables logging.
	Logger *zap.Logger

	// PhaseTimeout bounds the wait for a phase's animations. Zero waits until the
	// cycle context is done.
	PhaseTimeout time.Duration
}

// Grid orchestrates the rows of a grid through animation cycles.
type Grid struct {
	mu sync.Mutex

	factory      SinkFactory
	logger       *zap.Logger
	phaseTimeout time.Duration

	rowCount int
	columns  int
	rows     []*reconcile.Row
	sinks    []RowMutator

	// active holds the ids of the filtered collection applied by the last
	// completed cycle, including ids truncated off the grid.
	active reconcile.IDSet
	// filtered holds the filter applied by the last cycle.
	filtered reconcile.IDSet
	// collection is the filtered collection applied by the last cycle.
	collection []reconcile.Item

	busy   bool
	cycles int
	last   *CycleReport
}

// New creates an unsized grid. Call Resize before running cycles.
func New(factory SinkFactory, opts Options) *Grid {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Grid{
		factory:      factory,
		logger:       logger,
		phaseTimeout: opts.PhaseTimeout,
		active:       reconcile.NewIDSet(),
		filtered:     reconcile.NewIDSet(),
	}
}

// Resize discards all row, active and filter state and rebuilds the grid with
// rows rows of columns cells. It fails while a cycle is in flight.
func (g *Grid) Resize(rows, columns int) error {
	if rows < 1 || columns < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, columns)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.busy {
		return ErrCycleInFlight
	}

	if err := g.rebuild(rows, columns); err != nil {
		return err
	}

	g.logger.Info("Grid resized", zap.Int("rows", rows), zap.Int("columns", columns))
	return nil
}

// rebuild recreates rows and row views. Callers hold g.mu.
func (g *Grid) rebuild(rows, columns int) error {
	newRows := make([]*reconcile.Row, rows)
	newSinks := make([]RowMutator, rows)
	for r := 0; r < rows; r++ {
		row, err := reconcile.NewRow(columns)
		if err != nil {
			return err
		}
		sink, err := g.factory(r, columns)
		if err != nil {
			return fmt.Errorf("failed to create row view %d: %w", r, err)
		}
		newRows[r] = row
		newSinks[r] = sink
	}

	g.rowCount = rows
	g.columns = columns
	g.rows = newRows
	g.sinks = newSinks
	g.active = reconcile.NewIDSet()
	g.filtered = reconcile.NewIDSet()
	g.collection = nil
	g.last = nil
	return nil
}

// RunCycle reconciles the grid against collection minus filter and runs the
// Delete, Transpose and Create phases to completion.
//
// collection must be sorted by ID with unique ids; it is normalized if it is not.
// The returned report is non-nil whenever planning happened, including aborted
// cycles.
func (g *Grid) RunCycle(ctx context.Context, collection []reconcile.Item, filter reconcile.IDSet) (*CycleReport, error) {
	g.mu.Lock()
	if g.busy {
		g.mu.Unlock()
		return nil, ErrCycleInFlight
	}
	if len(g.rows) == 0 {
		g.mu.Unlock()
		return nil, ErrNotSized
	}
	g.busy = true
	g.cycles++

	report := &CycleReport{
		Cycle:   g.cycles,
		Started: time.Now(),
		Rows:    make([]RowReport, g.rowCount),
	}

	filter = filter.Clone()
	g.filtered = filter

	applied := make([]reconcile.Item, 0, len(collection))
	for _, item := range reconcile.SortItems(collection) {
		if filter.Has(item.ID) {
			report.Summary.Filtered++
			continue
		}
		applied = append(applied, item)
	}

	chunks, truncated := partition(applied, g.rowCount, g.columns)
	report.Summary.Truncated = truncated

	plans := make([]*reconcile.Plan, g.rowCount)
	for r, row := range g.rows {
		report.Rows[r].Row = r
		plan, err := row.SetRowItems(chunks[r], g.active, filter)
		if err != nil {
			g.logger.Warn("Row skipped for cycle", zap.Int("row", r), zap.Error(err))
			plan = reconcile.NewPlan(g.columns)
			report.Rows[r].Skipped = err.Error()
			report.Summary.SkippedRows++
		}
		plans[r] = plan
		report.Rows[r].Plan = plan
		report.Summary.PlanSummary.Add(plan.Summary())

		if ce := g.logger.Check(zap.DebugLevel, "Row plan"); ce != nil {
			ce.Write(zap.Int("cycle", report.Cycle), zap.Int("row", r), zap.Strings("plan", plan.Describe()))
		}
	}

	sinks := slices.Clone(g.sinks)
	g.mu.Unlock()

	runErr := g.runPhases(ctx, plans, sinks)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.busy = false
	report.Duration = time.Since(report.Started)

	if runErr != nil {
		g.logger.Error("Animation cycle aborted; resetting rows",
			zap.Int("cycle", report.Cycle),
			zap.Error(runErr),
		)
		if err := g.rebuild(g.rowCount, g.columns); err != nil {
			runErr = errors.Join(runErr, err)
		}
		g.last = report
		return report, fmt.Errorf("cycle %d aborted: %w", report.Cycle, runErr)
	}

	displayed := make([]reconcile.ID, 0, g.rowCount*g.columns)
	for r, row := range g.rows {
		ids := reconcile.IDsOf(row.Items())
		report.Rows[r].Items = ids
		displayed = append(displayed, ids...)
	}
	report.Displayed = displayed
	report.Summary.Displayed = len(displayed)

	g.active = reconcile.NewIDSet(reconcile.IDsOf(applied)...)
	g.collection = applied
	g.last = report

	var errs []error
	for r, sink := range g.sinks {
		if err := sink.Consolidate(); err != nil {
			errs = append(errs, fmt.Errorf("row %d consolidate: %w", r, err))
		}
	}

	g.logger.Info("Animation cycle complete",
		zap.Int("cycle", report.Cycle),
		zap.Int("displayed", report.Summary.Displayed),
		zap.Int("deletes", report.Summary.Deletes),
		zap.Int("transposes", report.Summary.Transposes),
		zap.Int("exits", report.Summary.Exits),
		zap.Int("entries", report.Summary.Entries),
		zap.Int("creates", report.Summary.Creates),
		zap.Int("truncated", report.Summary.Truncated),
		zap.Duration("duration", report.Duration),
	)

	return report, errors.Join(errs...)
}

// runPhases executes the phases in their fixed order.
func (g *Grid) runPhases(ctx context.Context, plans []*reconcile.Plan, sinks []RowMutator) error {
	for _, phase := range reconcile.Phases {
		if err := g.runPhase(ctx, phase, plans, sinks); err != nil {
			return err
		}
	}
	return nil
}

// runPhase starts every row's actions for phase, then waits for all of them.
// When a mutator refuses an action no further actions are started, but the ones
// already running are still awaited.
func (g *Grid) runPhase(ctx context.Context, phase reconcile.Phase, plans []*reconcile.Plan, sinks []RowMutator) error {
	b := newBarrier(phase.String(), g.logger)

	var startErr error
	started := 0
start:
	for r, plan := range plans {
		for _, action := range plan.Actions(phase) {
			done := b.track()
			if err := startAction(sinks[r], action, done); err != nil {
				done()
				startErr = fmt.Errorf("row %d %s of item %d: %w", r, action.Type, action.Item.ID, err)
				break start
			}
			started++
		}
	}
	b.seal()

	waitCtx := ctx
	if g.phaseTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, g.phaseTimeout)
		defer cancel()
	}

	waitErr := b.wait(waitCtx)
	if waitErr != nil && errors.Is(waitErr, context.DeadlineExceeded) && ctx.Err() == nil {
		waitErr = fmt.Errorf("%w: %s phase has %d of %d animations outstanding",
			ErrPhaseTimeout, phase, b.outstanding(), started)
	}

	if ce := g.logger.Check(zap.DebugLevel, "Phase finished"); ce != nil {
		ce.Write(zap.String("phase", phase.String()), zap.Int("animations", started))
	}

	return errors.Join(startErr, waitErr)
}

func startAction(sink RowMutator, action reconcile.Action, done DoneFunc) error {
	switch action.Type {
	case reconcile.ActionDelete:
		return sink.DeleteCell(action.Column, done)
	case reconcile.ActionTranspose:
		var incoming reconcile.Slot
		if action.Incoming {
			incoming = reconcile.Occupy(action.Item)
		}
		return sink.TransposeCell(action.Column, action.MoveTo, incoming, done)
	case reconcile.ActionCreate:
		return sink.CreateCell(action.Column, action.Item, done)
	default:
		return fmt.Errorf("unknown action type %q", action.Type)
	}
}

// partition splits items row-major into rows chunks of at most columns items.
// Items that do not fit are dropped and counted.
func partition(items []reconcile.Item, rows, columns int) ([][]reconcile.Item, int) {
	chunks := make([][]reconcile.Item, rows)
	for r := 0; r < rows; r++ {
		start := r * columns
		if start >= len(items) {
			chunks[r] = []reconcile.Item{}
			continue
		}
		end := min(start+columns, len(items))
		chunks[r] = items[start:end]
	}

	truncated := 0
	if capacity := rows * columns; len(items) > capacity {
		truncated = len(items) - capacity
	}
	return chunks, truncated
}

// Dimensions returns the current row and column counts.
func (g *Grid) Dimensions() (rows, columns int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rowCount, g.columns
}

// Busy reports whether a cycle is in flight.
func (g *Grid) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// ActiveIDs returns the ids of the filtered collection applied by the last
// completed cycle. Ids past the grid capacity are included, so an id that later
// scrolls into view enters from a sideboard instead of being created.
func (g *Grid) ActiveIDs() reconcile.IDSet {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active.Clone()
}

// FilteredIDs returns the filter applied by the last cycle.
func (g *Grid) FilteredIDs() reconcile.IDSet {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.filtered.Clone()
}

// ActiveCollection returns the filtered collection applied by the last
// completed cycle, including items truncated from display.
func (g *Grid) ActiveCollection() []reconcile.Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.collection)
}

// RowItems returns each row's projected items.
func (g *Grid) RowItems() [][]reconcile.Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([][]reconcile.Item, len(g.rows))
	for r, row := range g.rows {
		out[r] = row.Items()
	}
	return out
}

// Sinks returns the row views in row order.
func (g *Grid) Sinks() []RowMutator {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.sinks)
}

// LastReport returns the report of the most recent cycle, or nil.
func (g *Grid) LastReport() *CycleReport {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}
