package gate

import (
	"context"
	"slices"
	"sync"

	"movie-grid/core/grid"
	"movie-grid/core/reconcile"

	"go.uber.org/zap"
)

// Cycler is the part of a grid the gate drives.
type Cycler interface {
	RunCycle(ctx context.Context, collection []reconcile.Item, filter reconcile.IDSet) (*grid.CycleReport, error)
	ActiveCollection() []reconcile.Item
	Resize(rows, columns int) error
}

// CycleHook observes every cycle the gate runs.
type CycleHook func(report *grid.CycleReport, err error)

// Gate coalesces collection and filter updates into grid cycles.
type Gate struct {
	mu     sync.Mutex
	grid   Cycler
	logger *zap.Logger

	collection    []reconcile.Item
	hasCollection bool
	filter        reconcile.IDSet

	pending bool
	running bool
	signal  chan struct{}

	idle     chan struct{}
	idleDone bool

	hooks []CycleHook
}

// New creates a gate in front of g.
func New(g Cycler, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	idle := make(chan struct{})
	close(idle)
	return &Gate{
		grid:     g,
		logger:   logger,
		filter:   reconcile.NewIDSet(),
		signal:   make(chan struct{}, 1),
		idle:     idle,
		idleDone: true,
	}
}

// OnNewCollection stores items as the collection for the next cycle.
func (g *Gate) OnNewCollection(items []reconcile.Item) {
	g.mu.Lock()
	g.collection = slices.Clone(items)
	g.hasCollection = true
	g.markPending()
	g.mu.Unlock()

	g.notify()
}

// CollectionUpdated lets the gate subscribe to a catalog.
func (g *Gate) CollectionUpdated(items []reconcile.Item) {
	g.OnNewCollection(items)
}

// SetFilter replaces the filter for the next cycle and later ones.
func (g *Gate) SetFilter(ids reconcile.IDSet) {
	g.mu.Lock()
	g.filter = ids.Clone()
	g.markPending()
	g.mu.Unlock()

	g.notify()
}

// Filter returns the filter that the next cycle will apply.
func (g *Gate) Filter() reconcile.IDSet {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.filter.Clone()
}

// Resize resizes the grid, clears the filter and drops any collection not yet
// animated. It fails with grid.ErrCycleInFlight while the loop is running cycles,
// including the moment between taking a snapshot and starting its cycle.
func (g *Gate) Resize(rows, columns int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running {
		return grid.ErrCycleInFlight
	}
	if err := g.grid.Resize(rows, columns); err != nil {
		return err
	}

	g.filter = reconcile.NewIDSet()
	g.collection, g.hasCollection = nil, false
	if g.pending {
		g.pending = false
		g.markIdle()
	}
	return nil
}

// OnCycle registers a hook called after every cycle from the loop goroutine.
func (g *Gate) OnCycle(hook CycleHook) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.hooks = append(g.hooks, hook)
}

// Idle reports whether nothing is pending or running.
func (g *Gate) Idle() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.pending && !g.running
}

// WaitIdle blocks until nothing is pending or running, or ctx is done.
func (g *Gate) WaitIdle(ctx context.Context) error {
	g.mu.Lock()
	idle := g.idle
	g.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run consumes update signals until ctx is done. Only one Run may be active.
// Cycle errors are logged and passed to hooks; they never stop the loop.
func (g *Gate) Run(ctx context.Context) error {
	g.logger.Debug("Update gate started")
	for {
		select {
		case <-ctx.Done():
			g.logger.Debug("Update gate stopped")
			return nil
		case <-g.signal:
		}

		g.drain(ctx)
	}
}

// drain runs cycles until no update is pending.
func (g *Gate) drain(ctx context.Context) {
	for {
		g.mu.Lock()
		if !g.pending || ctx.Err() != nil {
			g.running = false
			if !g.pending {
				g.markIdle()
			}
			g.mu.Unlock()
			return
		}

		collection, hasCollection := g.collection, g.hasCollection
		filter := g.filter.Clone()
		g.collection, g.hasCollection = nil, false
		g.pending = false
		g.running = true
		hooks := slices.Clone(g.hooks)
		g.mu.Unlock()

		if !hasCollection {
			collection = g.grid.ActiveCollection()
		}

		report, err := g.grid.RunCycle(ctx, collection, filter)
		if err != nil {
			g.logger.Error("Grid update failed",
				zap.Bool("filter_only", !hasCollection),
				zap.Int("filtered", filter.Len()),
				zap.Error(err),
			)
		}

		for _, hook := range hooks {
			hook(report, err)
		}
	}
}

func (g *Gate) notify() {
	select {
	case g.signal <- struct{}{}:
	default:
	}
}

// markPending records an update. Callers hold g.mu.
func (g *Gate) markPending() {
	g.pending = true
	if g.idleDone {
		g.idle = make(chan struct{})
		g.idleDone = false
	}
}

// markIdle releases WaitIdle callers. Callers hold g.mu.
func (g *Gate) markIdle() {
	if !g.idleDone {
		close(g.idle)
		g.idleDone = true
	}
}
