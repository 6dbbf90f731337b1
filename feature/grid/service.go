package grid

import (
	"context"
	"errors"
	"time"

	"movie-grid/core/gate"
	core "movie-grid/core/grid"
	"movie-grid/core/reconcile"
	"movie-grid/feature/catalog"

	"go.uber.org/zap"
)

// CellState is one visible cell of the grid.
type CellState struct {
	Column   int    `json:"column"`
	Occupied bool   `json:"occupied"`
	ID       int    `json:"id,omitempty"`
	Title    string `json:"title,omitempty"`
}

// RowState is one row of the grid as its view shows it.
type RowState struct {
	Row   int          `json:"row"`
	Cells []CellState  `json:"cells"`
	Pool  int          `json:"pool"`
	Stats RowViewStats `json:"stats"`
}

// State is a snapshot of the grid for clients.
type State struct {
	Rows       int            `json:"rows"`
	Columns    int            `json:"columns"`
	Busy       bool           `json:"busy"`
	Idle       bool           `json:"idle"`
	Active     []reconcile.ID `json:"active"`
	Filter     []reconcile.ID `json:"filter"`
	Collection int            `json:"collection"`
	Grid       []RowState     `json:"grid"`
}

// Service wires the catalog, the update gate, the grid and its row views.
type Service struct {
	logger   *zap.Logger
	catalog  *catalog.Catalog
	gate     *gate.Gate
	grid     *core.Grid
	animator Animator
	duration time.Duration
}

// Option customizes a Service.
type Option func(*Service)

// WithAnimator replaces the timer animator of the row views.
func WithAnimator(a Animator) Option {
	return func(s *Service) { s.animator = a }
}

// NewService builds the grid stack for cfg and subscribes it to cat.
func NewService(cfg Config, cat *catalog.Catalog, logger *zap.Logger, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		logger:   logger,
		catalog:  cat,
		animator: TimerAnimator{},
		duration: cfg.AnimationDuration(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.grid = core.New(s.newRowView, core.Options{
		Logger:       logger.Named("grid"),
		PhaseTimeout: cfg.PhaseTimeout(),
	})
	s.gate = gate.New(s.grid, logger.Named("gate"))

	if err := s.grid.Resize(cfg.Rows, cfg.Columns); err != nil {
		return nil, err
	}
	cat.Subscribe(s.gate)

	return s, nil
}

func (s *Service) newRowView(row, columns int) (core.RowMutator, error) {
	return NewRowView(row, columns, s.duration, s.animator, s.logger.Named("row"))
}

// Run drives grid cycles until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	return s.gate.Run(ctx)
}

// OnCycle registers a hook called after every cycle.
func (s *Service) OnCycle(hook gate.CycleHook) {
	s.gate.OnCycle(hook)
}

// Resize rebuilds the grid, clears the filter and empties the catalog.
func (s *Service) Resize(rows, columns int) error {
	if err := s.gate.Resize(rows, columns); err != nil {
		return err
	}
	s.catalog.Reset()
	s.logger.Info("Grid reset for new size", zap.Int("rows", rows), zap.Int("columns", columns))
	return nil
}

// SetFilter replaces the set of ids hidden from the grid.
func (s *Service) SetFilter(ids []reconcile.ID) {
	s.gate.SetFilter(reconcile.NewIDSet(ids...))
}

// AddItems merges items into the catalog and returns the collection size.
func (s *Service) AddItems(items []reconcile.Item) int {
	return len(s.catalog.Merge(items))
}

// WaitIdle blocks until every pending update has been animated.
func (s *Service) WaitIdle(ctx context.Context) error {
	return s.gate.WaitIdle(ctx)
}

// LastCycle returns the report of the most recent cycle, or nil.
func (s *Service) LastCycle() *core.CycleReport {
	return s.grid.LastReport()
}

// State returns what the grid currently shows.
func (s *Service) State() State {
	rows, columns := s.grid.Dimensions()
	st := State{
		Rows:       rows,
		Columns:    columns,
		Busy:       s.grid.Busy(),
		Idle:       s.gate.Idle(),
		Active:     s.grid.ActiveIDs().Sorted(),
		Filter:     s.gate.Filter().Sorted(),
		Collection: s.catalog.Len(),
	}

	for r, sink := range s.grid.Sinks() {
		view, ok := sink.(*RowView)
		if !ok {
			continue
		}
		rs := RowState{Row: r, Pool: view.PoolSize(), Stats: view.Stats()}
		for c, slot := range view.Slots() {
			cell := CellState{Column: c, Occupied: slot.Occupied}
			if slot.Occupied {
				cell.ID = int(slot.Item.ID)
				cell.Title = slot.Item.Title
			}
			rs.Cells = append(rs.Cells, cell)
		}
		st.Grid = append(st.Grid, rs)
	}
	return st
}

// RowViews returns the current row views.
func (s *Service) RowViews() []*RowView {
	var views []*RowView
	for _, sink := range s.grid.Sinks() {
		if view, ok := sink.(*RowView); ok {
			views = append(views, view)
		}
	}
	return views
}

// IsBusy reports whether err means the grid was mid-cycle.
func IsBusy(err error) bool {
	return errors.Is(err, core.ErrCycleInFlight)
}
