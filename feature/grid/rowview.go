package grid

import (
	"errors"
	"fmt"
	"sync"
	"time"

	core "movie-grid/core/grid"
	"movie-grid/core/reconcile"

	"go.uber.org/zap"
)

var (
	// ErrColumnOutOfRange is returned for a visible column outside the row.
	ErrColumnOutOfRange = errors.New("column out of range")
	// ErrEmptyCell is returned when an action targets a column without a cell.
	ErrEmptyCell = errors.New("no cell at column")
	// ErrDestinationClaimed is returned when two cells are sent to one column.
	ErrDestinationClaimed = errors.New("destination already claimed this cycle")
	// ErrCellConflict is returned by Consolidate when a cell lands on an
	// occupied column.
	ErrCellConflict = errors.New("cell lands on an occupied column")
)

// Animator schedules the end of an animation.
type Animator interface {
	AfterDelay(d time.Duration, fn func())
}

// TimerAnimator completes animations on a timer. Non-positive durations
// complete before AfterDelay returns.
type TimerAnimator struct{}

// AfterDelay calls fn once d has elapsed, from a timer goroutine.
func (TimerAnimator) AfterDelay(d time.Duration, fn func()) {
	if d <= 0 {
		fn()
		return
	}
	time.AfterFunc(d, fn)
}

// Cell is a view cell. Cells are pooled and reused across items.
type Cell struct {
	Serial int
	Item   reconcile.Item
}

// RowViewStats counts what a row view did since it was created.
type RowViewStats struct {
	Created        int `json:"created"`
	Reused         int `json:"reused"`
	Moved          int `json:"moved"`
	Deleted        int `json:"deleted"`
	Discarded      int `json:"discarded"`
	Consolidations int `json:"consolidations"`
}

// RowView is an in-process row mutation sink. It keeps one cell per visible
// column, collects the arrangement of a cycle in a separate buffer and commits
// it on Consolidate. Cells that leave through a sideboard are returned to the
// pool.
type RowView struct {
	mu sync.Mutex

	row      int
	columns  int
	duration time.Duration
	animator Animator
	logger   *zap.Logger

	current []*Cell
	next    map[int]*Cell
	vacated map[int]bool
	pool    []*Cell
	serial  int
	stats   RowViewStats
}

// NewRowView creates the view of row with the given width.
func NewRowView(row, columns int, duration time.Duration, animator Animator, logger *zap.Logger) (*RowView, error) {
	if columns < 1 {
		return nil, fmt.Errorf("row view %d: %w", row, core.ErrInvalidDimensions)
	}
	if animator == nil {
		animator = TimerAnimator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RowView{
		row:      row,
		columns:  columns,
		duration: duration,
		animator: animator,
		logger:   logger,
		current:  make([]*Cell, columns),
		next:     make(map[int]*Cell),
		vacated:  make(map[int]bool),
	}, nil
}

func (v *RowView) checkColumn(column int) error {
	if column < 0 || column >= v.columns {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrColumnOutOfRange, column, v.columns)
	}
	return nil
}

// dequeue takes a pooled cell or makes a new one. Callers hold v.mu.
func (v *RowView) dequeue(item reconcile.Item) *Cell {
	if n := len(v.pool); n > 0 {
		cell := v.pool[n-1]
		v.pool = v.pool[:n-1]
		cell.Item = item
		v.stats.Reused++
		return cell
	}
	v.serial++
	return &Cell{Serial: v.serial, Item: item}
}

// claim reserves the destination column for cell. Callers hold v.mu.
func (v *RowView) claim(to int, cell *Cell) error {
	if _, taken := v.next[to]; taken {
		return fmt.Errorf("%w: column %d", ErrDestinationClaimed, to)
	}
	v.next[to] = cell
	return nil
}

func (v *RowView) animate(done core.DoneFunc) {
	v.animator.AfterDelay(v.duration, done)
}

// CreateCell materializes item at column.
func (v *RowView) CreateCell(column int, item reconcile.Item, done core.DoneFunc) error {
	if err := v.checkColumn(column); err != nil {
		return err
	}

	v.mu.Lock()
	cell := v.dequeue(item)
	if err := v.claim(column, cell); err != nil {
		v.pool = append(v.pool, cell)
		v.mu.Unlock()
		return err
	}
	v.stats.Created++
	v.mu.Unlock()

	v.animate(done)
	return nil
}

// TransposeCell moves a cell between columns. A virtual source materializes
// incoming in the sideboard first.
func (v *RowView) TransposeCell(from, to int, incoming reconcile.Slot, done core.DoneFunc) error {
	if err := core.ValidateTranspose(from, v.columns, incoming); err != nil {
		return err
	}

	v.mu.Lock()
	var cell *Cell
	if reconcile.IsVirtual(from, v.columns) {
		cell = v.dequeue(incoming.Item)
	} else {
		cell = v.current[from]
		if cell == nil || v.vacated[from] {
			v.mu.Unlock()
			return fmt.Errorf("%w %d", ErrEmptyCell, from)
		}
	}

	if err := v.claim(to, cell); err != nil {
		if reconcile.IsVirtual(from, v.columns) {
			v.pool = append(v.pool, cell)
		}
		v.mu.Unlock()
		return err
	}
	if !reconcile.IsVirtual(from, v.columns) {
		v.vacated[from] = true
	}
	v.stats.Moved++
	v.mu.Unlock()

	v.animate(done)
	return nil
}

// DeleteCell removes the cell at column. The cell returns to the pool once its
// animation ends.
func (v *RowView) DeleteCell(column int, done core.DoneFunc) error {
	if err := v.checkColumn(column); err != nil {
		return err
	}

	v.mu.Lock()
	cell := v.current[column]
	if cell == nil || v.vacated[column] {
		v.mu.Unlock()
		return fmt.Errorf("%w %d", ErrEmptyCell, column)
	}
	v.vacated[column] = true
	v.stats.Deleted++
	v.mu.Unlock()

	v.animate(func() {
		v.mu.Lock()
		v.pool = append(v.pool, cell)
		v.mu.Unlock()
		done()
	})
	return nil
}

// Consolidate commits the cycle's arrangement. Cells parked on virtual columns
// are off-screen and go back to the pool.
func (v *RowView) Consolidate() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	committed := make([]*Cell, v.columns)
	copy(committed, v.current)
	for column := range v.vacated {
		committed[column] = nil
	}

	var errs []error
	for to, cell := range v.next {
		if reconcile.IsVirtual(to, v.columns) {
			v.pool = append(v.pool, cell)
			v.stats.Discarded++
			continue
		}
		if committed[to] != nil {
			errs = append(errs, fmt.Errorf("%w: column %d", ErrCellConflict, to))
			v.pool = append(v.pool, cell)
			continue
		}
		committed[to] = cell
	}

	v.current = committed
	v.next = make(map[int]*Cell)
	v.vacated = make(map[int]bool)
	v.stats.Consolidations++

	if len(errs) > 0 {
		v.logger.Warn("Row view consolidated with conflicts", zap.Int("row", v.row), zap.Errors("conflicts", errs))
	}
	return errors.Join(errs...)
}

// Slots returns the committed cells by column.
func (v *RowView) Slots() []reconcile.Slot {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]reconcile.Slot, v.columns)
	for i, cell := range v.current {
		if cell != nil {
			out[i] = reconcile.Occupy(cell.Item)
		}
	}
	return out
}

// Items returns the committed items in column order.
func (v *RowView) Items() []reconcile.Item {
	slots := v.Slots()
	items := make([]reconcile.Item, 0, len(slots))
	for _, slot := range slots {
		if slot.Occupied {
			items = append(items, slot.Item)
		}
	}
	return items
}

// PoolSize returns the number of idle cells.
func (v *RowView) PoolSize() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pool)
}

// Stats returns the view's counters.
func (v *RowView) Stats() RowViewStats {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stats
}
