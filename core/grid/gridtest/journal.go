// Package gridtest provides a recording row view for exercising grid cycles
// without a presentation layer.
package gridtest

import (
	"fmt"
	"sync"

	"movie-grid/core/grid"
	"movie-grid/core/reconcile"
)

// Mode controls when recorded animations complete.
type Mode int

const (
	// Immediate completes every animation before the mutator call returns.
	Immediate Mode = iota
	// Async completes every animation from a new goroutine.
	Async
	// Manual holds completions until Release or ReleaseAll.
	Manual
)

// Op names a recorded mutator call.
type Op string

const (
	OpCreate    Op = "create"
	OpTranspose Op = "transpose"
	OpDelete    Op = "delete"
)

// Call is one recorded mutator call.
type Call struct {
	Row  int
	Op   Op
	From int
	To   int
	Item reconcile.Item
}

func (c Call) String() string {
	switch c.Op {
	case OpTranspose:
		return fmt.Sprintf("row %d: transpose %d from %d to %d", c.Row, c.Item.ID, c.From, c.To)
	case OpDelete:
		return fmt.Sprintf("row %d: delete at %d", c.Row, c.From)
	default:
		return fmt.Sprintf("row %d: create %d at %d", c.Row, c.Item.ID, c.To)
	}
}

// Journal records the calls of every row view created by its factory, in the
// order the grid made them.
type Journal struct {
	mu sync.Mutex

	mode           Mode
	calls          []Call
	held           []grid.DoneFunc
	fail           func(Call) error
	consolidations int
	builds         int
}

// NewJournal creates a journal whose animations complete according to mode.
func NewJournal(mode Mode) *Journal {
	return &Journal{mode: mode}
}

// Factory returns a grid.SinkFactory whose row views record into j.
func (j *Journal) Factory() grid.SinkFactory {
	return func(row, columns int) (grid.RowMutator, error) {
		j.mu.Lock()
		j.builds++
		j.mu.Unlock()
		return &recorder{journal: j, row: row, columns: columns}, nil
	}
}

// FailWhen makes mutators refuse calls for which fn returns an error.
func (j *Journal) FailWhen(fn func(Call) error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fail = fn
}

// SetMode changes the completion mode for later calls.
func (j *Journal) SetMode(mode Mode) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.mode = mode
}

// Calls returns the recorded calls.
func (j *Journal) Calls() []Call {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Call, len(j.calls))
	copy(out, j.calls)
	return out
}

// Ops returns the recorded operations in call order.
func (j *Journal) Ops() []Op {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Op, len(j.calls))
	for i, c := range j.calls {
		out[i] = c.Op
	}
	return out
}

// Clear forgets recorded calls and consolidation counts.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.calls = nil
	j.consolidations = 0
}

// Held returns the number of completions waiting for Release.
func (j *Journal) Held() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.held)
}

// Release completes the oldest held animation. It reports whether one was held.
func (j *Journal) Release() bool {
	j.mu.Lock()
	if len(j.held) == 0 {
		j.mu.Unlock()
		return false
	}
	done := j.held[0]
	j.held = j.held[1:]
	j.mu.Unlock()

	done()
	return true
}

// ReleaseAll completes every held animation and returns how many there were.
func (j *Journal) ReleaseAll() int {
	j.mu.Lock()
	held := j.held
	j.held = nil
	j.mu.Unlock()

	for _, done := range held {
		done()
	}
	return len(held)
}

// Consolidations returns how many times row views were consolidated.
func (j *Journal) Consolidations() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.consolidations
}

// Builds returns how many row views the factory created.
func (j *Journal) Builds() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.builds
}

func (j *Journal) record(c Call, done grid.DoneFunc) error {
	j.mu.Lock()
	if j.fail != nil {
		if err := j.fail(c); err != nil {
			j.mu.Unlock()
			return err
		}
	}
	j.calls = append(j.calls, c)
	mode := j.mode
	if mode == Manual {
		j.held = append(j.held, done)
	}
	j.mu.Unlock()

	switch mode {
	case Immediate:
		done()
	case Async:
		go done()
	}
	return nil
}

type recorder struct {
	journal *Journal
	row     int
	columns int
}

func (r *recorder) checkColumn(column int) error {
	if column < 0 || column >= r.columns {
		return fmt.Errorf("column %d out of range [0,%d)", column, r.columns)
	}
	return nil
}

func (r *recorder) CreateCell(column int, item reconcile.Item, done grid.DoneFunc) error {
	if err := r.checkColumn(column); err != nil {
		return err
	}
	return r.journal.record(Call{Row: r.row, Op: OpCreate, From: column, To: column, Item: item}, done)
}

func (r *recorder) TransposeCell(from, to int, incoming reconcile.Slot, done grid.DoneFunc) error {
	if err := grid.ValidateTranspose(from, r.columns, incoming); err != nil {
		return err
	}
	return r.journal.record(Call{Row: r.row, Op: OpTranspose, From: from, To: to, Item: incoming.Item}, done)
}

func (r *recorder) DeleteCell(column int, done grid.DoneFunc) error {
	if err := r.checkColumn(column); err != nil {
		return err
	}
	return r.journal.record(Call{Row: r.row, Op: OpDelete, From: column, To: column}, done)
}

func (r *recorder) Consolidate() error {
	r.journal.mu.Lock()
	defer r.journal.mu.Unlock()
	r.journal.consolidations++
	return nil
}
