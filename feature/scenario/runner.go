package scenario

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	core "movie-grid/core/grid"
	"movie-grid/core/reconcile"
	"movie-grid/feature/catalog"
	"movie-grid/feature/grid"
	"movie-grid/feature/integrity/checks"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StepResult is the outcome of one step.
type StepResult struct {
	Index    int              `json:"index"`
	Action   string           `json:"action"`
	Rows     [][]reconcile.ID `json:"rows"`
	Failures []string         `json:"failures,omitempty"`
}

// Result is the outcome of a script.
type Result struct {
	Name   string       `json:"name"`
	Steps  []StepResult `json:"steps"`
	Cycles int          `json:"cycles"`
	Errors int          `json:"errors"`
}

// Passed reports whether every check held.
func (r *Result) Passed() bool {
	return len(r.Failures()) == 0
}

// Failures returns every failed check prefixed with its step.
func (r *Result) Failures() []string {
	var out []string
	for _, s := range r.Steps {
		for _, f := range s.Failures {
			out = append(out, fmt.Sprintf("step %d (%s): %s", s.Index, s.Action, f))
		}
	}
	return out
}

// Runner executes scripts against a fresh grid stack.
type Runner struct {
	logger      *zap.Logger
	animation   time.Duration
	stepTimeout time.Duration
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithAnimation makes row views animate for d instead of completing at once.
func WithAnimation(d time.Duration) RunnerOption {
	return func(r *Runner) { r.animation = d }
}

// WithStepTimeout bounds how long a step may take to settle.
func WithStepTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) { r.stepTimeout = d }
}

// NewRunner creates a runner.
func NewRunner(logger *zap.Logger, opts ...RunnerOption) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Runner{logger: logger, stepTimeout: 10 * time.Second}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes s. Failed checks are reported in the result; the error is
// reserved for steps that could not run.
func (r *Runner) Run(ctx context.Context, s *Script) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	log := r.logger.With(zap.String("scenario", s.Name))
	cat := catalog.New(log.Named("catalog"))
	svc, err := grid.NewService(grid.Config{
		Rows:           s.Grid.Rows,
		Columns:        s.Grid.Columns,
		AnimationMS:    int(r.animation / time.Millisecond),
		PhaseTimeoutMS: int(r.stepTimeout / time.Millisecond),
	}, cat, log)
	if err != nil {
		return nil, err
	}

	var cycles, cycleErrors atomic.Int32
	svc.OnCycle(func(_ *core.CycleReport, err error) {
		if err != nil {
			cycleErrors.Add(1)
			return
		}
		cycles.Add(1)
	})

	loopCtx, stop := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(loopCtx)
	g.Go(func() error { return svc.Run(gctx) })

	result := &Result{Name: s.Name}
	runErr := r.runSteps(ctx, svc, s, result)

	stop()
	if err := g.Wait(); err != nil && runErr == nil {
		runErr = err
	}

	result.Cycles = int(cycles.Load())
	result.Errors = int(cycleErrors.Load())
	log.Info("Scenario finished",
		zap.Bool("passed", result.Passed()),
		zap.Int("cycles", result.Cycles),
		zap.Int("cycle_errors", result.Errors),
	)
	return result, runErr
}

func (r *Runner) runSteps(ctx context.Context, svc *grid.Service, s *Script, result *Result) error {
	for i, step := range s.Steps {
		if err := r.apply(svc, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Describe(), err)
		}
		if step.NoWait {
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, r.stepTimeout)
		err := svc.WaitIdle(waitCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("step %d (%s) did not settle: %w", i, step.Describe(), err)
		}

		sr := StepResult{Index: i, Action: step.Describe(), Rows: rowIDs(svc)}
		sr.Failures = append(sr.Failures, checks.CheckGrid(svc.State()).Problems...)
		if step.Expect != nil {
			sr.Failures = append(sr.Failures, checkExpect(svc, step.Expect, sr.Rows)...)
		}
		for _, f := range sr.Failures {
			r.logger.Warn("Scenario check failed", zap.String("scenario", s.Name), zap.Int("step", i), zap.String("failure", f))
		}
		result.Steps = append(result.Steps, sr)
	}
	return nil
}

func (r *Runner) apply(svc *grid.Service, step Step) error {
	switch {
	case step.Add != nil:
		svc.AddItems(reconcile.ItemsFromIDs(step.Add...))
	case step.Filter != nil:
		svc.SetFilter(*step.Filter)
	case step.Resize != nil:
		return svc.Resize(step.Resize.Rows, step.Resize.Columns)
	}
	return nil
}

func rowIDs(svc *grid.Service) [][]reconcile.ID {
	views := svc.RowViews()
	rows := make([][]reconcile.ID, len(views))
	for i, view := range views {
		rows[i] = reconcile.IDsOf(view.Items())
	}
	return rows
}

func checkExpect(svc *grid.Service, exp *Expect, rows [][]reconcile.ID) []string {
	var failures []string

	if exp.Rows != nil {
		for i, got := range rows {
			var want []reconcile.ID
			if i < len(exp.Rows) {
				want = exp.Rows[i]
			}
			if !slices.Equal(got, want) {
				failures = append(failures, fmt.Sprintf("row %d: got %v, want %v", i, got, want))
			}
		}
		if len(exp.Rows) > len(rows) {
			failures = append(failures, fmt.Sprintf("expected %d rows, grid has %d", len(exp.Rows), len(rows)))
		}
	}

	var flat []reconcile.ID
	for _, row := range rows {
		flat = append(flat, row...)
	}
	if exp.Displayed != nil && !slices.Equal(flat, exp.Displayed) {
		failures = append(failures, fmt.Sprintf("displayed %v, want %v", flat, exp.Displayed))
	}
	if exp.Count != nil && len(flat) != *exp.Count {
		failures = append(failures, fmt.Sprintf("displayed %d ids, want %d", len(flat), *exp.Count))
	}

	if exp.Summary != nil {
		last := svc.LastCycle()
		switch {
		case last == nil:
			failures = append(failures, "no cycle has run")
		case last.Summary.PlanSummary != *exp.Summary:
			failures = append(failures, fmt.Sprintf("last cycle summary %+v, want %+v", last.Summary.PlanSummary, *exp.Summary))
		}
	}
	return failures
}
