package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"movie-grid/core/reconcile"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned for scripts that cannot be run.
var ErrInvalidScript = errors.New("invalid scenario script")

// Size is a grid size.
type Size struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// Expect lists what the grid must show after a step. Unset fields are not
// checked.
type Expect struct {
	// Rows are the ids of each row, top to bottom. Rows past the end of the
	// list must be empty.
	Rows [][]reconcile.ID `yaml:"rows"`
	// Displayed are all shown ids in row-major order.
	Displayed []reconcile.ID `yaml:"displayed"`
	// Count is the number of shown ids.
	Count *int `yaml:"count"`
	// Summary are the action counts of the last cycle.
	Summary *reconcile.PlanSummary `yaml:"summary"`
}

// Step is one scripted action.
type Step struct {
	Add    []reconcile.ID  `yaml:"add"`
	Filter *[]reconcile.ID `yaml:"filter"`
	Resize *Size           `yaml:"resize"`
	// NoWait continues without waiting for the grid to settle, so the next
	// update coalesces with this one.
	NoWait bool    `yaml:"no_wait"`
	Expect *Expect `yaml:"expect"`
}

// Describe returns a short label for the step.
func (s Step) Describe() string {
	switch {
	case s.Add != nil:
		return fmt.Sprintf("add %v", s.Add)
	case s.Filter != nil:
		return fmt.Sprintf("filter %v", *s.Filter)
	case s.Resize != nil:
		return fmt.Sprintf("resize %dx%d", s.Resize.Rows, s.Resize.Columns)
	default:
		return "check"
	}
}

func (s Step) actions() int {
	n := 0
	if s.Add != nil {
		n++
	}
	if s.Filter != nil {
		n++
	}
	if s.Resize != nil {
		n++
	}
	return n
}

// Script is a named sequence of steps on a grid.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Grid        Size   `yaml:"grid"`
	Steps       []Step `yaml:"steps"`
}

// Validate rejects scripts the runner cannot execute.
func (s *Script) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScript)
	}
	if s.Grid.Rows < 1 || s.Grid.Columns < 1 {
		return fmt.Errorf("%w: %s: grid must be at least 1x1, got %dx%d", ErrInvalidScript, s.Name, s.Grid.Rows, s.Grid.Columns)
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: %s: no steps", ErrInvalidScript, s.Name)
	}
	for i, step := range s.Steps {
		switch n := step.actions(); {
		case n > 1:
			return fmt.Errorf("%w: %s: step %d has %d actions", ErrInvalidScript, s.Name, i, n)
		case n == 0 && step.Expect == nil:
			return fmt.Errorf("%w: %s: step %d is empty", ErrInvalidScript, s.Name, i)
		}
		if step.NoWait && step.Expect != nil {
			return fmt.Errorf("%w: %s: step %d expects results without waiting", ErrInvalidScript, s.Name, i)
		}
		if step.Resize != nil && (step.Resize.Rows < 1 || step.Resize.Columns < 1) {
			return fmt.Errorf("%w: %s: step %d resizes to %dx%d", ErrInvalidScript, s.Name, i, step.Resize.Rows, step.Resize.Columns)
		}
	}
	return nil
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads a script from path.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}
