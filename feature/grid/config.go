package grid

import (
	"fmt"
	"time"
)

// Config holds the grid dimensions and animation timing.
type Config struct {
	// Rows is the initial number of rows.
	Rows int `mapstructure:"rows" default:"5"`
	// Columns is the initial number of columns.
	Columns int `mapstructure:"columns" default:"5"`
	// AnimationMS is how long each simulated cell animation takes.
	AnimationMS int `mapstructure:"animation_ms" default:"250"`
	// PhaseTimeoutMS aborts a cycle whose phase does not finish in time.
	PhaseTimeoutMS int `mapstructure:"phase_timeout_ms" default:"10000"`
}

// Validate rejects dimensions the grid cannot be built with.
func (c Config) Validate() error {
	if c.Rows < 1 || c.Columns < 1 {
		return fmt.Errorf("rows and columns must be positive, got %dx%d", c.Rows, c.Columns)
	}
	if c.AnimationMS < 0 {
		return fmt.Errorf("animation_ms must not be negative, got %d", c.AnimationMS)
	}
	return nil
}

// AnimationDuration returns the duration of one cell animation.
func (c Config) AnimationDuration() time.Duration {
	return time.Duration(c.AnimationMS) * time.Millisecond
}

// PhaseTimeout returns the phase timeout, zero when disabled.
func (c Config) PhaseTimeout() time.Duration {
	if c.PhaseTimeoutMS <= 0 {
		return 0
	}
	return time.Duration(c.PhaseTimeoutMS) * time.Millisecond
}
