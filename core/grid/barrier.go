package grid

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// barrier counts animations started during a phase and releases waiters once
// the phase is sealed and every started animation has completed.
//
// The number of animations is not known up front, so the barrier is a counter
// rather than a fixed-size join.
type barrier struct {
	mu      sync.Mutex
	pending int
	sealed  bool
	zero    chan struct{}
	phase   string
	logger  *zap.Logger
}

func newBarrier(phase string, logger *zap.Logger) *barrier {
	return &barrier{
		zero:   make(chan struct{}),
		phase:  phase,
		logger: logger,
	}
}

// track registers one animation and returns its completion callback. The
// callback is idempotent: later calls are logged and dropped.
func (b *barrier) track() DoneFunc {
	b.mu.Lock()
	b.pending++
	b.mu.Unlock()

	var fired atomic.Bool
	return func() {
		if !fired.CompareAndSwap(false, true) {
			b.logger.Warn("Animation completion signaled more than once", zap.String("phase", b.phase))
			return
		}
		b.release()
	}
}

func (b *barrier) release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending--
	if b.sealed && b.pending == 0 {
		close(b.zero)
	}
}

// seal marks the end of the starting stage. No track calls may follow.
func (b *barrier) seal() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sealed {
		return
	}
	b.sealed = true
	if b.pending == 0 {
		close(b.zero)
	}
}

// outstanding returns the number of animations not yet completed.
func (b *barrier) outstanding() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pending
}

// wait blocks until the sealed barrier drains or ctx is done.
func (b *barrier) wait(ctx context.Context) error {
	select {
	case <-b.zero:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
