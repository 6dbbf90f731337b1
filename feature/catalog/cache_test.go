package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"movie-grid/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func (p *countingProvider) Name() string { return "counting" }

func (p *countingProvider) Load(ctx context.Context) ([]reconcile.Item, error) {
	n := p.calls.Add(1)
	if p.release != nil {
		<-p.release
	}
	if p.err != nil {
		return nil, p.err
	}
	return reconcile.ItemsFromIDs(reconcile.ID(n)), nil
}

func TestCachedProvider_ServesUntilExpired(t *testing.T) {
	inner := &countingProvider{}
	p := NewCachedProvider(inner, time.Minute)
	now := time.Now()
	p.now = func() time.Time { return now }

	first, err := p.Load(context.Background())
	require.NoError(t, err)
	second, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, inner.calls.Load())

	now = now.Add(2 * time.Minute)
	third, err := p.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []reconcile.ID{2}, reconcile.IDsOf(third))
	assert.Equal(t, "counting", p.Name())
}

func TestCachedProvider_Invalidate(t *testing.T) {
	inner := &countingProvider{}
	p := NewCachedProvider(inner, time.Hour)

	_, err := p.Load(context.Background())
	require.NoError(t, err)
	p.Invalidate()
	_, err = p.Load(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, inner.calls.Load())
}

func TestCachedProvider_ErrorsAreNotCached(t *testing.T) {
	inner := &countingProvider{err: errors.New("timeout")}
	p := NewCachedProvider(inner, time.Hour)

	_, err := p.Load(context.Background())
	assert.Error(t, err)
	_, err = p.Load(context.Background())
	assert.Error(t, err)
	assert.EqualValues(t, 2, inner.calls.Load())
}

func TestCachedProvider_ConcurrentLoadsShareOneCall(t *testing.T) {
	inner := &countingProvider{release: make(chan struct{})}
	p := NewCachedProvider(inner, time.Hour)

	const n = 8
	var wg sync.WaitGroup
	results := make([][]reconcile.Item, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = p.Load(context.Background())
		}(i)
	}

	require.Eventually(t, func() bool { return inner.calls.Load() == 1 }, time.Second, time.Millisecond)
	// Give the other callers time to join the in-flight load.
	time.Sleep(20 * time.Millisecond)
	close(inner.release)
	wg.Wait()

	assert.EqualValues(t, 1, inner.calls.Load())
	for _, items := range results {
		assert.Equal(t, []reconcile.ID{1}, reconcile.IDsOf(items))
	}
}
