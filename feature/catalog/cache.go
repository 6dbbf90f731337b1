package catalog

import (
	"context"
	"slices"
	"sync"
	"time"

	"movie-grid/core/reconcile"

	"golang.org/x/sync/singleflight"
)

// cacheEntry holds one provider load.
type cacheEntry struct {
	items []reconcile.Item
	built time.Time
	ttl   time.Duration
}

func (e *cacheEntry) isExpired(now time.Time) bool {
	if e.ttl == 0 {
		return true
	}
	return now.Sub(e.built) > e.ttl
}

// CachedProvider keeps the last load of a provider for a TTL. Concurrent loads
// of an expired entry share one call to the wrapped provider.
type CachedProvider struct {
	inner Provider
	ttl   time.Duration
	now   func() time.Time

	mu    sync.RWMutex
	entry *cacheEntry
	sf    singleflight.Group
}

// NewCachedProvider wraps inner with a cache of the given lifetime.
func NewCachedProvider(inner Provider, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, ttl: ttl, now: time.Now}
}

func (p *CachedProvider) Name() string {
	return p.inner.Name()
}

func (p *CachedProvider) Load(ctx context.Context) ([]reconcile.Item, error) {
	if items, ok := p.fresh(); ok {
		return items, nil
	}

	result, err, _ := p.sf.Do(p.inner.Name(), func() (any, error) {
		if items, ok := p.fresh(); ok {
			return items, nil
		}

		items, err := p.inner.Load(ctx)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.entry = &cacheEntry{items: items, built: p.now(), ttl: p.ttl}
		p.mu.Unlock()
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	return slices.Clone(result.([]reconcile.Item)), nil
}

func (p *CachedProvider) fresh() ([]reconcile.Item, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.entry == nil || p.entry.isExpired(p.now()) {
		return nil, false
	}
	return slices.Clone(p.entry.items), true
}

// Invalidate drops the cached load.
func (p *CachedProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entry = nil
}
