package catalog

import (
	"context"
	"fmt"
	"sync"

	"movie-grid/core/reconcile"
	"movie-grid/core/storage"

	"gorm.io/gorm"
)

// Provider loads a batch of items for the catalog.
type Provider interface {
	Name() string
	Load(ctx context.Context) ([]reconcile.Item, error)
}

// Sources holds the backends remote providers read from. Unused ones may be nil.
type Sources struct {
	DB      *gorm.DB
	Storage storage.Client
	Bucket  string
}

// NewProvider builds the provider selected by cfg.
func NewProvider(cfg Config, src Sources) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var p Provider
	switch cfg.Provider {
	case ProviderSimulated:
		return NewSimulatedProvider(cfg.SimulatedTotal, cfg.SimulatedBatch), nil
	case ProviderDatabase:
		if src.DB == nil {
			return nil, fmt.Errorf("%s provider needs a database connection", cfg.Provider)
		}
		p = NewDBProvider(src.DB, cfg.Table)
	case ProviderStorage:
		if src.Storage == nil {
			return nil, fmt.Errorf("%s provider needs a storage client", cfg.Provider)
		}
		p = NewStorageProvider(src.Storage, src.Bucket, cfg.Object)
	}

	if ttl := cfg.CacheTTL(); ttl > 0 {
		p = NewCachedProvider(p, ttl)
	}
	return p, nil
}

// SimulatedProvider hands out the ids 1..total in batches, one batch per Load.
// Once exhausted it returns empty batches.
type SimulatedProvider struct {
	mu    sync.Mutex
	next  int
	total int
	batch int
}

// NewSimulatedProvider creates a provider for ids 1..total in batches of batch.
func NewSimulatedProvider(total, batch int) *SimulatedProvider {
	if batch <= 0 {
		batch = 1
	}
	return &SimulatedProvider{next: 1, total: total, batch: batch}
}

func (p *SimulatedProvider) Name() string {
	return ProviderSimulated
}

func (p *SimulatedProvider) Load(ctx context.Context) ([]reconcile.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	var ids []reconcile.ID
	for len(ids) < p.batch && p.next <= p.total {
		ids = append(ids, reconcile.ID(p.next))
		p.next++
	}
	return reconcile.ItemsFromIDs(ids...), nil
}

// Remaining returns how many ids have not been handed out yet.
func (p *SimulatedProvider) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return max(0, p.total-p.next+1)
}
