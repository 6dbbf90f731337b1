package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"movie-grid/core/reconcile"

	"go.uber.org/zap"
)

// Subscriber receives the full sorted collection after every merged batch.
type Subscriber interface {
	CollectionUpdated(items []reconcile.Item)
}

// Catalog merges item batches and fans the collection out to subscribers.
type Catalog struct {
	// notifyMu keeps notifications in merge order.
	notifyMu sync.Mutex

	mu          sync.Mutex
	items       map[reconcile.ID]reconcile.Item
	subscribers []Subscriber
	logger      *zap.Logger
}

// New creates an empty catalog.
func New(logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{
		items:  make(map[reconcile.ID]reconcile.Item),
		logger: logger,
	}
}

// Subscribe adds s to the subscribers notified on every batch.
func (c *Catalog) Subscribe(s Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, s)
}

// Unsubscribe removes s. Unknown subscribers are ignored.
func (c *Catalog) Unsubscribe(s Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = slices.DeleteFunc(c.subscribers, func(other Subscriber) bool {
		return other == s
	})
}

// Merge adds or replaces items by id, notifies subscribers and returns the
// merged collection.
func (c *Catalog) Merge(items []reconcile.Item) []reconcile.Item {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	for _, item := range items {
		c.items[item.ID] = item
	}
	collection := c.sortedLocked()
	subscribers := slices.Clone(c.subscribers)
	c.mu.Unlock()

	c.logger.Debug("Catalog batch merged",
		zap.Int("batch", len(items)),
		zap.Int("collection", len(collection)),
	)

	for _, s := range subscribers {
		s.CollectionUpdated(slices.Clone(collection))
	}
	return collection
}

// Insert merges items built from ids with their default titles.
func (c *Catalog) Insert(ids ...reconcile.ID) []reconcile.Item {
	return c.Merge(reconcile.ItemsFromIDs(ids...))
}

// Reset forgets every item without notifying subscribers.
func (c *Catalog) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[reconcile.ID]reconcile.Item)
}

// Collection returns the current collection sorted by id.
func (c *Catalog) Collection() []reconcile.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortedLocked()
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *Catalog) sortedLocked() []reconcile.Item {
	out := make([]reconcile.Item, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, item)
	}
	slices.SortFunc(out, reconcile.Item.Compare)
	return out
}

// Refresh loads one batch from p and merges it. An empty batch is not merged.
func (c *Catalog) Refresh(ctx context.Context, p Provider) (int, error) {
	start := time.Now()
	items, err := p.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load from %s provider: %w", p.Name(), err)
	}
	if len(items) == 0 {
		return 0, nil
	}

	c.Merge(items)
	c.logger.Info("Catalog refreshed",
		zap.String("provider", p.Name()),
		zap.Int("items", len(items)),
		zap.Duration("duration", time.Since(start)),
	)
	return len(items), nil
}

// Poll refreshes from p immediately and then every interval until ctx is done.
// Load errors are logged and retried on the next tick.
func (c *Catalog) Poll(ctx context.Context, p Provider, interval time.Duration) error {
	if _, err := c.Refresh(ctx, p); err != nil {
		c.logger.Warn("Catalog refresh failed", zap.String("provider", p.Name()), zap.Error(err))
	}
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := c.Refresh(ctx, p); err != nil {
				c.logger.Warn("Catalog refresh failed", zap.String("provider", p.Name()), zap.Error(err))
			}
		}
	}
}
