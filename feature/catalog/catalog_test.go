package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"movie-grid/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubscriber struct {
	mu      sync.Mutex
	updates [][]reconcile.ID
}

func (r *recordingSubscriber) CollectionUpdated(items []reconcile.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, reconcile.IDsOf(items))
}

func (r *recordingSubscriber) all() [][]reconcile.ID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]reconcile.ID(nil), r.updates...)
}

type stubProvider struct {
	items []reconcile.Item
	err   error
	calls int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Load(ctx context.Context) ([]reconcile.Item, error) {
	s.calls++
	return s.items, s.err
}

func TestCatalog_MergeNotifiesSortedCollection(t *testing.T) {
	c := New(nil)
	sub := &recordingSubscriber{}
	c.Subscribe(sub)

	c.Insert(2, 1)
	c.Insert(4, 3)

	assert.Equal(t, [][]reconcile.ID{{1, 2}, {1, 2, 3, 4}}, sub.all())
	assert.Equal(t, 4, c.Len())
}

func TestCatalog_MergeReplacesByID(t *testing.T) {
	c := New(nil)
	c.Insert(1, 2)
	got := c.Merge([]reconcile.Item{{ID: 2, Title: "Heat"}})

	require.Len(t, got, 2)
	assert.Equal(t, "Heat", got[1].Title)
	assert.Equal(t, "1", got[0].Title)
}

func TestCatalog_Unsubscribe(t *testing.T) {
	c := New(nil)
	a, b := &recordingSubscriber{}, &recordingSubscriber{}
	c.Subscribe(a)
	c.Subscribe(b)

	c.Insert(1)
	c.Unsubscribe(a)
	c.Insert(2)

	assert.Len(t, a.all(), 1)
	assert.Len(t, b.all(), 2)
}

func TestCatalog_SubscribersGetOwnCopy(t *testing.T) {
	c := New(nil)
	var first []reconcile.Item
	c.Subscribe(subscriberFunc(func(items []reconcile.Item) { first = items }))
	c.Insert(1)

	first[0].Title = "mutated"
	assert.Equal(t, "1", c.Collection()[0].Title)
}

type subscriberFunc func([]reconcile.Item)

func (f subscriberFunc) CollectionUpdated(items []reconcile.Item) { f(items) }

func TestCatalog_Reset(t *testing.T) {
	c := New(nil)
	sub := &recordingSubscriber{}
	c.Subscribe(sub)
	c.Insert(1, 2, 3)

	c.Reset()
	assert.Zero(t, c.Len())
	assert.Len(t, sub.all(), 1)

	c.Insert(9)
	assert.Equal(t, []reconcile.ID{9}, reconcile.IDsOf(c.Collection()))
}

func TestCatalog_Refresh(t *testing.T) {
	c := New(nil)

	n, err := c.Refresh(context.Background(), &stubProvider{items: reconcile.ItemsFromIDs(5, 6)})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = c.Refresh(context.Background(), &stubProvider{})
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = c.Refresh(context.Background(), &stubProvider{err: errors.New("offline")})
	assert.ErrorContains(t, err, "failed to load from stub provider: offline")
	assert.Equal(t, 2, c.Len())
}

func TestCatalog_PollOnce(t *testing.T) {
	c := New(nil)
	p := &stubProvider{items: reconcile.ItemsFromIDs(1)}

	require.NoError(t, c.Poll(context.Background(), p, 0))
	assert.Equal(t, 1, p.calls)
	assert.Equal(t, 1, c.Len())
}

func TestCatalog_PollUntilCancelled(t *testing.T) {
	c := New(nil)
	p := NewSimulatedProvider(6, 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Poll(ctx, p, 5*time.Millisecond) }()

	require.Eventually(t, func() bool { return c.Len() == 6 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poll did not stop")
	}
}
