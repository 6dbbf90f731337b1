package catalog

import (
	"context"
	"testing"

	"movie-grid/core/database"
	"movie-grid/core/reconcile"
	"movie-grid/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedProvider_Batches(t *testing.T) {
	p := NewSimulatedProvider(5, 2)
	ctx := context.Background()

	var batches [][]reconcile.ID
	for i := 0; i < 4; i++ {
		items, err := p.Load(ctx)
		require.NoError(t, err)
		batches = append(batches, reconcile.IDsOf(items))
	}

	assert.Equal(t, [][]reconcile.ID{{1, 2}, {3, 4}, {5}, {}}, batches)
	assert.Zero(t, p.Remaining())
}

func TestSimulatedProvider_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSimulatedProvider(3, 1).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewProvider(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	base := Config{Table: "movies", Object: "movies.json", SimulatedTotal: 3, SimulatedBatch: 1}

	tests := []struct {
		name     string
		provider string
		ttl      int
		src      Sources
		wantType any
		wantErr  string
	}{
		{name: "Simulated", provider: ProviderSimulated, ttl: 30, wantType: &SimulatedProvider{}},
		{name: "DatabaseCached", provider: ProviderDatabase, ttl: 30, src: Sources{DB: db}, wantType: &CachedProvider{}},
		{name: "DatabaseUncached", provider: ProviderDatabase, src: Sources{DB: db}, wantType: &DBProvider{}},
		{name: "Storage", provider: ProviderStorage, src: Sources{Storage: new(mocks.Client), Bucket: "catalog"}, wantType: &StorageProvider{}},
		{name: "DatabaseMissing", provider: ProviderDatabase, wantErr: "needs a database connection"},
		{name: "StorageMissing", provider: ProviderStorage, wantErr: "needs a storage client"},
		{name: "Unknown", provider: "ftp", wantErr: "unknown provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Provider = tt.provider
			cfg.CacheTTLSeconds = tt.ttl

			p, err := NewProvider(cfg, tt.src)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, p)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{Provider: ProviderSimulated, SimulatedBatch: 2}.Validate())
	assert.Error(t, Config{Provider: ProviderSimulated}.Validate())
	assert.Error(t, Config{Provider: ProviderDatabase}.Validate())
	assert.Error(t, Config{Provider: ProviderStorage}.Validate())
	assert.Error(t, Config{Provider: ProviderDatabase, Table: "movies", CacheTTLSeconds: -1}.Validate())
	assert.Zero(t, Config{}.PollInterval())
}
