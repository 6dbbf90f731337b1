// Package catalog is the data source of the movie grid.
//
// A Catalog merges incoming batches of items into an id-keyed set and notifies
// its subscribers with the full collection, sorted by id, after every batch.
// Batches only add or update items; items leave the grid through filters.
//
// # Providers
//
// Batches come from a Provider:
//   - SimulatedProvider: hands out generated ids in fixed-size batches.
//   - DBProvider: reads a movies table through GORM (MySQL or SQLite).
//   - StorageProvider: reads a JSON document from S3/MinIO.
//
// Remote providers are wrapped in a CachedProvider, which keeps the last load
// for a TTL and collapses concurrent loads with singleflight.
//
// # Document Format
//
// The storage object holds
//
//	{"movies": [{"id": 1, "title": "Heat"}, {"id": "2"}]}
//
// Ids may be numbers or numeric strings. A missing title defaults to the id.
//
// # Usage
//
//	c := catalog.New(logger)
//	c.Subscribe(gate)
//	provider, err := catalog.NewProvider(cfg.Catalog, catalog.Sources{DB: db})
//	go c.Poll(ctx, provider, time.Minute)
package catalog
