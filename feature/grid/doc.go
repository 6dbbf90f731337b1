// Package grid hosts the movie grid: row views, the service wiring and the
// HTTP API.
//
// A RowView stands in for the presentation layer of one row. It owns one cell
// per visible column and a pool of idle cells. During a cycle it records where
// each cell goes and completes every animation after a fixed delay; on
// Consolidate it commits the new arrangement. Cells sent to a sideboard leave
// the screen and return to the pool; the row receiving an item through its own
// sideboard takes a fresh cell from its pool.
//
// The Service builds the core grid with RowView sinks, puts an update gate in
// front of it and subscribes the gate to the catalog. Resizing rebuilds the
// grid and empties the catalog, so providers deliver the collection again.
//
// # Routes
//
//   - GET  /grid         current state of every row
//   - PUT  /grid/size    resize; 409 while a cycle runs
//   - PUT  /grid/filter  replace the filter
//   - POST /grid/items   merge a batch into the catalog
//   - GET  /grid/cycle   last cycle report (?describe=true adds plan text)
//
// # Usage
//
//	svc, err := grid.NewService(cfg.Grid, catalog.New(log), log)
//	go svc.Run(ctx)
//	mgr.Register(grid.NewFeature(svc))
package grid
