// Package gate serializes grid updates.
//
// Collections and filters arrive from any goroutine at any time, but a grid runs
// one animation cycle at a time. The Gate stores the latest values, signals a
// single consumer loop through a one-slot channel and replays whatever is
// pending once the running cycle has consolidated. Intermediate values that were
// superseded before a cycle could pick them up are never shown.
//
// # Filters
//
// A filter persists until it is replaced or the grid is resized. A cycle that was
// triggered only by a filter change reconciles against the collection the grid
// applied last, so items removed by a filter do not come back when the filter is
// cleared. They return with the next collection from the data source.
//
// # Usage
//
//	g := gate.New(grid, logger)
//	go g.Run(ctx)
//
//	g.OnNewCollection(items)
//	g.SetFilter(reconcile.NewIDSet(42))
//	err := g.WaitIdle(ctx)
package gate
