// Package logger provides a structured logging facility based on Zap.
//
// It builds a logger for development or production depending on the configured
// level and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID (request id) from a Fiber context and
// attaches it to the logger, so that every entry written while serving a grid
// request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// Debug level switches to the development config, which also enables the per-row
// plan descriptions logged by the grid.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Resize failed", zap.Error(err))
package logger
