// Package loader provides the plugin-like feature loading system.
//
// Features register themselves with a Manager and mount their routes when the
// server starts. Each feature implements the Feature interface.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Loading of enabled features via LoadAll()
//
// The grid feature is the only one today; catalog providers are wired through it.
package loader
