// Package loader provides the plugin-like feature loading system.
//
// It allows the application to register features (modules) and mount the enabled
// ones on the HTTP router. Each feature implements the Feature interface, which
// defines its name, whether it is enabled and its route registration logic.
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
// The soul gem feature disables itself when no record database is available, so
// the server still starts without one.
package loader
