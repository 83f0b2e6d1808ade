// Package loader provides the feature registry of the serve command.
//
// Each read endpoint (manifest, history) is a Feature: it reports whether it is
// enabled for the current configuration and registers its routes when loaded.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// Manager.LoadAll loads the enabled features in registration order and stops at
// the first one that fails.
package loader
