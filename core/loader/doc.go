// Package loader wires optional features into the HTTP server.
//
// A feature bundles a service and its routes behind the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The serve command registers every feature with a Manager and calls
// LoadAll once the middleware chain is in place. Disabled features are
// skipped with a log line; the first load failure aborts startup. Compare
// and history are the two features, each developed and tested in isolation.
package loader
