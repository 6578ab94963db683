// Package logging provides a minimal logging interface and adapters for the
// Mesh client.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) the client uses to record request activity. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (the client default)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "text", false)
//	client, err := heuristmesh.New(func(o *heuristmesh.Options) {
//		o.Logger = logger
//	})
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
