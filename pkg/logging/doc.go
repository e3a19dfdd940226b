// Package logging provides structured logging for the congruence closure
// engine. It wraps Go's built-in log/slog package.
//
// # Overview
//
// A Logger is attached to an Engine explicitly through
// pkg/config.Options.Logger; an Engine constructed without one uses
// Discard, so a library caller who never opts into logging observes no
// output at all. This matters more here than it would for a networked
// service: the engine has no I/O surface of its own, and a library that
// wrote to stdout by default would violate that expectation the moment it
// was imported.
//
// # Usage
//
//	logger := logging.New(logging.DefaultConfig())
//	engine, _ := ccengine.NewWithOptions[MyKey](config.Options{Logger: logger})
package logging
