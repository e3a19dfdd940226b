// Package config provides the Options the engine uses to wire in optional
// ambient collaborators — a logger and a telemetry provider.
//
// # Overview
//
// Options has no validation ladder: every field is optional wiring (a nil
// Logger or Telemetry is always valid), so there is nothing to reject at
// construction time. Options also never reads environment variables — the
// engine reads none.
package config
