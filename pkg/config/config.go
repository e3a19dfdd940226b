package config

import (
	"github.com/congruence-lab/ccengine/pkg/logging"
	"github.com/congruence-lab/ccengine/pkg/telemetry"
)

// Options configures an Engine's optional ambient collaborators and
// allocation hints. The zero value is valid: a freshly constructed Engine
// logs nothing and records no telemetry.
type Options struct {
	// Logger receives structured log records for add/merge activity. Nil
	// means logging.Discard().
	Logger *logging.Logger

	// Telemetry receives metrics and traces for add/merge activity. Nil
	// means no telemetry is recorded.
	Telemetry *telemetry.Provider

	// ExpectedTerms is a capacity hint forwarded to the interner's and
	// term graph's backing storage. It has no effect on behavior, only on
	// how many reallocations term interning causes.
	ExpectedTerms int

	// DeepTermThreshold is the successor-chain depth, as measured by a
	// cheap single-branch probe, at or past which Engine.Add switches from its
	// naturally recursive implementation to the explicit-work-stack one.
	// Zero means use the package default.
	DeepTermThreshold int
}

// DefaultDeepTermThreshold is used when Options.DeepTermThreshold is zero.
// It is comfortably below the point at which a term's natural recursion
// depth would threaten the goroutine stack, while being high enough that
// ordinary terms never pay for the iterative path's bookkeeping.
const DefaultDeepTermThreshold = 4096

// Default returns an Options with a discarding logger, no telemetry, and the
// package-default deep-term threshold.
func Default() Options {
	return Options{
		Logger:            logging.Discard(),
		DeepTermThreshold: DefaultDeepTermThreshold,
	}
}

// ResolvedDeepTermThreshold returns o.DeepTermThreshold, or
// DefaultDeepTermThreshold if it was left unset.
func (o Options) ResolvedDeepTermThreshold() int {
	if o.DeepTermThreshold <= 0 {
		return DefaultDeepTermThreshold
	}
	return o.DeepTermThreshold
}

// ResolvedLogger returns o.Logger, or a discarding logger if none was set.
func (o Options) ResolvedLogger() *logging.Logger {
	if o.Logger == nil {
		return logging.Discard()
	}
	return o.Logger
}
