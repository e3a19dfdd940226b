package unionfind

import "errors"

// Sentinel errors for union-find operations. The public ccengine API never
// surfaces these — every token it passes down was just allocated or looked
// up by the interner, so these only fire against internal-package misuse,
// which is exactly what the tests for this package exercise.
var (
	// ErrUnknownToken is returned when an operation is given a token past
	// the end of the allocated slots.
	ErrUnknownToken = errors.New("unionfind: unknown token")
)
