package termgraph

import "errors"

// Sentinel errors for term graph operations. As with internal/unionfind,
// ccengine never triggers these through normal use; they exist for this
// package's own tests and for any future caller that indexes the graph
// directly.
var (
	// ErrUnknownNode is the panic value when an operation is given a node
	// index outside the allocated nodes.
	ErrUnknownNode = errors.New("termgraph: unknown node")
)
