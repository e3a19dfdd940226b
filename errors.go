package ccengine

import "fmt"

// IndexMismatchError reports that the interner, the term graph, and the
// union-find table allocated different tokens for what should have been the
// same new key. This can only happen from a bug in Engine's own bookkeeping
// (the three collaborators are never exposed for independent mutation), so
// it is never returned from a public method — it is the payload of a panic,
// raised the moment the mismatch is detected, rather than surfaced as an
// ordinary error a caller might reasonably try to recover from.
type IndexMismatchError struct {
	Interner  int32
	Graph     int32
	UnionFind int32
}

func (e *IndexMismatchError) Error() string {
	return fmt.Sprintf("ccengine: index mismatch: interner=%d graph=%d unionfind=%d", e.Interner, e.Graph, e.UnionFind)
}

func checkIndexCoincidence(internerTok, graphTok, unionFindTok int32) {
	if internerTok != graphTok || graphTok != unionFindTok {
		panic(&IndexMismatchError{Interner: internerTok, Graph: graphTok, UnionFind: unionFindTok})
	}
}
