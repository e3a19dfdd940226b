package closure

import (
	"github.com/congruence-lab/ccengine/internal/termgraph"
	"github.com/congruence-lab/ccengine/internal/token"
	"github.com/congruence-lab/ccengine/internal/unionfind"
)

// Term is the subset of the public Key contract the closure algorithm
// needs: shallow equality (outermost constructor only) and the ordered,
// deterministic successor sequence.
type Term[K any] interface {
	ShallowEqual(other K) bool
	Successors() []K
}

// InternFunc allocates (or looks up) a token for key, coordinating the
// interner, the term graph, and the union-find table so that all three
// agree on the index. It is supplied by the caller (ccengine.Engine) rather
// than owned by this package, since only the caller has simultaneous
// visibility of all three allocators.
type InternFunc[K any] func(key K) (isNew bool, tok token.Token)

// Observer receives notifications about closure-internal events. It exists
// purely for optional telemetry; no algorithmic decision depends on it. A
// nil Observer is always safe to use.
type Observer interface {
	// MergeAttempted is called at the start of every Merge invocation,
	// including the ones MaybeMerge makes recursively, before the
	// idempotence check, whether or not the merge was already in effect.
	MergeAttempted(u, v token.Token)
	// CandidateExamined is called once per MaybeMerge invocation.
	CandidateExamined()
}

// Closure runs the incremental congruence-closure protocol over a term
// graph and a union-find table. It holds no state of its
// own beyond its collaborators and an optional Observer; constructing one
// is cheap enough to do per public call.
type Closure[K Term[K]] struct {
	graph  *termgraph.Graph[K]
	uf     *unionfind.UnionFind
	intern InternFunc[K]
	obs    Observer
}

// New constructs a Closure over the given collaborators. obs may be nil.
func New[K Term[K]](graph *termgraph.Graph[K], uf *unionfind.UnionFind, intern InternFunc[K], obs Observer) *Closure[K] {
	return &Closure[K]{graph: graph, uf: uf, intern: intern, obs: obs}
}

// Add interns key and, if it is new, recursively interns its successors
// and installs the resulting edges, invoking MaybeMerge against each
// successor's predecessor snapshot. Add recurses
// on the native call stack to a depth equal to the term's depth; callers
// expecting adversarially deep terms should use AddIterative instead.
func (c *Closure[K]) Add(key K) token.Token {
	isNew, tok := c.intern(key)
	if !isNew {
		return tok
	}

	succs := key.Successors()
	succTokens := make([]token.Token, len(succs))
	for i, sKey := range succs {
		succTokens[i] = c.Add(sKey)
	}

	for _, sTok := range succTokens {
		// Snapshot the predecessors of the successor's whole class before
		// installing this edge, so the new node is never compared against
		// itself via the edge it is about to add. Any existing parent of an
		// equivalent subterm is a candidate for merging with the new node.
		pBefore := c.AllPreds(sTok)
		c.graph.AddEdge(tok, sTok)
		for _, p := range pBefore {
			c.MaybeMerge(tok, p)
		}
	}

	return tok
}

// AddIterative is behaviorally equivalent to Add but uses an explicit
// work-stack instead of native recursion, for
// adversarially deep terms. It interns successors in the same bottom-up
// order Add's recursion would visit them in, then replays each node's
// edge-install loop exactly as Add does once that node's own successors
// are all known tokens.
func (c *Closure[K]) AddIterative(key K) token.Token {
	isNew, rootTok := c.intern(key)
	if !isNew {
		return rootTok
	}

	type frame struct {
		tok     token.Token
		succs   []K
		nextIdx int
	}

	stack := []*frame{{tok: rootTok, succs: key.Successors()}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.nextIdx < len(top.succs) {
			sKey := top.succs[top.nextIdx]
			top.nextIdx++
			if isNewChild, childTok := c.intern(sKey); isNewChild {
				stack = append(stack, &frame{tok: childTok, succs: sKey.Successors()})
			}
			continue
		}

		for _, sKey := range top.succs {
			_, sTok := c.intern(sKey) // already interned; returns its token
			pBefore := c.AllPreds(sTok)
			c.graph.AddEdge(top.tok, sTok)
			for _, p := range pBefore {
				c.MaybeMerge(top.tok, p)
			}
		}

		stack = stack[:len(stack)-1]
	}

	return rootTok
}

// Merge asserts that u and v denote the same term, propagating the
// resulting congruence to any parent terms that become congruent as a
// result.
func (c *Closure[K]) Merge(u, v token.Token) {
	if c.obs != nil {
		c.obs.MergeAttempted(u, v)
	}

	if c.uf.Unioned(u, v) {
		return
	}

	// Snapshot predecessor sets before the union: the union changes class
	// membership, so U and V must be collected from the pre-union classes.
	U := c.AllPreds(u)
	V := c.AllPreds(v)

	c.uf.Union(u, v)

	for _, pu := range U {
		for _, pv := range V {
			c.MaybeMerge(pu, pv)
		}
	}
}

// MaybeMerge merges pu and pv only if they are not already unioned, are
// shallow-equal, and are congruent (their successors are pairwise
// unioned). On success it recurses into Merge.
func (c *Closure[K]) MaybeMerge(pu, pv token.Token) {
	if c.obs != nil {
		c.obs.CandidateExamined()
	}

	if c.uf.Unioned(pu, pv) {
		return
	}
	if !c.graph.NodeData(pu).ShallowEqual(c.graph.NodeData(pv)) {
		return
	}
	if !c.Congruent(pu, pv) {
		return
	}
	c.Merge(pu, pv)
}

// Congruent reports whether pu and pv have the same number of successors
// and every positionally-matching pair of successors is already unioned.
// Comparison is positional, not set-based: f(a, b) and f(b, a) are
// congruent only if a and b are themselves unioned.
func (c *Closure[K]) Congruent(pu, pv token.Token) bool {
	su := c.graph.SuccessorNodes(pu)
	sv := c.graph.SuccessorNodes(pv)
	if len(su) != len(sv) {
		return false
	}
	for i := range su {
		if !c.uf.Unioned(su[i], sv[i]) {
			return false
		}
	}
	return true
}

// AllPreds flat-maps every token in u's current equivalence class through
// PredecessorNodes. Duplicates may occur; MaybeMerge is idempotent on
// already-unioned pairs so callers do not need to deduplicate.
func (c *Closure[K]) AllPreds(u token.Token) []token.Token {
	var preds []token.Token
	for _, member := range c.uf.UnionedKeys(u) {
		preds = append(preds, c.graph.PredecessorNodes(member)...)
	}
	return preds
}
