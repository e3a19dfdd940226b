package ccengine

import (
	"context"

	"github.com/congruence-lab/ccengine/internal/closure"
	"github.com/congruence-lab/ccengine/internal/interner"
	"github.com/congruence-lab/ccengine/internal/termgraph"
	"github.com/congruence-lab/ccengine/internal/token"
	"github.com/congruence-lab/ccengine/internal/unionfind"
	"github.com/congruence-lab/ccengine/pkg/config"
	"github.com/congruence-lab/ccengine/pkg/logging"
	"github.com/congruence-lab/ccengine/pkg/telemetry"
)

// Token identifies a term that has been added to an Engine. Tokens are
// dense and stable: the same term always yields the same Token, and tokens
// are assigned in the order terms are first seen.
type Token = token.Token

// Stats summarizes an Engine's current size.
type Stats struct {
	Terms              int
	Edges              int
	EquivalenceClasses int
}

// Engine maintains an incremental congruence closure over a growing set of
// terms of type K. The zero value is not usable; construct with New or
// NewWithOptions.
type Engine[K Key[K]] struct {
	interner *interner.Interner[K]
	graph    *termgraph.Graph[K]
	uf       *unionfind.UnionFind
	cc       *closure.Closure[K]
	obs      *engineObserver

	logger            *logging.Logger
	telemetry         *telemetry.Provider
	deepTermThreshold int
}

// engineObserver implements closure.Observer for an Engine by counting the
// MaybeMerge candidates examined, which Merge reports to the telemetry
// provider. A single instance is reused for the life of an Engine;
// its per-Merge propagation-step counter is reset at the start of each
// top-level Merge call and read back once Merge returns.
type engineObserver struct {
	steps int
}

func (o *engineObserver) MergeAttempted(u, v token.Token) {}

func (o *engineObserver) CandidateExamined() {
	o.steps++
}

// New constructs an Engine with no logging and no telemetry.
func New[K Key[K]]() *Engine[K] {
	e, err := NewWithOptions[K](config.Default())
	if err != nil {
		// config.Default() never produces options NewWithOptions rejects.
		panic(err)
	}
	return e
}

// NewWithOptions constructs an Engine wired to the logger, telemetry
// provider, and allocation hints in opts.
func NewWithOptions[K Key[K]](opts config.Options) (*Engine[K], error) {
	e := &Engine[K]{
		interner:          interner.New[K](opts.ExpectedTerms),
		graph:             termgraph.New[K](opts.ExpectedTerms),
		uf:                unionfind.New(opts.ExpectedTerms),
		obs:               &engineObserver{},
		logger:            opts.ResolvedLogger(),
		telemetry:         opts.Telemetry,
		deepTermThreshold: opts.ResolvedDeepTermThreshold(),
	}
	e.cc = closure.New[K](e.graph, e.uf, e.internOrAllocate, e.obs)
	return e, nil
}

// internOrAllocate is the single entry point at which a new key is ever
// given a token. It is shared by every allocator (interner, graph,
// union-find) so that the three stay in lockstep, and it is the only place
// in the Engine that has simultaneous visibility into all three to assert
// that lockstep held.
func (e *Engine[K]) internOrAllocate(key K) (isNew bool, tok token.Token) {
	isNew, tok = e.interner.Intern(key)
	if !isNew {
		return false, tok
	}

	graphTok := e.graph.AddNode(key)
	ufTok := e.uf.NewKey()
	checkIndexCoincidence(int32(tok), int32(graphTok), int32(ufTok))

	e.logger.Debugf("interned new term, token=%d", tok)
	if e.telemetry != nil {
		e.telemetry.RecordTokenInterned(context.Background())
	}
	return true, tok
}

// startSpan opens a span named name on the configured telemetry provider's
// tracer and returns a function that ends it. It is a no-op, safe to call
// unconditionally, when no provider is configured or tracing was disabled.
func (e *Engine[K]) startSpan(name string) func() {
	if e.telemetry == nil {
		return func() {}
	}
	tracer := e.telemetry.Tracer()
	if tracer == nil {
		return func() {}
	}
	_, span := tracer.Start(context.Background(), name)
	return span.End
}

// Add interns key, and every not-yet-seen successor of key, transitively,
// propagating any congruences the new edges induce. It returns key's token,
// whether or not key was already present.
func (e *Engine[K]) Add(key K) Token {
	defer e.startSpan("ccengine.add")()
	if e.deepEnough(key) {
		return e.cc.AddIterative(key)
	}
	return e.cc.Add(key)
}

// deepEnough reports whether key's successor chain is long enough to
// warrant the iterative Add path, by walking a single branch (always the
// first successor) until it bottoms out or reaches the threshold. This is
// a cheap heuristic, not an exact depth count: a term that is shallow along
// its first-successor branch but deep along another still uses the
// recursive path and relies on Go's stack growth to cope.
func (e *Engine[K]) deepEnough(key K) bool {
	threshold := e.deepTermThreshold
	depth := 0
	cur := key
	for {
		succs := cur.Successors()
		if len(succs) == 0 {
			return false
		}
		depth++
		if depth >= threshold {
			return true
		}
		cur = succs[0]
	}
}

// Merge asserts that key1 and key2 denote the same term, adding both if
// necessary, and propagates any congruences the merge induces to their
// parent terms.
func (e *Engine[K]) Merge(key1, key2 K) {
	defer e.startSpan("ccengine.merge")()
	u := e.Add(key1)
	v := e.Add(key2)

	e.obs.steps = 0
	e.cc.Merge(u, v)

	if e.telemetry != nil {
		e.telemetry.RecordMerge(context.Background(), e.obs.steps)
	}
	e.logger.Infof("merged tokens %d and %d", u, v)
}

// Merged reports whether key1 and key2 are currently known to denote the
// same term. Both keys are added first, even if the caller never added
// them explicitly: their successors may already have been equated by
// earlier merges, so key1 and key2 themselves can already be unioned the
// moment they are interned.
func (e *Engine[K]) Merged(key1, key2 K) bool {
	defer e.startSpan("ccengine.merged")()
	tok1 := e.Add(key1)
	tok2 := e.Add(key2)
	return e.uf.Unioned(tok1, tok2)
}

// Stats reports the Engine's current size: number of distinct terms,
// number of edges in the term graph, and number of equivalence classes.
func (e *Engine[K]) Stats() Stats {
	return Stats{
		Terms:              e.interner.Len(),
		Edges:              e.graph.EdgeCount(),
		EquivalenceClasses: e.uf.NumClasses(),
	}
}
