package unionfind

import "github.com/congruence-lab/ccengine/internal/token"

// UnionFind is a disjoint-set table keyed by dense token indices, with
// union-by-rank, path compression, and class-member enumeration. The zero
// value is not usable; construct with New.
type UnionFind struct {
	parent []token.Token
	rank   []uint8
	next   []token.Token // circular linked list of class members
	nclass int
}

// New creates an empty UnionFind. expectedTerms is a capacity hint for the
// backing slices and has no effect on behavior.
func New(expectedTerms int) *UnionFind {
	if expectedTerms < 0 {
		expectedTerms = 0
	}
	return &UnionFind{
		parent: make([]token.Token, 0, expectedTerms),
		rank:   make([]uint8, 0, expectedTerms),
		next:   make([]token.Token, 0, expectedTerms),
	}
}

// NewKey allocates a fresh singleton slot at the next dense index and
// returns its token.
func (uf *UnionFind) NewKey() token.Token {
	tok := token.Token(len(uf.parent))
	uf.parent = append(uf.parent, tok)
	uf.rank = append(uf.rank, 0)
	uf.next = append(uf.next, tok) // singleton circular list
	uf.nclass++
	return tok
}

// Len returns the number of slots allocated so far.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

func (uf *UnionFind) valid(tok token.Token) bool {
	return tok >= 0 && int(tok) < len(uf.parent)
}

// find returns the representative of tok's class, compressing the path
// from tok to the root as it goes. It collects the path first and relinks
// it in a second pass, rather than recursing, so that pathologically long
// chains (e.g. a term built by repeated single-successor wrapping) cannot
// exhaust the goroutine stack.
func (uf *UnionFind) find(tok token.Token) (token.Token, error) {
	if !uf.valid(tok) {
		return token.Invalid, ErrUnknownToken
	}

	root := tok
	for uf.parent[root] != root {
		root = uf.parent[root]
	}

	// Second pass: point every node on the path directly at root.
	cur := tok
	for uf.parent[cur] != root {
		next := uf.parent[cur]
		uf.parent[cur] = root
		cur = next
	}

	return root, nil
}

// Find returns the representative token of u's equivalence class. u must
// have been allocated by NewKey; passing an unallocated token is a
// programming error and panics.
func (uf *UnionFind) Find(u token.Token) token.Token {
	root, err := uf.find(u)
	if err != nil {
		panic(err)
	}
	return root
}

// Union merges the classes containing u and v. It is a no-op if they are
// already in the same class.
func (uf *UnionFind) Union(u, v token.Token) {
	ru, err := uf.find(u)
	if err != nil {
		panic(err)
	}
	rv, err := uf.find(v)
	if err != nil {
		panic(err)
	}
	if ru == rv {
		return
	}

	switch {
	case uf.rank[ru] < uf.rank[rv]:
		uf.parent[ru] = rv
	case uf.rank[ru] > uf.rank[rv]:
		uf.parent[rv] = ru
	default:
		uf.parent[rv] = ru
		uf.rank[ru]++
	}
	uf.nclass--

	// Splice the two classes' member lists together: swapping next[u] and
	// next[v] merges their circular lists into one, regardless of which
	// node is a tree root. This is independent of the union-by-rank step
	// above and must use the original u, v, not ru, rv.
	uf.next[u], uf.next[v] = uf.next[v], uf.next[u]
}

// Unioned reports whether u and v are currently in the same equivalence
// class.
func (uf *UnionFind) Unioned(u, v token.Token) bool {
	return uf.Find(u) == uf.Find(v)
}

// UnionedKeys returns every token currently in the same equivalence class
// as u, including u itself. The slice is fully materialized at call time;
// it is a snapshot and does not reflect later mutation.
func (uf *UnionFind) UnionedKeys(u token.Token) []token.Token {
	if !uf.valid(u) {
		panic(ErrUnknownToken)
	}
	members := []token.Token{u}
	for cur := uf.next[u]; cur != u; cur = uf.next[cur] {
		members = append(members, cur)
	}
	return members
}

// NumClasses returns the current number of equivalence classes. Read-only
// introspection used by Engine.Stats; the algorithm itself never calls it.
func (uf *UnionFind) NumClasses() int {
	return uf.nclass
}

// ClassSize returns the number of tokens in u's equivalence class.
func (uf *UnionFind) ClassSize(u token.Token) int {
	return len(uf.UnionedKeys(u))
}
