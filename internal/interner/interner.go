package interner

import "github.com/congruence-lab/ccengine/internal/token"

// Interner maps keys of type K to dense, stable tokens assigned in
// insertion order. The zero value is not usable; construct with New.
type Interner[K comparable] struct {
	index map[K]token.Token
	next  token.Token
}

// New creates an empty Interner. expectedTerms is a capacity hint for the
// backing map and has no effect on behavior.
func New[K comparable](expectedTerms int) *Interner[K] {
	if expectedTerms < 0 {
		expectedTerms = 0
	}
	return &Interner[K]{
		index: make(map[K]token.Token, expectedTerms),
	}
}

// Intern returns the existing token for key if it was interned before,
// otherwise it allocates and returns a fresh one. The returned bool is true
// exactly when a new token was allocated.
func (in *Interner[K]) Intern(key K) (isNew bool, tok token.Token) {
	if existing, ok := in.index[key]; ok {
		return false, existing
	}
	tok = in.next
	in.next++
	in.index[key] = tok
	return true, tok
}

// Lookup returns the token for key without allocating one, reporting
// whether key has been interned. On a miss the token is token.Invalid.
func (in *Interner[K]) Lookup(key K) (tok token.Token, ok bool) {
	tok, ok = in.index[key]
	if !ok {
		return token.Invalid, false
	}
	return tok, ok
}

// Len returns the number of distinct keys interned so far.
func (in *Interner[K]) Len() int {
	return len(in.index)
}
