// Package token defines the dense integer identity shared by the interner,
// the term graph, and the union-find table.
package token

import "strconv"

// Token is an opaque, dense, zero-based integer identity assigned to a term
// on first interning. It is stable for the lifetime of the engine and is the
// shared index space of the term graph and the union-find table: for every
// Token there is exactly one graph node and exactly one union-find slot at
// the same index.
type Token int32

// Invalid is returned by lookups that found nothing. It is never a valid
// interned token (tokens start at zero).
const Invalid Token = -1

// Valid reports whether t was assigned by an interning call.
func (t Token) Valid() bool {
	return t >= 0
}

func (t Token) String() string {
	if t == Invalid {
		return "<invalid>"
	}
	return strconv.Itoa(int(t))
}
