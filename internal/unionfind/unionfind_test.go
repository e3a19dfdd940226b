package unionfind

import (
	"testing"

	"github.com/congruence-lab/ccengine/internal/token"
)

func newN(uf *UnionFind, n int) []token.Token {
	toks := make([]token.Token, n)
	for i := range toks {
		toks[i] = uf.NewKey()
	}
	return toks
}

func TestNewKey_Singleton(t *testing.T) {
	uf := New(0)
	a := uf.NewKey()
	b := uf.NewKey()
	if uf.Unioned(a, b) {
		t.Fatalf("freshly allocated keys are already unioned")
	}
	if uf.NumClasses() != 2 {
		t.Fatalf("NumClasses() = %d, want 2", uf.NumClasses())
	}
}

func TestUnion_ReflexiveAndIdempotent(t *testing.T) {
	uf := New(0)
	toks := newN(uf, 3)
	a, b := toks[0], toks[1]

	if !uf.Unioned(a, a) {
		t.Fatalf("a is not unioned with itself")
	}

	uf.Union(a, b)
	if !uf.Unioned(a, b) {
		t.Fatalf("Union(a, b) then Unioned(a, b) = false")
	}

	// Repeating the union must not change anything observable.
	uf.Union(a, b)
	uf.Union(b, a)
	if !uf.Unioned(a, b) {
		t.Fatalf("repeated union broke the merge")
	}
	if uf.NumClasses() != 2 {
		t.Fatalf("NumClasses() after merging 2 of 3 = %d, want 2", uf.NumClasses())
	}
}

func TestUnion_Transitive(t *testing.T) {
	uf := New(0)
	toks := newN(uf, 3)
	a, b, c := toks[0], toks[1], toks[2]

	uf.Union(a, b)
	uf.Union(b, c)

	if !uf.Unioned(a, c) {
		t.Fatalf("a and c should be transitively unioned through b")
	}
}

func TestUnionedKeys(t *testing.T) {
	uf := New(0)
	toks := newN(uf, 5)

	uf.Union(toks[0], toks[1])
	uf.Union(toks[1], toks[2])

	members := uf.UnionedKeys(toks[0])
	want := map[token.Token]bool{toks[0]: true, toks[1]: true, toks[2]: true}
	if len(members) != len(want) {
		t.Fatalf("UnionedKeys(toks[0]) = %v, want members %v", members, want)
	}
	for _, m := range members {
		if !want[m] {
			t.Errorf("unexpected member %v in class", m)
		}
		delete(want, m)
	}
	if len(want) != 0 {
		t.Errorf("missing members: %v", want)
	}

	// Untouched singletons still enumerate to just themselves.
	solo := uf.UnionedKeys(toks[3])
	if len(solo) != 1 || solo[0] != toks[3] {
		t.Errorf("UnionedKeys(toks[3]) = %v, want [%v]", solo, toks[3])
	}
}

func TestUnionedKeys_AfterMultipleMerges(t *testing.T) {
	uf := New(0)
	toks := newN(uf, 6)

	uf.Union(toks[0], toks[1])
	uf.Union(toks[2], toks[3])
	uf.Union(toks[1], toks[2]) // merge the two pairs into one class of 4

	members := uf.UnionedKeys(toks[0])
	if len(members) != 4 {
		t.Fatalf("UnionedKeys after merging two pairs = %d members, want 4", len(members))
	}
	if uf.ClassSize(toks[5]) != 1 {
		t.Errorf("ClassSize(toks[5]) = %d, want 1", uf.ClassSize(toks[5]))
	}
}

func TestFind_UnknownTokenPanics(t *testing.T) {
	uf := New(0)
	uf.NewKey()

	defer func() {
		if recover() == nil {
			t.Fatalf("Find on unallocated token did not panic")
		}
	}()
	uf.Find(token.Token(99))
}

func TestUnion_ManyKeysIntoOneClass(t *testing.T) {
	// Union every key into toks[0]'s class. Union by rank attaches each new
	// key directly under the root, so this exercises many unions and finds
	// on one large class rather than a long parent chain.
	const n = 50000
	uf := New(n)
	toks := newN(uf, n)
	for i := 1; i < n; i++ {
		uf.Union(toks[0], toks[i])
	}
	if !uf.Unioned(toks[0], toks[n-1]) {
		t.Fatalf("long chain of unions did not end up in one class")
	}
	if uf.NumClasses() != 1 {
		t.Fatalf("NumClasses() = %d, want 1", uf.NumClasses())
	}
}
