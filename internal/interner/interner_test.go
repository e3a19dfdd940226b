package interner

import "testing"

func TestIntern_NewKeyGetsNewToken(t *testing.T) {
	in := New[string](0)

	isNew, tokA := in.Intern("a")
	if !isNew {
		t.Fatalf("first intern of %q: isNew = false, want true", "a")
	}
	isNew, tokB := in.Intern("b")
	if !isNew {
		t.Fatalf("first intern of %q: isNew = false, want true", "b")
	}
	if tokA == tokB {
		t.Fatalf("distinct keys got the same token: %v", tokA)
	}
}

func TestIntern_RepeatedKeyIsStable(t *testing.T) {
	in := New[string](0)

	_, first := in.Intern("f(x)")
	for i := 0; i < 5; i++ {
		isNew, tok := in.Intern("f(x)")
		if isNew {
			t.Fatalf("iteration %d: Intern reported isNew = true for a repeated key", i)
		}
		if tok != first {
			t.Fatalf("iteration %d: token changed from %v to %v", i, first, tok)
		}
	}
}

func TestIntern_DenseFromZero(t *testing.T) {
	in := New[int](0)
	keys := []int{10, 20, 30, 40}
	for i, k := range keys {
		_, tok := in.Intern(k)
		if int(tok) != i {
			t.Errorf("key %d: token = %v, want %d", k, tok, i)
		}
	}
}

func TestLookup(t *testing.T) {
	in := New[string](0)
	if _, ok := in.Lookup("missing"); ok {
		t.Fatalf("Lookup of never-interned key reported ok = true")
	}
	_, tok := in.Intern("present")
	got, ok := in.Lookup("present")
	if !ok || got != tok {
		t.Fatalf("Lookup(%q) = (%v, %v), want (%v, true)", "present", got, ok, tok)
	}
}

func TestLen(t *testing.T) {
	in := New[string](0)
	if in.Len() != 0 {
		t.Fatalf("Len() on empty interner = %d, want 0", in.Len())
	}
	in.Intern("a")
	in.Intern("b")
	in.Intern("a")
	if in.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", in.Len())
	}
}
