package token

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want bool
	}{
		{"zero is valid", Token(0), true},
		{"positive is valid", Token(42), true},
		{"invalid sentinel", Invalid, false},
		{"negative is invalid", Token(-7), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tok.Valid(); got != tt.want {
				t.Errorf("Token(%d).Valid() = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got, want := Invalid.String(), "<invalid>"; got != want {
		t.Errorf("Invalid.String() = %q, want %q", got, want)
	}
	if got, want := Token(3).String(), "3"; got != want {
		t.Errorf("Token(3).String() = %q, want %q", got, want)
	}
}
