package ethereum

import (
	"regexp"
	"testing"
)

func TestEntropy_Shapes(t *testing.T) {
	e := NewEntropy()

	if h := e.TxHash(); !regexp.MustCompile(`^0x[0-9a-f]{64}$`).MatchString(h) {
		t.Fatalf("unexpected tx hash %q", h)
	}
	if h := e.Hex(64); !regexp.MustCompile(`^0x[0-9a-f]{128}$`).MatchString(h) {
		t.Fatalf("unexpected hex %q", h)
	}
	if d := e.Digits(10); !regexp.MustCompile(`^[0-9]{10}$`).MatchString(d) {
		t.Fatalf("unexpected digits %q", d)
	}
	if tok := e.Token(6); len(tok) == 0 || len(tok) > 6 {
		t.Fatalf("unexpected token %q", tok)
	}
}

func TestEntropy_SeededIsDeterministic(t *testing.T) {
	var seed [32]byte
	seed[0] = 7

	a, b := NewSeededEntropy(seed), NewSeededEntropy(seed)
	if a.TxHash() != b.TxHash() {
		t.Fatal("same seed must yield the same hash")
	}
	if a.Float64() != b.Float64() {
		t.Fatal("same seed must yield the same roll")
	}
}

func TestEntropy_Float64Range(t *testing.T) {
	e := NewEntropy()
	for i := 0; i < 1000; i++ {
		if f := e.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
	}
}
