package agent

import (
	"math/big"
	"testing"
	"time"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		name   string
		amount *big.Int
		want   string
	}{
		{"half", big.NewInt(500000000000000000), "0.5 FLOW"},
		{"whole", new(big.Int).Mul(big.NewInt(3), big.NewInt(1e18)), "3.0 FLOW"},
		{"zero", big.NewInt(0), "0.0 FLOW"},
		{"nil", nil, "0.0 FLOW"},
		{"one wei", big.NewInt(1), "0.000000000000000001 FLOW"},
		{"trailing zeros", big.NewInt(1250000000000000000), "1.25 FLOW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBalance(tt.amount, 18, "FLOW"); got != tt.want {
				t.Fatalf("FormatBalance() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	got := Fallback(now)

	if got.Address != FallbackAddress || !got.IsAuthorized || got.Balance != "0.5 FLOW" {
		t.Fatalf("unexpected fallback %+v", got)
	}
	if got.TotalOperations != TotalOperations || got.Status != StatusActive {
		t.Fatalf("unexpected fallback counters %+v", got)
	}
	if got.Operations == nil || len(got.Operations) != 0 {
		t.Fatalf("fallback must carry an empty, non-nil operation list")
	}
	if !got.LastOperation.Equal(now) {
		t.Fatalf("expected lastOperation %v, got %v", now, got.LastOperation)
	}
}
