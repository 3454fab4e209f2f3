package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2.005", "2.01"},
		{"2.004", "2.00"},
		{"2.015", "2.02"},
		{"-2.005", "-2.01"},
		{"10", "10.00"},
		{"0.1", "0.10"},
	}
	for _, tc := range cases {
		v, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := Format(Round(v)); got != tc.want {
			t.Fatalf("Round(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestRoundIdempotent(t *testing.T) {
	v := decimal.RequireFromString("30.55")
	once := Round(v)
	twice := Round(once)
	if !once.Equal(twice) {
		t.Fatalf("rounding is not idempotent: %s != %s", once, twice)
	}
}

func TestPercentOf(t *testing.T) {
	base := decimal.RequireFromString("50.00")
	if got := Format(PercentOf(base, 10)); got != "5.00" {
		t.Fatalf("PercentOf(50, 10) = %s, want 5.00", got)
	}
	if got := Format(PercentOf(base, 0)); got != "0.00" {
		t.Fatalf("PercentOf(50, 0) = %s, want 0.00", got)
	}
}
