package util

import "testing"

func TestToCents(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{100.5, 10050},
		{0.01, 1},
		{30, 3000},
		{19.99, 1999},
	}
	for _, tc := range cases {
		got, err := ToCents(tc.in)
		if err != nil {
			t.Fatalf("ToCents(%v): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ToCents(%v): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestToCentsRejectsNonPositive(t *testing.T) {
	for _, in := range []float64{0, -1, -0.01} {
		if _, err := ToCents(in); err == nil {
			t.Errorf("ToCents(%v) should fail", in)
		}
	}
}

func TestToCentsRejectsHugeAmount(t *testing.T) {
	if _, err := ToCents(10_000_000); err == nil {
		t.Error("amount at the cap should fail")
	}
}

func TestFormatCents(t *testing.T) {
	if got := FormatCents(10050); got != "100.50" {
		t.Errorf("expected 100.50, got %q", got)
	}
	if got := FormatCents(0); got != "0.00" {
		t.Errorf("expected 0.00, got %q", got)
	}
}
