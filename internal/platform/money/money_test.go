package money_test

import (
	"math"
	"testing"

	"ancare/internal/platform/money"
)

func TestFormat(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   float64
		want string
	}{
		{13.99, "13,99 EUR"},
		{0, "0,00 EUR"},
		{27.98, "27,98 EUR"},
		{1234.5, "1234,50 EUR"},
		{-0.001, "0,00 EUR"},
		{math.NaN(), "0,00 EUR"},
		{math.Inf(1), "0,00 EUR"},
	}
	for _, tc := range cases {
		if got := money.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
