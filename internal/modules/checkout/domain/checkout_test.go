package domain_test

import (
	"testing"

	"ancare/internal/modules/checkout/domain"
	apperrors "ancare/internal/platform/errors"
)

func TestSurcharge(t *testing.T) {
	t.Parallel()
	cases := map[string]float64{"dhl": 4.99, "pickup": 0, "zeppelin": 0, "": 0}
	for code, want := range cases {
		if got := domain.Surcharge(code); got != want {
			t.Fatalf("%q: got %v, want %v", code, got, want)
		}
	}
}

func TestPreferencesWithDefaults(t *testing.T) {
	t.Parallel()
	got := domain.Preferences{Payment: "invoice"}.WithDefaults()
	if got.Shipping != "dhl" || got.Payment != "invoice" {
		t.Fatalf("unexpected preferences %+v", got)
	}
}

func TestNormalizeCode(t *testing.T) {
	t.Parallel()
	if code, err := domain.NormalizeCode("  PickUp "); err != nil || code != "pickup" {
		t.Fatalf("code=%q err=%v", code, err)
	}
	if _, err := domain.NormalizeCode("   "); err != apperrors.ErrInvalidInput {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
