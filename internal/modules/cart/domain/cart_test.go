package domain_test

import (
	"testing"

	"ancare/internal/modules/cart/domain"
)

func TestCartAddMergesByID(t *testing.T) {
	t.Parallel()
	cart := domain.New(nil)
	if cart.Add(domain.LineItem{ID: "x", Price: 2, Qty: 2}) {
		t.Fatalf("first add must append")
	}
	cart.Add(domain.LineItem{ID: "y", Price: 1, Qty: 1})
	if !cart.Add(domain.LineItem{ID: "x", Price: 2, Qty: 3}) {
		t.Fatalf("second add must merge")
	}
	if len(cart.Items) != 2 || cart.Items[0].Qty != 5 {
		t.Fatalf("unexpected cart %+v", cart.Items)
	}
	if cart.Count() != 6 || cart.Total() != 11 {
		t.Fatalf("count=%d total=%v", cart.Count(), cart.Total())
	}
}

func TestCartAddTreatsNegativeStoredQtyAsZero(t *testing.T) {
	t.Parallel()
	cart := domain.New([]domain.LineItem{{ID: "x", Qty: -4}})
	cart.Add(domain.LineItem{ID: "x", Qty: 1})
	if cart.Items[0].Qty != 1 {
		t.Fatalf("expected qty 1, got %d", cart.Items[0].Qty)
	}
}

func TestCartRemoveAt(t *testing.T) {
	t.Parallel()
	cart := domain.New([]domain.LineItem{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	for _, idx := range []int{-1, 3, 99} {
		if cart.RemoveAt(idx) {
			t.Fatalf("index %d must be ignored", idx)
		}
	}
	if !cart.RemoveAt(1) {
		t.Fatalf("index 1 must be removed")
	}
	if len(cart.Items) != 2 || cart.Items[0].ID != "a" || cart.Items[1].ID != "c" {
		t.Fatalf("unexpected order %+v", cart.Items)
	}
}
