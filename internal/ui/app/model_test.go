package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	cartdto "ancare/internal/modules/cart/dto"
	checkoutdto "ancare/internal/modules/checkout/dto"
	interestdto "ancare/internal/modules/interest/dto"
	podcastdto "ancare/internal/modules/podcast/dto"
	"ancare/internal/ui/components"
)

type fakeCart struct {
	items   []cartdto.LineItemOutput
	removed []int
}

func (f *fakeCart) Show(context.Context) (cartdto.CartOutput, error) {
	out := cartdto.CartOutput{Items: f.items}
	for _, item := range f.items {
		out.Count += item.Qty
		out.Total += item.Subtotal
	}
	return out, nil
}

func (f *fakeCart) AddByName(_ context.Context, name string) (cartdto.LineItemOutput, error) {
	item := cartdto.LineItemOutput{ID: "ancare_x", Name: name, Price: 13.99, Qty: 1, Subtotal: 13.99}
	f.items = append(f.items, item)
	return item, nil
}

func (f *fakeCart) RemoveAt(ctx context.Context, index int) (cartdto.CartOutput, error) {
	f.removed = append(f.removed, index)
	f.items = append(f.items[:index], f.items[index+1:]...)
	return f.Show(ctx)
}

func (f *fakeCart) Clear(context.Context) error {
	f.items = nil
	return nil
}

type fakeInterest struct {
	totals map[string]int
}

func (f *fakeInterest) Show(context.Context) (interestdto.LogOutput, error) {
	return interestdto.LogOutput{State: interestdto.StatePopulated, Totals: f.totals}, nil
}

func (f *fakeInterest) Ranking(context.Context) ([]interestdto.RankingEntry, error) {
	var out []interestdto.RankingEntry
	for variant, count := range f.totals {
		out = append(out, interestdto.RankingEntry{Variant: variant, Count: count})
	}
	return out, nil
}

func (f *fakeInterest) Record(_ context.Context, variant, _, _, _ string) (interestdto.LogOutput, error) {
	f.totals[variant]++
	return interestdto.LogOutput{
		State:  interestdto.StatePopulated,
		Events: []interestdto.EventOutput{{Variant: variant}},
		Totals: f.totals,
	}, nil
}

func (f *fakeInterest) Reset(context.Context) error {
	f.totals = map[string]int{}
	return nil
}

type fakeCheckout struct{ shipping string }

func (f *fakeCheckout) Show(context.Context) (checkoutdto.SummaryOutput, error) {
	return checkoutdto.SummaryOutput{Shipping: f.shipping, Payment: "paypal"}, nil
}

func (f *fakeCheckout) SetShipping(_ context.Context, code string) (checkoutdto.PreferencesOutput, error) {
	f.shipping = code
	return checkoutdto.PreferencesOutput{Shipping: code, Payment: "paypal"}, nil
}

type fakePodcast struct{}

func (fakePodcast) List(context.Context) ([]podcastdto.EpisodeOutput, error) { return nil, nil }

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	model := next.(Model)
	for cmd != nil {
		out := cmd()
		if _, ok := out.(tea.BatchMsg); ok {
			t.Fatalf("unexpected batch")
		}
		next, cmd = model.Update(out)
		model = next.(Model)
	}
	return model
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel() (Model, *fakeCart, *fakeInterest, *fakeCheckout) {
	cart := &fakeCart{items: []cartdto.LineItemOutput{
		{ID: "a", Name: "Stick Focus", Price: 13.99, Qty: 1, Subtotal: 13.99},
		{ID: "b", Name: "an:care Stick Calm", Price: 13.99, Qty: 2, Subtotal: 27.98},
	}}
	interest := &fakeInterest{totals: map[string]int{"calm": 2}}
	checkout := &fakeCheckout{shipping: "dhl"}
	return NewModel(cart, interest, checkout, fakePodcast{}), cart, interest, checkout
}

func TestCartTabRendersLinesAndRemovesSelection(t *testing.T) {
	t.Parallel()
	m, cart, _, _ := newTestModel()
	m = step(t, m, m.reloadCart("")())

	if view := m.View(); !strings.Contains(view, "Warenkorb (3)") || !strings.Contains(view, "27,98 EUR") {
		t.Fatalf("unexpected view:\n%s", view)
	}
	m = step(t, m, keyRunes("j"))
	m = step(t, m, keyRunes("d"))
	if len(cart.removed) != 1 || cart.removed[0] != 1 {
		t.Fatalf("expected removal of index 1, got %v", cart.removed)
	}
	if m.status != "line removed" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestShippingToggle(t *testing.T) {
	t.Parallel()
	m, _, _, checkout := newTestModel()
	m = step(t, m, m.reloadCart("")())
	m = step(t, m, keyRunes("s"))
	if checkout.shipping != "pickup" {
		t.Fatalf("expected pickup, got %q", checkout.shipping)
	}
	m = step(t, m, keyRunes("s"))
	if checkout.shipping != "dhl" || m.status != "shipping: dhl" {
		t.Fatalf("expected dhl, got %q status %q", checkout.shipping, m.status)
	}
}

func TestPromptRecordsInterest(t *testing.T) {
	t.Parallel()
	m, _, interest, _ := newTestModel()
	next, _ := m.Update(keyRunes("i"))
	m = next.(Model)
	if !m.prompt.Visible() || m.prompt.Purpose() != promptRecordInterest {
		t.Fatalf("record prompt must open")
	}
	next, _ = m.Update(keyRunes("focus"))
	m = next.(Model)
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if interest.totals["focus"] != 1 || m.activeTab != tabInterest {
		t.Fatalf("unexpected totals %v tab %d", interest.totals, m.activeTab)
	}
	if !strings.Contains(m.View(), "Nachfrage Tracking") {
		t.Fatalf("interest tab must be shown")
	}
}

func TestPromptAddsItemByName(t *testing.T) {
	t.Parallel()
	m, cart, _, _ := newTestModel()
	m = step(t, m, components.PromptSubmitMsg{Purpose: promptAddItem, Value: "Stick Sleep"})
	if len(cart.items) != 3 || m.status != "added Stick Sleep" {
		t.Fatalf("unexpected items %d status %q", len(cart.items), m.status)
	}
	m = step(t, m, components.PromptSubmitMsg{Purpose: promptAddItem, Value: ""})
	if len(cart.items) != 3 || m.status != "nothing added" {
		t.Fatalf("empty submit must not add, status %q", m.status)
	}
}
