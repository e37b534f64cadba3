package cart

import (
	"fmt"
	"strings"

	cartdto "ancare/internal/modules/cart/dto"
	checkoutdto "ancare/internal/modules/checkout/dto"
	"ancare/internal/platform/money"
	"ancare/internal/ui/theme"
)

// Model renders the cart lines and the checkout summary below them.
type Model struct {
	cart    cartdto.CartOutput
	summary checkoutdto.SummaryOutput
	cursor  int
}

func New() Model {
	return Model{}
}

func (m *Model) SetCart(cart cartdto.CartOutput, summary checkoutdto.SummaryOutput) {
	m.cart = cart
	m.summary = summary
	if m.cursor >= len(cart.Items) {
		m.cursor = len(cart.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) Move(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.cart.Items) {
		m.cursor = len(m.cart.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the cursor position when the cart has lines.
func (m Model) Selected() (int, bool) {
	if len(m.cart.Items) == 0 {
		return 0, false
	}
	return m.cursor, true
}

func (m Model) Shipping() string {
	return m.summary.Shipping
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(fmt.Sprintf("Warenkorb (%d)", m.cart.Count)) + "\n\n")
	if len(m.cart.Items) == 0 {
		sb.WriteString(theme.Muted.Render("Dein Warenkorb ist leer.") + "\n")
	}
	for i, item := range m.cart.Items {
		line := fmt.Sprintf("%-28s x%-3d %s", item.Name, item.Qty, theme.Price.Render(money.Format(item.Subtotal)))
		if item.Note != "" {
			line += "  " + theme.Muted.Render(item.Note)
		}
		if i == m.cursor {
			sb.WriteString(theme.Selected.Render("> ") + line + "\n")
			continue
		}
		sb.WriteString("  " + line + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Zwischensumme  %s\n", money.Format(m.summary.Subtotal)))
	sb.WriteString(fmt.Sprintf("Versand (%s)  %s\n", m.summary.Shipping, money.Format(m.summary.Surcharge)))
	sb.WriteString(fmt.Sprintf("Zahlung        %s\n", m.summary.Payment))
	sb.WriteString(theme.Hot.Render("Gesamt         "+money.Format(m.summary.Total)) + "\n")
	return theme.Pane.Render(sb.String())
}
