package domain

const (
	DefaultName  = "an:care"
	DefaultPrice = 13.99
	IDPrefix     = "ancare_"
)

// LineItem is one product line. ID is unique within a cart.
type LineItem struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Note  string  `json:"note"`
	Price float64 `json:"price"`
	Qty   int     `json:"qty"`
}

func (l LineItem) Subtotal() float64 {
	return l.Price * float64(l.Qty)
}

// Cart keeps line items in insertion order.
type Cart struct {
	Items []LineItem
}

func New(items []LineItem) Cart {
	if items == nil {
		items = []LineItem{}
	}
	return Cart{Items: items}
}

// Add merges item into the line with the same ID or appends it. It reports
// whether an existing line was incremented.
func (c *Cart) Add(item LineItem) bool {
	for i := range c.Items {
		if c.Items[i].ID != item.ID {
			continue
		}
		qty := c.Items[i].Qty
		if qty < 0 {
			qty = 0
		}
		c.Items[i].Qty = qty + item.Qty
		return true
	}
	c.Items = append(c.Items, item)
	return false
}

// RemoveAt drops the line at index. Out of range indexes leave the cart as is.
func (c *Cart) RemoveAt(index int) bool {
	if index < 0 || index >= len(c.Items) {
		return false
	}
	c.Items = append(c.Items[:index:index], c.Items[index+1:]...)
	return true
}

func (c Cart) Count() int {
	total := 0
	for _, item := range c.Items {
		total += item.Qty
	}
	return total
}

func (c Cart) Total() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

func (c Cart) Find(id string) (LineItem, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}
	return LineItem{}, false
}
