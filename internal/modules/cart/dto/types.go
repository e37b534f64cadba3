package dto

import "encoding/json"

// AddItemInput holds either a JSON string (product name) or a JSON object
// with id, name, note, price and qty.
type AddItemInput struct {
	Payload json.RawMessage
}

type LineItemOutput struct {
	ID       string
	Name     string
	Note     string
	Price    float64
	Qty      int
	Subtotal float64
}

type CartOutput struct {
	Items []LineItemOutput
	Count int
	Total float64
}
