package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	apperrors "ancare/internal/platform/errors"
	"ancare/internal/platform/jsonx"
	"ancare/internal/platform/slug"
)

// ItemInput is what callers may hand to the cart: a bare product name or a
// partial record. Other shapes are rejected.
type ItemInput interface {
	itemInput()
}

type NameInput struct {
	Name string
}

// RecordInput carries loosely typed fields. Price and Qty accept numbers and
// numeric strings.
type RecordInput struct {
	ID    string
	Name  string
	Note  string
	Price any
	Qty   any
}

func (NameInput) itemInput()   {}
func (RecordInput) itemInput() {}

// Preset replaces the item resolved from a bare name containing Keyword.
type Preset struct {
	Keyword string
	ID      string
	Name    string
	Note    string
	Price   float64
}

func DefaultPresets() []Preset {
	return []Preset{{
		Keyword: "calm",
		ID:      "ancare_stick_calm",
		Name:    "an:care Stick Calm",
		Note:    "Lavendel Bergamotte Vetiver",
		Price:   DefaultPrice,
	}}
}

func DeriveID(name string) string {
	s := slug.Make(name)
	if s == "" {
		s = slug.Make("item")
	}
	return IDPrefix + s
}

func Normalize(input ItemInput, presets []Preset) (LineItem, error) {
	switch in := input.(type) {
	case NameInput:
		return fromName(in, presets), nil
	case *NameInput:
		if in == nil {
			return LineItem{}, apperrors.ErrInvalidInput
		}
		return fromName(*in, presets), nil
	case RecordInput:
		return fromRecord(in), nil
	case *RecordInput:
		if in == nil {
			return LineItem{}, apperrors.ErrInvalidInput
		}
		return fromRecord(*in), nil
	default:
		return LineItem{}, apperrors.ErrInvalidInput
	}
}

func fromName(in NameInput, presets []Preset) LineItem {
	name := strings.TrimSpace(in.Name)
	item := LineItem{ID: DeriveID(name), Name: name, Price: DefaultPrice, Qty: 1}
	if item.Name == "" {
		item.Name = DefaultName
	}
	lower := strings.ToLower(name)
	for _, p := range presets {
		keyword := strings.ToLower(strings.TrimSpace(p.Keyword))
		if keyword == "" || !strings.Contains(lower, keyword) {
			continue
		}
		item.ID, item.Name, item.Note = p.ID, p.Name, p.Note
		item.Price = p.Price
		if !validPrice(item.Price) {
			item.Price = DefaultPrice
		}
		break
	}
	return item
}

func fromRecord(in RecordInput) LineItem {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = DefaultName
	}
	item := LineItem{
		ID:    in.ID,
		Name:  name,
		Note:  strings.TrimSpace(in.Note),
		Price: DefaultPrice,
		Qty:   1,
	}
	if item.ID == "" {
		item.ID = DeriveID(name)
	}
	if price, ok := jsonx.ToFloat(in.Price); ok && validPrice(price) {
		item.Price = price
	}
	if qty, ok := jsonx.ToInt(in.Qty); ok && qty > 1 {
		item.Qty = qty
	}
	return item
}

func validPrice(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p > 0
}

// ParseItemInput inspects untyped JSON: a string becomes a NameInput, an
// object a RecordInput. Everything else is invalid.
func ParseItemInput(raw json.RawMessage) (ItemInput, error) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, apperrors.ErrInvalidInput
	}
	switch v := value.(type) {
	case string:
		return NameInput{Name: v}, nil
	case map[string]any:
		rec := RecordInput{Price: v["price"], Qty: v["qty"]}
		var ok bool
		if rec.ID, ok = textField(v["id"]); !ok {
			return nil, apperrors.ErrInvalidInput
		}
		if rec.Name, ok = textField(v["name"]); !ok {
			return nil, apperrors.ErrInvalidInput
		}
		if rec.Note, ok = textField(v["note"]); !ok {
			return nil, apperrors.ErrInvalidInput
		}
		return rec, nil
	default:
		return nil, apperrors.ErrInvalidInput
	}
}

// textField renders scalar JSON values as text. Falsy values (null, false,
// 0, "") are empty.
func textField(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case bool:
		if !t {
			return "", true
		}
		return "true", true
	case float64:
		if t == 0 {
			return "", true
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}
