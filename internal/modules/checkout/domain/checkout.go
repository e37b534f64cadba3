package domain

import (
	"strings"

	apperrors "ancare/internal/platform/errors"
)

const (
	ShippingDHL    = "dhl"
	ShippingPickup = "pickup"
	PaymentPayPal  = "paypal"
)

var shippingRates = map[string]float64{
	ShippingDHL:    4.99,
	ShippingPickup: 0,
}

type Preferences struct {
	Shipping string `json:"shipping"`
	Payment  string `json:"payment"`
}

func DefaultPreferences() Preferences {
	return Preferences{Shipping: ShippingDHL, Payment: PaymentPayPal}
}

// WithDefaults fills empty fields.
func (p Preferences) WithDefaults() Preferences {
	def := DefaultPreferences()
	if p.Shipping == "" {
		p.Shipping = def.Shipping
	}
	if p.Payment == "" {
		p.Payment = def.Payment
	}
	return p
}

// Surcharge is the shipping cost for code. Unknown codes are free.
func Surcharge(code string) float64 {
	return shippingRates[code]
}

// NormalizeCode lowercases and trims a shipping or payment code.
func NormalizeCode(code string) (string, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "", apperrors.ErrInvalidInput
	}
	return code, nil
}
