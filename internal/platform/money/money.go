package money

import (
	"math"
	"strconv"
	"strings"
)

const Currency = "EUR"

// Format renders an amount for display: two decimals, comma as decimal
// separator, no grouping, currency suffix ("13,99 EUR").
func Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	if s == "-0.00" {
		s = "0.00"
	}
	return strings.Replace(s, ".", ",", 1) + " " + Currency
}
