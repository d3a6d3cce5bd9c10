package domain

import "math"

// Fixed-rate order pricing. Shipping is a flat rate waived for empty carts;
// tax is a flat percentage of the subtotal.
const (
	FlatShippingRate = 29.99
	TaxRate          = 0.10
)

// OrderSummary holds the derived totals for a cart. All amounts are kept at
// full float64 precision; rounding happens only at presentation time via
// Rounded, so repeated derivations never compound rounding error.
type OrderSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// NewOrderSummary derives shipping, tax, and total from a subtotal.
func NewOrderSummary(subtotal float64) OrderSummary {
	var shipping float64
	if subtotal > 0 {
		shipping = FlatShippingRate
	}
	tax := subtotal * TaxRate
	return OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// Rounded returns a copy with every amount rounded to two decimal places.
func (s OrderSummary) Rounded() OrderSummary {
	return OrderSummary{
		Subtotal: Round2(s.Subtotal),
		Shipping: Round2(s.Shipping),
		Tax:      Round2(s.Tax),
		Total:    Round2(s.Total),
	}
}

// Round2 rounds a monetary amount to two decimal places for display.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
