package domain

import "time"

// Cart represents a shopping cart. Line items hold only a product reference
// and a quantity; prices are resolved against the catalog whenever a total
// is needed, so a price change is always reflected in the next summary.
type Cart struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is a single line item: one product, some quantity. Quantity is
// always >= 1; a mutation that would drop it to zero removes the line instead.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// FindItemIndex returns the index of the line item for the given product ID,
// or -1 if the cart has no such line.
func (c *Cart) FindItemIndex(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// ItemCount returns the total unit count across all line items (the number
// shown on the cart badge, not the number of distinct lines).
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal computes Σ price × quantity using the supplied price resolver.
// Lines whose product can no longer be resolved (deleted from the catalog)
// contribute nothing.
func (c *Cart) Subtotal(priceOf func(productID string) (float64, bool)) float64 {
	var subtotal float64
	for _, item := range c.Items {
		if price, ok := priceOf(item.ProductID); ok {
			subtotal += price * float64(item.Quantity)
		}
	}
	return subtotal
}
