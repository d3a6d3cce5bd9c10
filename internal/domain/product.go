package domain

import (
	"math"
	"time"
)

// Product categories. The catalog carries two collections plus the "All"
// pseudo-category used by filters.
const (
	CategoryMen   = "Men"
	CategoryWomen = "Women"
	CategoryAll   = "All"
)

// Product represents a watch in the catalog.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model,omitempty"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price,omitempty"`
	PriceAED      float64   `json:"price_aed,omitempty"`
	Image         string    `json:"image"`
	Images        []string  `json:"images,omitempty"`
	Stock         int       `json:"stock"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Featured      bool      `json:"featured"`
	DateAdded     time.Time `json:"date_added"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ValidCategories returns the set of valid product categories.
func ValidCategories() []string {
	return []string{CategoryMen, CategoryWomen}
}

// IsValidCategory checks whether the given string is a valid product category.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// InStock reports whether any units are available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// DiscountPercent returns the rounded discount percentage implied by
// OriginalPrice, or 0 when no discount applies. A zero OriginalPrice or a
// price at or above it yields no discount rather than an error, so callers
// never need to guard the division.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 {
		return 0
	}
	pct := int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
	if pct <= 0 {
		return 0
	}
	return pct
}
