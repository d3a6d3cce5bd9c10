package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCategory(t *testing.T) {
	assert.True(t, IsValidCategory(CategoryMen))
	assert.True(t, IsValidCategory(CategoryWomen))
	assert.False(t, IsValidCategory(CategoryAll))
	assert.False(t, IsValidCategory("Kids"))
	assert.False(t, IsValidCategory(""))
}

func TestProduct_InStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 1}).InStock())
	assert.False(t, (&Product{Stock: 0}).InStock())
}

func TestProduct_DiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		price    float64
		original float64
		want     int
	}{
		{"no original price", 100, 0, 0},
		{"quarter off", 75, 100, 25},
		{"rounds to nearest", 66.60, 100, 33},
		{"price above original", 120, 100, 0},
		{"price equals original", 100, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Price: tt.price, OriginalPrice: tt.original}
			assert.Equal(t, tt.want, p.DiscountPercent())
		})
	}
}
