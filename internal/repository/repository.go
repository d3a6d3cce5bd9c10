package repository

import (
	"context"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
)

// ProductFilter defines the listing criteria pushed down to the store. Empty
// or "All" values disable the corresponding filter; unknown sort keys fall
// back to the default ordering (creation recency, newest first).
type ProductFilter struct {
	Category string
	Brand    string
	Search   string
	Sort     string
	Page     int
	PerPage  int
}

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	// Create inserts a new product into the store.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// GetByIDs retrieves the products for the given identifiers. Missing
	// identifiers are silently omitted from the result.
	GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error)

	// List returns products matching the filter along with the total
	// matching count independent of pagination.
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, int, error)

	// Brands returns the distinct non-empty brands in the catalog.
	Brands(ctx context.Context) ([]string, error)

	// Update modifies an existing product in the store.
	Update(ctx context.Context, product *domain.Product) error

	// Delete removes a product from the store by its identifier.
	Delete(ctx context.Context, id string) error
}

// CartRepository defines the interface for cart persistence. One cart per
// user; concurrent writers are resolved last-write-wins by the store.
type CartRepository interface {
	// Get retrieves the cart for a user.
	Get(ctx context.Context, userID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the user.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes the user's cart from the store.
	Delete(ctx context.Context, userID string) error
}
