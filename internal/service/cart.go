package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/event"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/repository"
	apperrors "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/errors"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/logger"
)

// CartLine is a cart line with its price resolved against the catalog.
type CartLine struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// CartSummary is a priced view of a cart: resolved lines plus derived totals.
type CartSummary struct {
	Lines     []CartLine          `json:"lines"`
	ItemCount int                 `json:"item_count"`
	Totals    domain.OrderSummary `json:"totals"`
}

// CartService manages per-user carts. Cart lines store only a product
// reference and a quantity; prices are looked up at summary time so the cart
// always reflects current catalog prices.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a cart service.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository, producer *event.Producer, log *slog.Logger) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		producer: producer,
		logger:   log,
	}
}

// GetCart returns the user's cart, or a fresh empty cart if none exists yet.
// The empty cart is not persisted until the first mutation.
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return newCart(userID), nil
		}
		return nil, err
	}
	return cart, nil
}

// AddItem adds a quantity of a product to the cart, merging with an existing
// line for the same product. Quantities below one are normalized to one. The
// product must exist in the catalog.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		quantity = 1
	}

	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if idx := cart.FindItemIndex(productID); idx >= 0 {
		cart.Items[idx].Quantity += quantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{ProductID: productID, Quantity: quantity})
	}

	return s.saveCart(ctx, cart)
}

// UpdateQuantity sets the quantity of an existing line. A quantity of zero or
// less removes the line. If the cart has no line for the product, the call is
// a no-op and the cart is returned unchanged.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItemIndex(productID)
	if idx < 0 {
		return cart, nil
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity = quantity
	}

	return s.saveCart(ctx, cart)
}

// RemoveItem removes a product's line from the cart. Removing a product that
// is not in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	return s.UpdateQuantity(ctx, userID, productID, 0)
}

// ClearCart removes all lines from the user's cart.
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.carts.Delete(ctx, userID); err != nil {
		return err
	}

	s.publishEvent(ctx, "cart.cleared", func() error {
		return s.producer.PublishCartCleared(ctx, cart)
	})

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "cart cleared",
		slog.String("cart_id", cart.ID))

	return nil
}

// Summary resolves the cart's lines against the catalog and derives totals.
// Lines whose product no longer exists are skipped rather than failing the
// whole summary.
func (s *CartService) Summary(ctx context.Context, userID string) (*CartSummary, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.priceCart(ctx, cart)
}

func (s *CartService) priceCart(ctx context.Context, cart *domain.Cart) (*CartSummary, error) {
	ids := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	lines := make([]CartLine, 0, len(cart.Items))
	var itemCount int
	for _, item := range cart.Items {
		p, ok := byID[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, CartLine{
			ProductID: item.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  item.Quantity,
			LineTotal: p.Price * float64(item.Quantity),
		})
		itemCount += item.Quantity
	}

	subtotal := cart.Subtotal(func(productID string) (float64, bool) {
		p, ok := byID[productID]
		if !ok {
			return 0, false
		}
		return p.Price, true
	})

	return &CartSummary{
		Lines:     lines,
		ItemCount: itemCount,
		Totals:    domain.NewOrderSummary(subtotal),
	}, nil
}

func (s *CartService) saveCart(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	cart.UpdatedAt = time.Now().UTC()
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "cart.updated", func() error {
		return s.producer.PublishCartUpdated(ctx, cart)
	})

	return cart, nil
}

func (s *CartService) publishEvent(ctx context.Context, name string, publish func() error) {
	if s.producer == nil {
		return
	}
	if err := publish(); err != nil {
		logger.WithContext(ctx, s.logger).ErrorContext(ctx, "failed to publish event",
			slog.String("event", name),
			slog.String("error", err.Error()))
	}
}

func newCart(userID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		ID:        uuid.New().String(),
		UserID:    userID,
		Items:     []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
