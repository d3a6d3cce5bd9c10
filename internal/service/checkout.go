package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/event"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/repository"
	apperrors "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/errors"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/logger"
)

// OrderConfirmation is returned after a successful checkout.
type OrderConfirmation struct {
	OrderID  string              `json:"order_id"`
	UserID   string              `json:"user_id"`
	Lines    []CartLine          `json:"lines"`
	Totals   domain.OrderSummary `json:"totals"`
	PlacedAt time.Time           `json:"placed_at"`
}

// CheckoutService turns a cart into an order confirmation. Payment is
// simulated with a fixed processing delay; no real payment provider is
// involved.
type CheckoutService struct {
	carts        repository.CartRepository
	cartService  *CartService
	producer     *event.Producer
	logger       *slog.Logger
	paymentDelay time.Duration
}

// NewCheckoutService creates a checkout service. paymentDelay is how long the
// simulated payment step takes.
func NewCheckoutService(carts repository.CartRepository, cartService *CartService, producer *event.Producer, log *slog.Logger, paymentDelay time.Duration) *CheckoutService {
	return &CheckoutService{
		carts:        carts,
		cartService:  cartService,
		producer:     producer,
		logger:       log,
		paymentDelay: paymentDelay,
	}
}

// PlaceOrder prices the user's cart, runs the simulated payment, clears the
// cart, and emits an order.placed event. An empty cart cannot be checked out.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string) (*OrderConfirmation, error) {
	cart, err := s.cartService.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	summary, err := s.cartService.priceCart(ctx, cart)
	if err != nil {
		return nil, err
	}
	if len(summary.Lines) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	if err := s.processPayment(ctx); err != nil {
		return nil, err
	}

	confirmation := &OrderConfirmation{
		OrderID:  uuid.New().String(),
		UserID:   userID,
		Lines:    summary.Lines,
		Totals:   summary.Totals,
		PlacedAt: time.Now().UTC(),
	}

	if err := s.carts.Delete(ctx, userID); err != nil {
		return nil, err
	}

	s.publishOrderPlaced(ctx, confirmation, summary.ItemCount)

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "order placed",
		slog.String("order_id", confirmation.OrderID),
		slog.Int("item_count", summary.ItemCount),
		slog.Float64("total", confirmation.Totals.Total))

	return confirmation, nil
}

// processPayment simulates the payment provider round trip. It respects
// context cancellation so an abandoned request does not hold the handler;
// an interrupted payment surfaces as a payment failure, not a server error.
func (s *CheckoutService) processPayment(ctx context.Context) error {
	if s.paymentDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.paymentDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return apperrors.PaymentFailed("payment was not completed: " + ctx.Err().Error())
	}
}

// publishOrderPlaced emits the order event, logging on failure. The order has
// already been confirmed to the customer at this point.
func (s *CheckoutService) publishOrderPlaced(ctx context.Context, c *OrderConfirmation, itemCount int) {
	if s.producer == nil {
		return
	}

	err := s.producer.PublishOrderPlaced(ctx, event.OrderPlacedEvent{
		OrderID:   c.OrderID,
		UserID:    c.UserID,
		ItemCount: itemCount,
		Subtotal:  c.Totals.Subtotal,
		Shipping:  c.Totals.Shipping,
		Tax:       c.Totals.Tax,
		Total:     c.Totals.Total,
		PlacedAt:  c.PlacedAt,
	})
	if err != nil {
		logger.WithContext(ctx, s.logger).ErrorContext(ctx, "failed to publish event",
			slog.String("event", "order.placed"),
			slog.String("error", err.Error()))
	}
}
