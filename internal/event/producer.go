// Package event publishes storefront domain events to Kafka. Publishing is
// best-effort from the caller's point of view: services log publish failures
// and carry on, so an unavailable broker never blocks a customer request.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/kafka"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/logger"
)

// Topics for storefront events.
const (
	TopicProductCreated = "storefront.product.created"
	TopicProductUpdated = "storefront.product.updated"
	TopicProductDeleted = "storefront.product.deleted"
	TopicCartUpdated    = "storefront.cart.updated"
	TopicCartCleared    = "storefront.cart.cleared"
	TopicOrderPlaced    = "storefront.order.placed"
)

// Aggregate types used in the event envelope.
const (
	AggregateProduct = "product"
	AggregateCart    = "cart"
	AggregateOrder   = "order"
)

const source = "storefront-api"

// Publisher is the subset of the Kafka producer that this package needs.
// Satisfied by *kafka.Producer.
type Publisher interface {
	Publish(ctx context.Context, topic string, event *kafka.Event) error
}

// ProductEvent is the payload for product lifecycle events.
type ProductEvent struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Brand     string  `json:"brand"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
}

// CartEvent is the payload for cart mutation events.
type CartEvent struct {
	CartID    string `json:"cart_id"`
	UserID    string `json:"user_id"`
	ItemCount int    `json:"item_count"`
}

// OrderPlacedEvent is the payload emitted after a successful checkout.
type OrderPlacedEvent struct {
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	ItemCount int       `json:"item_count"`
	Subtotal  float64   `json:"subtotal"`
	Shipping  float64   `json:"shipping"`
	Tax       float64   `json:"tax"`
	Total     float64   `json:"total"`
	PlacedAt  time.Time `json:"placed_at"`
}

// Producer publishes storefront events with the standard envelope.
type Producer struct {
	publisher Publisher
}

// NewProducer creates an event producer over the given publisher.
func NewProducer(publisher Publisher) *Producer {
	return &Producer{publisher: publisher}
}

// PublishProductCreated emits a product.created event.
func (p *Producer) PublishProductCreated(ctx context.Context, product *domain.Product) error {
	return p.publishProduct(ctx, TopicProductCreated, "product.created", product)
}

// PublishProductUpdated emits a product.updated event.
func (p *Producer) PublishProductUpdated(ctx context.Context, product *domain.Product) error {
	return p.publishProduct(ctx, TopicProductUpdated, "product.updated", product)
}

// PublishProductDeleted emits a product.deleted event. Only the ID is known
// at this point; the rest of the payload is left zero.
func (p *Producer) PublishProductDeleted(ctx context.Context, productID string) error {
	return p.publish(ctx, TopicProductDeleted, "product.deleted", productID, AggregateProduct,
		ProductEvent{ProductID: productID})
}

// PublishCartUpdated emits a cart.updated event after any line mutation.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	return p.publish(ctx, TopicCartUpdated, "cart.updated", cart.ID, AggregateCart,
		CartEvent{CartID: cart.ID, UserID: cart.UserID, ItemCount: cart.ItemCount()})
}

// PublishCartCleared emits a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, cart *domain.Cart) error {
	return p.publish(ctx, TopicCartCleared, "cart.cleared", cart.ID, AggregateCart,
		CartEvent{CartID: cart.ID, UserID: cart.UserID})
}

// PublishOrderPlaced emits an order.placed event.
func (p *Producer) PublishOrderPlaced(ctx context.Context, ev OrderPlacedEvent) error {
	return p.publish(ctx, TopicOrderPlaced, "order.placed", ev.OrderID, AggregateOrder, ev)
}

func (p *Producer) publishProduct(ctx context.Context, topic, eventType string, product *domain.Product) error {
	return p.publish(ctx, topic, eventType, product.ID, AggregateProduct, ProductEvent{
		ProductID: product.ID,
		Name:      product.Name,
		Brand:     product.Brand,
		Category:  product.Category,
		Price:     product.Price,
	})
}

func (p *Producer) publish(ctx context.Context, topic, eventType, aggregateID, aggregateType string, data any) error {
	ev, err := kafka.NewEvent(eventType, aggregateID, aggregateType, source, data)
	if err != nil {
		return fmt.Errorf("build %s event: %w", eventType, err)
	}
	if cid := logger.CorrelationIDFromContext(ctx); cid != "" {
		ev.WithCorrelationID(cid)
	}
	return p.publisher.Publish(ctx, topic, ev)
}
