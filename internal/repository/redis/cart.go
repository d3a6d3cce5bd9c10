// Package redis implements cart persistence on Redis. Carts are small JSON
// documents keyed by user and expire after a configurable idle TTL, so
// abandoned carts clean themselves up.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
	apperrors "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/errors"
)

const cartKeyPrefix = "cart:"

// CartRepository stores one cart per user as a JSON value.
type CartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCartRepository creates a Redis-backed cart repository. Every Save
// refreshes the TTL, so active carts never expire mid-session.
func NewCartRepository(client *redis.Client, ttl time.Duration) *CartRepository {
	return &CartRepository{client: client, ttl: ttl}
}

// Get retrieves the cart for a user.
func (r *CartRepository) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound("cart", userID)
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart: %w", err)
	}

	return &cart, nil
}

// Save persists a cart, overwriting any existing cart for the user and
// resetting its TTL.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	if err := r.client.Set(ctx, cartKey(cart.UserID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}

	return nil
}

// Delete removes the user's cart. Deleting a cart that does not exist is not
// an error.
func (r *CartRepository) Delete(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

func cartKey(userID string) string {
	return cartKeyPrefix + userID
}
