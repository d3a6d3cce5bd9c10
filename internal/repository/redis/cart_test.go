package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
	apperrors "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/errors"
)

func newTestRepo(t *testing.T) (*CartRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCartRepository(client, time.Hour), mr
}

func TestCartRepository_SaveAndGet(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	cart := &domain.Cart{
		ID:     "cart-1",
		UserID: "user-1",
		Items: []domain.CartItem{
			{ProductID: "p-001", Quantity: 2},
			{ProductID: "p-002", Quantity: 1},
		},
	}

	require.NoError(t, repo.Save(ctx, cart))

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, cart.ID, got.ID)
	assert.Equal(t, cart.Items, got.Items)
}

func TestCartRepository_Get_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.Get(context.Background(), "nobody")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRepository_Save_RefreshesTTL(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	cart := &domain.Cart{ID: "cart-1", UserID: "user-1"}
	require.NoError(t, repo.Save(ctx, cart))

	mr.FastForward(30 * time.Minute)
	require.NoError(t, repo.Save(ctx, cart))
	mr.FastForward(45 * time.Minute)

	// The second save reset the one hour TTL, so the cart is still there.
	_, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)

	mr.FastForward(time.Hour)
	_, err = repo.Get(ctx, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRepository_Delete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	cart := &domain.Cart{ID: "cart-1", UserID: "user-1"}
	require.NoError(t, repo.Save(ctx, cart))
	require.NoError(t, repo.Delete(ctx, "user-1"))

	_, err := repo.Get(ctx, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCartRepository_Delete_Missing(t *testing.T) {
	repo, _ := newTestRepo(t)

	assert.NoError(t, repo.Delete(context.Background(), "nobody"))
}
