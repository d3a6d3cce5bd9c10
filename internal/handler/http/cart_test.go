package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
	apperrors "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/errors"
)

func stubCatalogProducts(env *testEnv, products map[string]*domain.Product) {
	env.products.getByID = func(_ context.Context, id string) (*domain.Product, error) {
		if p, ok := products[id]; ok {
			return p, nil
		}
		return nil, apperrors.NotFound("product", id)
	}
	env.products.getByIDs = func(_ context.Context, ids []string) ([]domain.Product, error) {
		var found []domain.Product
		for _, id := range ids {
			if p, ok := products[id]; ok {
				found = append(found, *p)
			}
		}
		return found, nil
	}
}

func TestCart_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCart_GetEmpty(t *testing.T) {
	env := newTestEnv(t)
	token := env.bearer(t, "user-1", "customer")

	req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data cartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Data.Items)
	assert.Zero(t, body.Data.ItemCount)
}

func TestCart_AddAndMerge(t *testing.T) {
	env := newTestEnv(t)
	stubCatalogProducts(env, map[string]*domain.Product{
		"p-001": {ID: "p-001", Name: "Prospex", Price: 1199.00},
	})
	token := env.bearer(t, "user-1", "customer")

	add := func(body string) *httptest.ResponseRecorder {
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body)), token)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec
	}

	rec := add(`{"product_id":"p-001","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = add(`{"product_id":"p-001","quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data cartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, 5, body.Data.Items[0].Quantity)
	assert.Equal(t, 5, body.Data.ItemCount)
}

func TestCart_AddUnknownProduct(t *testing.T) {
	env := newTestEnv(t)
	stubCatalogProducts(env, nil)
	token := env.bearer(t, "user-1", "customer")

	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"missing"}`)), token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCart_UpdateQuantityToZeroRemoves(t *testing.T) {
	env := newTestEnv(t)
	stubCatalogProducts(env, map[string]*domain.Product{
		"p-001": {ID: "p-001", Name: "Prospex", Price: 1199.00},
	})
	token := env.bearer(t, "user-1", "customer")

	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"p-001","quantity":2}`)), token)
	env.router.ServeHTTP(httptest.NewRecorder(), req)

	req = authed(httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/p-001",
		strings.NewReader(`{"quantity":0}`)), token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data cartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Data.Items)
}

func TestCart_Summary(t *testing.T) {
	env := newTestEnv(t)
	stubCatalogProducts(env, map[string]*domain.Product{
		"p-001": {ID: "p-001", Name: "Prospex", Price: 30.00},
		"p-002": {ID: "p-002", Name: "PRX", Price: 40.00},
	})
	token := env.bearer(t, "user-1", "customer")

	for _, body := range []string{
		`{"product_id":"p-001","quantity":2}`,
		`{"product_id":"p-002","quantity":1}`,
	} {
		req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(body)), token)
		env.router.ServeHTTP(httptest.NewRecorder(), req)
	}

	req := authed(httptest.NewRequest(http.MethodGet, "/api/v1/cart/summary", nil), token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data summaryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Data.ItemCount)
	assert.InDelta(t, 100.00, body.Data.Totals.Subtotal, 0.001)
	assert.InDelta(t, 29.99, body.Data.Totals.Shipping, 0.001)
	assert.InDelta(t, 10.00, body.Data.Totals.Tax, 0.001)
	assert.InDelta(t, 139.99, body.Data.Totals.Total, 0.001)
}

func TestCart_Clear(t *testing.T) {
	env := newTestEnv(t)
	stubCatalogProducts(env, map[string]*domain.Product{
		"p-001": {ID: "p-001", Name: "Prospex", Price: 30.00},
	})
	token := env.bearer(t, "user-1", "customer")

	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"p-001"}`)), token)
	env.router.ServeHTTP(httptest.NewRecorder(), req)

	req = authed(httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil), token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	req = authed(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), token)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var body struct {
		Data cartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Data.Items)
}

func TestCheckout(t *testing.T) {
	env := newTestEnv(t)
	stubCatalogProducts(env, map[string]*domain.Product{
		"p-001": {ID: "p-001", Name: "Prospex", Price: 50.00},
	})
	token := env.bearer(t, "user-1", "customer")

	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/cart/items",
		strings.NewReader(`{"product_id":"p-001","quantity":2}`)), token)
	env.router.ServeHTTP(httptest.NewRecorder(), req)

	req = authed(httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil), token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data orderResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Data.OrderID)
	assert.InDelta(t, 139.99, body.Data.Totals.Total, 0.001)

	// Checkout clears the cart.
	req = authed(httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil), token)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	var cartBody struct {
		Data cartResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cartBody))
	assert.Empty(t, cartBody.Data.Items)
}

func TestCheckout_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	token := env.bearer(t, "user-1", "customer")

	req := authed(httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil), token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "cart is empty")
}
