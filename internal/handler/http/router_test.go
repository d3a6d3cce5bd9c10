package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/auth"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/repository"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/service"
	apperrors "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/errors"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/health"
)

// stubProductRepo implements repository.ProductRepository with overridable
// function fields. Unset operations fail loudly.
type stubProductRepo struct {
	create   func(ctx context.Context, p *domain.Product) error
	getByID  func(ctx context.Context, id string) (*domain.Product, error)
	getByIDs func(ctx context.Context, ids []string) ([]domain.Product, error)
	list     func(ctx context.Context, f repository.ProductFilter) ([]domain.Product, int, error)
	brands   func(ctx context.Context) ([]string, error)
	update   func(ctx context.Context, p *domain.Product) error
	delete   func(ctx context.Context, id string) error
}

func (s *stubProductRepo) Create(ctx context.Context, p *domain.Product) error {
	return s.create(ctx, p)
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.getByID(ctx, id)
}

func (s *stubProductRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	return s.getByIDs(ctx, ids)
}

func (s *stubProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]domain.Product, int, error) {
	return s.list(ctx, f)
}

func (s *stubProductRepo) Brands(ctx context.Context) ([]string, error) {
	return s.brands(ctx)
}

func (s *stubProductRepo) Update(ctx context.Context, p *domain.Product) error {
	return s.update(ctx, p)
}

func (s *stubProductRepo) Delete(ctx context.Context, id string) error {
	return s.delete(ctx, id)
}

// memCartRepo is an in-memory cart store for handler tests.
type memCartRepo struct {
	carts map[string]*domain.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: make(map[string]*domain.Cart)}
}

func (m *memCartRepo) Get(_ context.Context, userID string) (*domain.Cart, error) {
	cart, ok := m.carts[userID]
	if !ok {
		return nil, apperrors.NotFound("cart", userID)
	}
	cp := *cart
	cp.Items = append([]domain.CartItem{}, cart.Items...)
	return &cp, nil
}

func (m *memCartRepo) Save(_ context.Context, cart *domain.Cart) error {
	cp := *cart
	cp.Items = append([]domain.CartItem{}, cart.Items...)
	m.carts[cart.UserID] = &cp
	return nil
}

func (m *memCartRepo) Delete(_ context.Context, userID string) error {
	delete(m.carts, userID)
	return nil
}

type testEnv struct {
	router   chi.Router
	jwt      *auth.JWTManager
	products *stubProductRepo
	carts    *memCartRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	products := &stubProductRepo{}
	carts := newMemCartRepo()
	jwtMgr := auth.NewJWTManager("test-secret", time.Hour)

	catalogSvc := service.NewCatalogService(products, nil, log)
	cartSvc := service.NewCartService(carts, products, nil, log)
	checkoutSvc := service.NewCheckoutService(carts, cartSvc, nil, log, 0)

	router := NewRouter(RouterConfig{
		Products:      NewProductHandler(catalogSvc, log),
		Cart:          NewCartHandler(cartSvc, log),
		Checkout:      NewCheckoutHandler(checkoutSvc, log),
		Health:        health.NewHandler(),
		Logger:        log,
		ValidateToken: jwtMgr.ValidateToken,
	})

	return &testEnv{router: router, jwt: jwtMgr, products: products, carts: carts}
}

func (e *testEnv) bearer(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := e.jwt.GenerateToken(userID, userID+"@example.com", role)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func authed(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", token)
	return req
}
