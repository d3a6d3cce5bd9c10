package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/repository"
)

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) GetByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	args := m.Called(ctx, ids)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]domain.Product, int, error) {
	args := m.Called(ctx, filter)
	if p := args.Get(0); p != nil {
		return p.([]domain.Product), args.Int(1), args.Error(2)
	}
	return nil, args.Int(1), args.Error(2)
}

func (m *mockProductRepo) Brands(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if b := args.Get(0); b != nil {
		return b.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCartRepo struct {
	mock.Mock
}

func (m *mockCartRepo) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	args := m.Called(ctx, userID)
	if c := args.Get(0); c != nil {
		return c.(*domain.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCartRepo) Save(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *mockCartRepo) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
