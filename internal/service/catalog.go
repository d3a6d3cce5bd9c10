// Package service implements the storefront use cases over the repositories:
// catalog browsing and administration, cart mutations and summaries, and
// checkout.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/catalog"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/event"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/repository"
	apperrors "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/errors"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/logger"
)

// ProductListing is the result of a catalog listing: one page of products and
// the total matching count before pagination.
type ProductListing struct {
	Products []domain.Product
	Total    int
}

// ProductInput carries the fields for creating a product.
type ProductInput struct {
	Name          string
	Brand         string
	Model         string
	Category      string
	Description   string
	Price         float64
	OriginalPrice float64
	PriceAED      float64
	Image         string
	Images        []string
	Stock         int
	Rating        float64
	Reviews       int
	Featured      bool
}

// ProductUpdate carries the fields for a partial product update. Nil fields
// are left unchanged.
type ProductUpdate struct {
	Name          *string
	Brand         *string
	Model         *string
	Category      *string
	Description   *string
	Price         *float64
	OriginalPrice *float64
	PriceAED      *float64
	Image         *string
	Images        []string
	Stock         *int
	Rating        *float64
	Reviews       *int
	Featured      *bool
}

// CatalogService handles product browsing and administration. When the
// database is unreachable, read operations fall back to the built-in dataset
// so the storefront stays browsable.
type CatalogService struct {
	repo     repository.ProductRepository
	producer *event.Producer
	logger   *slog.Logger
	fallback []domain.Product
}

// NewCatalogService creates a catalog service.
func NewCatalogService(repo repository.ProductRepository, producer *event.Producer, log *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		producer: producer,
		logger:   log,
		fallback: catalog.FallbackCatalog(),
	}
}

// ListProducts returns one page of the catalog matching the filter. A
// repository failure degrades to the fallback dataset run through the same
// query pipeline instead of surfacing an error.
func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) (*ProductListing, error) {
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		logger.WithContext(ctx, s.logger).WarnContext(ctx, "catalog store unavailable, serving fallback dataset",
			slog.String("error", err.Error()))
		products, total = s.listFallback(filter)
	}

	return &ProductListing{Products: products, Total: total}, nil
}

// GetProduct retrieves a single product by ID, falling back to the built-in
// dataset when the store is unreachable.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return product, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	logger.WithContext(ctx, s.logger).WarnContext(ctx, "catalog store unavailable, serving fallback dataset",
		slog.String("error", err.Error()))
	for i := range s.fallback {
		if s.fallback[i].ID == id {
			p := s.fallback[i]
			return &p, nil
		}
	}
	return nil, apperrors.NotFound("product", id)
}

// Brands returns the distinct brands in the catalog.
func (s *CatalogService) Brands(ctx context.Context) ([]string, error) {
	brands, err := s.repo.Brands(ctx)
	if err != nil {
		logger.WithContext(ctx, s.logger).WarnContext(ctx, "catalog store unavailable, serving fallback dataset",
			slog.String("error", err.Error()))
		return catalog.Brands(s.fallback), nil
	}
	return brands, nil
}

// CreateProduct validates the input and inserts a new product.
func (s *CatalogService) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if err := validateProductFields(in.Name, in.Category, in.Price, in.Stock, in.Rating); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Brand:         in.Brand,
		Model:         in.Model,
		Category:      in.Category,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		PriceAED:      in.PriceAED,
		Image:         in.Image,
		Images:        in.Images,
		Stock:         in.Stock,
		Rating:        in.Rating,
		Reviews:       in.Reviews,
		Featured:      in.Featured,
		DateAdded:     now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "product.created", func() error {
		return s.producer.PublishProductCreated(ctx, product)
	})

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "product created",
		slog.String("product_id", product.ID),
		slog.String("name", product.Name))

	return product, nil
}

// UpdateProduct applies a partial update to an existing product.
func (s *CatalogService) UpdateProduct(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(product, update)

	if err := validateProductFields(product.Name, product.Category, product.Price, product.Stock, product.Rating); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, "product.updated", func() error {
		return s.producer.PublishProductUpdated(ctx, product)
	})

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "product updated",
		slog.String("product_id", product.ID))

	return product, nil
}

// DeleteProduct removes a product from the catalog.
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, "product.deleted", func() error {
		return s.producer.PublishProductDeleted(ctx, id)
	})

	logger.WithContext(ctx, s.logger).InfoContext(ctx, "product deleted",
		slog.String("product_id", id))

	return nil
}

// listFallback runs the filter against the built-in dataset using the
// in-memory pipeline. The default sort is creation recency to match what the
// store would have returned.
func (s *CatalogService) listFallback(filter repository.ProductFilter) ([]domain.Product, int) {
	products := make([]domain.Product, len(s.fallback))
	copy(products, s.fallback)

	sortKey := filter.Sort
	switch sortKey {
	case catalog.SortPriceLow, catalog.SortPriceHigh, catalog.SortNewest, catalog.SortPopular:
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
		sortKey = catalog.SortDefault
	}

	filtered := catalog.Apply(products, catalog.Query{
		Category:      filter.Category,
		Brand:         filter.Brand,
		Search:        filter.Search,
		Sort:          sortKey,
		BrandInSearch: true,
	})

	return catalog.Paginate(filtered, filter.Page, filter.PerPage)
}

// publishEvent fires an event and logs on failure. Event delivery is never
// allowed to fail the request that triggered it.
func (s *CatalogService) publishEvent(ctx context.Context, name string, publish func() error) {
	if s.producer == nil {
		return
	}
	if err := publish(); err != nil {
		logger.WithContext(ctx, s.logger).ErrorContext(ctx, "failed to publish event",
			slog.String("event", name),
			slog.String("error", err.Error()))
	}
}

func validateProductFields(name, category string, price float64, stock int, rating float64) error {
	switch {
	case name == "":
		return apperrors.InvalidInput("name is required")
	case !domain.IsValidCategory(category):
		return apperrors.InvalidInput(fmt.Sprintf("category must be one of %v", domain.ValidCategories()))
	case price < 0:
		return apperrors.InvalidInput("price must not be negative")
	case stock < 0:
		return apperrors.InvalidInput("stock must not be negative")
	case rating < 0 || rating > 5:
		return apperrors.InvalidInput("rating must be between 0 and 5")
	}
	return nil
}

func applyUpdate(p *domain.Product, u ProductUpdate) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Brand != nil {
		p.Brand = *u.Brand
	}
	if u.Model != nil {
		p.Model = *u.Model
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.OriginalPrice != nil {
		p.OriginalPrice = *u.OriginalPrice
	}
	if u.PriceAED != nil {
		p.PriceAED = *u.PriceAED
	}
	if u.Images != nil {
		p.Images = u.Images
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Stock != nil {
		p.Stock = *u.Stock
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	if u.Reviews != nil {
		p.Reviews = *u.Reviews
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
}
