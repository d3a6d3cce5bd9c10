// Package http wires the storefront's REST API: public catalog browsing,
// authenticated cart and checkout operations, and admin catalog management.
package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/repository"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/service"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/httputil"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/pagination"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/validator"
)

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a product handler.
func NewProductHandler(catalog *service.CatalogService, log *slog.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, logger: log}
}

type createProductRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=200"`
	Brand         string   `json:"brand" validate:"max=100"`
	Model         string   `json:"model" validate:"max=100"`
	Category      string   `json:"category" validate:"required,oneof=Men Women"`
	Description   string   `json:"description" validate:"max=2000"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice float64  `json:"original_price" validate:"gte=0"`
	PriceAED      float64  `json:"price_aed" validate:"gte=0"`
	Image         string   `json:"image"`
	Images        []string `json:"images"`
	Stock         int      `json:"stock" validate:"gte=0"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews       int      `json:"reviews" validate:"gte=0"`
	Featured      bool     `json:"featured"`
}

type updateProductRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Brand         *string  `json:"brand" validate:"omitempty,max=100"`
	Model         *string  `json:"model" validate:"omitempty,max=100"`
	Category      *string  `json:"category" validate:"omitempty,oneof=Men Women"`
	Description   *string  `json:"description" validate:"omitempty,max=2000"`
	Price         *float64 `json:"price" validate:"omitempty,gte=0"`
	OriginalPrice *float64 `json:"original_price" validate:"omitempty,gte=0"`
	PriceAED      *float64 `json:"price_aed" validate:"omitempty,gte=0"`
	Image         *string  `json:"image"`
	Images        []string `json:"images"`
	Stock         *int     `json:"stock" validate:"omitempty,gte=0"`
	Rating        *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
	Reviews       *int     `json:"reviews" validate:"omitempty,gte=0"`
	Featured      *bool    `json:"featured"`
}

// List handles GET /api/v1/products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.FromRequest(r)
	q := r.URL.Query()

	filter := repository.ProductFilter{
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
		Page:     page.Page,
		PerPage:  page.PerPage,
	}

	listing, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK,
		httputil.NewPaginatedResponse(listing.Products, listing.Total, page.Page, page.PerPage))
}

// Get handles GET /api/v1/products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// Brands handles GET /api/v1/products/brands.
func (h *ProductHandler) Brands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalog.Brands(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: brands})
}

// Create handles POST /api/v1/products (admin).
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.catalog.CreateProduct(r.Context(), service.ProductInput{
		Name:          req.Name,
		Brand:         req.Brand,
		Model:         req.Model,
		Category:      req.Category,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		PriceAED:      req.PriceAED,
		Image:         req.Image,
		Images:        req.Images,
		Stock:         req.Stock,
		Rating:        req.Rating,
		Reviews:       req.Reviews,
		Featured:      req.Featured,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: product})
}

// Update handles PUT /api/v1/products/{id} (admin).
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateProductRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	product, err := h.catalog.UpdateProduct(r.Context(), id, service.ProductUpdate{
		Name:          req.Name,
		Brand:         req.Brand,
		Model:         req.Model,
		Category:      req.Category,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		PriceAED:      req.PriceAED,
		Image:         req.Image,
		Images:        req.Images,
		Stock:         req.Stock,
		Rating:        req.Rating,
		Reviews:       req.Reviews,
		Featured:      req.Featured,
	})
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: product})
}

// Delete handles DELETE /api/v1/products/{id} (admin).
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalog.DeleteProduct(r.Context(), id); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
