package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/service"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/httputil"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/middleware"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/validator"
)

// CartHandler serves the authenticated cart endpoints. The acting user is
// always taken from the token claims, never from the request body.
type CartHandler struct {
	carts  *service.CartService
	logger *slog.Logger
}

// NewCartHandler creates a cart handler.
func NewCartHandler(carts *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{carts: carts, logger: log}
}

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	// Quantity is optional; anything below one is treated as one.
	Quantity int `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type cartResponse struct {
	ID        string            `json:"id"`
	Items     []domain.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
}

func toCartResponse(cart *domain.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		ID:        cart.ID,
		Items:     items,
		ItemCount: cart.ItemCount(),
	}
}

// Get handles GET /api/v1/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	cart, err := h.carts.GetCart(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toCartResponse(cart)})
}

// AddItem handles POST /api/v1/cart/items.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	var req addItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.carts.AddItem(r.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toCartResponse(cart)})
}

// UpdateQuantity handles PUT /api/v1/cart/items/{productId}.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	var req updateQuantityRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.carts.UpdateQuantity(r.Context(), userID, productID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toCartResponse(cart)})
}

// RemoveItem handles DELETE /api/v1/cart/items/{productId}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())
	productID := chi.URLParam(r, "productId")

	cart, err := h.carts.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toCartResponse(cart)})
}

// Clear handles DELETE /api/v1/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	if err := h.carts.ClearCart(r.Context(), userID); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Summary handles GET /api/v1/cart/summary. Monetary amounts are rounded to
// two decimals for display.
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	summary, err := h.carts.Summary(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: toSummaryResponse(summary)})
}

type summaryResponse struct {
	Lines     []service.CartLine  `json:"lines"`
	ItemCount int                 `json:"item_count"`
	Totals    domain.OrderSummary `json:"totals"`
}

func toSummaryResponse(s *service.CartSummary) summaryResponse {
	lines := make([]service.CartLine, len(s.Lines))
	for i, line := range s.Lines {
		line.Price = domain.Round2(line.Price)
		line.LineTotal = domain.Round2(line.LineTotal)
		lines[i] = line
	}
	return summaryResponse{
		Lines:     lines,
		ItemCount: s.ItemCount,
		Totals:    s.Totals.Rounded(),
	}
}
