package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/domain"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/service"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/httputil"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/middleware"
)

// CheckoutHandler serves the checkout endpoint.
type CheckoutHandler struct {
	checkout *service.CheckoutService
	logger   *slog.Logger
}

// NewCheckoutHandler creates a checkout handler.
func NewCheckoutHandler(checkout *service.CheckoutService, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, logger: log}
}

type orderResponse struct {
	OrderID  string              `json:"order_id"`
	Lines    []service.CartLine  `json:"lines"`
	Totals   domain.OrderSummary `json:"totals"`
	PlacedAt time.Time           `json:"placed_at"`
}

// PlaceOrder handles POST /api/v1/checkout.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r.Context())

	confirmation, err := h.checkout.PlaceOrder(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	lines := make([]service.CartLine, len(confirmation.Lines))
	for i, line := range confirmation.Lines {
		line.Price = domain.Round2(line.Price)
		line.LineTotal = domain.Round2(line.LineTotal)
		lines[i] = line
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: orderResponse{
		OrderID:  confirmation.OrderID,
		Lines:    lines,
		Totals:   confirmation.Totals.Rounded(),
		PlacedAt: confirmation.PlacedAt,
	}})
}
