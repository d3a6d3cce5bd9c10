package http

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/health"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/middleware"
)

const serviceName = "storefront"

// RouterConfig holds the handlers and cross-cutting dependencies for the
// HTTP router.
type RouterConfig struct {
	Products      *ProductHandler
	Cart          *CartHandler
	Checkout      *CheckoutHandler
	Health        *health.Handler
	Logger        *slog.Logger
	ValidateToken middleware.TokenValidator
}

// NewRouter builds the chi router with the full middleware chain and all
// storefront routes.
func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.PrometheusMetrics(serviceName))
	r.Use(middleware.Tracing(serviceName))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	authn := middleware.Auth(cfg.ValidateToken)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", cfg.Products.List)
			r.Get("/brands", cfg.Products.Brands)
			r.Get("/{id}", cfg.Products.Get)

			r.Group(func(r chi.Router) {
				r.Use(authn)
				r.Use(middleware.RequireRole("admin"))
				r.Post("/", cfg.Products.Create)
				r.Put("/{id}", cfg.Products.Update)
				r.Delete("/{id}", cfg.Products.Delete)
			})
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(authn)
			r.Get("/", cfg.Cart.Get)
			r.Delete("/", cfg.Cart.Clear)
			r.Get("/summary", cfg.Cart.Summary)
			r.Post("/items", cfg.Cart.AddItem)
			r.Put("/items/{productId}", cfg.Cart.UpdateQuantity)
			r.Delete("/items/{productId}", cfg.Cart.RemoveItem)
		})

		r.Group(func(r chi.Router) {
			r.Use(authn)
			r.Post("/checkout", cfg.Checkout.PlaceOrder)
		})
	})

	return r
}
