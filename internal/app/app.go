// Package app wires together all dependencies and runs the storefront
// service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/auth"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/config"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/event"
	handler "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/handler/http"
	pgrepo "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/repository/postgres"
	redisrepo "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/repository/redis"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/internal/service"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/database"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/health"
	pkgkafka "github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/kafka"
	"github.com/sajadh-ahamed/CodeAlpha-ETERNAL/pkg/tracing"
)

const tokenTTL = 24 * time.Hour

// App holds the running service and its external connections.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	pool            *pgxpool.Pool
	rdb             *redis.Client
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates the application, connecting to Postgres, Redis, and Kafka
// and building the full dependency graph.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Tracing.
	tracingShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// PostgreSQL (catalog).
	pool, err := database.NewPostgresPool(ctx, database.DefaultPostgresConfig(cfg.PostgresDSN()))
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	logger.Info("connected to PostgreSQL",
		slog.String("host", cfg.PostgresHost),
		slog.String("database", cfg.PostgresDB),
	)

	// Redis (carts).
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("addr", cfg.RedisAddr),
		slog.Int("db", cfg.RedisDB),
	)

	// Kafka producer.
	producer := pkgkafka.NewProducer(pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers), logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Build the dependency graph.
	productRepo := pgrepo.NewProductRepository(pool)
	cartRepo := redisrepo.NewCartRepository(rdb, time.Duration(cfg.CartTTLHours)*time.Hour)
	eventProducer := event.NewProducer(producer)

	catalogService := service.NewCatalogService(productRepo, eventProducer, logger)
	cartService := service.NewCartService(cartRepo, productRepo, eventProducer, logger)
	checkoutService := service.NewCheckoutService(cartRepo, cartService, eventProducer, logger,
		time.Duration(cfg.PaymentDelayMS)*time.Millisecond)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, tokenTTL)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("postgres", func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})

	router := handler.NewRouter(handler.RouterConfig{
		Products:      handler.NewProductHandler(catalogService, logger),
		Cart:          handler.NewCartHandler(cartService, logger),
		Checkout:      handler.NewCheckoutHandler(checkoutService, logger),
		Health:        healthHandler,
		Logger:        logger,
		ValidateToken: jwtManager.ValidateToken,
	})

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		pool:            pool,
		rdb:             rdb,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	a.pool.Close()

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}
