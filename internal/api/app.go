package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/shopbazar/internal/api/middleware"
	"github.com/felixgeelhaar/shopbazar/internal/auth"
	"github.com/felixgeelhaar/shopbazar/internal/cart"
	"github.com/felixgeelhaar/shopbazar/internal/catalog"
	"github.com/felixgeelhaar/shopbazar/internal/config"
	"github.com/felixgeelhaar/shopbazar/internal/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// App holds all application dependencies
type App struct {
	Config    *config.Config
	Store     Store
	Tokens    *auth.JWT
	Auth      *auth.Service
	Catalog   *catalog.Service
	Cart      *cart.Service
	Events    events.Publisher
	Metrics   *middleware.Metrics
	Registry  *prometheus.Registry
	RateLimit *middleware.RateLimiter
}

// AppConfig holds configuration for application initialization.
// A nil Store or Publisher is built from Config.
type AppConfig struct {
	Config    *config.Config
	Store     Store
	Publisher events.Publisher
	Logger    *slog.Logger
}

// NewApp creates a new application instance with all dependencies wired
func NewApp(ctx context.Context, cfg AppConfig) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	app := &App{
		Config: cfg.Config,
		Store:  cfg.Store,
		Events: cfg.Publisher,
	}

	tokens, err := auth.NewJWT(cfg.Config.Token.Secret, cfg.Config.Token.TTL)
	if err != nil {
		return nil, fmt.Errorf("init token manager: %w", err)
	}
	app.Tokens = tokens

	if app.Store == nil {
		store, err := OpenStore(ctx, cfg.Config, logger)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		app.Store = store
	}

	if app.Events == nil {
		app.Events = newPublisher(cfg.Config.Events, logger)
	}

	app.Auth = auth.NewService(app.Store, tokens,
		auth.WithBcryptCost(cfg.Config.Token.BcryptCost),
		auth.WithPublisher(app.Events),
	)
	app.Catalog = catalog.NewService(app.Store)
	app.Cart = cart.NewService(app.Store, app.Events)

	app.Metrics = middleware.NewMetrics()
	app.Registry = prometheus.NewRegistry()
	app.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		app.Metrics,
	)

	if !cfg.Config.Debug && cfg.Config.RateLimitRPM > 0 {
		app.RateLimit = middleware.NewRateLimiter(cfg.Config.RateLimitRPM, cfg.Config.TrustProxy)
	}

	return app, nil
}

// newPublisher connects to RabbitMQ when a URL is configured. Events are
// optional, so a broker that cannot be reached only disables them.
func newPublisher(cfg config.Events, logger *slog.Logger) events.Publisher {
	if cfg.URL == "" {
		return events.Nop{}
	}

	pub, err := events.NewAMQPPublisher(cfg.URL, cfg.Exchange)
	if err != nil {
		logger.Warn("event publishing disabled", "error", err)
		return events.Nop{}
	}
	logger.Info("publishing events", "exchange", cfg.Exchange)
	return pub
}

// Close releases the store, the publisher and the rate limiter
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.RateLimit != nil {
		errs = append(errs, a.RateLimit.Close())
	}
	if a.Events != nil {
		errs = append(errs, a.Events.Close())
	}
	if a.Store != nil {
		errs = append(errs, a.Store.Close(ctx))
	}
	return errors.Join(errs...)
}
