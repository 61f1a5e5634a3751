package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/shopbazar/internal/auth"
	"github.com/felixgeelhaar/shopbazar/internal/cart"
	"github.com/felixgeelhaar/shopbazar/internal/catalog"
	"github.com/felixgeelhaar/shopbazar/internal/config"
	"github.com/felixgeelhaar/shopbazar/internal/storage/memory"
	"github.com/felixgeelhaar/shopbazar/internal/storage/mongo"
)

// Store is the full persistence surface the services need
type Store interface {
	auth.Repository
	catalog.Repository
	catalog.Writer
	cart.Repository

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

var (
	_ Store = (*mongo.Store)(nil)
	_ Store = (*memory.Store)(nil)
)

// OpenStore connects the backend selected by cfg.Store. The memory backend
// is loaded from CatalogSeedFile when one is configured.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Store, error) {
	switch cfg.Store {
	case config.StoreMemory:
		store := memory.NewStore()
		if cfg.CatalogSeedFile != "" {
			seed, err := catalog.LoadSeed(cfg.CatalogSeedFile)
			if err != nil {
				return nil, err
			}
			if err := seed.Apply(ctx, store); err != nil {
				return nil, fmt.Errorf("seed memory store: %w", err)
			}
			logger.Info("catalog seed loaded",
				"file", cfg.CatalogSeedFile,
				"products", len(seed.Products),
				"reviews", len(seed.Reviews),
			)
		}
		return store, nil

	case config.StoreMongo:
		return mongo.Connect(ctx, cfg.Mongo, logger)

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
