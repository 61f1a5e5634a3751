package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/felixgeelhaar/shopbazar/internal/catalog"
	"github.com/felixgeelhaar/shopbazar/internal/config"
	"github.com/felixgeelhaar/shopbazar/internal/storage/mongo"
)

// cmdSeed loads a YAML catalog into the configured MongoDB database
func cmdSeed(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("seed file required (e.g., shopbazar seed catalog.yaml)")
	}

	seed, err := catalog.LoadSeed(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, err := mongo.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	if err := seed.Apply(ctx, store); err != nil {
		return err
	}

	fmt.Printf("Seeded %s: %d products, %d reviews\n", cfg.Mongo.Database, len(seed.Products), len(seed.Reviews))
	return nil
}
