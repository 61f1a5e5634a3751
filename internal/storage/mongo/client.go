// Package mongo implements the user, catalog and cart stores on MongoDB.
package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/shopbazar/internal/config"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Collection names
const (
	CollectionUsers    = "users"
	CollectionProducts = "products"
	CollectionReviews  = "reviews"
	CollectionOrders   = "orders"
)

const appName = "shop-bazar"

// Store owns the MongoDB client and the breaker shared by every collection
type Store struct {
	client  *mongo.Client
	db      *mongo.Database
	breaker circuitbreaker.CircuitBreaker[any]
	logger  *slog.Logger
}

// Connect opens a client pinned to Stable API v1, pings the deployment and
// creates the indexes the stores rely on.
func Connect(ctx context.Context, cfg config.Mongo, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetAppName(appName)
	if cfg.Timeout > 0 {
		opts.SetTimeout(cfg.Timeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	logger.Info("Pinged your deployment. You successfully connected to MongoDB!",
		"database", cfg.Database)

	s := &Store{
		client:  client,
		db:      client.Database(cfg.Database),
		breaker: newBreaker(logger),
		logger:  logger,
	}

	if err := s.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return s, nil
}

// EnsureIndexes creates the unique email index on users
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	if err != nil {
		return fmt.Errorf("create users.email index: %w", err)
	}

	_, err = s.db.Collection(CollectionOrders).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userEmail", Value: 1}},
		Options: options.Index().SetName("user_email"),
	})
	if err != nil {
		return fmt.Errorf("create orders.userEmail index: %w", err)
	}
	return nil
}

// Ping checks that the primary is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}
