package mongo

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// InsertItem stores a cart item in the orders collection and sets its ID
func (s *Store) InsertItem(ctx context.Context, item *domain.CartItem) error {
	id, err := run(ctx, s.breaker, func(ctx context.Context) (bson.ObjectID, error) {
		res, err := s.collection(CollectionOrders).InsertOne(ctx, item)
		if err != nil {
			return bson.ObjectID{}, fmt.Errorf("insert order: %w", err)
		}
		oid, _ := res.InsertedID.(bson.ObjectID)
		return oid, nil
	})
	if err != nil {
		return err
	}
	item.ID = id
	return nil
}

// ListByOwner returns the orders whose userEmail equals email, ordered by _id
func (s *Store) ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error) {
	return run(ctx, s.breaker, func(ctx context.Context) ([]domain.CartItem, error) {
		opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
		cursor, err := s.collection(CollectionOrders).Find(ctx, bson.D{{Key: "userEmail", Value: email}}, opts)
		if err != nil {
			return nil, fmt.Errorf("find orders: %w", err)
		}

		items := []domain.CartItem{}
		if err := cursor.All(ctx, &items); err != nil {
			return nil, fmt.Errorf("decode orders: %w", err)
		}
		return items, nil
	})
}

// DeleteItem removes one order by id. A non-empty owner adds a userEmail match.
func (s *Store) DeleteItem(ctx context.Context, id bson.ObjectID, owner string) (int64, error) {
	filter := bson.D{{Key: "_id", Value: id}}
	if owner != "" {
		filter = append(filter, bson.E{Key: "userEmail", Value: owner})
	}

	return run(ctx, s.breaker, func(ctx context.Context) (int64, error) {
		res, err := s.collection(CollectionOrders).DeleteOne(ctx, filter)
		if err != nil {
			return 0, fmt.Errorf("delete order: %w", err)
		}
		return res.DeletedCount, nil
	})
}
