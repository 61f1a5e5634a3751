package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// GetUserByEmail looks a user up by exact email. It returns nil, nil when
// no document matches.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return run(ctx, s.breaker, func(ctx context.Context) (*domain.User, error) {
		var user domain.User
		err := s.collection(CollectionUsers).FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("find user: %w", err)
		}
		return &user, nil
	})
}

// CreateUser inserts a user and sets its ID. A unique-index violation is
// reported as domain.ErrUserAlreadyExists.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	duplicate := false

	id, err := run(ctx, s.breaker, func(ctx context.Context) (bson.ObjectID, error) {
		res, err := s.collection(CollectionUsers).InsertOne(ctx, user)
		if mongo.IsDuplicateKeyError(err) {
			duplicate = true
			return bson.ObjectID{}, nil
		}
		if err != nil {
			return bson.ObjectID{}, fmt.Errorf("insert user: %w", err)
		}
		oid, _ := res.InsertedID.(bson.ObjectID)
		return oid, nil
	})
	if err != nil {
		return err
	}
	if duplicate {
		return domain.ErrUserAlreadyExists
	}

	user.ID = id
	return nil
}
