package cart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
	"github.com/felixgeelhaar/shopbazar/internal/events"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository defines the interface for cart item storage
type Repository interface {
	InsertItem(ctx context.Context, item *domain.CartItem) error
	ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error)
	// DeleteItem removes the item with id. A non-empty owner restricts the
	// delete to items whose userEmail equals owner.
	DeleteItem(ctx context.Context, id bson.ObjectID, owner string) (int64, error)
}

// Service manages shopping cart items
type Service struct {
	repo      Repository
	publisher events.Publisher
	now       func() time.Time
}

// NewService creates a new cart service. A nil publisher disables events.
func NewService(repo Repository, publisher events.Publisher) *Service {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Service{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// Add validates and stores a cart item
func (s *Service) Add(ctx context.Context, item domain.CartItem) (*domain.InsertResult, error) {
	item.ID = bson.ObjectID{}
	item.Normalize()
	if err := item.Validate(); err != nil {
		return nil, err
	}
	item.CreatedAt = s.now().UTC()

	if err := s.repo.InsertItem(ctx, &item); err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}

	events.Emit(ctx, s.publisher, events.TypeCartItemAdded, events.CartItemAdded{
		ItemID:    item.ID.Hex(),
		UserEmail: item.UserEmail,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	})

	return &domain.InsertResult{Acknowledged: true, InsertedID: item.ID.Hex()}, nil
}

// List returns the cart items owned by email
func (s *Service) List(ctx context.Context, email string) ([]domain.CartItem, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidEmail)
	}

	items, err := s.repo.ListByOwner(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}

// Remove deletes a cart item by its hex identifier. When owner is non-empty
// only an item belonging to owner can be removed; any other id deletes nothing.
func (s *Service) Remove(ctx context.Context, rawID, owner string) (*domain.DeleteResult, error) {
	id, err := bson.ObjectIDFromHex(strings.TrimSpace(rawID))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidItemID, rawID)
	}

	deleted, err := s.repo.DeleteItem(ctx, id, owner)
	if err != nil {
		return nil, fmt.Errorf("delete cart item: %w", err)
	}

	if deleted > 0 {
		events.Emit(ctx, s.publisher, events.TypeCartItemRemoved, events.CartItemRemoved{ItemID: id.Hex()})
	}

	return &domain.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
