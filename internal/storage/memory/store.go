package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Store keeps every collection in process memory. It backs the development
// mode and the HTTP tests; documents are copied in and out so callers never
// share state with the store.
type Store struct {
	mu       sync.RWMutex
	users    []domain.User
	products []domain.Product
	reviews  []domain.Review
	orders   []domain.CartItem
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Ping always succeeds
func (s *Store) Ping(context.Context) error { return nil }

// Close is a no-op
func (s *Store) Close(context.Context) error { return nil }

// GetUserByEmail returns nil, nil when no user has the email
func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser inserts a user, enforcing email uniqueness like the unique index does
func (s *Store) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == user.Email {
			return domain.ErrUserAlreadyExists
		}
	}

	user.ID = bson.NewObjectID()
	s.users = append(s.users, *user)
	return nil
}

// CountUsers returns how many users are stored
func (s *Store) CountUsers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// ListProducts returns matching products in insertion order
func (s *Store) ListProducts(_ context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, 0, len(s.products))
	for i := range s.products {
		if filter.Matches(&s.products[i]) {
			out = append(out, s.products[i])
		}
	}
	return out, nil
}

// ListCategories groups products by category keeping the first image seen,
// sorted by category name
func (s *Store) ListCategories(context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	out := make([]domain.Category, 0)
	for _, p := range s.products {
		if seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		out = append(out, domain.Category{Category: p.Category, Image: p.Image})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// ListReviews returns reviews in insertion order
func (s *Store) ListReviews(context.Context) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reviews), nil
}

// InsertProducts appends products, assigning IDs
func (s *Store) InsertProducts(_ context.Context, products []domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		p.ID = bson.NewObjectID()
		s.products = append(s.products, p)
	}
	return nil
}

// InsertReviews appends reviews, assigning IDs
func (s *Store) InsertReviews(_ context.Context, reviews []domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range reviews {
		r.ID = bson.NewObjectID()
		s.reviews = append(s.reviews, r)
	}
	return nil
}

// InsertItem stores a cart item and sets its ID
func (s *Store) InsertItem(_ context.Context, item *domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = bson.NewObjectID()
	s.orders = append(s.orders, *item)
	return nil
}

// ListByOwner returns the items whose userEmail equals email
func (s *Store) ListByOwner(_ context.Context, email string) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.CartItem, 0)
	for _, item := range s.orders {
		if item.UserEmail == email {
			out = append(out, item)
		}
	}
	return out, nil
}

// DeleteItem removes at most one item; owner, when set, must match userEmail
func (s *Store) DeleteItem(_ context.Context, id bson.ObjectID, owner string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.orders {
		if item.ID != id {
			continue
		}
		if owner != "" && item.UserEmail != owner {
			return 0, nil
		}
		s.orders = slices.Delete(s.orders, i, i+1)
		return 1, nil
	}
	return 0, nil
}
