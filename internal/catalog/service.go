package catalog

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
)

// Repository defines read access to catalog data
type Repository interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListReviews(ctx context.Context) ([]domain.Review, error)
}

// Service exposes the read-only storefront catalog
type Service struct {
	repo Repository
}

// NewService creates a new catalog service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Products lists every product
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	return s.products(ctx, domain.ProductFilter{})
}

// Featured lists products flagged as featured
func (s *Service) Featured(ctx context.Context) ([]domain.Product, error) {
	return s.products(ctx, domain.ProductFilter{FeaturedOnly: true})
}

// ByCategory lists products whose category equals name exactly
func (s *Service) ByCategory(ctx context.Context, name string) ([]domain.Product, error) {
	return s.products(ctx, domain.ProductFilter{Category: name})
}

func (s *Service) products(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// Categories lists one entry per distinct category with a representative image
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}

// Testimonials lists customer reviews
func (s *Service) Testimonials(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.repo.ListReviews(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}
