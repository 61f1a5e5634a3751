package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
	"gopkg.in/yaml.v3"
)

// SeedFile represents the YAML structure of a catalog seed
type SeedFile struct {
	Products []domain.Product `yaml:"products"`
	Reviews  []domain.Review  `yaml:"reviews"`
}

// Writer loads seed data into a store
type Writer interface {
	InsertProducts(ctx context.Context, products []domain.Product) error
	InsertReviews(ctx context.Context, reviews []domain.Review) error
}

// LoadSeed reads and validates a catalog seed file
func LoadSeed(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates seed YAML
func ParseSeed(data []byte) (*SeedFile, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// Validate checks that every product is listable and every review has text
func (f *SeedFile) Validate() error {
	var errs []error
	for i, p := range f.Products {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("products[%d]: name is required", i))
		}
		if p.Category == "" {
			errs = append(errs, fmt.Errorf("products[%d]: category is required", i))
		}
		if p.Price < 0 {
			errs = append(errs, fmt.Errorf("products[%d]: price must not be negative", i))
		}
	}
	for i, r := range f.Reviews {
		if r.Name == "" || r.Review == "" {
			errs = append(errs, fmt.Errorf("reviews[%d]: name and review are required", i))
		}
	}
	return errors.Join(errs...)
}

// Apply writes the seed to the store
func (f *SeedFile) Apply(ctx context.Context, w Writer) error {
	if len(f.Products) > 0 {
		if err := w.InsertProducts(ctx, f.Products); err != nil {
			return fmt.Errorf("insert products: %w", err)
		}
	}
	if len(f.Reviews) > 0 {
		if err := w.InsertReviews(ctx, f.Reviews); err != nil {
			return fmt.Errorf("insert reviews: %w", err)
		}
	}
	return nil
}
