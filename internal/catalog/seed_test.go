package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
	"github.com/felixgeelhaar/shopbazar/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `
products:
  - name: Runner
    category: shoes
    image: https://img.example/runner.png
    price: 79.99
    featured: true
  - name: Tote
    category: bags
    image: https://img.example/tote.png
    price: 25
reviews:
  - name: Sam
    rating: 5
    review: Fast delivery
`

type failingWriter struct{}

func (failingWriter) InsertProducts(context.Context, []domain.Product) error {
	return errors.New("write failed")
}
func (failingWriter) InsertReviews(context.Context, []domain.Review) error { return nil }

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed([]byte(sampleSeed))
	require.NoError(t, err)
	require.Len(t, seed.Products, 2)
	require.Len(t, seed.Reviews, 1)

	assert.Equal(t, "Runner", seed.Products[0].Name)
	assert.True(t, seed.Products[0].Featured)
	assert.InDelta(t, 79.99, seed.Products[0].Price, 0.001)
	assert.Equal(t, "Fast delivery", seed.Reviews[0].Review)
}

func TestParseSeed_Invalid(t *testing.T) {
	_, err := ParseSeed([]byte("products: ["))
	assert.Error(t, err)

	_, err = ParseSeed([]byte(`
products:
  - name: ""
    price: -1
reviews:
  - name: Sam
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "products[0]: name is required")
	assert.Contains(t, err.Error(), "products[0]: category is required")
	assert.Contains(t, err.Error(), "products[0]: price must not be negative")
	assert.Contains(t, err.Error(), "reviews[0]")
}

func TestLoadSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleSeed), 0o600))

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Len(t, seed.Products, 2)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSeedFile_Apply(t *testing.T) {
	ctx := context.Background()
	seed, err := ParseSeed([]byte(sampleSeed))
	require.NoError(t, err)

	store := memory.NewStore()
	require.NoError(t, seed.Apply(ctx, store))

	svc := NewService(store)
	products, err := svc.Products(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)

	reviews, err := svc.Testimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)

	err = seed.Apply(ctx, failingWriter{})
	assert.ErrorContains(t, err, "insert products")
}

func TestLoadSeed_DevelopmentCatalog(t *testing.T) {
	seed, err := LoadSeed(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)

	store := memory.NewStore()
	require.NoError(t, seed.Apply(context.Background(), store))

	categories, err := NewService(store).Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "accessories", categories[0].Category)
	assert.Equal(t, "https://images.example.com/products/canvas-tote.jpg", categories[1].Image)
}
