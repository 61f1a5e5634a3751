package mongo

import (
	"context"
	"fmt"

	"github.com/felixgeelhaar/shopbazar/internal/domain"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// categoriesPipeline yields one {category, image} per distinct category,
// taking the image of the earliest inserted product.
var categoriesPipeline = mongo.Pipeline{
	{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$category"},
		{Key: "image", Value: bson.D{{Key: "$first", Value: "$image"}}},
	}}},
	{{Key: "$project", Value: bson.D{
		{Key: "_id", Value: 0},
		{Key: "category", Value: "$_id"},
		{Key: "image", Value: 1},
	}}},
	{{Key: "$sort", Value: bson.D{{Key: "category", Value: 1}}}},
}

func productQuery(filter domain.ProductFilter) bson.D {
	q := bson.D{}
	if filter.FeaturedOnly {
		q = append(q, bson.E{Key: "featured", Value: true})
	}
	if filter.Category != "" {
		q = append(q, bson.E{Key: "category", Value: filter.Category})
	}
	return q
}

// ListProducts returns matching products ordered by _id
func (s *Store) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return run(ctx, s.breaker, func(ctx context.Context) ([]domain.Product, error) {
		opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
		cursor, err := s.collection(CollectionProducts).Find(ctx, productQuery(filter), opts)
		if err != nil {
			return nil, fmt.Errorf("find products: %w", err)
		}

		products := []domain.Product{}
		if err := cursor.All(ctx, &products); err != nil {
			return nil, fmt.Errorf("decode products: %w", err)
		}
		return products, nil
	})
}

// ListCategories aggregates the distinct product categories
func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return run(ctx, s.breaker, func(ctx context.Context) ([]domain.Category, error) {
		cursor, err := s.collection(CollectionProducts).Aggregate(ctx, categoriesPipeline)
		if err != nil {
			return nil, fmt.Errorf("aggregate categories: %w", err)
		}

		categories := []domain.Category{}
		if err := cursor.All(ctx, &categories); err != nil {
			return nil, fmt.Errorf("decode categories: %w", err)
		}
		return categories, nil
	})
}

// ListReviews returns every review ordered by _id
func (s *Store) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return run(ctx, s.breaker, func(ctx context.Context) ([]domain.Review, error) {
		opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
		cursor, err := s.collection(CollectionReviews).Find(ctx, bson.D{}, opts)
		if err != nil {
			return nil, fmt.Errorf("find reviews: %w", err)
		}

		reviews := []domain.Review{}
		if err := cursor.All(ctx, &reviews); err != nil {
			return nil, fmt.Errorf("decode reviews: %w", err)
		}
		return reviews, nil
	})
}

// InsertProducts bulk-inserts seed products
func (s *Store) InsertProducts(ctx context.Context, products []domain.Product) error {
	docs := make([]any, 0, len(products))
	for _, p := range products {
		p.ID = bson.ObjectID{}
		docs = append(docs, p)
	}
	return s.insertMany(ctx, CollectionProducts, docs)
}

// InsertReviews bulk-inserts seed reviews
func (s *Store) InsertReviews(ctx context.Context, reviews []domain.Review) error {
	docs := make([]any, 0, len(reviews))
	for _, r := range reviews {
		r.ID = bson.ObjectID{}
		docs = append(docs, r)
	}
	return s.insertMany(ctx, CollectionReviews, docs)
}

func (s *Store) insertMany(ctx context.Context, name string, docs []any) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := run(ctx, s.breaker, func(ctx context.Context) (int, error) {
		res, err := s.collection(name).InsertMany(ctx, docs)
		if err != nil {
			return 0, fmt.Errorf("insert %s: %w", name, err)
		}
		return len(res.InsertedIDs), nil
	})
	return err
}
