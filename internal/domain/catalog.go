package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Product is a catalog entry. Products are read-only over HTTP.
type Product struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id" yaml:"-"`
	Name        string        `bson:"name" json:"name" yaml:"name"`
	Category    string        `bson:"category" json:"category" yaml:"category"`
	Image       string        `bson:"image" json:"image" yaml:"image"`
	Price       float64       `bson:"price" json:"price" yaml:"price"`
	Description string        `bson:"description,omitempty" json:"description,omitempty" yaml:"description"`
	Featured    bool          `bson:"featured" json:"featured" yaml:"featured"`
	Rating      float64       `bson:"rating,omitempty" json:"rating,omitempty" yaml:"rating"`
	Stock       int           `bson:"stock,omitempty" json:"stock,omitempty" yaml:"stock"`
}

// Category is a derived view: one entry per distinct product category
type Category struct {
	Category string `bson:"category" json:"category"`
	Image    string `bson:"image" json:"image"`
}

// Review is a customer testimonial
type Review struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id" yaml:"-"`
	Name      string        `bson:"name" json:"name" yaml:"name"`
	Image     string        `bson:"image,omitempty" json:"image,omitempty" yaml:"image"`
	Rating    float64       `bson:"rating" json:"rating" yaml:"rating"`
	Review    string        `bson:"review" json:"review" yaml:"review"`
	CreatedAt time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitzero" yaml:"created_at"`
}

// ProductFilter narrows a product listing. The zero value matches every product.
type ProductFilter struct {
	FeaturedOnly bool
	Category     string
}

// Matches applies the filter to a single product
func (f ProductFilter) Matches(p *Product) bool {
	if f.FeaturedOnly && !p.Featured {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return true
}
