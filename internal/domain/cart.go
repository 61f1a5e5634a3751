package domain

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// CartItem is a product placed in a shopper's cart, stored in the orders collection
type CartItem struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserEmail string        `bson:"userEmail" json:"userEmail"`
	ProductID string        `bson:"productId" json:"productId"`
	Name      string        `bson:"name,omitempty" json:"name,omitempty"`
	Image     string        `bson:"image,omitempty" json:"image,omitempty"`
	Category  string        `bson:"category,omitempty" json:"category,omitempty"`
	Price     float64       `bson:"price" json:"price"`
	Quantity  int           `bson:"quantity" json:"quantity"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
}

// Normalize trims identifiers and applies the default quantity
func (c *CartItem) Normalize() {
	c.UserEmail = strings.TrimSpace(c.UserEmail)
	c.ProductID = strings.TrimSpace(c.ProductID)
	if c.Quantity == 0 {
		c.Quantity = 1
	}
}

// Validate checks required fields and value ranges
func (c *CartItem) Validate() error {
	switch {
	case c.UserEmail == "":
		return fmt.Errorf("%w: userEmail is required", ErrInvalidCartItem)
	case c.ProductID == "":
		return fmt.Errorf("%w: productId is required", ErrInvalidCartItem)
	case c.Price < 0:
		return fmt.Errorf("%w: price must not be negative", ErrInvalidCartItem)
	case c.Quantity < 1:
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidCartItem)
	}
	return nil
}

// InsertResult mirrors the acknowledgement returned by the document store on insert
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// DeleteResult mirrors the acknowledgement returned by the document store on delete
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
