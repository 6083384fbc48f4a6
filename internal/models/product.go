package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a product document in the store catalog.
type Product struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Brand          string             `json:"brand" bson:"brand"`
	Category       string             `json:"category" bson:"category"`
	Price          float64            `json:"price" bson:"price"`
	Stock          int                `json:"stock" bson:"stock"`
	Description    string             `json:"description" bson:"description"`
	Rating         float64            `json:"rating" bson:"rating"`
	Specifications map[string]string  `json:"specifications,omitempty" bson:"specifications,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}

// CreateProductRequest is the payload for creating a new product.
// The identifier and creation timestamp are assigned by the store.
type CreateProductRequest struct {
	Name           string            `json:"name"`
	Brand          string            `json:"brand"`
	Category       string            `json:"category"`
	Price          float64           `json:"price"`
	Stock          int               `json:"stock"`
	Description    string            `json:"description"`
	Rating         float64           `json:"rating"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// Product builds the document to be inserted from the request.
func (r CreateProductRequest) Product() Product {
	return Product{
		Name:           r.Name,
		Brand:          r.Brand,
		Category:       r.Category,
		Price:          r.Price,
		Stock:          r.Stock,
		Description:    r.Description,
		Rating:         r.Rating,
		Specifications: r.Specifications,
	}
}

// UpdateProductRequest is the payload for a partial product update.
// Nil fields were not supplied and keep their stored value.
type UpdateProductRequest struct {
	Name           *string           `json:"name,omitempty"`
	Brand          *string           `json:"brand,omitempty"`
	Category       *string           `json:"category,omitempty"`
	Price          *float64          `json:"price,omitempty"`
	Stock          *int              `json:"stock,omitempty"`
	Description    *string           `json:"description,omitempty"`
	Rating         *float64          `json:"rating,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// Changes returns the $set document for the supplied fields. The
// identifier and created_at are never part of an update. An empty
// result means the request carried no changes.
func (r UpdateProductRequest) Changes() bson.M {
	changes := bson.M{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Brand != nil {
		changes["brand"] = *r.Brand
	}
	if r.Category != nil {
		changes["category"] = *r.Category
	}
	if r.Price != nil {
		changes["price"] = *r.Price
	}
	if r.Stock != nil {
		changes["stock"] = *r.Stock
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.Rating != nil {
		changes["rating"] = *r.Rating
	}
	if r.Specifications != nil {
		changes["specifications"] = r.Specifications
	}
	return changes
}
