package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"tienda/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// FetchAll returns every product matching the filter; a nil or empty
	// filter returns the whole collection.
	FetchAll(ctx context.Context, filter bson.M) ([]models.Product, error)

	// Insert persists a new product, assigns its identifier and creation
	// timestamp, and returns the identifier in hex form.
	Insert(ctx context.Context, product *models.Product) (string, error)

	// Update applies a partial field replacement to the product with the
	// given identifier. It reports whether any document was modified; an
	// unknown or malformed identifier is a no-effect false, not an error.
	Update(ctx context.Context, id string, fields bson.M) (bool, error)

	// Delete removes the product with the given identifier and reports
	// whether a document was removed, with the same not-found semantics
	// as Update.
	Delete(ctx context.Context, id string) (bool, error)

	// EnsureIndexes creates the single-field indexes that keep filtered
	// search efficient. Not required for correctness.
	EnsureIndexes(ctx context.Context) error
}
