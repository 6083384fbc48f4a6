package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"tienda/internal/models"
)

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository
// bound to one collection. The underlying client is created once at process
// start and shared across all operations.
func NewMongoProductRepository(collection *mongo.Collection) *MongoProductRepository {
	return &MongoProductRepository{
		collection: collection,
	}
}

// FetchAll retrieves all products matching the filter.
func (r *MongoProductRepository) FetchAll(ctx context.Context, filter bson.M) ([]models.Product, error) {
	if filter == nil {
		filter = bson.M{}
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return products, nil
}

// Insert persists a new product. The store assigns the identifier; the
// creation timestamp is set here, once, and never touched by updates.
func (r *MongoProductRepository) Insert(ctx context.Context, product *models.Product) (string, error) {
	product.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, product)
	if err != nil {
		return "", fmt.Errorf("failed to insert product: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted ID type %T", result.InsertedID)
	}
	product.ID = oid
	return oid.Hex(), nil
}

// Update applies a partial $set update by identifier. A malformed or
// unknown identifier reports no effect rather than an error.
func (r *MongoProductRepository) Update(ctx context.Context, id string, fields bson.M) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return false, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return result.ModifiedCount > 0, nil
}

// Delete removes a product by identifier.
func (r *MongoProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, nil
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return result.DeletedCount > 0, nil
}

// EnsureIndexes creates single-field indexes on the fields used for
// filtering and sorting: name, category, price, brand.
func (r *MongoProductRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "brand", Value: 1}}},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
