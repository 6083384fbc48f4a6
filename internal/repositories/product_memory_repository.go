package repositories

import (
	"context"
	"maps"
	"regexp"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tienda/internal/models"
)

// MemoryProductRepository is an in-memory implementation of
// ProductRepository. It preserves insertion order on fetch and evaluates
// the same predicate grammar the query builder emits (field equality,
// case-insensitive $regex, $gte/$lte ranges), which makes it a faithful
// stand-in for the Mongo repository in tests.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []models.Product
	index    map[string]int
}

// NewMemoryProductRepository creates a new empty MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		index: make(map[string]int),
	}
}

// FetchAll returns the products matching the filter, in insertion order.
func (r *MemoryProductRepository) FetchAll(_ context.Context, filter bson.M) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if matchesFilter(p, filter) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Insert assigns an identifier and creation timestamp and stores the product.
func (r *MemoryProductRepository) Insert(_ context.Context, product *models.Product) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()

	r.index[product.ID.Hex()] = len(r.products)
	r.products = append(r.products, *product)
	return product.ID.Hex(), nil
}

// Update applies a partial field replacement. It reports false for an
// unknown identifier and when the supplied fields change nothing.
func (r *MemoryProductRepository) Update(_ context.Context, id string, fields bson.M) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return false, nil
	}

	product := r.products[pos]
	changed := false
	for key, value := range fields {
		if setField(&product, key, value) {
			changed = true
		}
	}
	if changed {
		r.products[pos] = product
	}
	return changed, nil
}

// Delete removes a product by identifier.
func (r *MemoryProductRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return false, nil
	}

	r.products = append(r.products[:pos], r.products[pos+1:]...)
	delete(r.index, id)
	for hex, i := range r.index {
		if i > pos {
			r.index[hex] = i - 1
		}
	}
	return true, nil
}

// EnsureIndexes is a no-op for the in-memory repository.
func (r *MemoryProductRepository) EnsureIndexes(_ context.Context) error {
	return nil
}

// matchesFilter evaluates the predicate grammar produced by the query
// builder against one product. An empty or nil filter matches everything.
func matchesFilter(p models.Product, filter bson.M) bool {
	for key, condition := range filter {
		value, ok := fieldValue(p, key)
		if !ok {
			return false
		}
		if !matchesCondition(value, condition) {
			return false
		}
	}
	return true
}

func matchesCondition(value any, condition any) bool {
	switch cond := condition.(type) {
	case primitive.Regex:
		text, ok := value.(string)
		if !ok {
			return false
		}
		pattern := cond.Pattern
		if cond.Options != "" {
			pattern = "(?" + cond.Options + ")" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false
		}
		return re.MatchString(text)
	case bson.M:
		number, ok := toFloat(value)
		if !ok {
			return false
		}
		if min, has := cond["$gte"]; has {
			if bound, ok := toFloat(min); !ok || number < bound {
				return false
			}
		}
		if max, has := cond["$lte"]; has {
			if bound, ok := toFloat(max); !ok || number > bound {
				return false
			}
		}
		return true
	default:
		return value == condition
	}
}

func fieldValue(p models.Product, key string) (any, bool) {
	switch key {
	case "_id":
		return p.ID, true
	case "name":
		return p.Name, true
	case "brand":
		return p.Brand, true
	case "category":
		return p.Category, true
	case "price":
		return p.Price, true
	case "stock":
		return p.Stock, true
	case "rating":
		return p.Rating, true
	case "description":
		return p.Description, true
	default:
		return nil, false
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// setField applies one $set entry and reports whether the stored value
// actually changed, mirroring Mongo's modified-count semantics.
func setField(p *models.Product, key string, value any) bool {
	switch key {
	case "name":
		if v, ok := value.(string); ok && p.Name != v {
			p.Name = v
			return true
		}
	case "brand":
		if v, ok := value.(string); ok && p.Brand != v {
			p.Brand = v
			return true
		}
	case "category":
		if v, ok := value.(string); ok && p.Category != v {
			p.Category = v
			return true
		}
	case "price":
		if v, ok := toFloat(value); ok && p.Price != v {
			p.Price = v
			return true
		}
	case "stock":
		if v, ok := value.(int); ok && p.Stock != v {
			p.Stock = v
			return true
		}
	case "rating":
		if v, ok := toFloat(value); ok && p.Rating != v {
			p.Rating = v
			return true
		}
	case "description":
		if v, ok := value.(string); ok && p.Description != v {
			p.Description = v
			return true
		}
	case "specifications":
		if v, ok := value.(map[string]string); ok && !maps.Equal(p.Specifications, v) {
			p.Specifications = v
			return true
		}
	}
	return false
}
