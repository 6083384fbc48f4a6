package queries

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"tienda/internal/config"
)

// Criteria holds the optional search criteria supplied by the caller.
// Zero values mean "no filter" for that field.
type Criteria struct {
	Category string
	Name     string
	Brand    string
	PriceMin float64
	PriceMax float64
}

// Bounds is the configured default price range. A price clause is only
// emitted when the criteria narrow this range.
type Bounds struct {
	Min float64
	Max float64
}

// BuildFilter composes the supplied criteria into a single find
// predicate. All clauses are combined with logical AND; an empty
// criteria set yields an empty filter that matches every document.
// Inconsistent bounds (min > max) are passed through unchanged and
// simply match nothing.
func BuildFilter(c Criteria, b Bounds) bson.M {
	filter := bson.M{}

	if c.Category != "" && c.Category != config.CategoryAll {
		filter["category"] = c.Category
	}
	if c.Name != "" {
		filter["name"] = containsPattern(c.Name)
	}
	if c.Brand != "" {
		filter["brand"] = containsPattern(c.Brand)
	}
	if c.PriceMin > b.Min || c.PriceMax < b.Max {
		filter["price"] = bson.M{"$gte": c.PriceMin, "$lte": c.PriceMax}
	}

	return filter
}

// containsPattern builds a case-insensitive, unanchored substring match.
// The user text is quoted so regex metacharacters match literally.
func containsPattern(text string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(text), Options: "i"}
}
