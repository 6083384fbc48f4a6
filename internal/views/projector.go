package views

import (
	"fmt"
	"sort"

	"tienda/internal/models"
)

// Row is a display-ready projection of a product. The shortened ID is
// for display only; callers keep the full identifier for selection.
type Row struct {
	ID       string `json:"id"`
	FullID   string `json:"full_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Brand    string `json:"brand"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
	Rating   string `json:"rating"`
}

// BucketCount is the number of products falling into one price range.
type BucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary holds the dashboard aggregates computed over the whole catalog.
type Summary struct {
	TotalProducts int            `json:"total_products"`
	AveragePrice  float64        `json:"average_price"`
	TotalStock    int            `json:"total_stock"`
	AverageRating float64        `json:"average_rating"`
	ByCategory    map[string]int `json:"by_category"`
	PriceBuckets  []BucketCount  `json:"price_buckets"`
	TopByPrice    []Row          `json:"top_by_price"`
	TopByRating   []Row          `json:"top_by_rating"`
}

const topListSize = 5

// priceBucketLimits are the exclusive upper bounds of the first three
// buckets; the last bucket is unbounded.
var priceBucketLimits = []float64{500, 1000, 2000}

var priceBucketLabels = []string{"$0-500", "$500-1000", "$1000-2000", "$2000+"}

// ProjectRows maps fetched products into display rows, preserving order.
func ProjectRows(products []models.Product) []Row {
	rows := make([]Row, 0, len(products))
	for _, p := range products {
		rows = append(rows, projectRow(p))
	}
	return rows
}

func projectRow(p models.Product) Row {
	id := p.ID.Hex()
	return Row{
		ID:       id[:8] + "...",
		FullID:   id,
		Name:     p.Name,
		Category: p.Category,
		Brand:    p.Brand,
		Price:    fmt.Sprintf("$%.2f", p.Price),
		Stock:    p.Stock,
		Rating:   fmt.Sprintf("%.1f/5", p.Rating),
	}
}

// Summarize computes the dashboard aggregates over the full product set.
// An empty input yields a zero-valued summary.
func Summarize(products []models.Product) Summary {
	summary := Summary{
		ByCategory:   make(map[string]int),
		PriceBuckets: emptyBuckets(),
		TopByPrice:   []Row{},
		TopByRating:  []Row{},
	}
	if len(products) == 0 {
		return summary
	}

	var priceSum, ratingSum float64
	for _, p := range products {
		priceSum += p.Price
		ratingSum += p.Rating
		summary.TotalStock += p.Stock
		summary.ByCategory[p.Category]++
		summary.PriceBuckets[bucketIndex(p.Price)].Count++
	}

	summary.TotalProducts = len(products)
	summary.AveragePrice = priceSum / float64(len(products))
	summary.AverageRating = ratingSum / float64(len(products))
	summary.TopByPrice = topBy(products, func(p models.Product) float64 { return p.Price })
	summary.TopByRating = topBy(products, func(p models.Product) float64 { return p.Rating })

	return summary
}

func emptyBuckets() []BucketCount {
	buckets := make([]BucketCount, len(priceBucketLabels))
	for i, label := range priceBucketLabels {
		buckets[i] = BucketCount{Label: label}
	}
	return buckets
}

func bucketIndex(price float64) int {
	for i, limit := range priceBucketLimits {
		if price < limit {
			return i
		}
	}
	return len(priceBucketLimits)
}

// topBy returns up to five rows sorted descending by the given key.
// The sort is stable so ties keep the original fetch order.
func topBy(products []models.Product, key func(models.Product) float64) []Row {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)
	sort.SliceStable(sorted, func(i, j int) bool {
		return key(sorted[i]) > key(sorted[j])
	})
	if len(sorted) > topListSize {
		sorted = sorted[:topListSize]
	}
	return ProjectRows(sorted)
}
