package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda/internal/repositories"
)

func TestSampleCatalogCoversEveryCategory(t *testing.T) {
	categories := make(map[string]int)
	for _, p := range sampleCatalog() {
		categories[p.Category]++
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Brand)
		assert.NotEmpty(t, p.Description)
		assert.Greater(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Stock, 0)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}

	for _, category := range []string{"Laptops", "Smartphones", "Tablets", "Accessories", "Components"} {
		assert.Contains(t, categories, category)
	}
}

func TestSeedCatalogPopulatesEmptyStore(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	require.NoError(t, seedCatalog(context.Background(), repo))

	products, err := repo.FetchAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, products, len(sampleCatalog()))
}

func TestSeedCatalogSkipsPopulatedStore(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	require.NoError(t, seedCatalog(context.Background(), repo))
	require.NoError(t, seedCatalog(context.Background(), repo))

	products, err := repo.FetchAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, products, len(sampleCatalog()), "seeding an already-populated store must be a no-op")
}
