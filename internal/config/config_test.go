package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "tech_store", cfg.Database)
	assert.Equal(t, "products", cfg.Collection)
	assert.False(t, cfg.SeedOnStart)

	require.Len(t, cfg.Categories, 5)
	assert.Equal(t, []string{"Laptops", "Smartphones", "Tablets", "Accessories", "Components"}, cfg.Categories)

	assert.Equal(t, 3, cfg.NameMinLength)
	assert.Equal(t, 500, cfg.DescriptionMaxLength)
	assert.Equal(t, 0.01, cfg.PriceMinValue)
	assert.Equal(t, 0.0, cfg.PriceRangeMin)
	assert.Equal(t, 5000.0, cfg.PriceRangeMax)
}

func TestLoadMessages(t *testing.T) {
	cfg := config.Load()

	assert.NotEmpty(t, cfg.Messages.ProductAdded)
	assert.NotEmpty(t, cfg.Messages.ProductUpdated)
	assert.NotEmpty(t, cfg.Messages.ProductDeleted)
	assert.NotEmpty(t, cfg.Messages.ConnectionError)
	assert.NotEmpty(t, cfg.Messages.ValidationError)
	assert.NotEmpty(t, cfg.Messages.StoreError)
	assert.NotEmpty(t, cfg.Messages.NotFound)
	assert.NotEmpty(t, cfg.Messages.NoResults)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("DATABASE_NAME", "other_store")
	t.Setenv("NAME_MIN_LENGTH", "5")

	cfg := config.Load()

	assert.Equal(t, "other_store", cfg.Database)
	assert.Equal(t, 5, cfg.NameMinLength)
}
