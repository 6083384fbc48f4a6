package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda/internal/config"
	"tienda/internal/handlers"
	"tienda/internal/queries"
	"tienda/internal/repositories"
	"tienda/internal/services"
)

func testConfig() *config.Config {
	return &config.Config{
		Categories:           []string{"Laptops", "Smartphones", "Tablets", "Accessories", "Components"},
		NameMinLength:        3,
		DescriptionMaxLength: 500,
		PriceMinValue:        0.01,
		PriceRangeMin:        0,
		PriceRangeMax:        5000,
		Messages: config.Messages{
			ProductAdded:    "Product added successfully",
			ProductUpdated:  "Product updated successfully",
			ProductDeleted:  "Product deleted successfully",
			ValidationError: "Validation failed",
			StoreError:      "The operation could not be completed",
			NotFound:        "No product found with the given ID",
			NoResults:       "No products found matching the given criteria",
		},
	}
}

// setupApp wires a Fiber app backed by the in-memory repository.
func setupApp() *fiber.App {
	cfg := testConfig()

	repo := repositories.NewMemoryProductRepository()
	validator := services.NewRecordValidator(cfg)
	bounds := queries.Bounds{Min: cfg.PriceRangeMin, Max: cfg.PriceRangeMax}
	catalog := services.NewCatalogService(repo, validator, nil, bounds)

	app := fiber.New()
	handler := handlers.NewProductHandler(catalog, cfg)
	handler.RegisterRoutes(app.Group("/api/v1"))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func createProduct(t *testing.T, app *fiber.App, name, category string, price float64) string {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/products/", map[string]any{
		"name":        name,
		"brand":       "TestBrand",
		"category":    category,
		"price":       price,
		"stock":       10,
		"description": "A test product",
		"rating":      4.2,
	})
	require.Equal(t, http.StatusCreated, status)
	id, ok := body["id"].(string)
	require.True(t, ok, "create response must carry the new identifier")
	return id
}

func TestCreateAndSearchProducts(t *testing.T) {
	app := setupApp()

	createProduct(t, app, "MacBook Pro", "Laptops", 2499.99)
	createProduct(t, app, "Galaxy S24", "Smartphones", 799.99)

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/products/?category=Laptops", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	products := body["products"].([]any)
	require.Len(t, products, 1)
	row := products[0].(map[string]any)
	assert.Equal(t, "MacBook Pro", row["name"])
	assert.Equal(t, "$2499.99", row["price"])
	assert.Equal(t, "4.2/5", row["rating"])
}

func TestSearchByNameAndPriceRange(t *testing.T) {
	app := setupApp()

	createProduct(t, app, "MacBook Pro", "Laptops", 2499.99)
	createProduct(t, app, "MacBook Air", "Laptops", 1099.99)
	createProduct(t, app, "ThinkPad X1", "Laptops", 1199.99)

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/products/?name=macbook&price_min=1000&price_max=2000", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
}

func TestSearchNoResultsCarriesMessage(t *testing.T) {
	app := setupApp()

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/products/?name=nonexistent", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, "No products found matching the given criteria", body["message"])
}

func TestSearchRejectsMalformedPrice(t *testing.T) {
	app := setupApp()

	status, _ := doJSON(t, app, http.MethodGet, "/api/v1/products/?price_min=abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCreateValidationFailure(t *testing.T) {
	app := setupApp()

	status, body := doJSON(t, app, http.MethodPost, "/api/v1/products/", map[string]any{
		"name":        "PC",
		"brand":       "",
		"category":    "Drones",
		"price":       0,
		"stock":       -1,
		"description": "x",
		"rating":      9,
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", body["message"])

	errors := body["errors"].(map[string]any)
	for _, field := range []string{"name", "brand", "category", "price", "stock", "rating"} {
		assert.Contains(t, errors, field, "every violated field must be reported")
	}
}

func TestUpdateProduct(t *testing.T) {
	app := setupApp()
	id := createProduct(t, app, "MacBook Pro", "Laptops", 2499.99)

	status, body := doJSON(t, app, http.MethodPut, "/api/v1/products/"+id, map[string]any{
		"price": 1999.99,
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Product updated successfully", body["message"])

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/products/?category=Laptops", nil)
	require.Equal(t, http.StatusOK, status)
	row := body["products"].([]any)[0].(map[string]any)
	assert.Equal(t, "$1999.99", row["price"])
	assert.Equal(t, "MacBook Pro", row["name"], "unspecified fields keep their value")
}

func TestUpdateValidationFailure(t *testing.T) {
	app := setupApp()
	id := createProduct(t, app, "MacBook Pro", "Laptops", 2499.99)

	status, body := doJSON(t, app, http.MethodPut, "/api/v1/products/"+id, map[string]any{
		"category": "Drones",
	})

	assert.Equal(t, http.StatusBadRequest, status)
	errors := body["errors"].(map[string]any)
	assert.Contains(t, errors, "category")
}

func TestUpdateUnknownProduct(t *testing.T) {
	app := setupApp()

	status, body := doJSON(t, app, http.MethodPut, "/api/v1/products/0123456789abcdef01234567", map[string]any{
		"stock": 3,
	})

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No product found with the given ID", body["message"])
}

func TestDeleteProduct(t *testing.T) {
	app := setupApp()
	id := createProduct(t, app, "MacBook Pro", "Laptops", 2499.99)

	status, body := doJSON(t, app, http.MethodDelete, "/api/v1/products/"+id, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Product deleted successfully", body["message"])

	// Deleting again reports not-found with a neutral message.
	status, body = doJSON(t, app, http.MethodDelete, "/api/v1/products/"+id, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No product found with the given ID", body["message"])

	status, body = doJSON(t, app, http.MethodGet, "/api/v1/products/", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["count"])
}

func TestDeleteMalformedIDIsNotFound(t *testing.T) {
	app := setupApp()

	status, _ := doJSON(t, app, http.MethodDelete, "/api/v1/products/not-a-valid-id", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDashboard(t *testing.T) {
	app := setupApp()

	prices := []float64{100, 600, 1500, 2500}
	for i, price := range prices {
		createProduct(t, app, fmt.Sprintf("Product %d", i), "Components", price)
	}

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(4), body["total_products"])
	assert.Equal(t, float64(40), body["total_stock"])

	buckets := body["price_buckets"].([]any)
	require.Len(t, buckets, 4)
	for _, raw := range buckets {
		bucket := raw.(map[string]any)
		assert.Equal(t, float64(1), bucket["count"], "each price falls into its own bucket")
	}

	top := body["top_by_price"].([]any)
	require.Len(t, top, 4)
	assert.Equal(t, "Product 3", top[0].(map[string]any)["name"])
}

func TestDashboardEmptyCatalog(t *testing.T) {
	app := setupApp()

	status, body := doJSON(t, app, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["total_products"])
}
