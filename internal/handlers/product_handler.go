package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tienda/internal/config"
	"tienda/internal/models"
	"tienda/internal/queries"
	"tienda/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	catalog *services.CatalogService
	cfg     *config.Config
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalog *services.CatalogService, cfg *config.Config) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		cfg:     cfg,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/dashboard", h.HandleDashboard)

	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleSearch)
	productRoutes.Post("/", h.HandleCreate)
	productRoutes.Put("/:id", h.HandleUpdate)
	productRoutes.Delete("/:id", h.HandleDelete)
}

// HandleDashboard returns the aggregate summary of the whole catalog.
func (h *ProductHandler) HandleDashboard(c *fiber.Ctx) error {
	summary, err := h.catalog.Dashboard(c.Context())
	if err != nil {
		log.Printf("Error building dashboard: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": h.cfg.Messages.StoreError,
			"error":   err.Error(),
		})
	}
	return c.JSON(summary)
}

// HandleSearch returns the products matching the supplied criteria.
func (h *ProductHandler) HandleSearch(c *fiber.Ctx) error {
	criteria := queries.Criteria{
		Category: c.Query("category"),
		Name:     c.Query("name"),
		Brand:    c.Query("brand"),
		PriceMin: h.cfg.PriceRangeMin,
		PriceMax: h.cfg.PriceRangeMax,
	}

	var err error
	if raw := c.Query("price_min"); raw != "" {
		if criteria.PriceMin, err = strconv.ParseFloat(raw, 64); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid price_min value",
			})
		}
	}
	if raw := c.Query("price_max"); raw != "" {
		if criteria.PriceMax, err = strconv.ParseFloat(raw, 64); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid price_max value",
			})
		}
	}

	rows, count, err := h.catalog.Search(c.Context(), criteria)
	if err != nil {
		log.Printf("Error searching products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": h.cfg.Messages.StoreError,
			"error":   err.Error(),
		})
	}

	response := fiber.Map{
		"count":    count,
		"products": rows,
	}
	if count == 0 {
		response["message"] = h.cfg.Messages.NoResults
	}
	return c.JSON(response)
}

// HandleCreate validates and creates a new product.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req models.CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	id, violations, err := h.catalog.Create(c.Context(), req)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": h.cfg.Messages.StoreError,
			"error":   err.Error(),
		})
	}
	if violations != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": h.cfg.Messages.ValidationError,
			"errors":  violations,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": h.cfg.Messages.ProductAdded,
		"id":      id,
	})
}

// HandleUpdate applies a partial update to an existing product.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var req models.UpdateProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	modified, violations, err := h.catalog.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		log.Printf("Error updating product %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": h.cfg.Messages.StoreError,
			"error":   err.Error(),
		})
	}
	if violations != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": h.cfg.Messages.ValidationError,
			"errors":  violations,
		})
	}
	if !modified {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": h.cfg.Messages.NotFound,
		})
	}

	return c.JSON(fiber.Map{
		"message": h.cfg.Messages.ProductUpdated,
	})
}

// HandleDelete removes a product by its identifier.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	deleted, err := h.catalog.Delete(c.Context(), c.Params("id"))
	if err != nil {
		log.Printf("Error deleting product %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": h.cfg.Messages.StoreError,
			"error":   err.Error(),
		})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": h.cfg.Messages.NotFound,
		})
	}

	return c.JSON(fiber.Map{
		"message": h.cfg.Messages.ProductDeleted,
	})
}
