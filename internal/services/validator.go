package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"tienda/internal/config"
	"tienda/internal/models"
)

// RecordValidator enforces the field-level rules a product must satisfy
// before it is persisted. The thresholds and the category enumeration
// come from configuration, so the rule tags are built at runtime.
type RecordValidator struct {
	validate *validator.Validate

	nameTag        string
	brandTag       string
	categoryTag    string
	priceTag       string
	stockTag       string
	ratingTag      string
	descriptionTag string

	nameMsg        string
	brandMsg       string
	categoryMsg    string
	priceMsg       string
	stockMsg       string
	ratingMsg      string
	descriptionMsg string
}

// NewRecordValidator creates a RecordValidator from the configured
// thresholds and category enumeration.
func NewRecordValidator(cfg *config.Config) *RecordValidator {
	return &RecordValidator{
		validate: validator.New(),

		nameTag:        fmt.Sprintf("required,min=%d", cfg.NameMinLength),
		brandTag:       "required",
		categoryTag:    "required,oneof=" + strings.Join(cfg.Categories, " "),
		priceTag:       fmt.Sprintf("gte=%g", cfg.PriceMinValue),
		stockTag:       "gte=0",
		ratingTag:      "gte=0,lte=5",
		descriptionTag: fmt.Sprintf("required,max=%d", cfg.DescriptionMaxLength),

		nameMsg:        fmt.Sprintf("name is required and must be at least %d characters", cfg.NameMinLength),
		brandMsg:       "brand is required",
		categoryMsg:    "category must be one of: " + strings.Join(cfg.Categories, ", "),
		priceMsg:       fmt.Sprintf("price must be at least %g", cfg.PriceMinValue),
		stockMsg:       "stock must not be negative",
		ratingMsg:      "rating must be between 0 and 5",
		descriptionMsg: fmt.Sprintf("description is required and must be at most %d characters", cfg.DescriptionMaxLength),
	}
}

// ValidateCreate checks every field of a create request. It returns a
// map of field name to reason listing every violated rule; a nil map
// means the request is valid.
func (v *RecordValidator) ValidateCreate(req models.CreateProductRequest) map[string]string {
	violations := make(map[string]string)

	v.check(violations, "name", req.Name, v.nameTag, v.nameMsg)
	v.check(violations, "brand", req.Brand, v.brandTag, v.brandMsg)
	v.check(violations, "category", req.Category, v.categoryTag, v.categoryMsg)
	v.check(violations, "price", req.Price, v.priceTag, v.priceMsg)
	v.check(violations, "stock", req.Stock, v.stockTag, v.stockMsg)
	v.check(violations, "rating", req.Rating, v.ratingTag, v.ratingMsg)
	v.check(violations, "description", req.Description, v.descriptionTag, v.descriptionMsg)

	if len(violations) == 0 {
		return nil
	}
	return violations
}

// ValidateUpdate checks only the fields supplied in a partial update.
// Fields left nil retain their stored, already-valid value and are not
// re-validated.
func (v *RecordValidator) ValidateUpdate(req models.UpdateProductRequest) map[string]string {
	violations := make(map[string]string)

	if req.Name != nil {
		v.check(violations, "name", *req.Name, v.nameTag, v.nameMsg)
	}
	if req.Brand != nil {
		v.check(violations, "brand", *req.Brand, v.brandTag, v.brandMsg)
	}
	if req.Category != nil {
		v.check(violations, "category", *req.Category, v.categoryTag, v.categoryMsg)
	}
	if req.Price != nil {
		v.check(violations, "price", *req.Price, v.priceTag, v.priceMsg)
	}
	if req.Stock != nil {
		v.check(violations, "stock", *req.Stock, v.stockTag, v.stockMsg)
	}
	if req.Rating != nil {
		v.check(violations, "rating", *req.Rating, v.ratingTag, v.ratingMsg)
	}
	if req.Description != nil {
		v.check(violations, "description", *req.Description, v.descriptionTag, v.descriptionMsg)
	}

	if len(violations) == 0 {
		return nil
	}
	return violations
}

func (v *RecordValidator) check(violations map[string]string, field string, value interface{}, tag, message string) {
	if err := v.validate.Var(value, tag); err != nil {
		violations[field] = message
	}
}
