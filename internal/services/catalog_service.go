package services

import (
	"context"
	"log"

	"tienda/internal/models"
	"tienda/internal/queries"
	"tienda/internal/repositories"
	"tienda/internal/views"
)

// Product event actions published after successful mutations.
const (
	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
)

// EventPublisher publishes product change events. Publishing is
// best-effort; the catalog never fails an operation over it.
type EventPublisher interface {
	PublishProductEvent(action, productID string, payload map[string]interface{}) error
}

// CatalogService implements the five user-facing catalog operations.
type CatalogService struct {
	repo      repositories.ProductRepository
	validator *RecordValidator
	events    EventPublisher
	bounds    queries.Bounds
}

// NewCatalogService creates a new CatalogService. The event publisher
// may be nil, in which case no events are published.
func NewCatalogService(repo repositories.ProductRepository, validator *RecordValidator, events EventPublisher, bounds queries.Bounds) *CatalogService {
	return &CatalogService{
		repo:      repo,
		validator: validator,
		events:    events,
		bounds:    bounds,
	}
}

// Dashboard fetches the whole catalog and computes the aggregate summary.
func (s *CatalogService) Dashboard(ctx context.Context) (views.Summary, error) {
	products, err := s.repo.FetchAll(ctx, nil)
	if err != nil {
		return views.Summary{}, err
	}
	return views.Summarize(products), nil
}

// Search builds a predicate from the criteria, fetches the matching
// products and projects them into display rows. It returns the rows
// along with the match count.
func (s *CatalogService) Search(ctx context.Context, criteria queries.Criteria) ([]views.Row, int, error) {
	filter := queries.BuildFilter(criteria, s.bounds)
	products, err := s.repo.FetchAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return views.ProjectRows(products), len(products), nil
}

// Create validates the candidate and, if valid, inserts it and returns
// the store-assigned identifier. On validation failure the violation map
// is returned and the store is never contacted.
func (s *CatalogService) Create(ctx context.Context, req models.CreateProductRequest) (string, map[string]string, error) {
	if violations := s.validator.ValidateCreate(req); violations != nil {
		return "", violations, nil
	}

	product := req.Product()
	id, err := s.repo.Insert(ctx, &product)
	if err != nil {
		return "", nil, err
	}

	s.publish(EventProductCreated, id, map[string]interface{}{
		"name":     product.Name,
		"brand":    product.Brand,
		"category": product.Category,
		"price":    product.Price,
	})
	return id, nil, nil
}

// Update validates only the supplied fields and applies them as a
// partial update. A missing identifier reports (false, nil, nil); an
// empty change set is a successful no-op.
func (s *CatalogService) Update(ctx context.Context, id string, req models.UpdateProductRequest) (bool, map[string]string, error) {
	if violations := s.validator.ValidateUpdate(req); violations != nil {
		return false, violations, nil
	}

	changes := req.Changes()
	if len(changes) == 0 {
		return true, nil, nil
	}

	modified, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return false, nil, err
	}
	if modified {
		s.publish(EventProductUpdated, id, map[string]interface{}(changes))
	}
	return modified, nil, nil
}

// Delete removes a product by identifier. A missing identifier reports
// (false, nil), not an error.
func (s *CatalogService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.publish(EventProductDeleted, id, nil)
	}
	return deleted, nil
}

func (s *CatalogService) publish(action, productID string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProductEvent(action, productID, payload); err != nil {
		log.Printf("Failed to publish %s event for product %s: %v", action, productID, err)
	}
}
