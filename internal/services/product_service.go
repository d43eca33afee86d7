package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"inventaris/internal/metrics"
	"inventaris/internal/models"
	"inventaris/internal/repositories"
	"inventaris/pkg/logger"
	"inventaris/pkg/rabbitmq"
)

// EventPublisher publishes catalog lifecycle events. *rabbitmq.Client
// satisfies it; tests substitute a mock and deployments without a broker
// pass nil.
type EventPublisher interface {
	PublishCatalogEvent(event rabbitmq.CatalogEvent) error
}

// ProductService owns product CRUD and enforces the authorization policy
// selected by the catalog mode.
type ProductService struct {
	repo   repositories.ProductRepository
	events EventPublisher
	mode   string
}

// NewProductService creates a new ProductService. mode is one of
// models.CatalogModeOwner or models.CatalogModeShared.
func NewProductService(repo repositories.ProductRepository, events EventPublisher, mode string) *ProductService {
	return &ProductService{
		repo:   repo,
		events: events,
		mode:   mode,
	}
}

// scopeFor derives the row predicate for the acting user. This is the only
// place the owner/shared policy is consulted; every operation below shares
// the same code path in both modes.
func (s *ProductService) scopeFor(callerID string) models.Scope {
	return models.Scope{
		UserID: callerID,
		Shared: s.mode == models.CatalogModeShared,
	}
}

// List retrieves all products visible to the caller.
func (s *ProductService) List(callerID string) ([]models.Product, error) {
	return s.repo.GetAll(s.scopeFor(callerID))
}

// GetByID retrieves a single product visible to the caller. A record owned
// by someone else reports models.ErrNotFound, not a permission error.
func (s *ProductService) GetByID(id, callerID string) (*models.Product, error) {
	return s.repo.GetByID(id, s.scopeFor(callerID))
}

// Create validates the input, stamps identity and timestamps, persists the
// record attributed to the caller, and returns it.
func (s *ProductService) Create(input models.ProductCreate, callerID string) (*models.Product, error) {
	if strings.TrimSpace(input.Name) == "" {
		metrics.ProductOpsTotal.WithLabelValues("create", "invalid").Inc()
		return nil, fmt.Errorf("%w: name must not be blank", models.ErrValidation)
	}
	if strings.TrimSpace(input.Description) == "" {
		metrics.ProductOpsTotal.WithLabelValues("create", "invalid").Inc()
		return nil, fmt.Errorf("%w: description must not be blank", models.ErrValidation)
	}
	if input.Price.IsNegative() {
		metrics.ProductOpsTotal.WithLabelValues("create", "invalid").Inc()
		return nil, fmt.Errorf("%w: price must be non-negative", models.ErrValidation)
	}
	if input.Stock < 0 {
		metrics.ProductOpsTotal.WithLabelValues("create", "invalid").Inc()
		return nil, fmt.Errorf("%w: stock count must be non-negative", models.ErrValidation)
	}

	now := time.Now().UTC()
	product := &models.Product{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		UserID:      callerID,
		CreatedBy:   callerID,
		UpdatedBy:   callerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(product); err != nil {
		metrics.ProductOpsTotal.WithLabelValues("create", "error").Inc()
		return nil, err
	}

	metrics.ProductOpsTotal.WithLabelValues("create", "ok").Inc()
	s.publish(rabbitmq.EventProductCreated, product.ID, callerID)
	return product, nil
}

// Update applies a partial update to a product within the caller's scope.
// Each present field is validated before any write happens.
func (s *ProductService) Update(id string, patch models.ProductPatch, callerID string) (*models.Product, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		metrics.ProductOpsTotal.WithLabelValues("update", "invalid").Inc()
		return nil, fmt.Errorf("%w: name must not be blank", models.ErrValidation)
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		metrics.ProductOpsTotal.WithLabelValues("update", "invalid").Inc()
		return nil, fmt.Errorf("%w: description must not be blank", models.ErrValidation)
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		metrics.ProductOpsTotal.WithLabelValues("update", "invalid").Inc()
		return nil, fmt.Errorf("%w: price must be non-negative", models.ErrValidation)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		metrics.ProductOpsTotal.WithLabelValues("update", "invalid").Inc()
		return nil, fmt.Errorf("%w: stock count must be non-negative", models.ErrValidation)
	}

	product, err := s.repo.Update(id, &patch, s.scopeFor(callerID))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			metrics.ProductOpsTotal.WithLabelValues("update", "not_found").Inc()
		} else {
			metrics.ProductOpsTotal.WithLabelValues("update", "error").Inc()
		}
		return nil, err
	}

	metrics.ProductOpsTotal.WithLabelValues("update", "ok").Inc()
	s.publish(rabbitmq.EventProductUpdated, product.ID, callerID)
	return product, nil
}

// Delete removes a product within the caller's scope.
func (s *ProductService) Delete(id, callerID string) error {
	if err := s.repo.Delete(id, s.scopeFor(callerID)); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			metrics.ProductOpsTotal.WithLabelValues("delete", "not_found").Inc()
		} else {
			metrics.ProductOpsTotal.WithLabelValues("delete", "error").Inc()
		}
		return err
	}

	metrics.ProductOpsTotal.WithLabelValues("delete", "ok").Inc()
	s.publish(rabbitmq.EventProductDeleted, id, callerID)
	return nil
}

// publish emits a catalog event when a broker is configured. Failures are
// logged and swallowed; the store mutation has already committed.
func (s *ProductService) publish(eventType, productID, actorID string) {
	if s.events == nil {
		return
	}
	event := rabbitmq.CatalogEvent{
		Type:      eventType,
		ProductID: productID,
		ActorID:   actorID,
		At:        time.Now().UTC(),
	}
	if err := s.events.PublishCatalogEvent(event); err != nil {
		l := logger.Get()
		l.Warn().Err(err).Str("type", eventType).Str("product_id", productID).
			Msg("failed to publish catalog event")
	}
}
