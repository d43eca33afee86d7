package repositories

import "inventaris/internal/models"

// ProductRepository defines the interface for product data access. Every
// method that reads or mutates existing rows takes a models.Scope; rows
// outside the scope behave exactly like rows that do not exist.
type ProductRepository interface {
	GetAll(scope models.Scope) ([]models.Product, error)
	GetByID(id string, scope models.Scope) (*models.Product, error)
	Create(product *models.Product) error
	// Update applies the non-nil patch fields to the row matching id within
	// scope, refreshes updatedAt/updatedBy, and returns the updated row.
	Update(id string, patch *models.ProductPatch, scope models.Scope) (*models.Product, error)
	Delete(id string, scope models.Scope) error
}
