package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"inventaris/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// scoped applies the scope predicate to a query. A shared scope matches
// every row; an owner scope matches only rows owned by the acting user.
func scoped(db *gorm.DB, scope models.Scope) *gorm.DB {
	if scope.Shared {
		return db
	}
	return db.Where("user_id = ?", scope.UserID)
}

// GetAll retrieves all products visible in scope, in store-native order.
func (r *GORMProductRepository) GetAll(scope models.Scope) ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := scoped(r.db, scope).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID within scope. A row owned by
// someone else is indistinguishable from a missing row.
func (r *GORMProductRepository) GetByID(id string, scope models.Scope) (*models.Product, error) {
	var product models.Product
	if err := scoped(r.db, scope).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by id: %w", err)
	}
	return &product, nil
}

// Create inserts a new product row.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update applies a partial update to the row matching id within scope. The
// existence read and the conditional write share one transaction, and the
// write re-applies the scope predicate so an ownership change between the
// two statements affects zero rows instead of the wrong row.
func (r *GORMProductRepository) Update(id string, patch *models.ProductPatch, scope models.Scope) (*models.Product, error) {
	var updated models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		if err := scoped(tx, scope).First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return fmt.Errorf("failed to read product for update: %w", err)
		}

		updates := map[string]interface{}{
			"updated_at": time.Now().UTC(),
			"updated_by": scope.UserID,
		}
		if patch.Name != nil {
			updates["name"] = *patch.Name
		}
		if patch.Description != nil {
			updates["description"] = *patch.Description
		}
		if patch.Price != nil {
			updates["price"] = *patch.Price
		}
		if patch.Stock != nil {
			updates["stock"] = *patch.Stock
		}

		res := scoped(tx, scope).Model(&models.Product{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return fmt.Errorf("failed to update product: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return models.ErrNotFound
		}

		return tx.First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the row matching id within scope in a single statement and
// counts affected rows; zero rows means not found (or not yours, which must
// look the same).
func (r *GORMProductRepository) Delete(id string, scope models.Scope) error {
	res := scoped(r.db, scope).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
