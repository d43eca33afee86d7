package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"inventaris/internal/models"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create inserts a new user after confirming neither the email nor the
// username is taken. Both statements run in one transaction so concurrent
// registrations cannot both pass the check; if an isolation anomaly lets one
// through anyway, the unique indexes reject the insert and the violation is
// reported as a duplicate, not an infrastructure error.
func (r *GORMUserRepository) Create(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("email = ? OR username = ?", user.Email, user.Username).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check existing user: %w", err)
		}
		if count > 0 {
			return models.ErrDuplicateCredential
		}

		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return models.ErrDuplicateCredential
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		// Read the row back so the caller sees exactly what was persisted.
		return tx.First(user, "id = ?", user.ID).Error
	})
}

// GetByEmail retrieves a user by their email.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}
