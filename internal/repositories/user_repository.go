package repositories

import "inventaris/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	// Create inserts a new user. The uniqueness check and the insert run in
	// one transaction; a collision on username or email yields
	// models.ErrDuplicateCredential.
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
