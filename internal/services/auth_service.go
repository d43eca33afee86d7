package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"inventaris/internal/metrics"
	"inventaris/internal/models"
	"inventaris/internal/repositories"
	"inventaris/internal/token"
)

// AuthService owns user identity: registration, login, and lookup.
type AuthService struct {
	userRepo repositories.UserRepository
	codec    *token.Codec
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, codec *token.Codec) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codec:    codec,
	}
}

// Register creates a new user. The caller is expected to have validated the
// request already; blank values are still rejected here defensively. The
// plaintext password is hashed with a fixed bcrypt cost and discarded.
func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: username, email and password must not be blank", models.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, models.ErrDuplicateCredential) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	return user, nil
}

// Login verifies the credentials and mints a token binding the user's id and
// email. Unknown email and wrong password yield the same error so callers
// cannot probe which accounts exist.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return "", nil, models.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("denied").Inc()
		return "", nil, models.ErrInvalidCredentials
	}

	signed, err := s.codec.Issue(user.ID, user.Email)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return signed, user, nil
}

// GetUserByID is a pure lookup; callers are trusted to have authenticated.
func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	return s.userRepo.GetByID(id)
}
