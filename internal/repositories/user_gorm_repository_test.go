package repositories_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inventaris/internal/models"
	"inventaris/internal/repositories"
	"inventaris/pkg/database"
)

// newTestDB opens a fresh in-memory sqlite database, one per test, with the
// full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Open(database.Config{Driver: "sqlite", DSN: dsn})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func newUser(username, email string) *models.User {
	return &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestGORMUserRepository_CreateAndGet(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))

	alice := newUser("alice", "alice@example.com")
	require.NoError(t, repo.Create(alice))

	byID, err := repo.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byEmail, err := repo.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byEmail.ID)
}

func TestGORMUserRepository_DuplicateEmail(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(newUser("alice", "a@x.com")))

	// Same email, different username.
	err := repo.Create(newUser("bob", "a@x.com"))
	assert.ErrorIs(t, err, models.ErrDuplicateCredential)

	// Same username, different email.
	err = repo.Create(newUser("alice", "alice2@x.com"))
	assert.ErrorIs(t, err, models.ErrDuplicateCredential)
}

func TestGORMUserRepository_GetMissing(t *testing.T) {
	repo := repositories.NewGORMUserRepository(newTestDB(t))

	_, err := repo.GetByEmail("ghost@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = repo.GetByID(uuid.New().String())
	assert.ErrorIs(t, err, models.ErrNotFound)
}
