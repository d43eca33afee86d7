package repositories_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"inventaris/internal/models"
	"inventaris/internal/repositories"
)

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := newUser(username, username+"@example.com")
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, repo repositories.ProductRepository, ownerID, name string) *models.Product {
	t.Helper()
	now := time.Now().UTC()
	product := &models.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: "seeded",
		Price:       decimal.RequireFromString("9.99"),
		Stock:       5,
		UserID:      ownerID,
		CreatedBy:   ownerID,
		UpdatedBy:   ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Create(product))
	return product
}

func ownerScope(userID string) models.Scope {
	return models.Scope{UserID: userID}
}

func sharedScope(userID string) models.Scope {
	return models.Scope{UserID: userID, Shared: true}
}

func TestGORMProductRepository_OwnerScopeIsolation(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	product := seedProduct(t, repo, alice.ID, "Widget")

	// Bob cannot observe or affect Alice's record; every operation behaves
	// exactly as if the record did not exist.
	_, err := repo.GetByID(product.ID, ownerScope(bob.ID))
	assert.ErrorIs(t, err, models.ErrNotFound)

	newName := "Hijacked"
	_, err = repo.Update(product.ID, &models.ProductPatch{Name: &newName}, ownerScope(bob.ID))
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = repo.Delete(product.ID, ownerScope(bob.ID))
	assert.ErrorIs(t, err, models.ErrNotFound)

	all, err := repo.GetAll(ownerScope(bob.ID))
	require.NoError(t, err)
	assert.Empty(t, all)

	// Alice still sees her record untouched.
	got, err := repo.GetByID(product.ID, ownerScope(alice.ID))
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
}

func TestGORMProductRepository_SharedScope(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	product := seedProduct(t, repo, alice.ID, "Widget")

	// In the shared catalog, Bob sees and edits Alice's record; attribution
	// records that he touched it last.
	got, err := repo.GetByID(product.ID, sharedScope(bob.ID))
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.CreatedBy)

	stock := 3
	updated, err := repo.Update(product.ID, &models.ProductPatch{Stock: &stock}, sharedScope(bob.ID))
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, bob.ID, updated.UpdatedBy)
	assert.Equal(t, alice.ID, updated.CreatedBy)

	require.NoError(t, repo.Delete(product.ID, sharedScope(bob.ID)))
}

func TestGORMProductRepository_UpdatePatch(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	alice := seedUser(t, db, "alice")
	product := seedProduct(t, repo, alice.ID, "Widget")

	time.Sleep(5 * time.Millisecond)

	stock := 3
	updated, err := repo.Update(product.ID, &models.ProductPatch{Stock: &stock}, ownerScope(alice.ID))
	require.NoError(t, err)

	// Only the patched field changes; updatedAt is refreshed.
	assert.Equal(t, 3, updated.Stock)
	assert.Equal(t, "Widget", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("9.99")), "price must be untouched, got %s", updated.Price)
	assert.True(t, updated.UpdatedAt.After(product.UpdatedAt),
		"updatedAt %v should be after %v", updated.UpdatedAt, product.UpdatedAt)
}

func TestGORMProductRepository_EmptyPatchRefreshesUpdatedAt(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	alice := seedUser(t, db, "alice")
	product := seedProduct(t, repo, alice.ID, "Widget")

	time.Sleep(5 * time.Millisecond)

	updated, err := repo.Update(product.ID, &models.ProductPatch{}, ownerScope(alice.ID))
	require.NoError(t, err)

	assert.Equal(t, product.Name, updated.Name)
	assert.Equal(t, product.Description, updated.Description)
	assert.Equal(t, product.Stock, updated.Stock)
	assert.True(t, updated.Price.Equal(product.Price))
	assert.True(t, updated.UpdatedAt.After(product.UpdatedAt))
}

func TestGORMProductRepository_DeleteTwice(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	alice := seedUser(t, db, "alice")
	product := seedProduct(t, repo, alice.ID, "Widget")

	require.NoError(t, repo.Delete(product.ID, ownerScope(alice.ID)))

	err := repo.Delete(product.ID, ownerScope(alice.ID))
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGORMProductRepository_GetAllReturnsEmptySlice(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewGORMProductRepository(db)
	alice := seedUser(t, db, "alice")

	all, err := repo.GetAll(ownerScope(alice.ID))
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}
