package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// createTestToken creates an access token entity for testing.
func createTestToken(id string, userID uint, expiresIn time.Duration) *entity.AccessToken {
	now := time.Now()
	return &entity.AccessToken{
		ID:        id,
		UserID:    userID,
		Name:      "api",
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestTokenGorm_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenGorm(db)

	token := createTestToken("digest-001", 1, time.Hour)
	require.NoError(t, repo.Create(context.Background(), token))

	found, err := repo.FindByID(context.Background(), "digest-001")
	require.NoError(t, err)
	assert.Equal(t, token.ID, found.ID)
	assert.Equal(t, token.UserID, found.UserID)
	assert.Equal(t, "api", found.Name)
	assert.WithinDuration(t, token.ExpiresAt, found.ExpiresAt, time.Second)
}

func TestTokenGorm_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenGorm(db)

	_, err := repo.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, usecase.ErrTokenNotFound)
}

func TestTokenGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenGorm(db)

	require.NoError(t, repo.Create(context.Background(), createTestToken("digest-001", 1, time.Hour)))
	require.NoError(t, repo.Create(context.Background(), createTestToken("digest-002", 1, time.Hour)))

	require.NoError(t, repo.Delete(context.Background(), "digest-001"))

	// Deleted token is gone, the sibling survives
	_, err := repo.FindByID(context.Background(), "digest-001")
	assert.ErrorIs(t, err, usecase.ErrTokenNotFound)
	_, err = repo.FindByID(context.Background(), "digest-002")
	assert.NoError(t, err)

	// Deleting again reports not found
	err = repo.Delete(context.Background(), "digest-001")
	assert.ErrorIs(t, err, usecase.ErrTokenNotFound)
}

func TestTokenGorm_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTokenGorm(db)

	require.NoError(t, repo.Create(context.Background(), createTestToken("expired-1", 1, -time.Hour)))
	require.NoError(t, repo.Create(context.Background(), createTestToken("expired-2", 2, -time.Minute)))
	require.NoError(t, repo.Create(context.Background(), createTestToken("active-1", 1, time.Hour)))

	deleted, err := repo.DeleteExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = repo.FindByID(context.Background(), "active-1")
	assert.NoError(t, err)
}
