package usecase

import (
	"context"

	"auth_backend/internal/feature/auth/domain/entity"
)

// TokenRepository abstracts the persistence layer for access tokens.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TokenRepository interface {
	// Create persists a new access token to the storage.
	Create(ctx context.Context, token *entity.AccessToken) error

	// FindByID retrieves a token by its ID (SHA-256 digest of the plaintext).
	FindByID(ctx context.Context, id string) (*entity.AccessToken, error)

	// Delete removes a single token from storage.
	// It returns ErrTokenNotFound if no token matches the ID.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes all expired tokens from storage.
	// Returns the number of deleted tokens.
	DeleteExpired(ctx context.Context) (int64, error)
}
