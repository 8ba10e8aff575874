package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"
)

// TokenRedis implements usecase.TokenRepository using Redis.
// Tokens expire through per-key TTLs; a per-user set tracks issued tokens.
type TokenRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check to ensure TokenRedis implements TokenRepository.
var _ usecase.TokenRepository = (*TokenRedis)(nil)

// NewTokenRedis creates a new TokenRedis instance.
func NewTokenRedis(client *redis.Client, prefix string) *TokenRedis {
	return &TokenRedis{
		client: client,
		prefix: prefix,
	}
}

// tokenKey returns the Redis key for a token.
func (r *TokenRedis) tokenKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// userTokensKey returns the Redis key for a user's token set.
func (r *TokenRedis) userTokensKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d", r.prefix, userID)
}

// Create persists a new token to Redis.
func (r *TokenRedis) Create(ctx context.Context, token *entity.AccessToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("token already expired")
	}

	// Store token data
	if err := r.client.Set(ctx, r.tokenKey(token.ID), data, ttl).Err(); err != nil {
		return err
	}

	// Add to user's token set
	if err := r.client.SAdd(ctx, r.userTokensKey(token.UserID), token.ID).Err(); err != nil {
		return err
	}

	return nil
}

// FindByID retrieves a token by its digest.
func (r *TokenRedis) FindByID(ctx context.Context, id string) (*entity.AccessToken, error) {
	data, err := r.client.Get(ctx, r.tokenKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}

	var token entity.AccessToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}

	return &token, nil
}

// Delete removes a single token and its set membership.
func (r *TokenRedis) Delete(ctx context.Context, id string) error {
	token, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.client.Del(ctx, r.tokenKey(id)).Err(); err != nil {
		return err
	}
	return r.client.SRem(ctx, r.userTokensKey(token.UserID), id).Err()
}

// DeleteExpired is a no-op for Redis: expired tokens are evicted by TTL.
func (r *TokenRedis) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
