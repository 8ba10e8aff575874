// Package token provides the bearer-token middleware guarding authenticated routes.
package token

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"auth_backend/internal/api"
	"auth_backend/internal/feature/auth/domain/entity"
)

const (
	// ContextUser is the Gin context key holding the authenticated *entity.User.
	ContextUser = "authUser"

	// ContextToken is the Gin context key holding the presenting *entity.AccessToken.
	ContextToken = "authToken"
)

// Resolver resolves a plaintext bearer token to its user and token record.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type Resolver interface {
	UserFromToken(ctx context.Context, plaintext string) (*entity.User, *entity.AccessToken, error)
}

// AuthRequired returns a Gin middleware function that resolves the bearer
// token through the given Resolver and restricts access to authenticated
// users only. Tokens are opaque: validity is decided by the token store,
// so a revoked token fails here immediately.
func AuthRequired(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				api.Error("Unable to authenticate due to invalid token!", http.StatusBadRequest))
			return
		}
		plaintext := strings.TrimPrefix(auth, "Bearer ")

		// 2. Resolve the token against the store
		user, token, err := resolver.UserFromToken(c.Request.Context(), plaintext)
		if err != nil {
			slog.Warn("token resolution failed", "error", err, "remote_addr", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusBadRequest,
				api.Error("Unable to authenticate due to invalid token!", http.StatusBadRequest))
			return
		}

		// 3. Expose the authenticated user and token to the handlers
		c.Set(ContextUser, user)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by AuthRequired, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}

// CurrentToken returns the access token set by AuthRequired, or nil.
func CurrentToken(c *gin.Context) *entity.AccessToken {
	v, ok := c.Get(ContextToken)
	if !ok {
		return nil
	}
	token, _ := v.(*entity.AccessToken)
	return token
}
