// Package correlation mints opaque identifiers that tie error responses to
// server-side log records. Clients receive the identifier instead of raw
// collaborator error text.
package correlation

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerName = "X-Request-ID"
	contextKey = "requestID"
)

// NewID generates a fresh correlation identifier.
func NewID() string {
	return uuid.NewString()
}

// Middleware ensures every request carries a stable identifier, echoing it
// back in the X-Request-ID response header.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerName)
		if id == "" {
			id = NewID()
		}
		c.Set(contextKey, id)
		c.Header(headerName, id)
		c.Next()
	}
}

// FromContext returns the request's correlation ID, minting one if the
// middleware did not run.
func FromContext(c *gin.Context) string {
	if id := c.GetString(contextKey); id != "" {
		return id
	}
	return NewID()
}
