package entity

import "time"

// AccessToken represents an opaque bearer credential bound to one user.
// ID holds the SHA-256 digest of the plaintext token; the plaintext is
// handed to the client once at issuance and never stored.
type AccessToken struct {
	ID        string    // SHA-256 digest of the plaintext token (64-character hex string)
	UserID    uint      // Associated user ID
	Name      string    // Token label (e.g. "api")
	CreatedAt time.Time // Token issuance time
	ExpiresAt time.Time // Token expiration time
}

// IsExpired returns true if the token has passed its expiration time.
func (t *AccessToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
