// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user account.
// It carries the credentials and contact details captured at registration.
type User struct {
	// ID is the unique identifier for the user, generated by the store.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the user's display name (5 to 150 characters).
	Name string `gorm:"size:150;not null" json:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// It is never serialized and never stores plaintext.
	Password string `gorm:"size:255;not null" json:"-"`

	// PhoneNumber is the user's phone number (exactly 10 digits).
	PhoneNumber string `gorm:"size:10;not null" json:"phone_number"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}
