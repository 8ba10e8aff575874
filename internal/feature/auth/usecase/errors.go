// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when the email/password pair does not match a stored credential.
	// The same error covers unknown users and wrong passwords to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenNotFound is returned when an access token cannot be found by its digest.
	ErrTokenNotFound = errors.New("token not found")

	// ErrInvalidToken is returned when a presented token is unknown, expired or malformed.
	ErrInvalidToken = errors.New("invalid or expired token")
)
