package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both a missing resource and a resource owned by
	// someone else. The two causes are deliberately indistinguishable so
	// ownership is never leaked.
	ErrNotFound = errors.New("resource not found")

	// Auth-related errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrTokenInvalid       = errors.New("token is invalid")

	// Validation errors raised after request binding
	ErrInvalidURL = errors.New("url must be an absolute http or https URL")
)

// notFoundOr translates a gorm miss into the shared not-found error
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
