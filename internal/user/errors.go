package user

import (
	"errors"
)

// Custom error types for the user package
var (
	// ErrUserNotFound indicates the user was not found
	ErrUserNotFound = errors.New("User not found")

	// ErrEmailAlreadyExists indicates the email is already in use
	ErrEmailAlreadyExists = errors.New("Email already exists")
)
