package blog

import (
	"errors"
)

// Custom error types for the blog package
var (
	// ErrInvalidInput indicates the provided input is invalid
	ErrInvalidInput = errors.New("Invalid input provided")

	// ErrBlogNotFound indicates the blog post was not found
	ErrBlogNotFound = errors.New("Blog not found")
)
