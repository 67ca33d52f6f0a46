package common

import "errors"

// Common application errors.
var (
	// ErrNotFound indicates a requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrMissingConfig indicates a required configuration value is absent.
	ErrMissingConfig = errors.New("missing configuration")

	// ErrInvalidConfig indicates a configuration value failed validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)
