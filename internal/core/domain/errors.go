package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidConfig indicates the run configuration is incomplete or inconsistent.
	ErrInvalidConfig = errors.New("invalid configuration")

	// Authentication Errors.

	// ErrAuthRequired indicates no access token was configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the access token was rejected.
	ErrAuthInvalid = errors.New("authentication invalid")
)
