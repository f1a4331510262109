package service

import "errors"

// Error taxonomy of the core. Validation and not-found errors propagate
// unchanged to the HTTP boundary; anything else is logged at the point of
// detection and collapsed into ErrInternal so persistence details never
// reach a caller.
var (
	ErrInvalidCredentialFormat = errors.New("password must be at least 6 characters")
	ErrDuplicateAccount        = errors.New("email already registered")
	ErrAuthenticationFailed    = errors.New("authentication failed")

	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrNotFound        = errors.New("expense not found")

	ErrInternal = errors.New("failed to process request")
)
