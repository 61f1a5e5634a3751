package domain

import "errors"

// -----------------------------------------------------------------------------
// Domain Errors
// These errors represent domain-level failures and are used by stores and
// services to communicate domain-specific error conditions.
// -----------------------------------------------------------------------------

// User errors
var (
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrInvalidEmail      = errors.New("invalid email address")
)

// Cart errors
var (
	ErrInvalidCartItem = errors.New("invalid cart item")
	ErrInvalidItemID   = errors.New("invalid cart item id")
	ErrNotOwner        = errors.New("resource belongs to another user")
)
