// Package common defines sentinel errors shared across the bloglist
// server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrInternal   = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// A malformed id is a different failure than a well-formed id
	// with no record behind it.
	ErrMalformedID = errors.New("malformed id")

	// Auth errors. ErrUnauthenticated means no credential was presented,
	// ErrInvalidToken means a credential was presented and rejected.
	ErrInvalidToken       = errors.New("invalid token")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrUserNotFound       = errors.New("token subject does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Authorization errors. Only reachable after identity is resolved.
	ErrNotOwner = errors.New("not the owner")
)
