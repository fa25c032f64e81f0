// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials indicates a failed login. It is returned for both
	// unknown email and wrong password so callers cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated indicates a missing, malformed or expired token.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden indicates the caller does not own the requested resource.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
