// Package common defines shared constants and sentinel errors used across
// the server and client layers of gophauth. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Credential storage errors. A stored hash that cannot be parsed means
	// the user record is corrupted, not that the caller made a mistake.
	ErrorCorruptedHash = errors.New("corrupted password hash")

	// Token errors. Bad signature, malformed input and expiry all collapse
	// into ErrInvalidToken.
	ErrInvalidToken = errors.New("invalid token")

	// Failure kinds surfaced by the auth service.
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrBadRequest         = errors.New("bad request")
)
