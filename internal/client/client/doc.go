// Package client contains the CLI's transport to the gophauth server.
//
// GRPCClient calls the AuthService over gRPC, applies a per-call timeout and
// maps status codes back to the sentinel kinds in internal/common so callers
// can use errors.Is:
//
//	AlreadyExists                 -> common.ErrAlreadyExists
//	Unauthenticated (Login)       -> common.ErrInvalidCredentials
//	Unauthenticated (VerifyToken) -> common.ErrUnauthorized
//	InvalidArgument               -> common.ErrBadRequest
//	Unavailable, DeadlineExceeded -> ErrUnavailable
//
// The package also opens the local SQLite session database and applies its
// embedded goose migrations (OpenDatabase, RunMigrations).
package client
