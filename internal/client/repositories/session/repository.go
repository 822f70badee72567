// Package session persists the CLI's signed-in state (token and identity)
// as key/value pairs in the local SQLite database.
package session

import "context"

// Keys stored by the auth service.
const (
	KeyToken  = "token"
	KeyUserID = "user_id"
	KeyEmail  = "email"
	KeyName   = "name"
)

// Repository is a small key/value store. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
