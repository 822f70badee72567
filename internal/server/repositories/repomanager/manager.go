// Package repomanager owns the lifecycle of the user store: it opens the
// backing storage, runs migrations, hands out repositories, runs units of
// work and releases resources on shutdown.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

// Manager is the handle returned by an explicit store initialization step.
type Manager interface {
	// Users returns a repository outside of any unit of work.
	Users() users.Repository
	// WithinTx runs fn against a transactional repository. Writes made
	// through it become visible only if fn returns nil.
	WithinTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error
	Close() error
}
