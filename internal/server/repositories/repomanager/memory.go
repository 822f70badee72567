package repomanager

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

// MemoryManager keeps identities in process memory. Used when no database
// DSN is configured and in tests.
type MemoryManager struct {
	repo *users.MemoryRepository
}

func NewMemory() *MemoryManager {
	return &MemoryManager{repo: users.NewMemoryRepository()}
}

func (m *MemoryManager) Users() users.Repository {
	return m.repo
}

func (m *MemoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	tx := m.repo.Begin()
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (m *MemoryManager) Close() error {
	return nil
}
