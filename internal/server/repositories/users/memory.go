package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps identities in a map keyed by email. The lookup and
// the insert in Create happen under one lock, so two concurrent creates for
// the same email cannot both succeed.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.Identity
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]models.Identity)}
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(u), nil
}

func (r *MemoryRepository) Create(ctx context.Context, email, name string, passwordHash []byte) (*models.Identity, error) {
	u := newIdentity(email, name, passwordHash)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	r.byEmail[email] = u

	return clone(u), nil
}

// Len reports how many identities are stored.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}

// Begin starts a staged unit of work. Creates made through the returned
// MemoryTx are invisible to others until Commit.
func (r *MemoryRepository) Begin() *MemoryTx {
	return &MemoryTx{base: r, staged: make(map[string]models.Identity)}
}

// MemoryTx is a Repository view that buffers creates until Commit.
type MemoryTx struct {
	base   *MemoryRepository
	staged map[string]models.Identity
	order  []string
}

func (tx *MemoryTx) GetUserByEmail(ctx context.Context, email string) (*models.Identity, error) {
	if u, ok := tx.staged[email]; ok {
		return clone(u), nil
	}
	return tx.base.GetUserByEmail(ctx, email)
}

func (tx *MemoryTx) Create(ctx context.Context, email, name string, passwordHash []byte) (*models.Identity, error) {
	if _, ok := tx.staged[email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	if _, err := tx.base.GetUserByEmail(ctx, email); err == nil {
		return nil, common.ErrorAlreadyExists
	}

	u := newIdentity(email, name, passwordHash)
	tx.staged[email] = u
	tx.order = append(tx.order, email)

	return clone(u), nil
}

// Commit publishes the staged creates atomically. Uniqueness is checked
// again under the lock; if any email was taken meanwhile nothing is written.
func (tx *MemoryTx) Commit() error {
	r := tx.base
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, email := range tx.order {
		if _, ok := r.byEmail[email]; ok {
			return common.ErrorAlreadyExists
		}
	}
	for _, email := range tx.order {
		r.byEmail[email] = tx.staged[email]
	}
	tx.staged, tx.order = nil, nil

	return nil
}

func newIdentity(email, name string, passwordHash []byte) models.Identity {
	return models.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: append([]byte(nil), passwordHash...),
		CreatedAt:    time.Now().UTC(),
	}
}

func clone(u models.Identity) *models.Identity {
	u.PasswordHash = append([]byte(nil), u.PasswordHash...)
	return &u
}
