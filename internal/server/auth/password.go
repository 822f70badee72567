// Package auth contains the credential hasher and the token manager used by
// the auth service.
package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the bcrypt work factor for stored passwords.
const DefaultBcryptCost = 10

// PasswordHasher hashes passwords for storage and checks candidates against
// stored hashes.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	// Verify reports whether password matches hash. A mismatch is (false, nil);
	// an error means the stored hash itself is unusable.
	Verify(password string, hash []byte) (bool, error)
}

// BcryptHasher implements PasswordHasher with bcrypt. Every hash carries its
// own random salt, so hashing the same password twice gives different output.
type BcryptHasher struct {
	cost int

	dummyOnce sync.Once
	dummy     []byte
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}

func (h *BcryptHasher) Verify(password string, hash []byte) (bool, error) {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", common.ErrorCorruptedHash, err)
	}
}

// DummyHash returns a valid hash of a random password at the hasher's cost.
// Checking a candidate against it costs the same as a real check, which lets
// callers handle unknown users without a timing difference.
func (h *BcryptHasher) DummyHash() []byte {
	h.dummyOnce.Do(func() {
		secret := make([]byte, 32)
		_, _ = rand.Read(secret)
		// bcrypt rejects inputs over 72 bytes only; 32 random bytes always hash.
		h.dummy, _ = bcrypt.GenerateFromPassword(secret, h.cost)
	})
	return h.dummy
}
