// Package users is the user store: lookup and creation of identities keyed
// by email, with uniqueness enforced by the store itself.
package users

import (
	"context"

	"github.com/dmitrijs2005/gophauth/internal/server/models"
)

// Repository is the narrow user store used by the auth service.
//
// GetUserByEmail returns common.ErrorNotFound when no identity has the email.
// Create returns common.ErrorAlreadyExists when the email is taken, even if
// a concurrent caller inserted it after the caller's own lookup.
type Repository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.Identity, error)
	Create(ctx context.Context, email, name string, passwordHash []byte) (*models.Identity, error)
}
