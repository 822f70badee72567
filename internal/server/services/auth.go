// Package services contains the server-side business logic. AuthService
// registers users, checks credentials and issues and refreshes identity
// tokens. Every failure leaves the service as a *Failure of one of four kinds.
package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/auth"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/users"
)

const (
	msgAlreadyExists      = "User already exists."
	msgInvalidCredentials = "Invalid credentials."
	msgInvalidToken       = "Invalid token."
)

// TokenIssuer mints and verifies identity tokens.
type TokenIssuer interface {
	Mint(claims models.PublicIdentity) (string, error)
	Verify(token string) (*models.PublicIdentity, error)
}

// decoyHasher is implemented by hashers that can supply a throwaway hash for
// unknown users, see auth.BcryptHasher.DummyHash.
type decoyHasher interface {
	DummyHash() []byte
}

// AuthResult is the success shape of every AuthService operation.
type AuthResult struct {
	User  models.PublicIdentity
	Token string
}

type AuthService struct {
	store  repomanager.Manager
	hasher auth.PasswordHasher
	tokens TokenIssuer
	logger logging.Logger
}

func NewAuthService(store repomanager.Manager, hasher auth.PasswordHasher, tokens TokenIssuer, logger logging.Logger) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("module", "auth_service"),
	}
}

// Register creates an identity and returns it with a fresh token.
//
// The lookup before the insert only gives an early answer; the store's own
// uniqueness check decides concurrent registrations. The identity is created
// and the token minted in one unit of work, so a failed mint leaves nothing
// behind.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if err := in.Validate(); err != nil {
		return nil, fail(common.ErrBadRequest, err.Error(), err)
	}

	_, err := s.store.Users().GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, fail(common.ErrAlreadyExists, msgAlreadyExists, nil)
	case !errors.Is(err, common.ErrorNotFound):
		return nil, s.internal(ctx, "register", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, s.internal(ctx, "register", err)
	}

	var result *AuthResult
	err = s.store.WithinTx(ctx, func(ctx context.Context, repo users.Repository) error {
		user, err := repo.Create(ctx, in.Email, in.Name, hash)
		if err != nil {
			return err
		}
		result, err = s.issue(user.Public())
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, fail(common.ErrAlreadyExists, msgAlreadyExists, err)
		}
		return nil, s.internal(ctx, "register", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", result.User.ID)
	return result, nil
}

// Login checks the credentials and returns the identity with a fresh token.
// An unknown email and a wrong password produce the same failure, and both
// paths run one bcrypt comparison.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if err := in.Validate(); err != nil {
		return nil, fail(common.ErrBadRequest, err.Error(), err)
	}

	user, err := s.store.Users().GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.burnHash(in.Password)
			return nil, fail(common.ErrInvalidCredentials, msgInvalidCredentials, nil)
		}
		return nil, s.internal(ctx, "login", err)
	}

	ok, err := s.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return nil, s.internal(ctx, "login", err)
	}
	if !ok {
		return nil, fail(common.ErrInvalidCredentials, msgInvalidCredentials, nil)
	}

	result, err := s.issue(user.Public())
	if err != nil {
		return nil, s.internal(ctx, "login", err)
	}

	s.logger.Debug(ctx, "user logged in", "user_id", result.User.ID)
	return result, nil
}

// VerifyToken checks token and, if it is still valid, returns its identity
// with a newly minted token (sliding expiry). The input token stays usable
// until its own expiry.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*AuthResult, error) {
	if token == "" {
		return nil, fail(common.ErrUnauthorized, msgInvalidToken, nil)
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fail(common.ErrUnauthorized, msgInvalidToken, err)
	}

	result, err := s.issue(*claims)
	if err != nil {
		s.logger.Error(ctx, "token refresh failed", "error", err)
		return nil, fail(common.ErrUnauthorized, msgInvalidToken, err)
	}

	return result, nil
}

func (s *AuthService) issue(user models.PublicIdentity) (*AuthResult, error) {
	token, err := s.tokens.Mint(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

func (s *AuthService) burnHash(password string) {
	if d, ok := s.hasher.(decoyHasher); ok {
		_, _ = s.hasher.Verify(password, d.DummyHash())
	}
}

// internal reports an infrastructure fault. It is surfaced as BadRequest
// carrying the underlying message.
// TODO: split into a dedicated internal kind once clients can handle a
// "try again" status without the message.
func (s *AuthService) internal(ctx context.Context, op string, err error) *Failure {
	s.logger.Error(ctx, op+" failed", "error", err)
	return fail(common.ErrBadRequest, err.Error(), err)
}
