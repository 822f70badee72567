// Package services contains application services for the gophauth CLI.
// AuthService talks to the server and keeps the signed-in session in the
// local database so that later invocations can reuse it.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/session"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
)

// ErrNotSignedIn is returned when an operation needs a stored token and
// there is none.
var ErrNotSignedIn = errors.New("not signed in")

// AuthService defines authentication operations for the CLI.
//
// Register, Login and Verify store the returned token and identity on
// success. Verify replaces the stored token with the refreshed one.
type AuthService interface {
	Register(ctx context.Context, email, name string, password []byte) (*client.AuthResult, error)
	Login(ctx context.Context, email string, password []byte) (*client.AuthResult, error)
	Verify(ctx context.Context) (*client.AuthResult, error)
	Current(ctx context.Context) (*client.Identity, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
}

func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) sessionRepo() session.Repository {
	return session.NewSQLiteRepository(a.db)
}

func (a *authService) Register(ctx context.Context, email, name string, password []byte) (*client.AuthResult, error) {
	res, err := a.client.Register(ctx, email, name, password)
	if err != nil {
		return nil, err
	}
	if err := a.saveSession(ctx, res); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return res, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (*client.AuthResult, error) {
	res, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := a.saveSession(ctx, res); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return res, nil
}

// Verify checks the stored token with the server. A rejected token clears
// the session.
func (a *authService) Verify(ctx context.Context) (*client.AuthResult, error) {
	token, err := a.sessionRepo().Get(ctx, session.KeyToken)
	if err != nil {
		return nil, err
	}
	if len(token) == 0 {
		return nil, ErrNotSignedIn
	}

	res, err := a.client.VerifyToken(ctx, string(token))
	if err != nil {
		if !errors.Is(err, client.ErrUnavailable) {
			_ = a.sessionRepo().Clear(ctx)
		}
		return nil, err
	}

	if err := a.saveSession(ctx, res); err != nil {
		return nil, fmt.Errorf("session saving error: %w", err)
	}
	return res, nil
}

// Current returns the identity stored with the session without contacting
// the server.
func (a *authService) Current(ctx context.Context) (*client.Identity, error) {
	repo := a.sessionRepo()

	id, err := repo.Get(ctx, session.KeyUserID)
	if err != nil {
		return nil, err
	}
	if len(id) == 0 {
		return nil, ErrNotSignedIn
	}

	email, err := repo.Get(ctx, session.KeyEmail)
	if err != nil {
		return nil, err
	}
	name, err := repo.Get(ctx, session.KeyName)
	if err != nil {
		return nil, err
	}

	return &client.Identity{ID: string(id), Email: string(email), Name: string(name)}, nil
}

// saveSession writes token and identity in a single transaction.
func (a *authService) saveSession(ctx context.Context, res *client.AuthResult) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)

		values := []struct {
			key   string
			value string
		}{
			{session.KeyToken, res.Token},
			{session.KeyUserID, res.User.ID},
			{session.KeyEmail, res.User.Email},
			{session.KeyName, res.User.Name},
		}
		for _, v := range values {
			if err := repo.Set(ctx, v.key, []byte(v.value)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Logout forgets the local session. Tokens are not revocable server-side.
func (a *authService) Logout(ctx context.Context) error {
	return a.sessionRepo().Clear(ctx)
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
