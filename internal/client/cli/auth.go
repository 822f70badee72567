package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/common"
)

// Prompt seams, replaced in tests.
var (
	readField  = promptField
	readSecret = promptPassword
)

// Register prompts for email, name and password and creates the account.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	email, err := readField(a.reader, a.out, fieldEmail)
	if err != nil {
		return err
	}

	name, err := readField(a.reader, a.out, fieldName)
	if err != nil {
		return err
	}

	password, err := readSecret(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.authService.Register(ctx, email, name, password)
	if err != nil {
		return err
	}

	a.userName = res.User.Email
	fmt.Fprintf(a.out, "Registered %s (id %s)\n", res.User.Email, res.User.ID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := readField(a.reader, a.out, fieldEmail)
	if err != nil {
		return err
	}

	password, err := readSecret(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return err
	}

	a.userName = res.User.Email
	fmt.Fprintf(a.out, "Signed in as %s\n", res.User.Email)
	return nil
}

// Verify asks the server to check the stored token. On success the stored
// token is replaced by the refreshed one.
func (a *App) Verify(ctx context.Context) error {
	res, err := a.authService.Verify(ctx)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			a.userName = ""
		}
		return err
	}

	a.userName = res.User.Email
	fmt.Fprintf(a.out, "Token valid for %s <%s> (id %s)\n", res.User.Name, res.User.Email, res.User.ID)
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	id, err := a.authService.Current(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s <%s> (id %s)\n", id.Name, id.Email, id.ID)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.userName = ""
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.authService.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Server is up")
	return nil
}

// describe turns a command error into a short user-facing line.
func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "Server unavailable, try again later"
	case errors.Is(err, services.ErrNotSignedIn):
		return "Not signed in, use 'login' or 'register'"
	default:
		return fmt.Sprintf("error: %v", err)
	}
}
