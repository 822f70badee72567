package client

import "context"

// Identity is the public view of a user as returned by the server.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// AuthResult is a signed-in identity and its token.
type AuthResult struct {
	User  Identity
	Token string
}

type Client interface {
	Close() error
	Register(ctx context.Context, email, name string, password []byte) (*AuthResult, error)
	Login(ctx context.Context, email string, password []byte) (*AuthResult, error)
	VerifyToken(ctx context.Context, token string) (*AuthResult, error)
	Ping(ctx context.Context) error
}
