package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenValidity is how long a freshly minted token stays valid.
const TokenValidity = 2 * time.Hour

var errEmptySecret = errors.New("token secret must not be empty")

// Claims is the JWT payload: the public identity plus the registered
// iat/exp/jti claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// TokenManager mints and verifies HS256 identity tokens with a single
// process-wide secret.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

type Option func(*TokenManager)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *TokenManager) { m.now = now }
}

func NewTokenManager(secret []byte, opts ...Option) (*TokenManager, error) {
	if len(secret) == 0 {
		return nil, errEmptySecret
	}
	m := &TokenManager{secret: secret, now: time.Now}
	for _, o := range opts {
		o(m)
	}
	return m, nil
}

// Mint signs a token for claims that expires TokenValidity from now. Each
// token gets a fresh jti, so two tokens minted in the same second differ.
func (m *TokenManager) Mint(claims models.PublicIdentity) (string, error) {
	now := m.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   claims.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
		UserID: claims.ID,
		Email:  claims.Email,
		Name:   claims.Name,
	})

	return token.SignedString(m.secret)
}

// Verify checks signature, structure and expiry and returns the embedded
// identity. Every failure is reported as common.ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (*models.PublicIdentity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, common.ErrInvalidToken
	}

	if claims.UserID == "" || claims.Email == "" {
		return nil, common.ErrInvalidToken
	}

	return &models.PublicIdentity{ID: claims.UserID, Email: claims.Email, Name: claims.Name}, nil
}
