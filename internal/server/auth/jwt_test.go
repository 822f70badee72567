package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/common"
	"github.com/dmitrijs2005/gophauth/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var alice = models.PublicIdentity{ID: "u-1", Email: "a@x.com", Name: "A"}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newManager(t *testing.T, secret string, clock *fakeClock) *TokenManager {
	t.Helper()
	m, err := NewTokenManager([]byte(secret), WithClock(clock.Now))
	require.NoError(t, err)
	return m
}

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := NewTokenManager(nil)
	require.Error(t, err)
}

func TestMintAndVerify_Success(t *testing.T) {
	t.Parallel()

	m, err := NewTokenManager([]byte("super-secret"))
	require.NoError(t, err)

	tok, err := m.Mint(alice)
	require.NoError(t, err)

	got, err := m.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, alice, *got)
}

func TestMint_EmbedsTwoHourExpiry(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := newManager(t, "k", clock)

	tok, err := m.Mint(alice)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)

	assert.True(t, clock.t.Equal(claims.IssuedAt.Time))
	assert.True(t, clock.t.Add(7200*time.Second).Equal(claims.ExpiresAt.Time))
	assert.Equal(t, "a@x.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestMint_SameSecondTokensDiffer(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := newManager(t, "k", clock)

	a, err := m.Mint(alice)
	require.NoError(t, err)
	b, err := m.Mint(alice)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerify_Expiry(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: start}
	m := newManager(t, "k", clock)

	tok, err := m.Mint(alice)
	require.NoError(t, err)

	clock.t = start.Add(TokenValidity - time.Second)
	_, err = m.Verify(tok)
	require.NoError(t, err, "token is valid just before expiry")

	clock.t = start.Add(TokenValidity)
	_, err = m.Verify(tok)
	assert.True(t, errors.Is(err, common.ErrInvalidToken), "token is invalid at expiry")

	clock.t = start.Add(TokenValidity + time.Hour)
	_, err = m.Verify(tok)
	assert.True(t, errors.Is(err, common.ErrInvalidToken))
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Now()}
	tok, err := newManager(t, "right-secret", clock).Mint(alice)
	require.NoError(t, err)

	_, err = newManager(t, "wrong-secret", clock).Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	m, err := NewTokenManager([]byte("k"))
	require.NoError(t, err)

	for _, s := range []string{"", "not.a.jwt", "abc"} {
		_, err := m.Verify(s)
		assert.ErrorIs(t, err, common.ErrInvalidToken, "input %q", s)
	}
}

func TestVerify_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	m, err := NewTokenManager(secret)
	require.NoError(t, err)

	now := time.Now()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID: "u-1",
		Email:  "a@x.com",
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = m.Verify(tok)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestVerify_RequiresExpiryAndIdentity(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	m, err := NewTokenManager(secret)
	require.NoError(t, err)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u-1", Email: "a@x.com"}).SignedString(secret)
	require.NoError(t, err)
	_, err = m.Verify(noExp)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	noID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(secret)
	require.NoError(t, err)
	_, err = m.Verify(noID)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}
