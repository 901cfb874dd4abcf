package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IUDAlexis/peliculas-api/internal/model"
)

const testSecret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	issued := Claims{
		UID:    "42",
		Email:  "admin@demo.com",
		Rol:    model.RolAdministrador,
		Nombre: "Administrador",
	}
	raw, err := NewAccessToken(testSecret, issued)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := ParseAccessToken(raw, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "42", got.UID)
	assert.Equal(t, "admin@demo.com", got.Email)
	assert.Equal(t, model.RolAdministrador, got.Rol)
	assert.Equal(t, "Administrador", got.Nombre)

	// exp is set 8 hours out from issuance.
	require.NotNil(t, got.ExpiresAt)
	remaining := time.Until(got.ExpiresAt.Time)
	assert.Greater(t, remaining, 7*time.Hour)
	assert.LessOrEqual(t, remaining, 8*time.Hour)
}

func TestNewAccessTokenRequiresSecret(t *testing.T) {
	_, err := NewAccessToken("", Claims{UID: "1"})
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestParseAccessTokenRequiresSecret(t *testing.T) {
	_, err := ParseAccessToken("whatever", "")
	assert.ErrorIs(t, err, ErrNoSecret)
}

func TestParseAccessTokenWrongSecret(t *testing.T) {
	raw, err := NewAccessToken(testSecret, Claims{UID: "1"})
	require.NoError(t, err)

	_, err = ParseAccessToken(raw, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseAccessTokenGarbage(t *testing.T) {
	_, err := ParseAccessToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseAccessTokenExpired(t *testing.T) {
	// Sign an already-expired token directly so the test does not wait.
	past := time.Now().UTC().Add(-time.Minute)
	claims := Claims{
		UID: "1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(past),
			IssuedAt:  jwt.NewNumericDate(past.Add(-AccessTokenTTL)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ParseAccessToken(raw, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseAccessTokenRejectsUnsignedMethod(t *testing.T) {
	// alg=none must never verify even with the right secret configured.
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UID: "1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseAccessToken(raw, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
