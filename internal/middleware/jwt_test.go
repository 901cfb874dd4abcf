package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IUDAlexis/peliculas-api/internal/model"
	"github.com/IUDAlexis/peliculas-api/internal/utils"
)

const testSecret = "middleware-test-secret"

func signedToken(t *testing.T) string {
	t.Helper()
	raw, err := utils.NewAccessToken(testSecret, utils.Claims{
		UID:    "7",
		Email:  "docente@test.com",
		Rol:    model.RolDocente,
		Nombre: "Docente Test",
	})
	require.NoError(t, err)
	return raw
}

func runVerify(t *testing.T, secret, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := VerifyToken(secret)(next)(c)
	return rec, c, err
}

func TestVerifyTokenMissingHeader(t *testing.T) {
	rec, _, err := runVerify(t, testSecret, "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token required")
}

func TestVerifyTokenBearerPrefix(t *testing.T) {
	rec, c, err := runVerify(t, testSecret, "Bearer "+signedToken(t))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	claims := CurrentClaims(c)
	require.NotNil(t, claims)
	assert.Equal(t, "7", claims.UID)
	assert.Equal(t, model.RolDocente, claims.Rol)
	assert.Equal(t, "7", c.Get("user_id"))
	assert.Equal(t, string(model.RolDocente), c.Get("role"))
}

func TestVerifyTokenRawTokenWithoutPrefix(t *testing.T) {
	// Clients that send the bare token are tolerated.
	rec, c, err := runVerify(t, testSecret, signedToken(t))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, CurrentClaims(c))
}

func TestVerifyTokenInvalidToken(t *testing.T) {
	rec, c, err := runVerify(t, testSecret, "Bearer not-a-token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid or expired token")
	assert.Nil(t, CurrentClaims(c))
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	rec, _, err := runVerify(t, "another-secret", "Bearer "+signedToken(t))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyTokenMissingSecretIs500(t *testing.T) {
	// A missing server secret must never look like a client error, but a
	// missing header is still rejected before the secret is consulted.
	rec, _, err := runVerify(t, "", "Bearer "+signedToken(t))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "server configuration error")

	rec, _, err = runVerify(t, "", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyTokenEmptyBearerValue(t *testing.T) {
	rec, _, err := runVerify(t, testSecret, "Bearer ")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "token not provided")
}
