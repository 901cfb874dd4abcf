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

func runRoleGate(t *testing.T, claims *utils.Claims, allowed ...model.Rol) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(ClaimsKey, claims)
	}

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	require.NoError(t, RequireRole(allowed...)(next)(c))
	return rec
}

func TestRequireRoleAllows(t *testing.T) {
	rec := runRoleGate(t, &utils.Claims{UID: "1", Rol: model.RolAdministrador}, model.RolAdministrador)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleDeniedIs403(t *testing.T) {
	// An authenticated docente hitting an administrador-only route gets
	// 403, never 401.
	rec := runRoleGate(t, &utils.Claims{UID: "2", Rol: model.RolDocente}, model.RolAdministrador)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "access denied")
}

func TestRequireRoleWithoutClaimsIs401(t *testing.T) {
	rec := runRoleGate(t, nil, model.RolAdministrador)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "not authenticated")
}

func TestRequireRoleMultipleAllowed(t *testing.T) {
	rec := runRoleGate(t, &utils.Claims{UID: "3", Rol: model.RolDocente},
		model.RolAdministrador, model.RolDocente)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = runRoleGate(t, &utils.Claims{UID: "4", Rol: model.RolUsuario},
		model.RolAdministrador, model.RolDocente)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
