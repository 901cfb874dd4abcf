package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IUDAlexis/peliculas-api/internal/middleware"
	"github.com/IUDAlexis/peliculas-api/internal/model"
	"github.com/IUDAlexis/peliculas-api/internal/utils"
)

func TestUsuarioCreate(t *testing.T) {
	store := newFakeUsuarioStore()
	h := NewUsuarioHandler(testConfig(), store)

	c, rec := postJSON(echo.New(), "/api/v1/usuarios",
		`{"nombre":"Docente Test","email":"Docente@Test.com","password":"Docente123!","rol":"docente"}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got model.Usuario
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotZero(t, got.ID)
	assert.Equal(t, "Docente Test", got.Nombre)
	assert.Equal(t, "docente@test.com", got.Email) // normalized
	assert.Equal(t, model.RolDocente, got.Rol)
	assert.Equal(t, model.EstadoActivo, got.Estado)

	// Neither the password nor its hash appears in the response body.
	assert.NotContains(t, rec.Body.String(), "Docente123!")
	assert.NotContains(t, rec.Body.String(), "password")

	// The stored hash verifies against the submitted password.
	stored := store.users[got.ID]
	assert.True(t, utils.VerifyPassword(stored.PasswordHash, "Docente123!"))
}

func TestUsuarioCreateMissingFields(t *testing.T) {
	h := NewUsuarioHandler(testConfig(), newFakeUsuarioStore())

	c, rec := postJSON(echo.New(), "/api/v1/usuarios",
		`{"nombre":"X","email":"x@y.com","rol":"docente"}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsuarioCreateRejectsUsuarioRol(t *testing.T) {
	// Only administrador and docente are assignable through this endpoint.
	h := NewUsuarioHandler(testConfig(), newFakeUsuarioStore())

	for _, rol := range []string{"usuario", "root", ""} {
		c, rec := postJSON(echo.New(), "/api/v1/usuarios",
			`{"nombre":"X","email":"x@y.com","password":"Secreta1!","rol":"`+rol+`"}`)
		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "rol %q", rol)
	}
}

func TestUsuarioCreateDuplicateEmail(t *testing.T) {
	store := newFakeUsuarioStore()
	store.seed(t, "Uno", "dup@demo.com", "Secreta1!", model.RolDocente, model.EstadoActivo)
	h := NewUsuarioHandler(testConfig(), store)

	c, rec := postJSON(echo.New(), "/api/v1/usuarios",
		`{"nombre":"Dos","email":"dup@demo.com","password":"Secreta1!","rol":"docente"}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "email already registered")
}

func TestUsuarioUpdateRehashesPassword(t *testing.T) {
	store := newFakeUsuarioStore()
	u := store.seed(t, "Docente Test", "docente@test.com", "Vieja123!", model.RolDocente, model.EstadoActivo)
	h := NewUsuarioHandler(testConfig(), store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"password":"Nueva456!"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	stored := store.users[u.ID]
	assert.True(t, utils.VerifyPassword(stored.PasswordHash, "Nueva456!"))
	assert.False(t, utils.VerifyPassword(stored.PasswordHash, "Vieja123!"))
}

func TestUsuarioUpdateInvalidRol(t *testing.T) {
	store := newFakeUsuarioStore()
	store.seed(t, "Docente Test", "docente@test.com", "Secreta1!", model.RolDocente, model.EstadoActivo)
	h := NewUsuarioHandler(testConfig(), store)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"rol":"jefe"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUsuarioDeleteIsLogicalAndIdempotent(t *testing.T) {
	store := newFakeUsuarioStore()
	u := store.seed(t, "Baja", "baja@demo.com", "Secreta1!", model.RolDocente, model.EstadoActivo)
	h := NewUsuarioHandler(testConfig(), store)

	del := func() (*httptest.ResponseRecorder, model.Usuario) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("1")
		require.NoError(t, h.Delete(c))
		var got model.Usuario
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		return rec, got
	}

	rec, got := del()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.EstadoInactivo, got.Estado)

	// The row survives and a second delete returns the same record.
	rec, got = del()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.EstadoInactivo, got.Estado)
	assert.Equal(t, u.ID, got.ID)
}

// TestUsuarioMutationRoleGate runs a request through the real middleware
// chain to confirm a docente token cannot create users.
func TestUsuarioMutationRoleGate(t *testing.T) {
	store := newFakeUsuarioStore()
	h := NewUsuarioHandler(testConfig(), store)

	e := echo.New()
	e.POST("/api/v1/usuarios", h.Create,
		middleware.VerifyToken("handler-test-secret"),
		middleware.RequireRole(model.RolAdministrador))

	token, err := utils.NewAccessToken("handler-test-secret", utils.Claims{
		UID: "9", Email: "docente@test.com", Rol: model.RolDocente, Nombre: "Docente Test",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/usuarios",
		strings.NewReader(`{"nombre":"X","email":"x@y.com","password":"Secreta1!","rol":"docente"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, store.users)
	assert.Zero(t, store.calls)

	// Without a token the request dies in the middleware; no store
	// method runs at all.
	req = httptest.NewRequest(http.MethodPost, "/api/v1/usuarios",
		strings.NewReader(`{"nombre":"X","email":"x@y.com","password":"Secreta1!","rol":"docente"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, store.users)
	assert.Zero(t, store.calls)
}
