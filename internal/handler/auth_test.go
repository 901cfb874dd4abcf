package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IUDAlexis/peliculas-api/internal/config"
	"github.com/IUDAlexis/peliculas-api/internal/model"
	"github.com/IUDAlexis/peliculas-api/internal/repository"
	"github.com/IUDAlexis/peliculas-api/internal/utils"
)

// fakeUsuarioStore is an in-memory UsuarioStore used by the auth and
// usuario handler tests. calls counts every store method hit so tests
// can prove a rejected request never reached the store.
type fakeUsuarioStore struct {
	users  map[uint64]*model.Usuario
	nextID uint64
	calls  int
}

func newFakeUsuarioStore() *fakeUsuarioStore {
	return &fakeUsuarioStore{users: map[uint64]*model.Usuario{}, nextID: 1}
}

func (s *fakeUsuarioStore) List(ctx context.Context) ([]*model.Usuario, error) {
	s.calls++
	out := make([]*model.Usuario, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeUsuarioStore) GetByID(ctx context.Context, id uint64) (*model.Usuario, error) {
	s.calls++
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUsuarioStore) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	s.calls++
	email = repository.NormalizeEmail(email)
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUsuarioStore) Create(ctx context.Context, u *model.Usuario) error {
	s.calls++
	u.Email = repository.NormalizeEmail(u.Email)
	for _, other := range s.users {
		if other.Email == u.Email {
			return repository.ErrEmailExists
		}
	}
	u.ID = s.nextID
	s.nextID++
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *fakeUsuarioStore) Update(ctx context.Context, id uint64, upd model.UsuarioUpdate) (*model.Usuario, error) {
	s.calls++
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Email != nil {
		email := repository.NormalizeEmail(*upd.Email)
		for oid, other := range s.users {
			if oid != id && other.Email == email {
				return nil, repository.ErrEmailExists
			}
		}
		u.Email = email
	}
	if upd.Nombre != nil {
		u.Nombre = *upd.Nombre
	}
	if upd.PasswordHash != nil {
		u.PasswordHash = *upd.PasswordHash
	}
	if upd.Rol != nil {
		u.Rol = *upd.Rol
	}
	if upd.Estado != nil {
		u.Estado = *upd.Estado
	}
	cp := *u
	return &cp, nil
}

func (s *fakeUsuarioStore) Deactivate(ctx context.Context, id uint64) (*model.Usuario, error) {
	s.calls++
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Estado = model.EstadoInactivo
	cp := *u
	return &cp, nil
}

func (s *fakeUsuarioStore) seed(t *testing.T, nombre, email, password string, rol model.Rol, estado model.Estado) *model.Usuario {
	t.Helper()
	hash, err := utils.HashPassword(password, 4)
	require.NoError(t, err)
	u := &model.Usuario{Nombre: nombre, Email: email, PasswordHash: hash, Rol: rol, Estado: estado}
	require.NoError(t, s.Create(context.Background(), u))
	return u
}

func testConfig() config.Config {
	return config.Config{JWTSecret: "handler-test-secret", BcryptCost: 4}
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginSuccess(t *testing.T) {
	store := newFakeUsuarioStore()
	store.seed(t, "Administrador", "admin@demo.com", "Admin123!", model.RolAdministrador, model.EstadoActivo)
	h := NewAuthHandler(testConfig(), store)

	c, rec := postJSON(echo.New(), "/api/v1/auth/login",
		`{"email":"admin@demo.com","password":"Admin123!"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			UID    string `json:"uid"`
			Email  string `json:"email"`
			Rol    string `json:"rol"`
			Nombre string `json:"nombre"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "admin@demo.com", resp.User.Email)
	assert.Equal(t, "administrador", resp.User.Rol)
	assert.Equal(t, "Administrador", resp.User.Nombre)

	// The token's claims mirror the user object of the response.
	claims, err := utils.ParseAccessToken(resp.Token, "handler-test-secret")
	require.NoError(t, err)
	assert.Equal(t, resp.User.UID, claims.UID)
	assert.Equal(t, resp.User.Email, claims.Email)
	assert.Equal(t, model.RolAdministrador, claims.Rol)

	// The password hash never leaves the server.
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestLoginMissingFields(t *testing.T) {
	h := NewAuthHandler(testConfig(), newFakeUsuarioStore())

	for _, body := range []string{`{}`, `{"email":"a@b.com"}`, `{"password":"x"}`} {
		c, rec := postJSON(echo.New(), "/api/v1/auth/login", body)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %s", body)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	h := NewAuthHandler(testConfig(), newFakeUsuarioStore())

	c, rec := postJSON(echo.New(), "/api/v1/auth/login",
		`{"email":"nobody@demo.com","password":"whatever"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeUsuarioStore()
	store.seed(t, "Administrador", "admin@demo.com", "Admin123!", model.RolAdministrador, model.EstadoActivo)
	h := NewAuthHandler(testConfig(), store)

	c, rec := postJSON(echo.New(), "/api/v1/auth/login",
		`{"email":"admin@demo.com","password":"wrong"}`)
	require.NoError(t, h.Login(c))
	// Wrong password and unknown email are indistinguishable.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestLoginInactiveUser(t *testing.T) {
	store := newFakeUsuarioStore()
	store.seed(t, "Baja", "baja@demo.com", "Secreta1!", model.RolDocente, model.EstadoInactivo)
	h := NewAuthHandler(testConfig(), store)

	c, rec := postJSON(echo.New(), "/api/v1/auth/login",
		`{"email":"baja@demo.com","password":"Secreta1!"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "user inactive")
}

func TestLoginMissingSecretIs500(t *testing.T) {
	store := newFakeUsuarioStore()
	store.seed(t, "Administrador", "admin@demo.com", "Admin123!", model.RolAdministrador, model.EstadoActivo)
	h := NewAuthHandler(config.Config{BcryptCost: 4}, store)

	c, rec := postJSON(echo.New(), "/api/v1/auth/login",
		`{"email":"admin@demo.com","password":"Admin123!"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "server configuration error")
}
