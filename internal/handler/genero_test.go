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

	"github.com/IUDAlexis/peliculas-api/internal/model"
	"github.com/IUDAlexis/peliculas-api/internal/repository"
)

// fakeGeneroStore is an in-memory GeneroStore enforcing the unique
// nombre index.
type fakeGeneroStore struct {
	generos map[uint64]*model.Genero
	nextID  uint64
}

func newFakeGeneroStore() *fakeGeneroStore {
	return &fakeGeneroStore{generos: map[uint64]*model.Genero{}, nextID: 1}
}

func (s *fakeGeneroStore) List(ctx context.Context) ([]*model.Genero, error) {
	out := make([]*model.Genero, 0, len(s.generos))
	for _, g := range s.generos {
		cp := *g
		out = append(out, &cp)
	}
	return out, nil
}

func (s *fakeGeneroStore) GetByID(ctx context.Context, id uint64) (*model.Genero, error) {
	g, ok := s.generos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (s *fakeGeneroStore) Create(ctx context.Context, g *model.Genero) error {
	for _, other := range s.generos {
		if other.Nombre == g.Nombre {
			return repository.ErrDuplicate
		}
	}
	g.ID = s.nextID
	s.nextID++
	cp := *g
	s.generos[g.ID] = &cp
	return nil
}

func (s *fakeGeneroStore) Update(ctx context.Context, id uint64, u model.GeneroUpdate) (*model.Genero, error) {
	g, ok := s.generos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if u.Nombre != nil {
		for oid, other := range s.generos {
			if oid != id && other.Nombre == *u.Nombre {
				return nil, repository.ErrDuplicate
			}
		}
		g.Nombre = *u.Nombre
	}
	if u.Estado != nil {
		g.Estado = *u.Estado
	}
	if u.Descripcion != nil {
		g.Descripcion = *u.Descripcion
	}
	cp := *g
	return &cp, nil
}

func (s *fakeGeneroStore) Deactivate(ctx context.Context, id uint64) (*model.Genero, error) {
	g, ok := s.generos[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	g.Estado = model.EstadoInactivo
	cp := *g
	return &cp, nil
}

func generoCtx(method, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func TestGeneroCreate(t *testing.T) {
	h := NewGeneroHandler(newFakeGeneroStore())

	c, rec := generoCtx(http.MethodPost, `{"nombre":"Drama","descripcion":"peliculas dramaticas"}`, "")
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got model.Genero
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Drama", got.Nombre)
	assert.Equal(t, model.EstadoActivo, got.Estado) // defaults to Activo
	assert.Equal(t, "peliculas dramaticas", got.Descripcion)
}

func TestGeneroCreateRequiresNombre(t *testing.T) {
	h := NewGeneroHandler(newFakeGeneroStore())

	c, rec := generoCtx(http.MethodPost, `{"nombre":"   "}`, "")
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeneroCreateDuplicate(t *testing.T) {
	store := newFakeGeneroStore()
	h := NewGeneroHandler(store)

	c, _ := generoCtx(http.MethodPost, `{"nombre":"Drama"}`, "")
	require.NoError(t, h.Create(c))

	c, rec := generoCtx(http.MethodPost, `{"nombre":"Drama"}`, "")
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "genero already exists")
}

func TestGeneroCreateInvalidEstado(t *testing.T) {
	h := NewGeneroHandler(newFakeGeneroStore())

	c, rec := generoCtx(http.MethodPost, `{"nombre":"Drama","estado":"Archivado"}`, "")
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGeneroListEmptyIsArray(t *testing.T) {
	h := NewGeneroHandler(newFakeGeneroStore())

	c, rec := generoCtx(http.MethodGet, "", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGeneroGetNotFound(t *testing.T) {
	h := NewGeneroHandler(newFakeGeneroStore())

	c, rec := generoCtx(http.MethodGet, "", "99")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGeneroUpdatePartial(t *testing.T) {
	store := newFakeGeneroStore()
	h := NewGeneroHandler(store)

	c, _ := generoCtx(http.MethodPost, `{"nombre":"Drama","descripcion":"original"}`, "")
	require.NoError(t, h.Create(c))

	// Only descripcion changes; nombre and estado stay untouched.
	c, rec := generoCtx(http.MethodPut, `{"descripcion":"ajustada"}`, "1")
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got model.Genero
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Drama", got.Nombre)
	assert.Equal(t, "ajustada", got.Descripcion)
	assert.Equal(t, model.EstadoActivo, got.Estado)
}

func TestGeneroDeleteIsLogicalAndIdempotent(t *testing.T) {
	store := newFakeGeneroStore()
	h := NewGeneroHandler(store)

	c, _ := generoCtx(http.MethodPost, `{"nombre":"Drama"}`, "")
	require.NoError(t, h.Create(c))

	for i := 0; i < 2; i++ {
		c, rec := generoCtx(http.MethodDelete, "", "1")
		require.NoError(t, h.Delete(c))
		require.Equal(t, http.StatusOK, rec.Code, "attempt %d", i+1)

		var got model.Genero
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, model.EstadoInactivo, got.Estado)
	}

	// The row is still readable after deletion.
	c, rec := generoCtx(http.MethodGet, "", "1")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
