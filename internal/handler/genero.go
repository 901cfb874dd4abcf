package handler // genero CRUD endpoints over the generos reference table

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/IUDAlexis/peliculas-api/internal/model"
	"github.com/IUDAlexis/peliculas-api/internal/repository"
)

// GeneroStore is the persistence surface the genero handlers need.
type GeneroStore interface {
	List(ctx context.Context) ([]*model.Genero, error)
	GetByID(ctx context.Context, id uint64) (*model.Genero, error)
	Create(ctx context.Context, g *model.Genero) error
	Update(ctx context.Context, id uint64, u model.GeneroUpdate) (*model.Genero, error)
	Deactivate(ctx context.Context, id uint64) (*model.Genero, error)
}

// GeneroHandler implements the /generos endpoints.  Deletion is logical:
// estado flips to Inactivo and the row is retained.
type GeneroHandler struct {
	Store GeneroStore
}

func NewGeneroHandler(s GeneroStore) *GeneroHandler {
	return &GeneroHandler{Store: s}
}

// List handles GET /api/v1/generos.
func (h *GeneroHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Store.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if items == nil {
		items = []*model.Genero{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/v1/generos/:id.
func (h *GeneroHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genero not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, g)
}

type generoReq struct {
	Nombre      string `json:"nombre"`
	Estado      string `json:"estado"`
	Descripcion string `json:"descripcion"`
}

// Create handles POST /api/v1/generos (administrador only).  nombre is
// required and unique; a duplicate surfaces as 409.
func (h *GeneroHandler) Create(c echo.Context) error {
	var req generoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nombre is required"})
	}
	estado := model.EstadoActivo
	if req.Estado != "" {
		var err error
		estado, err = model.ParseEstado(req.Estado)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "estado must be Activo or Inactivo"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g := &model.Genero{Nombre: nombre, Estado: estado, Descripcion: req.Descripcion}
	if err := h.Store.Create(ctx, g); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "genero already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create genero failed"})
	}
	return c.JSON(http.StatusCreated, g)
}

type generoUpdateReq struct {
	Nombre      *string `json:"nombre"`
	Estado      *string `json:"estado"`
	Descripcion *string `json:"descripcion"`
}

// Update handles PUT /api/v1/generos/:id (administrador only).
func (h *GeneroHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req generoUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	var upd model.GeneroUpdate
	upd.Nombre = req.Nombre
	upd.Descripcion = req.Descripcion
	if req.Estado != nil {
		estado, err := model.ParseEstado(*req.Estado)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "estado must be Activo or Inactivo"})
		}
		upd.Estado = &estado
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g, err := h.Store.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genero not found"})
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "genero already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, g)
}

// Delete handles DELETE /api/v1/generos/:id (administrador only).
// Deletion is logical and idempotent: repeating the call on an already
// inactive genero returns the same Inactivo record, not an error.
func (h *GeneroHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g, err := h.Store.Deactivate(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "genero not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, g)
}
