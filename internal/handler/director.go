package handler // director CRUD endpoints over the directores reference table

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

// DirectorStore is the persistence surface the director handlers need.
type DirectorStore interface {
	List(ctx context.Context) ([]*model.Director, error)
	GetByID(ctx context.Context, id uint64) (*model.Director, error)
	Create(ctx context.Context, d *model.Director) error
	Update(ctx context.Context, id uint64, u model.DirectorUpdate) (*model.Director, error)
	Deactivate(ctx context.Context, id uint64) (*model.Director, error)
}

// DirectorHandler implements the /directores endpoints.  Deletion is
// logical, same as generos.
type DirectorHandler struct {
	Store DirectorStore
}

func NewDirectorHandler(s DirectorStore) *DirectorHandler {
	return &DirectorHandler{Store: s}
}

// List handles GET /api/v1/directores.
func (h *DirectorHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Store.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if items == nil {
		items = []*model.Director{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/v1/directores/:id.
func (h *DirectorHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "director not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, d)
}

type directorReq struct {
	Nombres string `json:"nombres"`
	Estado  string `json:"estado"`
}

// Create handles POST /api/v1/directores (administrador only).
func (h *DirectorHandler) Create(c echo.Context) error {
	var req directorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	nombres := strings.TrimSpace(req.Nombres)
	if nombres == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nombres is required"})
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

	d := &model.Director{Nombres: nombres, Estado: estado}
	if err := h.Store.Create(ctx, d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create director failed"})
	}
	return c.JSON(http.StatusCreated, d)
}

type directorUpdateReq struct {
	Nombres *string `json:"nombres"`
	Estado  *string `json:"estado"`
}

// Update handles PUT /api/v1/directores/:id (administrador only).
func (h *DirectorHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req directorUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	var upd model.DirectorUpdate
	upd.Nombres = req.Nombres
	if req.Estado != nil {
		estado, err := model.ParseEstado(*req.Estado)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "estado must be Activo or Inactivo"})
		}
		upd.Estado = &estado
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.Store.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "director not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, d)
}

// Delete handles DELETE /api/v1/directores/:id (administrador only).
// Logical deletion, idempotent.
func (h *DirectorHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.Store.Deactivate(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "director not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, d)
}
