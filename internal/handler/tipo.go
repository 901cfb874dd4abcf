package handler // tipo CRUD endpoints over the tipos reference table

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

// TipoStore is the persistence surface the tipo handlers need.
type TipoStore interface {
	List(ctx context.Context) ([]*model.Tipo, error)
	GetByID(ctx context.Context, id uint64) (*model.Tipo, error)
	Create(ctx context.Context, t *model.Tipo) error
	Update(ctx context.Context, id uint64, u model.TipoUpdate) (*model.Tipo, error)
	Delete(ctx context.Context, id uint64) error
}

// TipoHandler implements the /tipos endpoints.  Unlike the other
// reference entities, tipos are physically deleted; repeating a delete
// returns 404.  This asymmetry is an intentional retention policy.
type TipoHandler struct {
	Store TipoStore
}

func NewTipoHandler(s TipoStore) *TipoHandler {
	return &TipoHandler{Store: s}
}

// List handles GET /api/v1/tipos.
func (h *TipoHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Store.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if items == nil {
		items = []*model.Tipo{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/v1/tipos/:id.
func (h *TipoHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tipo not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, t)
}

type tipoReq struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
}

// Create handles POST /api/v1/tipos (administrador only).
func (h *TipoHandler) Create(c echo.Context) error {
	var req tipoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nombre is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t := &model.Tipo{Nombre: nombre, Descripcion: req.Descripcion}
	if err := h.Store.Create(ctx, t); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "tipo already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create tipo failed"})
	}
	return c.JSON(http.StatusCreated, t)
}

type tipoUpdateReq struct {
	Nombre      *string `json:"nombre"`
	Descripcion *string `json:"descripcion"`
}

// Update handles PUT /api/v1/tipos/:id (administrador only).
func (h *TipoHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req tipoUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	upd := model.TipoUpdate{Nombre: req.Nombre, Descripcion: req.Descripcion}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Store.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tipo not found"})
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "tipo already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /api/v1/tipos/:id (administrador only).  The
// row is removed outright; a tipo still referenced by media rows is a
// 409.
func (h *TipoHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tipo not found"})
		}
		if errors.Is(err, repository.ErrConflict) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "tipo is still referenced by media"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "tipo deleted"})
}
