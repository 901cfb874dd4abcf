package handler // productora CRUD endpoints over the productoras reference table

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

// ProductoraStore is the persistence surface the productora handlers need.
type ProductoraStore interface {
	List(ctx context.Context) ([]*model.Productora, error)
	GetByID(ctx context.Context, id uint64) (*model.Productora, error)
	Create(ctx context.Context, p *model.Productora) error
	Update(ctx context.Context, id uint64, u model.ProductoraUpdate) (*model.Productora, error)
	Deactivate(ctx context.Context, id uint64) (*model.Productora, error)
}

// ProductoraHandler implements the /productoras endpoints.  Deletion is
// logical, same as generos and directores.
type ProductoraHandler struct {
	Store ProductoraStore
}

func NewProductoraHandler(s ProductoraStore) *ProductoraHandler {
	return &ProductoraHandler{Store: s}
}

// List handles GET /api/v1/productoras.
func (h *ProductoraHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Store.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if items == nil {
		items = []*model.Productora{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/v1/productoras/:id.
func (h *ProductoraHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "productora not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, p)
}

type productoraReq struct {
	Nombre      string `json:"nombre"`
	Estado      string `json:"estado"`
	Slogan      string `json:"slogan"`
	Descripcion string `json:"descripcion"`
}

// Create handles POST /api/v1/productoras (administrador only).  nombre
// is required and unique.
func (h *ProductoraHandler) Create(c echo.Context) error {
	var req productoraReq
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

	p := &model.Productora{Nombre: nombre, Estado: estado, Slogan: req.Slogan, Descripcion: req.Descripcion}
	if err := h.Store.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "productora already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create productora failed"})
	}
	return c.JSON(http.StatusCreated, p)
}

type productoraUpdateReq struct {
	Nombre      *string `json:"nombre"`
	Estado      *string `json:"estado"`
	Slogan      *string `json:"slogan"`
	Descripcion *string `json:"descripcion"`
}

// Update handles PUT /api/v1/productoras/:id (administrador only).
func (h *ProductoraHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req productoraUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	var upd model.ProductoraUpdate
	upd.Nombre = req.Nombre
	upd.Slogan = req.Slogan
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

	p, err := h.Store.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "productora not found"})
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "productora already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/v1/productoras/:id (administrador only).
// Logical deletion, idempotent.
func (h *ProductoraHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Store.Deactivate(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "productora not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, p)
}
