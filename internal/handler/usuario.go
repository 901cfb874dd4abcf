package handler // user management endpoints: list, read, create, update, deactivate

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/IUDAlexis/peliculas-api/internal/config"
	"github.com/IUDAlexis/peliculas-api/internal/model"
	"github.com/IUDAlexis/peliculas-api/internal/repository"
	"github.com/IUDAlexis/peliculas-api/internal/utils"
)

// UsuarioStore is the persistence surface the user handlers need.  The
// concrete implementation is repository.UsuarioRepo; tests substitute an
// in-memory fake.
type UsuarioStore interface {
	List(ctx context.Context) ([]*model.Usuario, error)
	GetByID(ctx context.Context, id uint64) (*model.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)
	Create(ctx context.Context, u *model.Usuario) error
	Update(ctx context.Context, id uint64, u model.UsuarioUpdate) (*model.Usuario, error)
	Deactivate(ctx context.Context, id uint64) (*model.Usuario, error)
}

// UsuarioHandler implements the /usuarios CRUD endpoints.  Create and
// Update hash incoming passwords with the configured bcrypt cost; the
// Usuario model excludes the hash from every response body.
type UsuarioHandler struct {
	Cfg   config.Config
	Store UsuarioStore
}

func NewUsuarioHandler(cfg config.Config, s UsuarioStore) *UsuarioHandler {
	return &UsuarioHandler{Cfg: cfg, Store: s}
}

// List handles GET /api/v1/usuarios.  Any authenticated principal may
// list users; inactive accounts are included.
func (h *UsuarioHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Store.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if items == nil {
		items = []*model.Usuario{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/v1/usuarios/:id.
func (h *UsuarioHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, u)
}

type createUsuarioReq struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Rol      string `json:"rol"`
	Estado   string `json:"estado"`
}

// Create handles POST /api/v1/usuarios and POST /api/v1/auth/usuarios
// (administrador only).  Only administrador and docente are assignable
// through this endpoint.  The email pre-check is inherently racy; the
// unique index on usuarios.email is the real enforcement and also maps
// to 409 when the race is lost.
func (h *UsuarioHandler) Create(c echo.Context) error {
	var req createUsuarioReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Nombre = strings.TrimSpace(req.Nombre)
	if req.Nombre == "" || req.Email == "" || req.Password == "" || req.Rol == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nombre, email, password and rol are required"})
	}
	rol, err := model.ParseRol(req.Rol)
	if err != nil || (rol != model.RolAdministrador && rol != model.RolDocente) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rol must be administrador or docente"})
	}
	estado := model.EstadoActivo
	if req.Estado != "" {
		estado, err = model.ParseEstado(req.Estado)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "estado must be Activo or Inactivo"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Store.GetByEmail(ctx, req.Email); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
	}
	u := &model.Usuario{
		Nombre:       req.Nombre,
		Email:        req.Email,
		PasswordHash: hash,
		Rol:          rol,
		Estado:       estado,
	}
	if err := h.Store.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, u)
}

type updateUsuarioReq struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Rol      *string `json:"rol"`
	Estado   *string `json:"estado"`
}

// Update handles PUT /api/v1/usuarios/:id (administrador only).  Fields
// absent from the body are left unchanged; a provided password is
// re-hashed before storage.
func (h *UsuarioHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req updateUsuarioReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	var upd model.UsuarioUpdate
	upd.Nombre = req.Nombre
	upd.Email = req.Email
	if req.Rol != nil {
		rol, err := model.ParseRol(*req.Rol)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid rol"})
		}
		upd.Rol = &rol
	}
	if req.Estado != nil {
		estado, err := model.ParseEstado(*req.Estado)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "estado must be Activo or Inactivo"})
		}
		upd.Estado = &estado
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := utils.HashPassword(*req.Password, h.Cfg.BcryptCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "hash password failed"})
		}
		upd.PasswordHash = &hash
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Store.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /api/v1/usuarios/:id (administrador only).
// Users are logically deleted: the account flips to Inactivo and the
// row is retained, so repeating the call returns the same record.
func (h *UsuarioHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Store.Deactivate(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, u)
}
