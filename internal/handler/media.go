package handler // media CRUD endpoints; read operations return expanded references

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/IUDAlexis/peliculas-api/internal/middleware"
	"github.com/IUDAlexis/peliculas-api/internal/model"
	"github.com/IUDAlexis/peliculas-api/internal/queue"
	"github.com/IUDAlexis/peliculas-api/internal/repository"
)

// MediaStore is the persistence surface the media handlers need.
type MediaStore interface {
	List(ctx context.Context) ([]*model.MediaDetalle, error)
	GetByID(ctx context.Context, id uint64) (*model.MediaDetalle, error)
	Create(ctx context.Context, m *model.Media) error
	Update(ctx context.Context, id uint64, u model.MediaUpdate) (*model.MediaDetalle, error)
	Delete(ctx context.Context, id uint64) error
}

// EventPublisher pushes catalog change events to the message broker.
// Publishing is best-effort: failures are logged by the publisher and
// never interrupt the request flow.
type EventPublisher interface {
	PublishMediaEvent(ctx context.Context, ev queue.MediaEvent) error
}

// MediaHandler implements the /media endpoints.  Media rows are
// physically deleted, unlike the logically deleted reference entities.
// Mutations emit a MediaEvent when a publisher is configured.
type MediaHandler struct {
	Store   MediaStore
	Eventos EventPublisher // optional; nil disables event publishing
}

func NewMediaHandler(s MediaStore, ev EventPublisher) *MediaHandler {
	return &MediaHandler{Store: s, Eventos: ev}
}

func (h *MediaHandler) publish(c echo.Context, accion string, m model.Media) {
	if h.Eventos == nil {
		return
	}
	actor := ""
	if claims := middleware.CurrentClaims(c); claims != nil {
		actor = claims.Email
	}
	_ = h.Eventos.PublishMediaEvent(c.Request().Context(), queue.MediaEvent{
		Accion:     accion,
		MediaID:    m.ID,
		Serial:     m.Serial,
		Titulo:     m.Titulo,
		Actor:      actor,
		OcurridoEn: time.Now().UTC().Format(time.RFC3339),
	})
}

// List handles GET /api/v1/media.  Every record is returned with its
// four references expanded to their full rows.
func (h *MediaHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Store.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if items == nil {
		items = []*model.MediaDetalle{}
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/v1/media/:id with expanded references.
func (h *MediaHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "media not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// mediaReq mirrors the wire shape of a media write: the four reference
// ids arrive under the bare entity names.
type mediaReq struct {
	Serial        string `json:"serial"`
	Titulo        string `json:"titulo"`
	Sinopsis      string `json:"sinopsis"`
	URLPelicula   string `json:"url_pelicula"`
	ImagenPortada string `json:"imagen_portada"`
	AnioEstreno   int    `json:"anio_estreno"`
	GeneroID      uint64 `json:"genero"`
	DirectorID    uint64 `json:"director"`
	ProductoraID  uint64 `json:"productora"`
	TipoID        uint64 `json:"tipo"`
}

// Create handles POST /api/v1/media (administrador only).  serial,
// titulo, url_pelicula and the four reference ids are required; serial
// and url_pelicula are unique.  A reference id that does not resolve is
// a 400, a unique collision a 409.
func (h *MediaHandler) Create(c echo.Context) error {
	var req mediaReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Serial = strings.TrimSpace(req.Serial)
	req.Titulo = strings.TrimSpace(req.Titulo)
	req.URLPelicula = strings.TrimSpace(req.URLPelicula)
	if req.Serial == "" || req.Titulo == "" || req.URLPelicula == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "serial, titulo and url_pelicula are required"})
	}
	if req.GeneroID == 0 || req.DirectorID == 0 || req.ProductoraID == 0 || req.TipoID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "genero, director, productora and tipo are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m := &model.Media{
		Serial:        req.Serial,
		Titulo:        req.Titulo,
		Sinopsis:      req.Sinopsis,
		URLPelicula:   req.URLPelicula,
		ImagenPortada: req.ImagenPortada,
		AnioEstreno:   req.AnioEstreno,
		GeneroID:      req.GeneroID,
		DirectorID:    req.DirectorID,
		ProductoraID:  req.ProductoraID,
		TipoID:        req.TipoID,
	}
	if err := h.Store.Create(ctx, m); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "serial or url_pelicula already exists"})
		}
		if errors.Is(err, repository.ErrRefInvalid) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "referenced entity does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create media failed"})
	}
	h.publish(c, "created", *m)
	return c.JSON(http.StatusCreated, m)
}

// mediaUpdateReq carries the optional fields of a partial media update.
type mediaUpdateReq struct {
	Serial        *string `json:"serial"`
	Titulo        *string `json:"titulo"`
	Sinopsis      *string `json:"sinopsis"`
	URLPelicula   *string `json:"url_pelicula"`
	ImagenPortada *string `json:"imagen_portada"`
	AnioEstreno   *int    `json:"anio_estreno"`
	GeneroID      *uint64 `json:"genero"`
	DirectorID    *uint64 `json:"director"`
	ProductoraID  *uint64 `json:"productora"`
	TipoID        *uint64 `json:"tipo"`
}

// Update handles PUT /api/v1/media/:id (administrador only).
func (h *MediaHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req mediaUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	upd := model.MediaUpdate{
		Serial:        req.Serial,
		Titulo:        req.Titulo,
		Sinopsis:      req.Sinopsis,
		URLPelicula:   req.URLPelicula,
		ImagenPortada: req.ImagenPortada,
		AnioEstreno:   req.AnioEstreno,
		GeneroID:      req.GeneroID,
		DirectorID:    req.DirectorID,
		ProductoraID:  req.ProductoraID,
		TipoID:        req.TipoID,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Store.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "media not found"})
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "serial or url_pelicula already exists"})
		}
		if errors.Is(err, repository.ErrRefInvalid) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "referenced entity does not exist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	h.publish(c, "updated", m.Media)
	return c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/v1/media/:id (administrador only).  The
// record is physically removed, so repeating the call returns 404.
func (h *MediaHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "media not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if err := h.Store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "media not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	h.publish(c, "deleted", m.Media)
	return c.JSON(http.StatusOK, echo.Map{"message": "media deleted"})
}
