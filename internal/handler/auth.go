package handler

import (
    "context"  // provides context with cancellation for DB calls
    "errors"   // sentinel error comparisons
    "log"      // log records server misconfiguration distinctly from client errors
    "net/http" // HTTP status codes and primitives
    "strconv"  // uid formatting for claims
    "strings"  // string normalization helpers
    "time"     // timeouts for DB calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/IUDAlexis/peliculas-api/internal/config"     // app configuration
    "github.com/IUDAlexis/peliculas-api/internal/middleware" // claims extraction
    "github.com/IUDAlexis/peliculas-api/internal/model"      // domain types
    "github.com/IUDAlexis/peliculas-api/internal/repository" // sentinel errors
    "github.com/IUDAlexis/peliculas-api/internal/utils"      // token issuing + password compare
)

// AuthHandler bundles dependencies for the login and profile endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Usuarios UsuarioStore
}

func NewAuthHandler(cfg config.Config, u UsuarioStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Usuarios: u}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	UID    string    `json:"uid"`
	Email  string    `json:"email"`
	Rol    model.Rol `json:"rol"`
	Nombre string    `json:"nombre"`
}

type loginResp struct {
	Token string   `json:"token"`
	User  userPart `json:"user"`
}

// Login verifies credentials and returns a signed access token whose
// claims mirror the user object in the response.  Unknown email and
// wrong password are deliberately indistinguishable (401); an inactive
// account is a 403; an unconfigured signing secret is a 500 so the
// misconfiguration never looks like a bad credential.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Usuarios.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if u.Estado == model.EstadoInactivo {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "user inactive"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	claims := utils.Claims{
		UID:    strconv.FormatUint(u.ID, 10),
		Email:  u.Email,
		Rol:    u.Rol,
		Nombre: u.Nombre,
	}
	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, claims)
	if err != nil {
		if errors.Is(err, utils.ErrNoSecret) {
			log.Printf("auth: JWT_SECRET is not configured")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server configuration error"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, loginResp{
		Token: token,
		User:  userPart{UID: claims.UID, Email: claims.Email, Rol: claims.Rol, Nombre: claims.Nombre},
	})
}

// Me returns the claims attached by the auth middleware.  The token is
// the source of truth here; no storage round trip happens.
func (h *AuthHandler) Me(c echo.Context) error {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": claims})
}
