package router // catalog entity routes: generos, directores, productoras, tipos

import (
	"github.com/labstack/echo/v4"

	"github.com/IUDAlexis/peliculas-api/internal/handler"
	"github.com/IUDAlexis/peliculas-api/internal/middleware"
	"github.com/IUDAlexis/peliculas-api/internal/model"
)

// RegisterCatalogo registers the four reference-entity route groups under
// /api/v1.  Reads are open to administrador and docente; every mutation
// requires administrador.  All routes require a valid JWT.
func RegisterCatalogo(
	e *echo.Echo,
	generos *handler.GeneroHandler,
	directores *handler.DirectorHandler,
	productoras *handler.ProductoraHandler,
	tipos *handler.TipoHandler,
	jwtSecret string,
) {
	read := middleware.RequireRole(model.RolAdministrador, model.RolDocente)
	write := middleware.RequireRole(model.RolAdministrador)

	// ---- Generos ----
	g := e.Group("/api/v1/generos", middleware.VerifyToken(jwtSecret))
	g.GET("", generos.List, read)
	g.GET("/:id", generos.Get, read)
	g.POST("", generos.Create, write)
	g.PUT("/:id", generos.Update, write)
	g.DELETE("/:id", generos.Delete, write) // logical delete: estado -> Inactivo

	// ---- Directores ----
	d := e.Group("/api/v1/directores", middleware.VerifyToken(jwtSecret))
	d.GET("", directores.List, read)
	d.GET("/:id", directores.Get, read)
	d.POST("", directores.Create, write)
	d.PUT("/:id", directores.Update, write)
	d.DELETE("/:id", directores.Delete, write)

	// ---- Productoras ----
	p := e.Group("/api/v1/productoras", middleware.VerifyToken(jwtSecret))
	p.GET("", productoras.List, read)
	p.GET("/:id", productoras.Get, read)
	p.POST("", productoras.Create, write)
	p.PUT("/:id", productoras.Update, write)
	p.DELETE("/:id", productoras.Delete, write)

	// ---- Tipos ----
	t := e.Group("/api/v1/tipos", middleware.VerifyToken(jwtSecret))
	t.GET("", tipos.List, read)
	t.GET("/:id", tipos.Get, read)
	t.POST("", tipos.Create, write)
	t.PUT("/:id", tipos.Update, write)
	t.DELETE("/:id", tipos.Delete, write) // physical delete: 409 while media rows reference the tipo
}

// RegisterMedia registers the /api/v1/media routes.  Reads are open to any
// authenticated role and the list endpoint is served through the Redis
// response cache when one is configured.  Mutations require administrador.
func RegisterMedia(e *echo.Echo, media *handler.MediaHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	anyRole := middleware.RequireRole(model.RolAdministrador, model.RolDocente, model.RolUsuario)
	write := middleware.RequireRole(model.RolAdministrador)

	g := e.Group("/api/v1/media", middleware.VerifyToken(jwtSecret))
	if cache != nil {
		g.GET("", media.List, anyRole, cache)
	} else {
		g.GET("", media.List, anyRole)
	}
	g.GET("/:id", media.Get, anyRole)
	g.POST("", media.Create, write)
	g.PUT("/:id", media.Update, write)
	g.DELETE("/:id", media.Delete, write)
}

// RegisterUsuarios registers the /api/v1/usuarios routes.  Listing and
// fetching users only needs a valid token; creating, updating and
// deactivating users is restricted to administrador.
func RegisterUsuarios(e *echo.Echo, usuarios *handler.UsuarioHandler, jwtSecret string) {
	write := middleware.RequireRole(model.RolAdministrador)

	g := e.Group("/api/v1/usuarios", middleware.VerifyToken(jwtSecret))
	g.GET("", usuarios.List)
	g.GET("/:id", usuarios.Get)
	g.POST("", usuarios.Create, write)
	g.PUT("/:id", usuarios.Update, write)
	g.DELETE("/:id", usuarios.Delete, write) // logical delete: estado -> Inactivo
}
