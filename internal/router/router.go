package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/IUDAlexis/peliculas-api/internal/handler"    // import the handlers that implement business logic
	"github.com/IUDAlexis/peliculas-api/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/IUDAlexis/peliculas-api/internal/model"      // role constants for the role gate
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes and their middleware.
// The provided AuthHandler implements the logic for each endpoint, and the
// jwtSecret is used to verify JWT tokens on the protected routes.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, usuarios *handler.UsuarioHandler, jwtSecret string) {
	// Create a route group under the /api/v1/auth prefix.  Login does not
	// require an existing session; it exchanges credentials for a token.
	g := e.Group("/api/v1/auth")
	// Register a POST endpoint to handle user login at /api/v1/auth/login.
	g.POST("/login", a.Login)
	// Register a GET endpoint that returns the claims of the bearer of a
	// valid token.  The VerifyToken middleware rejects requests without one.
	g.GET("/me", a.Me, middleware.VerifyToken(jwtSecret))
	// User provisioning also lives under the auth prefix.  Only an
	// administrador may create accounts.
	g.POST("/usuarios", usuarios.Create,
		middleware.VerifyToken(jwtSecret),
		middleware.RequireRole(model.RolAdministrador))
}
