package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes

    "github.com/labstack/echo/v4" // echo provides middleware chaining and context

    "github.com/IUDAlexis/peliculas-api/internal/model"
    "github.com/IUDAlexis/peliculas-api/internal/utils"
)

// RequireRole returns a middleware that permits a request only when the
// authenticated principal's role is in the allowed set.  It must run
// after VerifyToken: when no claims are attached to the context the gate
// answers 401, which guards against the gate being registered without
// the auth middleware.  A present-but-disallowed role answers 403, never
// 401, so authorization failures stay distinguishable from
// authentication failures.  The allowed set is fixed per route at
// registration time.
func RequireRole(roles ...model.Rol) echo.MiddlewareFunc {
    allowed := make(map[model.Rol]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            claims, ok := c.Get(ClaimsKey).(*utils.Claims)
            if !ok || claims == nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not authenticated"})
            }
            if !allowed[claims.Rol] {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
            }
            return next(c)
        }
    }
}
