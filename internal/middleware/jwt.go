package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "log"       // log records the misconfiguration case so it is visible in server logs
    "net/http"  // HTTP status codes for responses
    "strings"   // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/IUDAlexis/peliculas-api/internal/utils"
)

// ClaimsKey is the context key under which verified claims are stored.
// The role gate and handlers read them back via c.Get(ClaimsKey).
const ClaimsKey = "claims"

// VerifyToken returns an Echo middleware that validates a bearer access
// token and injects the verified claims into the request context.  Per
// request exactly one of two things happens: the chain continues with
// claims attached, or the request terminates here.  Failure is always
// terminal; there is no retry.
//
// The Authorization header is accepted either as "Bearer <token>" or as
// a raw token without the prefix.  A missing server-side signing secret
// is a distinct failure surfaced as 500 so that it never masquerades as
// a bad client token in logs or tests.
func VerifyToken(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if auth == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token required"})
            }
            // Tolerate both "Bearer <token>" and a bare token value.
            raw := auth
            if parts := strings.SplitN(auth, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
                raw = parts[1]
            }
            raw = strings.TrimSpace(raw)
            if raw == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "token not provided"})
            }
            if secret == "" {
                log.Printf("auth: JWT_SECRET is not configured")
                return c.JSON(http.StatusInternalServerError, echo.Map{"error": "server configuration error"})
            }
            claims, err := utils.ParseAccessToken(raw, secret)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
            }
            // Store the full claims plus the individual identity fields.
            // Downstream consumers pick whichever granularity they need.
            c.Set(ClaimsKey, claims)
            c.Set("user_id", claims.UID)
            c.Set("role", string(claims.Rol))
            return next(c)
        }
    }
}
