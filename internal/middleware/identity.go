package middleware

// identity.go defines helper functions shared across middleware files and
// handlers.  CurrentClaims pulls the verified claims that VerifyToken
// stored in the Echo context; handlers use it for the /auth/me endpoint
// and to attribute catalog events to the acting user.

import (
    "github.com/labstack/echo/v4"

    "github.com/IUDAlexis/peliculas-api/internal/utils"
)

// CurrentClaims returns the claims attached by VerifyToken, or nil when
// the request was not authenticated.
func CurrentClaims(c echo.Context) *utils.Claims {
    claims, ok := c.Get(ClaimsKey).(*utils.Claims)
    if !ok {
        return nil
    }
    return claims
}
