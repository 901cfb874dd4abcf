package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel errors distinguishing invalid from expired tokens
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens

    "github.com/IUDAlexis/peliculas-api/internal/model"
)

// AccessTokenTTL is the fixed lifetime of an access token.  Tokens are
// not refreshable; a client logs in again after expiry.  Verification is
// stateless, so revocation before natural expiry is not supported.
const AccessTokenTTL = 8 * time.Hour

// ErrNoSecret is returned when token issuing is attempted without a
// configured signing secret.  This is a server misconfiguration, not a
// client error, and handlers surface it as HTTP 500.
var ErrNoSecret = errors.New("jwt signing secret is not configured")

// ErrTokenExpired is returned when a token's exp claim lies in the past.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid is returned for any other verification failure: bad
// signature, wrong signing method, malformed payload.
var ErrTokenInvalid = errors.New("token invalid")

// Claims is the identity fact set embedded in every access token.  The
// four custom fields mirror the login response's user object; after
// verification they live only inside the request context that verified
// them.
type Claims struct {
    UID    string    `json:"uid"`    // user id as decimal string
    Email  string    `json:"email"`  // normalized email
    Rol    model.Rol `json:"rol"`    // role used by the role gate
    Nombre string    `json:"nombre"` // display name
    jwt.RegisteredClaims
}

// NewAccessToken builds and signs an HS256 JWT carrying the given
// identity claims with exp = now + AccessTokenTTL and iat = now.  An
// empty secret yields ErrNoSecret.
func NewAccessToken(secret string, c Claims) (string, error) {
    if secret == "" {
        return "", ErrNoSecret
    }
    now := time.Now().UTC()
    c.RegisteredClaims = jwt.RegisteredClaims{
        ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
        IssuedAt:  jwt.NewNumericDate(now),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
    return t.SignedString([]byte(secret))
}

// ParseAccessToken verifies a raw token string against the secret and
// returns the claims exactly as issued.  The token is the source of
// truth for the request's duration; nothing is re-read from storage.
// Expired tokens yield ErrTokenExpired, every other failure
// ErrTokenInvalid.
func ParseAccessToken(raw, secret string) (*Claims, error) {
    if secret == "" {
        return nil, ErrNoSecret
    }
    var claims Claims
    tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
        // Only HMAC is acceptable; reject tokens signed any other way.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrTokenInvalid
        }
        return []byte(secret), nil
    })
    if err != nil {
        if errors.Is(err, jwt.ErrTokenExpired) {
            return nil, ErrTokenExpired
        }
        return nil, ErrTokenInvalid
    }
    if !tok.Valid {
        return nil, ErrTokenInvalid
    }
    return &claims, nil
}
