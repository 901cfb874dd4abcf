package model

import (
    "fmt"
    "strings"
)

// Rol is the closed set of roles a user can hold.  Roles are stored as
// strings in the database and inside JWT claims, but application code only
// works with the typed constants below.  Parsing at the boundary keeps
// typo'd role strings from silently granting or denying access.
type Rol string

const (
    RolAdministrador Rol = "administrador" // full access, user management
    RolDocente       Rol = "docente"       // read access to catalog reference data
    RolUsuario       Rol = "usuario"       // default role, media browsing only
)

// ParseRol validates a raw role string and returns the typed value.  Input
// is trimmed and lower-cased before matching.
func ParseRol(s string) (Rol, error) {
    switch Rol(strings.ToLower(strings.TrimSpace(s))) {
    case RolAdministrador:
        return RolAdministrador, nil
    case RolDocente:
        return RolDocente, nil
    case RolUsuario:
        return RolUsuario, nil
    }
    return "", fmt.Errorf("unknown role: %q", s)
}

// Valid reports whether r is one of the defined role constants.
func (r Rol) Valid() bool {
    _, err := ParseRol(string(r))
    return err == nil
}
