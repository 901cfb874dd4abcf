package model

import (
    "fmt"
    "strings"
)

// Estado marks whether a record is active or logically deleted.  Entities
// with an Estado column are never removed by their delete endpoints; the
// column flips to Inactivo and the row is retained.
type Estado string

const (
    EstadoActivo   Estado = "Activo"
    EstadoInactivo Estado = "Inactivo"
)

// ParseEstado validates a raw estado string.  Matching is case-insensitive
// but the canonical capitalized form is always returned.
func ParseEstado(s string) (Estado, error) {
    switch strings.ToLower(strings.TrimSpace(s)) {
    case "activo":
        return EstadoActivo, nil
    case "inactivo":
        return EstadoInactivo, nil
    }
    return "", fmt.Errorf("estado must be %q or %q", EstadoActivo, EstadoInactivo)
}
