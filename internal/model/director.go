package model

import "time"

// Director is a catalog reference entity.  Unlike the other reference
// tables it stores the full name under `nombres` and carries no
// description.  Directores are logically deleted.
type Director struct {
    ID                 uint64    `json:"id"`
    Nombres            string    `json:"nombres"`
    Estado             Estado    `json:"estado"`
    FechaCreacion      time.Time `json:"fecha_creacion"`
    FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// DirectorUpdate carries the optional fields of a partial director update.
type DirectorUpdate struct {
    Nombres *string
    Estado  *Estado
}
