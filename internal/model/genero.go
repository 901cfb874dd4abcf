package model

import "time"

// Genero is a catalog reference entity describing a media genre.  The
// nombre column carries a unique index.  Generos are logically deleted:
// their delete endpoint flips Estado to Inactivo and keeps the row.
type Genero struct {
    ID                 uint64    `json:"id"`
    Nombre             string    `json:"nombre"`
    Estado             Estado    `json:"estado"`
    Descripcion        string    `json:"descripcion,omitempty"`
    FechaCreacion      time.Time `json:"fecha_creacion"`
    FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// GeneroUpdate carries the optional fields of a partial genre update.
type GeneroUpdate struct {
    Nombre      *string
    Estado      *Estado
    Descripcion *string
}
