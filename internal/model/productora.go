package model

import "time"

// Productora is a catalog reference entity describing a production
// company.  The nombre column carries a unique index.  Productoras are
// logically deleted.
type Productora struct {
    ID                 uint64    `json:"id"`
    Nombre             string    `json:"nombre"`
    Estado             Estado    `json:"estado"`
    Slogan             string    `json:"slogan,omitempty"`
    Descripcion        string    `json:"descripcion,omitempty"`
    FechaCreacion      time.Time `json:"fecha_creacion"`
    FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// ProductoraUpdate carries the optional fields of a partial update.
type ProductoraUpdate struct {
    Nombre      *string
    Estado      *Estado
    Slogan      *string
    Descripcion *string
}
