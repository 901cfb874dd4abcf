package model

import "time"

// Tipo is a catalog reference entity classifying media (película, serie,
// documental, ...).  Tipos carry no Estado column and are the one
// reference entity that is physically deleted; this is a deliberate
// retention decision, not an inconsistency with the other tables.
type Tipo struct {
    ID                 uint64    `json:"id"`
    Nombre             string    `json:"nombre"`
    Descripcion        string    `json:"descripcion,omitempty"`
    FechaCreacion      time.Time `json:"fecha_creacion"`
    FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// TipoUpdate carries the optional fields of a partial type update.
type TipoUpdate struct {
    Nombre      *string
    Descripcion *string
}
