package model

import "time"

// Usuario represents an application user as stored in the `usuarios`
// table.  The bcrypt hash is excluded from JSON serialization so that it
// can never leak through a handler response.
//
// Fields:
//  ID                 – primary key identifier.
//  Nombre             – display name.
//  Email              – unique, stored lower-cased and trimmed.
//  PasswordHash       – bcrypt digest of the password (never serialized).
//  Rol                – one of administrador/docente/usuario.
//  Estado             – Activo or Inactivo (logical deletion).
//  FechaCreacion      – timestamp of creation.
//  FechaActualizacion – timestamp of last update.
type Usuario struct {
    ID                 uint64    `json:"id"`
    Nombre             string    `json:"nombre"`
    Email              string    `json:"email"`
    PasswordHash       string    `json:"-"`
    Rol                Rol       `json:"rol"`
    Estado             Estado    `json:"estado"`
    FechaCreacion      time.Time `json:"fecha_creacion"`
    FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// UsuarioUpdate carries the optional fields of a partial user update.
// Nil pointers mean "leave unchanged".  PasswordHash, when set, must
// already be hashed by the caller.
type UsuarioUpdate struct {
    Nombre       *string
    Email        *string
    PasswordHash *string
    Rol          *Rol
    Estado       *Estado
}
