package model

import "time"

// Media is the central catalog item (movie or series).  Serial and
// URLPelicula carry unique indexes.  The four reference columns are
// required foreign keys into generos, directores, productoras and tipos.
// Media rows are physically deleted by the delete endpoint.
type Media struct {
    ID                 uint64    `json:"id"`
    Serial             string    `json:"serial"`
    Titulo             string    `json:"titulo"`
    Sinopsis           string    `json:"sinopsis,omitempty"`
    URLPelicula        string    `json:"url_pelicula"`
    ImagenPortada      string    `json:"imagen_portada,omitempty"`
    AnioEstreno        int       `json:"anio_estreno,omitempty"`
    GeneroID           uint64    `json:"genero_id"`
    DirectorID         uint64    `json:"director_id"`
    ProductoraID       uint64    `json:"productora_id"`
    TipoID             uint64    `json:"tipo_id"`
    FechaCreacion      time.Time `json:"fecha_creacion"`
    FechaActualizacion time.Time `json:"fecha_actualizacion"`
}

// MediaDetalle is a Media record with its four references expanded to
// their full rows, the shape returned by the read endpoints.
type MediaDetalle struct {
    Media
    Genero     Genero     `json:"genero"`
    Director   Director   `json:"director"`
    Productora Productora `json:"productora"`
    Tipo       Tipo       `json:"tipo"`
}

// MediaUpdate carries the optional fields of a partial media update.
type MediaUpdate struct {
    Serial        *string
    Titulo        *string
    Sinopsis      *string
    URLPelicula   *string
    ImagenPortada *string
    AnioEstreno   *int
    GeneroID      *uint64
    DirectorID    *uint64
    ProductoraID  *uint64
    TipoID        *uint64
}
