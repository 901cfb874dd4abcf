// This file implements persistence for the media table.  Read operations
// expand the four reference entities with JOINs so handlers can return
// fully populated records in one round trip.  Media rows are physically
// deleted, unlike the reference tables.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/IUDAlexis/peliculas-api/internal/model"
)

// MediaRepo encapsulates all database queries related to media.
type MediaRepo struct {
	db *sql.DB
}

// NewMediaRepo constructs a MediaRepo with the provided DB handle.
func NewMediaRepo(db *sql.DB) *MediaRepo {
	return &MediaRepo{db: db}
}

// mediaDetalleQuery selects a media row together with its four referenced
// rows.  The references are required FKs, so plain JOINs cannot drop rows.
const mediaDetalleQuery = `
SELECT m.id, m.serial, m.titulo, m.sinopsis, m.url_pelicula, m.imagen_portada, m.anio_estreno,
       m.genero_id, m.director_id, m.productora_id, m.tipo_id, m.fecha_creacion, m.fecha_actualizacion,
       g.id, g.nombre, g.estado, g.descripcion, g.fecha_creacion, g.fecha_actualizacion,
       d.id, d.nombres, d.estado, d.fecha_creacion, d.fecha_actualizacion,
       p.id, p.nombre, p.estado, p.slogan, p.descripcion, p.fecha_creacion, p.fecha_actualizacion,
       t.id, t.nombre, t.descripcion, t.fecha_creacion, t.fecha_actualizacion
FROM media m
JOIN generos g ON g.id = m.genero_id
JOIN directores d ON d.id = m.director_id
JOIN productoras p ON p.id = m.productora_id
JOIN tipos t ON t.id = m.tipo_id`

func scanMediaDetalle(row interface{ Scan(...any) error }) (*model.MediaDetalle, error) {
	var md model.MediaDetalle
	var sinopsis, imagen, gDesc, pSlogan, pDesc, tDesc sql.NullString
	var anio sql.NullInt64
	err := row.Scan(
		&md.ID, &md.Serial, &md.Titulo, &sinopsis, &md.URLPelicula, &imagen, &anio,
		&md.GeneroID, &md.DirectorID, &md.ProductoraID, &md.TipoID, &md.FechaCreacion, &md.FechaActualizacion,
		&md.Genero.ID, &md.Genero.Nombre, &md.Genero.Estado, &gDesc, &md.Genero.FechaCreacion, &md.Genero.FechaActualizacion,
		&md.Director.ID, &md.Director.Nombres, &md.Director.Estado, &md.Director.FechaCreacion, &md.Director.FechaActualizacion,
		&md.Productora.ID, &md.Productora.Nombre, &md.Productora.Estado, &pSlogan, &pDesc, &md.Productora.FechaCreacion, &md.Productora.FechaActualizacion,
		&md.Tipo.ID, &md.Tipo.Nombre, &tDesc, &md.Tipo.FechaCreacion, &md.Tipo.FechaActualizacion,
	)
	if err != nil {
		return nil, err
	}
	md.Sinopsis = sinopsis.String
	md.ImagenPortada = imagen.String
	md.AnioEstreno = int(anio.Int64)
	md.Genero.Descripcion = gDesc.String
	md.Productora.Slogan = pSlogan.String
	md.Productora.Descripcion = pDesc.String
	md.Tipo.Descripcion = tDesc.String
	return &md, nil
}

// List returns every media row with its references expanded, ordered by id.
func (r *MediaRepo) List(ctx context.Context) ([]*model.MediaDetalle, error) {
	rows, err := r.db.QueryContext(ctx, mediaDetalleQuery+" ORDER BY m.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.MediaDetalle
	for rows.Next() {
		md, err := scanMediaDetalle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, md)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one media row with expanded references or ErrNotFound.
func (r *MediaRepo) GetByID(ctx context.Context, id uint64) (*model.MediaDetalle, error) {
	md, err := scanMediaDetalle(r.db.QueryRowContext(ctx, mediaDetalleQuery+" WHERE m.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return md, nil
}

// Create inserts a new media row.  Unique collisions on serial/url map to
// ErrDuplicate and a dangling reference id maps to ErrRefInvalid.  On
// success the struct is populated with the stored row (base fields only;
// callers wanting expansion should GetByID).
func (r *MediaRepo) Create(ctx context.Context, m *model.Media) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO media (serial, titulo, sinopsis, url_pelicula, imagen_portada, anio_estreno,
		                    genero_id, director_id, productora_id, tipo_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Serial, m.Titulo, m.Sinopsis, m.URLPelicula, m.ImagenPortada, m.AnioEstreno,
		m.GeneroID, m.DirectorID, m.ProductoraID, m.TipoID)
	if err != nil {
		return mapMySQLError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	md, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*m = md.Media
	return nil
}

// Update applies a partial field merge and returns the post-update row
// with references expanded.
func (r *MediaRepo) Update(ctx context.Context, id uint64, u model.MediaUpdate) (*model.MediaDetalle, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	sets := []string{"fecha_actualizacion = CURRENT_TIMESTAMP"}
	args := []any{}
	if u.Serial != nil {
		sets = append(sets, "serial = ?")
		args = append(args, *u.Serial)
	}
	if u.Titulo != nil {
		sets = append(sets, "titulo = ?")
		args = append(args, *u.Titulo)
	}
	if u.Sinopsis != nil {
		sets = append(sets, "sinopsis = ?")
		args = append(args, *u.Sinopsis)
	}
	if u.URLPelicula != nil {
		sets = append(sets, "url_pelicula = ?")
		args = append(args, *u.URLPelicula)
	}
	if u.ImagenPortada != nil {
		sets = append(sets, "imagen_portada = ?")
		args = append(args, *u.ImagenPortada)
	}
	if u.AnioEstreno != nil {
		sets = append(sets, "anio_estreno = ?")
		args = append(args, *u.AnioEstreno)
	}
	if u.GeneroID != nil {
		sets = append(sets, "genero_id = ?")
		args = append(args, *u.GeneroID)
	}
	if u.DirectorID != nil {
		sets = append(sets, "director_id = ?")
		args = append(args, *u.DirectorID)
	}
	if u.ProductoraID != nil {
		sets = append(sets, "productora_id = ?")
		args = append(args, *u.ProductoraID)
	}
	if u.TipoID != nil {
		sets = append(sets, "tipo_id = ?")
		args = append(args, *u.TipoID)
	}
	args = append(args, id)
	q := "UPDATE media SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return nil, mapMySQLError(err)
	}
	return r.GetByID(ctx, id)
}

// Delete physically removes a media row.  Repeating the call for the
// same id returns ErrNotFound because the first call removed the record.
func (r *MediaRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM media WHERE id = ?", id)
	if err != nil {
		return mapMySQLError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
