// This file implements persistence for the tipos reference table.  Tipos
// are the one reference entity without an estado column; deletion removes
// the row outright.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/IUDAlexis/peliculas-api/internal/model"
)

// TipoRepo encapsulates all database queries related to tipos.
type TipoRepo struct {
	db *sql.DB
}

// NewTipoRepo constructs a TipoRepo with the provided DB handle.
func NewTipoRepo(db *sql.DB) *TipoRepo {
	return &TipoRepo{db: db}
}

const tipoCols = "id, nombre, descripcion, fecha_creacion, fecha_actualizacion"

func scanTipo(row interface{ Scan(...any) error }) (*model.Tipo, error) {
	var t model.Tipo
	var desc sql.NullString
	if err := row.Scan(&t.ID, &t.Nombre, &desc, &t.FechaCreacion, &t.FechaActualizacion); err != nil {
		return nil, err
	}
	t.Descripcion = desc.String
	return &t, nil
}

// List returns every tipo ordered by id.
func (r *TipoRepo) List(ctx context.Context) ([]*model.Tipo, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+tipoCols+" FROM tipos ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Tipo
	for rows.Next() {
		t, err := scanTipo(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one tipo or ErrNotFound.
func (r *TipoRepo) GetByID(ctx context.Context, id uint64) (*model.Tipo, error) {
	t, err := scanTipo(r.db.QueryRowContext(ctx,
		"SELECT "+tipoCols+" FROM tipos WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// Create inserts a new tipo and re-reads the generated row.
func (r *TipoRepo) Create(ctx context.Context, t *model.Tipo) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tipos (nombre, descripcion) VALUES (?, ?)", t.Nombre, t.Descripcion)
	if err != nil {
		return mapMySQLError(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	created, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*t = *created
	return nil
}

// Update applies a partial field merge and returns the post-update row.
func (r *TipoRepo) Update(ctx context.Context, id uint64, u model.TipoUpdate) (*model.Tipo, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	sets := []string{"fecha_actualizacion = CURRENT_TIMESTAMP"}
	args := []any{}
	if u.Nombre != nil {
		sets = append(sets, "nombre = ?")
		args = append(args, *u.Nombre)
	}
	if u.Descripcion != nil {
		sets = append(sets, "descripcion = ?")
		args = append(args, *u.Descripcion)
	}
	args = append(args, id)
	q := "UPDATE tipos SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return nil, mapMySQLError(err)
	}
	return r.GetByID(ctx, id)
}

// Delete physically removes a tipo.  ErrNotFound on a missing id, so a
// repeated delete surfaces as 404.  A tipo still referenced by media
// rows is rejected by the FK constraint and surfaces as ErrConflict.
func (r *TipoRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM tipos WHERE id = ?", id)
	if err != nil {
		return mapMySQLError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
