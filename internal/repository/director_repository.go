// This file implements persistence for the directores reference table.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/IUDAlexis/peliculas-api/internal/model"
)

// DirectorRepo encapsulates all database queries related to directores.
type DirectorRepo struct {
	db *sql.DB
}

// NewDirectorRepo constructs a DirectorRepo with the provided DB handle.
func NewDirectorRepo(db *sql.DB) *DirectorRepo {
	return &DirectorRepo{db: db}
}

const directorCols = "id, nombres, estado, fecha_creacion, fecha_actualizacion"

func scanDirector(row interface{ Scan(...any) error }) (*model.Director, error) {
	var d model.Director
	if err := row.Scan(&d.ID, &d.Nombres, &d.Estado, &d.FechaCreacion, &d.FechaActualizacion); err != nil {
		return nil, err
	}
	return &d, nil
}

// List returns every director ordered by id, including inactive rows.
func (r *DirectorRepo) List(ctx context.Context) ([]*model.Director, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+directorCols+" FROM directores ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Director
	for rows.Next() {
		d, err := scanDirector(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one director or ErrNotFound.
func (r *DirectorRepo) GetByID(ctx context.Context, id uint64) (*model.Director, error) {
	d, err := scanDirector(r.db.QueryRowContext(ctx,
		"SELECT "+directorCols+" FROM directores WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

// Create inserts a new director and re-reads the generated row.
func (r *DirectorRepo) Create(ctx context.Context, d *model.Director) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO directores (nombres, estado) VALUES (?, ?)", d.Nombres, d.Estado)
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
	*d = *created
	return nil
}

// Update applies a partial field merge and returns the post-update row.
func (r *DirectorRepo) Update(ctx context.Context, id uint64, u model.DirectorUpdate) (*model.Director, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	sets := []string{"fecha_actualizacion = CURRENT_TIMESTAMP"}
	args := []any{}
	if u.Nombres != nil {
		sets = append(sets, "nombres = ?")
		args = append(args, *u.Nombres)
	}
	if u.Estado != nil {
		sets = append(sets, "estado = ?")
		args = append(args, *u.Estado)
	}
	args = append(args, id)
	q := "UPDATE directores SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return nil, mapMySQLError(err)
	}
	return r.GetByID(ctx, id)
}

// Deactivate flips estado to Inactivo and returns the record.
func (r *DirectorRepo) Deactivate(ctx context.Context, id uint64) (*model.Director, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE directores SET estado = ?, fecha_actualizacion = CURRENT_TIMESTAMP WHERE id = ?",
		model.EstadoInactivo, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
