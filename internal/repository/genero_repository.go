// Package repository contains data access logic separated from HTTP handlers.
// This file implements persistence for the generos reference table.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/IUDAlexis/peliculas-api/internal/model"
)

// GeneroRepo encapsulates all database queries related to generos.
type GeneroRepo struct {
	db *sql.DB
}

// NewGeneroRepo constructs a GeneroRepo with the provided DB handle.
func NewGeneroRepo(db *sql.DB) *GeneroRepo {
	return &GeneroRepo{db: db}
}

const generoCols = "id, nombre, estado, descripcion, fecha_creacion, fecha_actualizacion"

func scanGenero(row interface{ Scan(...any) error }) (*model.Genero, error) {
	var g model.Genero
	var desc sql.NullString
	if err := row.Scan(&g.ID, &g.Nombre, &g.Estado, &desc, &g.FechaCreacion, &g.FechaActualizacion); err != nil {
		return nil, err
	}
	g.Descripcion = desc.String
	return &g, nil
}

// List returns every genero ordered by id, including inactive rows.
func (r *GeneroRepo) List(ctx context.Context) ([]*model.Genero, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+generoCols+" FROM generos ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Genero
	for rows.Next() {
		g, err := scanGenero(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one genero or ErrNotFound.
func (r *GeneroRepo) GetByID(ctx context.Context, id uint64) (*model.Genero, error) {
	g, err := scanGenero(r.db.QueryRowContext(ctx,
		"SELECT "+generoCols+" FROM generos WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

// Create inserts a new genero. On success the struct is re-read so the
// caller receives the generated id and timestamp defaults.
func (r *GeneroRepo) Create(ctx context.Context, g *model.Genero) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO generos (nombre, estado, descripcion) VALUES (?, ?, ?)",
		g.Nombre, g.Estado, g.Descripcion)
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
	*g = *created
	return nil
}

// Update applies a partial field merge and returns the post-update row.
// fecha_actualizacion is always refreshed, even when no other field is
// present in the update.
func (r *GeneroRepo) Update(ctx context.Context, id uint64, u model.GeneroUpdate) (*model.Genero, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	sets := []string{"fecha_actualizacion = CURRENT_TIMESTAMP"}
	args := []any{}
	if u.Nombre != nil {
		sets = append(sets, "nombre = ?")
		args = append(args, *u.Nombre)
	}
	if u.Estado != nil {
		sets = append(sets, "estado = ?")
		args = append(args, *u.Estado)
	}
	if u.Descripcion != nil {
		sets = append(sets, "descripcion = ?")
		args = append(args, *u.Descripcion)
	}
	args = append(args, id)
	q := "UPDATE generos SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return nil, mapMySQLError(err)
	}
	return r.GetByID(ctx, id)
}

// Deactivate flips estado to Inactivo and returns the record. Calling it
// on an already inactive genero is a no-op that still returns the row,
// which keeps the delete endpoint idempotent.
func (r *GeneroRepo) Deactivate(ctx context.Context, id uint64) (*model.Genero, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE generos SET estado = ?, fecha_actualizacion = CURRENT_TIMESTAMP WHERE id = ?",
		model.EstadoInactivo, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
