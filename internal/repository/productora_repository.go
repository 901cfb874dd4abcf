// This file implements persistence for the productoras reference table.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/IUDAlexis/peliculas-api/internal/model"
)

// ProductoraRepo encapsulates all database queries related to productoras.
type ProductoraRepo struct {
	db *sql.DB
}

// NewProductoraRepo constructs a ProductoraRepo with the provided DB handle.
func NewProductoraRepo(db *sql.DB) *ProductoraRepo {
	return &ProductoraRepo{db: db}
}

const productoraCols = "id, nombre, estado, slogan, descripcion, fecha_creacion, fecha_actualizacion"

func scanProductora(row interface{ Scan(...any) error }) (*model.Productora, error) {
	var p model.Productora
	var slogan, desc sql.NullString
	if err := row.Scan(&p.ID, &p.Nombre, &p.Estado, &slogan, &desc, &p.FechaCreacion, &p.FechaActualizacion); err != nil {
		return nil, err
	}
	p.Slogan = slogan.String
	p.Descripcion = desc.String
	return &p, nil
}

// List returns every productora ordered by id, including inactive rows.
func (r *ProductoraRepo) List(ctx context.Context) ([]*model.Productora, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+productoraCols+" FROM productoras ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Productora
	for rows.Next() {
		p, err := scanProductora(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one productora or ErrNotFound.
func (r *ProductoraRepo) GetByID(ctx context.Context, id uint64) (*model.Productora, error) {
	p, err := scanProductora(r.db.QueryRowContext(ctx,
		"SELECT "+productoraCols+" FROM productoras WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create inserts a new productora and re-reads the generated row.
func (r *ProductoraRepo) Create(ctx context.Context, p *model.Productora) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO productoras (nombre, estado, slogan, descripcion) VALUES (?, ?, ?, ?)",
		p.Nombre, p.Estado, p.Slogan, p.Descripcion)
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
	*p = *created
	return nil
}

// Update applies a partial field merge and returns the post-update row.
func (r *ProductoraRepo) Update(ctx context.Context, id uint64, u model.ProductoraUpdate) (*model.Productora, error) {
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
	if u.Slogan != nil {
		sets = append(sets, "slogan = ?")
		args = append(args, *u.Slogan)
	}
	if u.Descripcion != nil {
		sets = append(sets, "descripcion = ?")
		args = append(args, *u.Descripcion)
	}
	args = append(args, id)
	q := "UPDATE productoras SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return nil, mapMySQLError(err)
	}
	return r.GetByID(ctx, id)
}

// Deactivate flips estado to Inactivo and returns the record.
func (r *ProductoraRepo) Deactivate(ctx context.Context, id uint64) (*model.Productora, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE productoras SET estado = ?, fecha_actualizacion = CURRENT_TIMESTAMP WHERE id = ?",
		model.EstadoInactivo, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
