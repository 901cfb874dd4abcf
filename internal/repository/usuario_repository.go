// This file implements persistence for the usuarios table.  Emails are
// normalized (trimmed, lower-cased) before every write or lookup so the
// unique index behaves case-insensitively.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/IUDAlexis/peliculas-api/internal/model"
)

// ErrEmailExists is returned when a user insert collides with an
// already registered email.  It is a specialization of ErrDuplicate so
// auth handlers can answer with a precise message.
var ErrEmailExists = errors.New("email already exists")

// UsuarioRepo encapsulates all database queries related to usuarios.
type UsuarioRepo struct {
	db *sql.DB
}

// NewUsuarioRepo constructs a UsuarioRepo with the provided DB handle.
func NewUsuarioRepo(db *sql.DB) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

const usuarioCols = "id, nombre, email, password_hash, rol, estado, fecha_creacion, fecha_actualizacion"

func scanUsuario(row interface{ Scan(...any) error }) (*model.Usuario, error) {
	var u model.Usuario
	if err := row.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol, &u.Estado,
		&u.FechaCreacion, &u.FechaActualizacion); err != nil {
		return nil, err
	}
	return &u, nil
}

// NormalizeEmail trims and lower-cases an email the way every usuario
// query expects it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// List returns every usuario ordered by id, including inactive accounts.
func (r *UsuarioRepo) List(ctx context.Context) ([]*model.Usuario, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+usuarioCols+" FROM usuarios ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID fetches one usuario or ErrNotFound.
func (r *UsuarioRepo) GetByID(ctx context.Context, id uint64) (*model.Usuario, error) {
	u, err := scanUsuario(r.db.QueryRowContext(ctx,
		"SELECT "+usuarioCols+" FROM usuarios WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetByEmail fetches a usuario by normalized email or ErrNotFound.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	u, err := scanUsuario(r.db.QueryRowContext(ctx,
		"SELECT "+usuarioCols+" FROM usuarios WHERE email = ? LIMIT 1", NormalizeEmail(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

// Create inserts a usuario whose PasswordHash is already hashed by the
// caller.  Email collisions map to ErrEmailExists; the unique index is
// the real enforcement even when handlers pre-check.
func (r *UsuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	u.Email = NormalizeEmail(u.Email)
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO usuarios (nombre, email, password_hash, rol, estado) VALUES (?, ?, ?, ?, ?)",
		u.Nombre, u.Email, u.PasswordHash, u.Rol, u.Estado)
	if err != nil {
		if errors.Is(mapMySQLError(err), ErrDuplicate) {
			return ErrEmailExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	created, err := r.GetByID(ctx, uint64(id))
	if err != nil {
		return err
	}
	*u = *created
	return nil
}

// Update applies a partial field merge and returns the post-update row.
// A changed email is normalized; a changed password must arrive hashed.
func (r *UsuarioRepo) Update(ctx context.Context, id uint64, u model.UsuarioUpdate) (*model.Usuario, error) {
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	sets := []string{"fecha_actualizacion = CURRENT_TIMESTAMP"}
	args := []any{}
	if u.Nombre != nil {
		sets = append(sets, "nombre = ?")
		args = append(args, *u.Nombre)
	}
	if u.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, NormalizeEmail(*u.Email))
	}
	if u.PasswordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *u.PasswordHash)
	}
	if u.Rol != nil {
		sets = append(sets, "rol = ?")
		args = append(args, *u.Rol)
	}
	if u.Estado != nil {
		sets = append(sets, "estado = ?")
		args = append(args, *u.Estado)
	}
	args = append(args, id)
	q := "UPDATE usuarios SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		if errors.Is(mapMySQLError(err), ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return r.GetByID(ctx, id)
}

// Deactivate flips estado to Inactivo and returns the record.  Inactive
// accounts are refused at login but their rows are retained.
func (r *UsuarioRepo) Deactivate(ctx context.Context, id uint64) (*model.Usuario, error) {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE usuarios SET estado = ?, fecha_actualizacion = CURRENT_TIMESTAMP WHERE id = ?",
		model.EstadoInactivo, id); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}
