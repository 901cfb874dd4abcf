// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrDuplicate indicates that an insert or update violated a
// unique index (email, nombre, serial, url), while ErrRefInvalid
// signals that a media row points at a reference entity that does not
// exist. Handlers translate these into the HTTP error taxonomy.
package repository

import (
    "errors"

    "github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when a row cannot be located by id or by a
// unique lookup column. Handlers should translate this into an HTTP
// 404 response.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert or update collides with a
// unique index. Handlers should translate this into an HTTP 409
// response.
var ErrDuplicate = errors.New("duplicate value for unique field")

// ErrRefInvalid is returned when a foreign key constraint rejects a
// write because the referenced record does not exist. Handlers should
// translate this into an HTTP 400 response.
var ErrRefInvalid = errors.New("referenced record does not exist")

// ErrConflict is returned when a delete cannot proceed because other
// rows still reference the record (e.g. removing a tipo that media
// rows point at). Handlers should translate this into an HTTP 409
// response.
var ErrConflict = errors.New("conflict")

// MySQL error numbers for the constraint violations the repositories
// care about.
const (
    mysqlErrDuplicateEntry  = 1062 // ER_DUP_ENTRY
    mysqlErrRowIsReferenced = 1451 // ER_ROW_IS_REFERENCED_2
    mysqlErrNoReferencedRow = 1452 // ER_NO_REFERENCED_ROW_2
)

// mapMySQLError converts driver-level constraint errors into the
// package sentinels above. Any other error is returned unchanged.
func mapMySQLError(err error) error {
    var me *mysql.MySQLError
    if errors.As(err, &me) {
        switch me.Number {
        case mysqlErrDuplicateEntry:
            return ErrDuplicate
        case mysqlErrRowIsReferenced:
            return ErrConflict
        case mysqlErrNoReferencedRow:
            return ErrRefInvalid
        }
    }
    return err
}
