package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNoEncontrado is returned (wrapped with the table name) when a lookup or
// a write by id matches no row.
var ErrNoEncontrado = errors.New("registro no encontrado")

// IntegrityError reports a write rejected by a database constraint: a unique
// index (duplicate correo, cedula or compra/producto pair) or a foreign key
// pointing at a row that does not exist. Err is gorm.ErrDuplicatedKey or
// gorm.ErrForeignKeyViolated so callers can use errors.Is.
type IntegrityError struct {
	Tabla string
	Err   error
}

func (e *IntegrityError) Error() string {
	if e.Duplicado() {
		return fmt.Sprintf("%s: violacion de unicidad", e.Tabla)
	}
	return fmt.Sprintf("%s: referencia a un registro inexistente", e.Tabla)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// Duplicado reports whether the violated constraint was a unique index.
func (e *IntegrityError) Duplicado() bool { return errors.Is(e.Err, gorm.ErrDuplicatedKey) }

// traducirError maps the translated GORM errors (gorm.Config.TranslateError)
// onto this package's taxonomy. Anything else, validation errors raised by
// model hooks included, passes through untouched.
func traducirError(err error, tabla string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", tabla, ErrNoEncontrado)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &IntegrityError{Tabla: tabla, Err: gorm.ErrDuplicatedKey}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &IntegrityError{Tabla: tabla, Err: gorm.ErrForeignKeyViolated}
	}
	return err
}

// paginar normalises page/limit the same way for every List method.
func paginar(page, limit, def, max int) (offset, lim int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > max {
		limit = def
	}
	return (page - 1) * limit, limit
}

// exigirFila turns a write that touched nothing into ErrNoEncontrado.
func exigirFila(res *gorm.DB, tabla string) error {
	if res.Error != nil {
		return traducirError(res.Error, tabla)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%s: %w", tabla, ErrNoEncontrado)
	}
	return nil
}
