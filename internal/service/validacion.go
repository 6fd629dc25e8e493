package service

import (
	"errors"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"
)

// validacionDe runs the entity's own field rules and returns the resulting
// ValidationError (empty when everything passed) so callers can append
// table-level checks such as uniqueness before deciding to write.
func validacionDe(v interface{ Validar() error }) (*model.ValidationError, error) {
	verr := &model.ValidationError{}
	if err := v.Validar(); err != nil && !errors.As(err, &verr) {
		return nil, err
	}
	return verr, nil
}

func errOrNil(verr *model.ValidationError) error {
	if len(verr.Campos) == 0 {
		return nil
	}
	return verr
}
