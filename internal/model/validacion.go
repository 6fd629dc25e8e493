package model

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate     = validator.New()
	soloDigitos  = regexp.MustCompile(`^\d+$`)
	precioMaxInt = decimal.New(1, 8) // decimal(10,2) leaves 8 integer digits
)

func init() {
	_ = validate.RegisterValidation("digitos", func(fl validator.FieldLevel) bool {
		return soloDigitos.MatchString(fl.Field().String())
	})
}

// ValidationError collects every failing field of an entity, with all of the
// messages raised for each one. It is returned before anything hits the DB.
type ValidationError struct {
	Campos map[string][]string
}

func (e *ValidationError) Error() string {
	campos := make([]string, 0, len(e.Campos))
	for c := range e.Campos {
		campos = append(campos, c)
	}
	sort.Strings(campos)

	var b strings.Builder
	b.WriteString("validacion fallida:")
	for _, c := range campos {
		fmt.Fprintf(&b, " %s: %s;", c, strings.Join(e.Campos[c], " "))
	}
	return strings.TrimSuffix(b.String(), ";")
}

// Agregar records msg against campo.
func (e *ValidationError) Agregar(campo, msg string) {
	if e.Campos == nil {
		e.Campos = make(map[string][]string)
	}
	e.Campos[campo] = append(e.Campos[campo], msg)
}

// errOrNil returns nil when nothing was recorded so callers can
// `return v.errOrNil()` without tripping over typed-nil interfaces.
func (e *ValidationError) errOrNil() error {
	if len(e.Campos) == 0 {
		return nil
	}
	return e
}

// regla is one validator tag checked against one field. Rules are evaluated
// independently so a field can report more than one message (e.g. a cedula
// that is both too short and non-numeric).
type regla struct {
	campo string
	tag   string
	msg   string
}

func aplicarReglas(v *ValidationError, valores map[string]interface{}, reglas []regla) {
	for _, r := range reglas {
		if err := validate.Var(valores[r.campo], r.tag); err != nil {
			v.Agregar(r.campo, r.msg)
		}
	}
}

const (
	MsgObligatorio = "Este campo es obligatorio."
	msgCorreo      = "Introduzca una dirección de correo electrónico válida."
)

func msgMaxLen(n int) string {
	return fmt.Sprintf("Asegúrese de que este valor tenga como máximo %d caracteres.", n)
}
