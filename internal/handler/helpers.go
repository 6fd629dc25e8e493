package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/apierror"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report fields by their json/form name so DTO errors use the same keys
	// as model.ValidationError.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
}

var mensajesTag = map[string]string{
	"required": model.MsgObligatorio,
	"datetime": "Introduzca una fecha válida (AAAA-MM-DD).",
	"numeric":  "Introduzca un número.",
	"min":      "Asegúrese de que este valor no sea menor al mínimo permitido.",
	"max":      "Asegúrese de que este valor no supere el máximo permitido.",
}

func camposDe(err error) map[string][]string {
	fields := make(map[string][]string)
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return fields
	}
	for _, fe := range ves {
		// Namespace is "Struct.campo[0].sub"; drop the struct name.
		campo := fe.Namespace()
		if i := strings.IndexByte(campo, '.'); i >= 0 {
			campo = campo[i+1:]
		}
		msg, ok := mensajesTag[fe.Tag()]
		if !ok {
			msg = fe.Tag()
		}
		fields[campo] = append(fields[campo], msg)
	}
	return fields
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(camposDe(err)))
		return false
	}
	return true
}

// bindQuery is bindAndValidate for list filters.
func bindQuery(c *gin.Context, filter interface{}) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Parametros invalidos: "+err.Error()))
		return false
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(camposDe(err)))
		return false
	}
	return true
}

type idParam struct {
	ID uint `uri:"id" binding:"required"`
}

// paramID reads the numeric :id path parameter.
func paramID(c *gin.Context) (uint, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return p.ID, true
}

// responderError maps the domain error taxonomy onto HTTP statuses.
func responderError(c *gin.Context, err error) {
	var verr *model.ValidationError
	var ierr *repository.IntegrityError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(verr.Campos))
	case errors.As(err, &ierr) && ierr.Duplicado():
		c.JSON(http.StatusConflict, apierror.New("El registro ya existe"))
	case errors.As(err, &ierr):
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Referencia a un registro inexistente"))
	case errors.Is(err, repository.ErrNoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New("Registro no encontrado"))
	default:
		// middleware.ErrorHandler logs it and writes the generic 500.
		_ = c.Error(err)
	}
}
