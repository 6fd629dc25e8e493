package handler

import (
	"net/http"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// @Summary      Crear inventario
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearInventarioRequest true "Datos"
// @Success      201  {object} dto.InventarioResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/inventario [post]
func (h *InventarioHandler) Crear(c *gin.Context) {
	var req dto.CrearInventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary      Listar inventarios
// @Tags         inventario
// @Produce      json
// @Param        filter query dto.InventarioFilter false "Filtros"
// @Success      200  {object} dto.InventarioListResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/inventario [get]
func (h *InventarioHandler) Listar(c *gin.Context) {
	var filter dto.InventarioFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Obtener inventario por ID
// @Tags         inventario
// @Produce      json
// @Param        id   path     int  true "ID"
// @Success      200  {object} dto.InventarioResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/inventario/{id} [get]
func (h *InventarioHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Actualizar inventario
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        id   path     int  true "ID"
// @Param        body body dto.ActualizarInventarioRequest true "Campos a modificar"
// @Success      200  {object} dto.InventarioResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/inventario/{id} [patch]
func (h *InventarioHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.ActualizarInventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Eliminar inventario
// @Tags         inventario
// @Produce      json
// @Param        id   path     int  true "ID"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/inventario/{id} [delete]
func (h *InventarioHandler) Eliminar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
