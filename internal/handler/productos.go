package handler

import (
	"net/http"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearProductoRequest true "Datos"
// @Success      201  {object} dto.ProductoResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/productos [post]
func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
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

// @Summary      Listar productos
// @Tags         productos
// @Produce      json
// @Param        filter query dto.ProductoFilter false "Filtros"
// @Success      200  {object} dto.ProductoListResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/productos [get]
func (h *ProductosHandler) Listar(c *gin.Context) {
	var filter dto.ProductoFilter
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

// @Summary      Obtener producto por ID
// @Tags         productos
// @Produce      json
// @Param        id   path     int  true "ID"
// @Success      200  {object} dto.ProductoResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/productos/{id} [get]
func (h *ProductosHandler) ObtenerPorID(c *gin.Context) {
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

// @Summary      Actualizar producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id   path     int  true "ID"
// @Param        body body dto.ActualizarProductoRequest true "Campos a modificar"
// @Success      200  {object} dto.ProductoResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/productos/{id} [patch]
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.ActualizarProductoRequest
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

// Eliminar also removes the product's inventarios and detalles.
//
// @Summary      Eliminar producto
// @Description  Elimina el producto con su inventario y sus detalles de compra.
// @Tags         productos
// @Produce      json
// @Param        id   path     int  true "ID"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/productos/{id} [delete]
func (h *ProductosHandler) Eliminar(c *gin.Context) {
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
