package handler

import (
	"net/http"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/service"

	"github.com/gin-gonic/gin"
)

// ComprasHandler serves purchases and their line items.
type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

// @Summary      Crear compra
// @Description  Los productos repetidos en la solicitud se combinan en un solo detalle.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearCompraRequest true "Compra con detalles opcionales"
// @Success      201  {object} dto.CompraResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/compras [post]
func (h *ComprasHandler) Crear(c *gin.Context) {
	var req dto.CrearCompraRequest
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

// @Summary      Listar compras
// @Tags         compras
// @Produce      json
// @Param        filter query dto.CompraFilter false "Filtros"
// @Success      200  {object} dto.CompraListResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/compras [get]
func (h *ComprasHandler) Listar(c *gin.Context) {
	var filter dto.CompraFilter
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

// @Summary      Obtener compra por ID
// @Tags         compras
// @Produce      json
// @Param        id   path     int  true "ID"
// @Success      200  {object} dto.CompraResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/compras/{id} [get]
func (h *ComprasHandler) ObtenerPorID(c *gin.Context) {
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

// @Summary      Actualizar compra
// @Tags         compras
// @Accept       json
// @Produce      json
// @Param        id   path     int  true "ID"
// @Param        body body dto.ActualizarCompraRequest true "Campos a modificar"
// @Success      200  {object} dto.CompraResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/compras/{id} [patch]
func (h *ComprasHandler) Actualizar(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.ActualizarCompraRequest
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

// @Summary      Eliminar compra
// @Description  Elimina la compra y sus detalles.
// @Tags         compras
// @Produce      json
// @Param        id   path     int  true "ID"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/compras/{id} [delete]
func (h *ComprasHandler) Eliminar(c *gin.Context) {
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

// Total recomputes the purchase total from current product prices.
//
// @Summary      Total de la compra
// @Description  Suma de subtotales con los precios actuales de los productos.
// @Tags         compras
// @Produce      json
// @Param        id   path     int  true "ID"
// @Success      200  {object} dto.TotalCompraResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/compras/{id}/total [get]
func (h *ComprasHandler) Total(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	total, err := h.svc.Total(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TotalCompraResponse{CompraID: id, Total: total})
}

// ── Detalles ─────────────────────────────────────────────────────────────────

// @Summary      Agregar detalle a una compra
// @Tags         detalles
// @Accept       json
// @Produce      json
// @Param        id   path     int  true "ID"
// @Param        body body dto.DetalleCompraRequest true "Producto y cantidad"
// @Success      201  {object} dto.DetalleCompraResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/compras/{id}/detalles [post]
func (h *ComprasHandler) AgregarDetalle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.DetalleCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarDetalle(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary      Listar detalles de una compra
// @Tags         detalles
// @Produce      json
// @Param        id   path     int  true "ID"
// @Param        producto_id query int false "Filtrar por producto"
// @Success      200  {array}  dto.DetalleCompraResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/compras/{id}/detalles [get]
func (h *ComprasHandler) ListarDetalles(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var filter dto.DetalleFilter
	if !bindQuery(c, &filter) {
		return
	}
	filter.CompraID = id
	resp, err := h.svc.ListarDetalles(c.Request.Context(), filter)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Actualizar cantidad de un detalle
// @Tags         detalles
// @Accept       json
// @Produce      json
// @Param        id   path     int  true "ID"
// @Param        body body dto.ActualizarDetalleRequest true "Nueva cantidad"
// @Success      200  {object} dto.DetalleCompraResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/detalles/{id} [patch]
func (h *ComprasHandler) ActualizarDetalle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.ActualizarDetalleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarDetalle(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Eliminar detalle
// @Tags         detalles
// @Produce      json
// @Param        id   path     int  true "ID"
// @Success      204
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/detalles/{id} [delete]
func (h *ComprasHandler) EliminarDetalle(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.EliminarDetalle(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
