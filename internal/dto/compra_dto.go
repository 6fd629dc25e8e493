package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DetalleCompraRequest struct {
	ProductoID uint `json:"producto_id" validate:"required"`
	Cantidad   int  `json:"cantidad"`
}

type CrearCompraRequest struct {
	ClienteID uint `json:"cliente_id" validate:"required"`
	// FechaCompra is YYYY-MM-DD; empty means today.
	FechaCompra string                 `json:"fecha_compra" validate:"omitempty,datetime=2006-01-02"`
	Detalles    []DetalleCompraRequest `json:"detalles"     validate:"dive"`
}

type ActualizarCompraRequest struct {
	ClienteID   *uint   `json:"cliente_id"`
	FechaCompra *string `json:"fecha_compra" validate:"omitempty,datetime=2006-01-02"`
}

type ActualizarDetalleRequest struct {
	Cantidad int `json:"cantidad"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

// CompraFilter is bound from the query string of GET /v1/compras.
type CompraFilter struct {
	ClienteID uint   `form:"cliente_id"`
	Fecha     string `form:"fecha"       validate:"omitempty,datetime=2006-01-02"`
	Desde     string `form:"desde"       validate:"omitempty,datetime=2006-01-02"`
	Hasta     string `form:"hasta"       validate:"omitempty,datetime=2006-01-02"`
	Page      int    `form:"page,default=1"   validate:"min=1"`
	Limit     int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type DetalleFilter struct {
	CompraID   uint `form:"compra_id"`
	ProductoID uint `form:"producto_id"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// DetalleCompraResponse reports the product's current price; Subtotal is
// recomputed on every read.
type DetalleCompraResponse struct {
	ID             uint            `json:"id"`
	CompraID       uint            `json:"compra_id"`
	ProductoID     uint            `json:"producto_id"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type CompraResponse struct {
	ID          uint                    `json:"id"`
	ClienteID   uint                    `json:"cliente_id"`
	Cliente     string                  `json:"cliente,omitempty"`
	FechaCompra string                  `json:"fecha_compra"`
	Detalles    []DetalleCompraResponse `json:"detalles"`
	Total       decimal.Decimal         `json:"total"`
}

type CompraListResponse struct {
	Data  []CompraResponse `json:"data"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

type TotalCompraResponse struct {
	CompraID uint            `json:"compra_id"`
	Total    decimal.Decimal `json:"total"`
}
