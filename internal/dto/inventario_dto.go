package dto

type CrearInventarioRequest struct {
	ProductoID uint `json:"producto_id" validate:"required"`
	Cantidad   int  `json:"cantidad"`
}

type ActualizarInventarioRequest struct {
	Cantidad *int `json:"cantidad"`
}

type InventarioFilter struct {
	ProductoID uint `form:"producto_id"`
	Page       int  `form:"page,default=1"   validate:"min=1"`
	Limit      int  `form:"limit,default=50" validate:"min=1,max=200"`
}

type InventarioResponse struct {
	ID         uint   `json:"id"`
	ProductoID uint   `json:"producto_id"`
	Producto   string `json:"producto,omitempty"`
	Cantidad   int    `json:"cantidad"`
}

type InventarioListResponse struct {
	Data  []InventarioResponse `json:"data"`
	Total int64                `json:"total"`
	Page  int                  `json:"page"`
	Limit int                  `json:"limit"`
}
