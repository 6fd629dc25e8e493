package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// Field rules (lengths, digits-only, email) live on model.Cliente so that
// every write path reports the same messages; the DTO only shapes the input.
type CrearClienteRequest struct {
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Direccion string `json:"direccion"`
	Correo    string `json:"correo"`
	Cedula    string `json:"cedula"`
	Telefono  string `json:"telefono"`
}

type ActualizarClienteRequest struct {
	Nombre    *string `json:"nombre"`
	Apellido  *string `json:"apellido"`
	Direccion *string `json:"direccion"`
	Correo    *string `json:"correo"`
	Cedula    *string `json:"cedula"`
	Telefono  *string `json:"telefono"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ClienteFilter struct {
	Cedula string `form:"cedula"`
	Correo string `form:"correo"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ID        uint   `json:"id"`
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Direccion string `json:"direccion"`
	Correo    string `json:"correo"`
	Cedula    string `json:"cedula"`
	Telefono  string `json:"telefono"`
}

type ClienteListResponse struct {
	Data  []ClienteResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
