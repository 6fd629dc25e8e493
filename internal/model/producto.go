package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Producto is a sellable item. Precio is expected to be non-negative but
// nothing enforces it.
type Producto struct {
	ID          uint            `gorm:"primaryKey"`
	Nombre      string          `gorm:"size:100;not null;index:idx_productos_nombre"`
	Descripcion *string         `gorm:"type:text"`
	Precio      decimal.Decimal `gorm:"type:decimal(10,2);not null;index:idx_productos_precio"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Producto) TableName() string { return "productos" }

var reglasProducto = []regla{
	{"nombre", "required", MsgObligatorio},
	{"nombre", "max=100", msgMaxLen(100)},
}

func (p *Producto) Validar() error {
	v := &ValidationError{}
	aplicarReglas(v, map[string]interface{}{"nombre": p.Nombre}, reglasProducto)

	// decimal(10,2): at most 2 decimal places and 8 integer digits.
	if !p.Precio.Equal(p.Precio.Round(2)) {
		v.Agregar("precio", "Asegúrese de que no haya más de 2 decimales.")
	}
	if p.Precio.Abs().GreaterThanOrEqual(precioMaxInt) {
		v.Agregar("precio", "Asegúrese de que no haya más de 10 dígitos en total.")
	}
	return v.errOrNil()
}

func (p *Producto) BeforeSave(tx *gorm.DB) error { return p.Validar() }

func (p Producto) String() string {
	return fmt.Sprintf("%s - $%s", p.Nombre, p.Precio.StringFixed(2))
}
