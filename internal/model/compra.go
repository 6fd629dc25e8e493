package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ahora is swapped in tests to pin the default purchase date.
var ahora = time.Now

// Hoy returns today's date at midnight UTC, the value stored in date columns.
func Hoy() time.Time {
	y, m, d := ahora().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Compra is a purchase made by one Cliente. Its products are reached through
// DetalleCompra rows; deleting the Cliente deletes the Compra, and deleting
// the Compra deletes its detalles.
type Compra struct {
	ID          uint           `gorm:"primaryKey"`
	ClienteID   uint           `gorm:"not null;index:idx_compras_cliente"`
	FechaCompra datatypes.Date `gorm:"type:date;not null;index:idx_compras_fecha"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Cliente  *Cliente        `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE"`
	Detalles []DetalleCompra `gorm:"foreignKey:CompraID;constraint:OnDelete:CASCADE"`
}

func (Compra) TableName() string { return "compras" }

func (c *Compra) Validar() error {
	v := &ValidationError{}
	if c.ClienteID == 0 {
		v.Agregar("cliente_id", MsgObligatorio)
	}
	return v.errOrNil()
}

// BeforeSave fills FechaCompra with today's date when the caller left it
// empty, then validates.
func (c *Compra) BeforeSave(tx *gorm.DB) error {
	if c.Fecha().IsZero() {
		c.FechaCompra = datatypes.Date(Hoy())
	}
	return c.Validar()
}

// Fecha returns FechaCompra as a time.Time.
func (c *Compra) Fecha() time.Time { return time.Time(c.FechaCompra) }

// Total sums the subtotals of the loaded detalles. It is recomputed on every
// call and is zero for a purchase without detalles.
func (c *Compra) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.Detalles {
		total = total.Add(c.Detalles[i].Subtotal())
	}
	return total
}

// Productos returns the products reached through the loaded detalles.
func (c *Compra) Productos() []Producto {
	productos := make([]Producto, 0, len(c.Detalles))
	for _, d := range c.Detalles {
		if d.Producto != nil {
			productos = append(productos, *d.Producto)
		}
	}
	return productos
}

func (c Compra) String() string {
	if c.Cliente == nil {
		return fmt.Sprintf("Compra %d - Cliente: %d", c.ID, c.ClienteID)
	}
	return fmt.Sprintf("Compra %d - Cliente: %s %s", c.ID, c.Cliente.Nombre, c.Cliente.Apellido)
}
