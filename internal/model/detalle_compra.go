package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DetalleCompra is one (producto, cantidad) line of a Compra. The pair
// (CompraID, ProductoID) is unique: repeated products are merged into a
// single row instead of being inserted twice.
type DetalleCompra struct {
	ID         uint `gorm:"primaryKey"`
	CompraID   uint `gorm:"not null;index:idx_detalle_compras_compra;uniqueIndex:idx_detalle_compras_compra_producto,priority:1"`
	ProductoID uint `gorm:"not null;index:idx_detalle_compras_producto;uniqueIndex:idx_detalle_compras_compra_producto,priority:2"`
	Cantidad   int  `gorm:"not null;check:chk_detalle_compras_cantidad,cantidad > 0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

func (DetalleCompra) TableName() string { return "detalle_compras" }

func (d *DetalleCompra) Validar() error {
	v := &ValidationError{}
	if d.CompraID == 0 {
		v.Agregar("compra_id", MsgObligatorio)
	}
	if d.ProductoID == 0 {
		v.Agregar("producto_id", MsgObligatorio)
	}
	if err := validate.Var(d.Cantidad, "min=1"); err != nil {
		v.Agregar("cantidad", "Asegúrese de que este valor sea mayor o igual a 1.")
	}
	return v.errOrNil()
}

func (d *DetalleCompra) BeforeSave(tx *gorm.DB) error { return d.Validar() }

// Subtotal is Cantidad times the product's current price. Producto must be
// preloaded; the price is never copied onto the line.
func (d *DetalleCompra) Subtotal() decimal.Decimal {
	if d.Producto == nil {
		return decimal.Zero
	}
	return d.Producto.Precio.Mul(decimal.NewFromInt(int64(d.Cantidad)))
}

func (d DetalleCompra) String() string {
	nombre := fmt.Sprintf("%d", d.ProductoID)
	if d.Producto != nil {
		nombre = d.Producto.Nombre
	}
	return fmt.Sprintf("Compra: %d, Producto: %s, Cantidad: %d, Subtotal: $%s",
		d.CompraID, nombre, d.Cantidad, d.Subtotal().StringFixed(2))
}
