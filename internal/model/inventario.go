package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Inventario records the units on hand for one Producto. Deleting the
// Producto removes its inventory rows (ON DELETE CASCADE).
type Inventario struct {
	ID         uint `gorm:"primaryKey"`
	ProductoID uint `gorm:"not null;index:idx_inventarios_producto"`
	Cantidad   int  `gorm:"not null;check:chk_inventarios_cantidad,cantidad >= 0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
}

func (Inventario) TableName() string { return "inventarios" }

func (i *Inventario) Validar() error {
	v := &ValidationError{}
	if i.ProductoID == 0 {
		v.Agregar("producto_id", MsgObligatorio)
	}
	if err := validate.Var(i.Cantidad, "min=0"); err != nil {
		v.Agregar("cantidad", "Asegúrese de que este valor sea mayor o igual a 0.")
	}
	return v.errOrNil()
}

func (i *Inventario) BeforeSave(tx *gorm.DB) error { return i.Validar() }

func (i Inventario) String() string {
	nombre := fmt.Sprintf("Producto %d", i.ProductoID)
	if i.Producto != nil {
		nombre = i.Producto.Nombre
	}
	return fmt.Sprintf("%s - Cantidad: %d", nombre, i.Cantidad)
}
