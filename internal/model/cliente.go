package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Cliente is a registered customer. Correo and Cedula are unique across the
// table; the unique indexes double as the lookup indexes for both fields.
type Cliente struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"size:50;not null"`
	Apellido  string `gorm:"size:50;not null"`
	Direccion string `gorm:"size:100;not null"`
	Correo    string `gorm:"size:100;not null;uniqueIndex:idx_clientes_correo"`
	Cedula    string `gorm:"size:20;not null;uniqueIndex:idx_clientes_cedula"`
	Telefono  string `gorm:"size:15;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }

var reglasCliente = []regla{
	{"nombre", "required", MsgObligatorio},
	{"nombre", "max=50", msgMaxLen(50)},
	{"apellido", "required", MsgObligatorio},
	{"apellido", "max=50", msgMaxLen(50)},
	{"direccion", "required", MsgObligatorio},
	{"direccion", "max=100", msgMaxLen(100)},
	{"correo", "required", MsgObligatorio},
	{"correo", "omitempty,email", msgCorreo},
	{"correo", "max=100", msgMaxLen(100)},
	{"cedula", "required", MsgObligatorio},
	{"cedula", "omitempty,min=10", "La cédula debe tener al menos 10 dígitos."},
	{"cedula", "omitempty,digitos", "La cédula debe contener solo números."},
	{"cedula", "max=20", msgMaxLen(20)},
	{"telefono", "required", MsgObligatorio},
	{"telefono", "omitempty,min=10", "El número de teléfono debe tener al menos 10 dígitos."},
	{"telefono", "omitempty,digitos", "El número de teléfono debe contener solo números."},
	{"telefono", "max=15", msgMaxLen(15)},
}

// Validar checks every field rule and reports all failures at once.
// Uniqueness of Correo/Cedula needs the table and is checked by the service.
func (c *Cliente) Validar() error {
	v := &ValidationError{}
	aplicarReglas(v, map[string]interface{}{
		"nombre":    c.Nombre,
		"apellido":  c.Apellido,
		"direccion": c.Direccion,
		"correo":    c.Correo,
		"cedula":    c.Cedula,
		"telefono":  c.Telefono,
	}, reglasCliente)
	return v.errOrNil()
}

// BeforeSave runs on both Create and Save so no write skips validation.
func (c *Cliente) BeforeSave(tx *gorm.DB) error { return c.Validar() }

func (c Cliente) String() string {
	return fmt.Sprintf("%s %s - %s", c.Nombre, c.Apellido, c.Correo)
}
