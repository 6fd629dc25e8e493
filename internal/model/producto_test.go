package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProducto_Validar(t *testing.T) {
	cases := []struct {
		name    string
		prod    Producto
		wantErr []string
	}{
		{"ok", Producto{Nombre: "Scooter X1", Precio: decimal.RequireFromString("459.90")}, nil},
		{"precio negativo no se valida", Producto{Nombre: "Ajuste", Precio: decimal.RequireFromString("-1.00")}, nil},
		{"sin nombre", Producto{Precio: decimal.RequireFromString("1")}, []string{"nombre"}},
		{"tres decimales", Producto{Nombre: "Perno", Precio: decimal.RequireFromString("0.125")}, []string{"precio"}},
		{"demasiados digitos", Producto{Nombre: "Lote", Precio: decimal.RequireFromString("100000000.00")}, []string{"precio"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.prod.Validar()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			campos := camposDe(t, err)
			for _, f := range tc.wantErr {
				assert.Contains(t, campos, f)
			}
		})
	}
}

func TestProducto_String(t *testing.T) {
	p := Producto{Nombre: "Casco", Precio: decimal.RequireFromString("25.5")}
	assert.Equal(t, "Casco - $25.50", p.String())
}

func TestInventario_Validar(t *testing.T) {
	assert.NoError(t, (&Inventario{ProductoID: 1, Cantidad: 0}).Validar())

	campos := camposDe(t, (&Inventario{Cantidad: -3}).Validar())
	assert.Contains(t, campos, "producto_id")
	assert.Contains(t, campos, "cantidad")
}

func TestInventario_String(t *testing.T) {
	i := Inventario{ProductoID: 3, Cantidad: 12, Producto: &Producto{Nombre: "Casco"}}
	assert.Equal(t, "Casco - Cantidad: 12", i.String())
}
