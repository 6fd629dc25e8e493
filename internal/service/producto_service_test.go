package service

import (
	"context"
	"testing"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductoRepo struct {
	productos map[uint]*model.Producto
	nextID    uint
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uint]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uint) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, noEncontrado("productos")
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, int64, error) {
	result := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		result = append(result, *p)
	}
	return result, int64(len(result)), nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	cp := *p
	r.productos[p.ID] = &cp
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.productos[id]; !ok {
		return noEncontrado("productos")
	}
	delete(r.productos, id)
	return nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

func TestProductoService_Crear(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)
	precio := decimal.RequireFromString("149.99")

	resp, err := svc.Crear(context.Background(), dto.CrearProductoRequest{Nombre: "Scooter X1", Precio: &precio})
	require.NoError(t, err)
	assert.True(t, resp.Precio.Equal(precio))
	assert.Nil(t, resp.Descripcion)
	assert.Len(t, repo.productos, 1)
}

func TestProductoService_Crear_PrecioYNombreObligatorios(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	_, err := svc.Crear(context.Background(), dto.CrearProductoRequest{Nombre: "   "})
	campos := requireCampos(t, err)
	assert.Equal(t, []string{model.MsgObligatorio}, campos["nombre"])
	assert.Equal(t, []string{model.MsgObligatorio}, campos["precio"])
	assert.Empty(t, repo.productos)
}

func TestProductoService_Actualizar_PrecioInvalidoNoSeGuarda(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)
	precio := decimal.RequireFromString("10.00")
	creado, err := svc.Crear(context.Background(), dto.CrearProductoRequest{Nombre: "Luz", Precio: &precio})
	require.NoError(t, err)

	malo := decimal.RequireFromString("10.005")
	_, err = svc.Actualizar(context.Background(), creado.ID, dto.ActualizarProductoRequest{Precio: &malo})
	assert.Contains(t, requireCampos(t, err), "precio")
	assert.True(t, repo.productos[creado.ID].Precio.Equal(precio))
}
