package service

import (
	"context"
	"strings"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/repository"
)

// ProductoService defines the business logic contract for products.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	// Eliminar cascades to the product's inventarios and detalles.
	Eliminar(ctx context.Context, id uint) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func mapProducto(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
	}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	p := &model.Producto{
		Nombre:      strings.TrimSpace(req.Nombre),
		Descripcion: req.Descripcion,
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}

	verr, err := validacionDe(p)
	if err != nil {
		return nil, err
	}
	if req.Precio == nil {
		verr.Agregar("precio", model.MsgObligatorio)
	}
	if err := errOrNil(verr); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return mapProducto(p), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, id uint) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapProducto(p), nil
}

func (s *productoService) Listar(ctx context.Context, filter dto.ProductoFilter) (*dto.ProductoListResponse, error) {
	list, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductoResponse, 0, len(list))
	for i := range list {
		data = append(data, *mapProducto(&list[i]))
	}
	return &dto.ProductoListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// Actualizar changes the product in place. A price change is visible in the
// subtotal of every existing detalle that references the product.
func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Nombre != nil {
		p.Nombre = strings.TrimSpace(*req.Nombre)
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}

	if err := p.Validar(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return mapProducto(p), nil
}

func (s *productoService) Eliminar(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
