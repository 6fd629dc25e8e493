package service

import (
	"context"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/repository"
)

// InventarioService manages the inventory rows of each product. Quantities
// are set explicitly; nothing here decrements stock on a purchase.
type InventarioService interface {
	Crear(ctx context.Context, req dto.CrearInventarioRequest) (*dto.InventarioResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.InventarioResponse, error)
	Listar(ctx context.Context, filter dto.InventarioFilter) (*dto.InventarioListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarInventarioRequest) (*dto.InventarioResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type inventarioService struct {
	repo repository.InventarioRepository
}

func NewInventarioService(repo repository.InventarioRepository) InventarioService {
	return &inventarioService{repo: repo}
}

func mapInventario(i *model.Inventario) *dto.InventarioResponse {
	resp := &dto.InventarioResponse{
		ID:         i.ID,
		ProductoID: i.ProductoID,
		Cantidad:   i.Cantidad,
	}
	if i.Producto != nil {
		resp.Producto = i.Producto.Nombre
	}
	return resp
}

// Crear relies on the foreign key to reject an unknown producto_id.
func (s *inventarioService) Crear(ctx context.Context, req dto.CrearInventarioRequest) (*dto.InventarioResponse, error) {
	i := &model.Inventario{ProductoID: req.ProductoID, Cantidad: req.Cantidad}
	if err := i.Validar(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, i.ID)
}

func (s *inventarioService) ObtenerPorID(ctx context.Context, id uint) (*dto.InventarioResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapInventario(i), nil
}

func (s *inventarioService) Listar(ctx context.Context, filter dto.InventarioFilter) (*dto.InventarioListResponse, error) {
	list, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.InventarioResponse, 0, len(list))
	for i := range list {
		data = append(data, *mapInventario(&list[i]))
	}
	return &dto.InventarioListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *inventarioService) Actualizar(ctx context.Context, id uint, req dto.ActualizarInventarioRequest) (*dto.InventarioResponse, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Cantidad != nil {
		i.Cantidad = *req.Cantidad
	}
	if err := i.Validar(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return mapInventario(i), nil
}

func (s *inventarioService) Eliminar(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
