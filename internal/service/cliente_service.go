package service

import (
	"context"
	"errors"
	"strings"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/repository"
)

const (
	msgCorreoDuplicado = "Ya existe un cliente con este correo electrónico."
	msgCedulaDuplicada = "Ya existe un cliente con esta cédula."
)

// ClienteService defines the business operations for customers.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func mapCliente(c *model.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		Direccion: c.Direccion,
		Correo:    c.Correo,
		Cedula:    c.Cedula,
		Telefono:  c.Telefono,
	}
}

// validar combines the field rules with the correo/cedula uniqueness checks
// so the caller gets every problem in one ValidationError. A concurrent
// insert can still slip past the lookup; the unique index then rejects it
// with an IntegrityError.
func (s *clienteService) validar(ctx context.Context, c *model.Cliente) error {
	verr, err := validacionDe(c)
	if err != nil {
		return err
	}

	if c.Correo != "" {
		existing, err := s.repo.FindByCorreo(ctx, c.Correo)
		if err != nil && !errors.Is(err, repository.ErrNoEncontrado) {
			return err
		}
		if existing != nil && existing.ID != c.ID {
			verr.Agregar("correo", msgCorreoDuplicado)
		}
	}
	if c.Cedula != "" {
		existing, err := s.repo.FindByCedula(ctx, c.Cedula)
		if err != nil && !errors.Is(err, repository.ErrNoEncontrado) {
			return err
		}
		if existing != nil && existing.ID != c.ID {
			verr.Agregar("cedula", msgCedulaDuplicada)
		}
	}
	return errOrNil(verr)
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (*dto.ClienteResponse, error) {
	c := &model.Cliente{
		Nombre:    strings.TrimSpace(req.Nombre),
		Apellido:  strings.TrimSpace(req.Apellido),
		Direccion: strings.TrimSpace(req.Direccion),
		Correo:    strings.TrimSpace(req.Correo),
		Cedula:    strings.TrimSpace(req.Cedula),
		Telefono:  strings.TrimSpace(req.Telefono),
	}
	if err := s.validar(ctx, c); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return mapCliente(c), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapCliente(c), nil
}

func (s *clienteService) Listar(ctx context.Context, filter dto.ClienteFilter) (*dto.ClienteListResponse, error) {
	list, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ClienteResponse, 0, len(list))
	for i := range list {
		data = append(data, *mapCliente(&list[i]))
	}
	return &dto.ClienteListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (*dto.ClienteResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&c.Nombre, req.Nombre)
	set(&c.Apellido, req.Apellido)
	set(&c.Direccion, req.Direccion)
	set(&c.Correo, req.Correo)
	set(&c.Cedula, req.Cedula)
	set(&c.Telefono, req.Telefono)

	if err := s.validar(ctx, c); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return mapCliente(c), nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
