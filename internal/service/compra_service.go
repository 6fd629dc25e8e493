package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	msgDetalleDuplicado = "Ya existe un detalle con esta compra y producto."
	msgCantidadExcedida = "La cantidad total de este producto excede el máximo permitido."
)

// CompraService covers purchases and their line items. Totals and subtotals
// are never stored: every response is built from a fresh read so it uses the
// products' current prices.
type CompraService interface {
	Crear(ctx context.Context, req dto.CrearCompraRequest) (*dto.CompraResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (*dto.CompraResponse, error)
	Listar(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarCompraRequest) (*dto.CompraResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Total(ctx context.Context, id uint) (decimal.Decimal, error)

	AgregarDetalle(ctx context.Context, compraID uint, req dto.DetalleCompraRequest) (*dto.DetalleCompraResponse, error)
	ListarDetalles(ctx context.Context, filter dto.DetalleFilter) ([]dto.DetalleCompraResponse, error)
	ActualizarDetalle(ctx context.Context, id uint, req dto.ActualizarDetalleRequest) (*dto.DetalleCompraResponse, error)
	EliminarDetalle(ctx context.Context, id uint) error
}

type compraService struct {
	repo repository.CompraRepository
}

func NewCompraService(repo repository.CompraRepository) CompraService {
	return &compraService{repo: repo}
}

func mapDetalle(d *model.DetalleCompra) dto.DetalleCompraResponse {
	resp := dto.DetalleCompraResponse{
		ID:         d.ID,
		CompraID:   d.CompraID,
		ProductoID: d.ProductoID,
		Cantidad:   d.Cantidad,
		Subtotal:   d.Subtotal(),
	}
	if d.Producto != nil {
		resp.Producto = d.Producto.Nombre
		resp.PrecioUnitario = d.Producto.Precio
	}
	return resp
}

func mapCompra(c *model.Compra) *dto.CompraResponse {
	resp := &dto.CompraResponse{
		ID:          c.ID,
		ClienteID:   c.ClienteID,
		FechaCompra: c.Fecha().Format(time.DateOnly),
		Detalles:    make([]dto.DetalleCompraResponse, 0, len(c.Detalles)),
		Total:       c.Total(),
	}
	if c.Cliente != nil {
		resp.Cliente = c.Cliente.Nombre + " " + c.Cliente.Apellido
	}
	for i := range c.Detalles {
		resp.Detalles = append(resp.Detalles, mapDetalle(&c.Detalles[i]))
	}
	return resp
}

// fusionarDetalles validates each requested line and folds repeated products
// into one line with the summed quantity, keeping first-seen order.
func fusionarDetalles(items []dto.DetalleCompraRequest) ([]model.DetalleCompra, error) {
	verr := &model.ValidationError{}
	pos := make(map[uint]int, len(items))
	detalles := make([]model.DetalleCompra, 0, len(items))

	for n, it := range items {
		if it.ProductoID == 0 {
			verr.Agregar(fmt.Sprintf("detalles[%d].producto_id", n), model.MsgObligatorio)
		}
		if it.Cantidad < 1 {
			verr.Agregar(fmt.Sprintf("detalles[%d].cantidad", n), "Asegúrese de que este valor sea mayor o igual a 1.")
		}
		if idx, ok := pos[it.ProductoID]; ok {
			if it.Cantidad > 0 && detalles[idx].Cantidad > math.MaxInt-it.Cantidad {
				verr.Agregar(fmt.Sprintf("detalles[%d].cantidad", n), msgCantidadExcedida)
				continue
			}
			detalles[idx].Cantidad += it.Cantidad
			continue
		}
		pos[it.ProductoID] = len(detalles)
		detalles = append(detalles, model.DetalleCompra{ProductoID: it.ProductoID, Cantidad: it.Cantidad})
	}
	if err := errOrNil(verr); err != nil {
		return nil, err
	}
	return detalles, nil
}

func parseFechaCompra(campo, s string) (time.Time, error) {
	f, err := time.Parse(time.DateOnly, s)
	if err != nil {
		verr := &model.ValidationError{}
		verr.Agregar(campo, "Introduzca una fecha válida (AAAA-MM-DD).")
		return time.Time{}, verr
	}
	return f, nil
}

func (s *compraService) Crear(ctx context.Context, req dto.CrearCompraRequest) (*dto.CompraResponse, error) {
	c := &model.Compra{ClienteID: req.ClienteID}
	if req.FechaCompra != "" {
		f, err := parseFechaCompra("fecha_compra", req.FechaCompra)
		if err != nil {
			return nil, err
		}
		c.FechaCompra = datatypes.Date(f)
	}
	if err := c.Validar(); err != nil {
		return nil, err
	}

	detalles, err := fusionarDetalles(req.Detalles)
	if err != nil {
		return nil, err
	}
	c.Detalles = detalles

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, c.ID)
}

func (s *compraService) ObtenerPorID(ctx context.Context, id uint) (*dto.CompraResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapCompra(c), nil
}

func (s *compraService) Listar(ctx context.Context, filter dto.CompraFilter) (*dto.CompraListResponse, error) {
	list, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.CompraResponse, 0, len(list))
	for i := range list {
		data = append(data, *mapCompra(&list[i]))
	}
	return &dto.CompraListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *compraService) Actualizar(ctx context.Context, id uint, req dto.ActualizarCompraRequest) (*dto.CompraResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.ClienteID != nil {
		c.ClienteID = *req.ClienteID
		c.Cliente = nil
	}
	if req.FechaCompra != nil {
		f, err := parseFechaCompra("fecha_compra", *req.FechaCompra)
		if err != nil {
			return nil, err
		}
		c.FechaCompra = datatypes.Date(f)
	}
	if err := c.Validar(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *compraService) Eliminar(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func (s *compraService) Total(ctx context.Context, id uint) (decimal.Decimal, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return c.Total(), nil
}

// AgregarDetalle adds one line to an existing purchase. A second line for a
// product already on the purchase is rejected, not merged.
func (s *compraService) AgregarDetalle(ctx context.Context, compraID uint, req dto.DetalleCompraRequest) (*dto.DetalleCompraResponse, error) {
	if _, err := s.repo.FindByID(ctx, compraID); err != nil {
		return nil, err
	}

	d := &model.DetalleCompra{CompraID: compraID, ProductoID: req.ProductoID, Cantidad: req.Cantidad}
	verr, err := validacionDe(d)
	if err != nil {
		return nil, err
	}
	if d.ProductoID != 0 {
		existentes, err := s.repo.ListDetalles(ctx, dto.DetalleFilter{CompraID: compraID, ProductoID: d.ProductoID})
		if err != nil {
			return nil, err
		}
		if len(existentes) > 0 {
			verr.Agregar("producto_id", msgDetalleDuplicado)
		}
	}
	if err := errOrNil(verr); err != nil {
		return nil, err
	}

	if err := s.repo.CreateDetalle(ctx, d); err != nil {
		return nil, err
	}
	return s.obtenerDetalle(ctx, d.ID)
}

func (s *compraService) obtenerDetalle(ctx context.Context, id uint) (*dto.DetalleCompraResponse, error) {
	d, err := s.repo.FindDetalleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapDetalle(d)
	return &resp, nil
}

func (s *compraService) ListarDetalles(ctx context.Context, filter dto.DetalleFilter) ([]dto.DetalleCompraResponse, error) {
	if filter.CompraID != 0 {
		if _, err := s.repo.FindByID(ctx, filter.CompraID); err != nil {
			return nil, err
		}
	}
	list, err := s.repo.ListDetalles(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.DetalleCompraResponse, 0, len(list))
	for i := range list {
		data = append(data, mapDetalle(&list[i]))
	}
	return data, nil
}

func (s *compraService) ActualizarDetalle(ctx context.Context, id uint, req dto.ActualizarDetalleRequest) (*dto.DetalleCompraResponse, error) {
	d, err := s.repo.FindDetalleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Cantidad = req.Cantidad
	if err := d.Validar(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateDetalle(ctx, d); err != nil {
		return nil, err
	}
	resp := mapDetalle(d)
	return &resp, nil
}

func (s *compraService) EliminarDetalle(ctx context.Context, id uint) error {
	return s.repo.DeleteDetalle(ctx, id)
}
