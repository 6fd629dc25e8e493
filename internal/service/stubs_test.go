package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

func noEncontrado(tabla string) error {
	return fmt.Errorf("%s: %w", tabla, repository.ErrNoEncontrado)
}

type stubClienteRepo struct {
	clientes map[uint]*model.Cliente
	nextID   uint
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uint]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.clientes[c.ID] = &cp
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, noEncontrado("clientes")
	}
	cp := *c
	return &cp, nil
}

func (r *stubClienteRepo) find(match func(*model.Cliente) bool) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if match(c) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, noEncontrado("clientes")
}

func (r *stubClienteRepo) FindByCedula(_ context.Context, cedula string) (*model.Cliente, error) {
	return r.find(func(c *model.Cliente) bool { return c.Cedula == cedula })
}

func (r *stubClienteRepo) FindByCorreo(_ context.Context, correo string) (*model.Cliente, error) {
	return r.find(func(c *model.Cliente) bool { return strings.EqualFold(c.Correo, correo) })
}

func (r *stubClienteRepo) List(_ context.Context, _ dto.ClienteFilter) ([]model.Cliente, int64, error) {
	result := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		result = append(result, *c)
	}
	return result, int64(len(result)), nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	cp := *c
	r.clientes[c.ID] = &cp
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.clientes[id]; !ok {
		return noEncontrado("clientes")
	}
	delete(r.clientes, id)
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// stubCompraRepo keeps compras and detalles apart and joins the current
// product on every read, like the GORM preloads do.
type stubCompraRepo struct {
	productos map[uint]*model.Producto
	compras   map[uint]*model.Compra
	detalles  map[uint]*model.DetalleCompra
	nextID    uint
}

func newStubCompraRepo() *stubCompraRepo {
	return &stubCompraRepo{
		productos: make(map[uint]*model.Producto),
		compras:   make(map[uint]*model.Compra),
		detalles:  make(map[uint]*model.DetalleCompra),
	}
}

func (r *stubCompraRepo) seedProducto(nombre, precio string) *model.Producto {
	r.nextID++
	p := &model.Producto{ID: r.nextID, Nombre: nombre, Precio: decimal.RequireFromString(precio)}
	r.productos[p.ID] = p
	return p
}

func (r *stubCompraRepo) Create(_ context.Context, c *model.Compra) error {
	if c.Fecha().IsZero() {
		c.FechaCompra = datatypes.Date(model.Hoy())
	}
	r.nextID++
	c.ID = r.nextID
	for i := range c.Detalles {
		c.Detalles[i].CompraID = c.ID
		if err := r.CreateDetalle(context.Background(), &c.Detalles[i]); err != nil {
			return err
		}
	}
	r.compras[c.ID] = &model.Compra{ID: c.ID, ClienteID: c.ClienteID, FechaCompra: c.FechaCompra}
	return nil
}

func (r *stubCompraRepo) FindByID(_ context.Context, id uint) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, noEncontrado("compras")
	}
	cp := *c
	cp.Detalles, _ = r.ListDetalles(context.Background(), dto.DetalleFilter{CompraID: id})
	return &cp, nil
}

func (r *stubCompraRepo) List(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error) {
	var result []model.Compra
	for id, c := range r.compras {
		if filter.ClienteID != 0 && c.ClienteID != filter.ClienteID {
			continue
		}
		full, _ := r.FindByID(ctx, id)
		result = append(result, *full)
	}
	return result, int64(len(result)), nil
}

func (r *stubCompraRepo) Update(_ context.Context, c *model.Compra) error {
	r.compras[c.ID] = &model.Compra{ID: c.ID, ClienteID: c.ClienteID, FechaCompra: c.FechaCompra}
	return nil
}

func (r *stubCompraRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.compras[id]; !ok {
		return noEncontrado("compras")
	}
	delete(r.compras, id)
	for did, d := range r.detalles {
		if d.CompraID == id {
			delete(r.detalles, did)
		}
	}
	return nil
}

func (r *stubCompraRepo) CreateDetalle(_ context.Context, d *model.DetalleCompra) error {
	for _, e := range r.detalles {
		if e.CompraID == d.CompraID && e.ProductoID == d.ProductoID {
			return &repository.IntegrityError{Tabla: "detalle_compras", Err: gorm.ErrDuplicatedKey}
		}
	}
	r.nextID++
	d.ID = r.nextID
	r.detalles[d.ID] = &model.DetalleCompra{ID: d.ID, CompraID: d.CompraID, ProductoID: d.ProductoID, Cantidad: d.Cantidad}
	return nil
}

func (r *stubCompraRepo) conProducto(d *model.DetalleCompra) model.DetalleCompra {
	cp := *d
	if p, ok := r.productos[d.ProductoID]; ok {
		pc := *p
		cp.Producto = &pc
	}
	return cp
}

func (r *stubCompraRepo) FindDetalleByID(_ context.Context, id uint) (*model.DetalleCompra, error) {
	d, ok := r.detalles[id]
	if !ok {
		return nil, noEncontrado("detalle_compras")
	}
	cp := r.conProducto(d)
	return &cp, nil
}

func (r *stubCompraRepo) ListDetalles(_ context.Context, filter dto.DetalleFilter) ([]model.DetalleCompra, error) {
	var result []model.DetalleCompra
	for id := uint(1); id <= r.nextID; id++ {
		d, ok := r.detalles[id]
		if !ok {
			continue
		}
		if filter.CompraID != 0 && d.CompraID != filter.CompraID {
			continue
		}
		if filter.ProductoID != 0 && d.ProductoID != filter.ProductoID {
			continue
		}
		result = append(result, r.conProducto(d))
	}
	return result, nil
}

func (r *stubCompraRepo) UpdateDetalle(_ context.Context, d *model.DetalleCompra) error {
	r.detalles[d.ID] = &model.DetalleCompra{ID: d.ID, CompraID: d.CompraID, ProductoID: d.ProductoID, Cantidad: d.Cantidad}
	return nil
}

func (r *stubCompraRepo) DeleteDetalle(_ context.Context, id uint) error {
	if _, ok := r.detalles[id]; !ok {
		return noEncontrado("detalle_compras")
	}
	delete(r.detalles, id)
	return nil
}

var _ repository.CompraRepository = (*stubCompraRepo)(nil)
