package repository

import (
	"context"
	"time"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompraRepository covers purchases and their line items (detalles).
// Every read preloads Detalles.Producto so Subtotal/Total see current prices.
type CompraRepository interface {
	// Create inserts the compra and the detalles in c.Detalles in one
	// transaction; a failing detalle rolls the whole purchase back.
	Create(ctx context.Context, c *model.Compra) error
	FindByID(ctx context.Context, id uint) (*model.Compra, error)
	List(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error)
	// Update writes the compra's own columns; detalles are left untouched.
	Update(ctx context.Context, c *model.Compra) error
	Delete(ctx context.Context, id uint) error

	// Detalles
	CreateDetalle(ctx context.Context, d *model.DetalleCompra) error
	FindDetalleByID(ctx context.Context, id uint) (*model.DetalleCompra, error)
	ListDetalles(ctx context.Context, filter dto.DetalleFilter) ([]model.DetalleCompra, error)
	UpdateDetalle(ctx context.Context, d *model.DetalleCompra) error
	DeleteDetalle(ctx context.Context, id uint) error
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func preloadDetalles(db *gorm.DB) *gorm.DB {
	return db.Order("detalle_compras.id ASC")
}

func (r *compraRepo) Create(ctx context.Context, c *model.Compra) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(c).Error; err != nil {
			return err
		}
		for i := range c.Detalles {
			c.Detalles[i].CompraID = c.ID
			if err := tx.Omit(clause.Associations).Create(&c.Detalles[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return traducirError(err, "compras")
}

func (r *compraRepo) FindByID(ctx context.Context, id uint) (*model.Compra, error) {
	var c model.Compra
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Detalles", preloadDetalles).
		Preload("Detalles.Producto").
		First(&c, id).Error
	if err != nil {
		return nil, traducirError(err, "compras")
	}
	return &c, nil
}

func (r *compraRepo) List(ctx context.Context, filter dto.CompraFilter) ([]model.Compra, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Compra{})

	if filter.ClienteID != 0 {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if f, ok := parseFecha(filter.Fecha); ok {
		q = q.Where("fecha_compra = ?", f)
	}
	if f, ok := parseFecha(filter.Desde); ok {
		q = q.Where("fecha_compra >= ?", f)
	}
	if f, ok := parseFecha(filter.Hasta); ok {
		q = q.Where("fecha_compra <= ?", f)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginar(filter.Page, filter.Limit, 50, 200)
	var compras []model.Compra
	err := q.Preload("Cliente").
		Preload("Detalles", preloadDetalles).
		Preload("Detalles.Producto").
		Order("fecha_compra DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&compras).Error
	return compras, total, err
}

func (r *compraRepo) Update(ctx context.Context, c *model.Compra) error {
	return traducirError(r.db.WithContext(ctx).Omit(clause.Associations).Save(c).Error, "compras")
}

func (r *compraRepo) Delete(ctx context.Context, id uint) error {
	return exigirFila(r.db.WithContext(ctx).Delete(&model.Compra{}, id), "compras")
}

func (r *compraRepo) CreateDetalle(ctx context.Context, d *model.DetalleCompra) error {
	return traducirError(r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error, "detalle_compras")
}

func (r *compraRepo) FindDetalleByID(ctx context.Context, id uint) (*model.DetalleCompra, error) {
	var d model.DetalleCompra
	if err := r.db.WithContext(ctx).Preload("Producto").First(&d, id).Error; err != nil {
		return nil, traducirError(err, "detalle_compras")
	}
	return &d, nil
}

func (r *compraRepo) ListDetalles(ctx context.Context, filter dto.DetalleFilter) ([]model.DetalleCompra, error) {
	q := r.db.WithContext(ctx).Model(&model.DetalleCompra{})
	if filter.CompraID != 0 {
		q = q.Where("compra_id = ?", filter.CompraID)
	}
	if filter.ProductoID != 0 {
		q = q.Where("producto_id = ?", filter.ProductoID)
	}
	var detalles []model.DetalleCompra
	err := q.Preload("Producto").Order("id ASC").Find(&detalles).Error
	return detalles, err
}

func (r *compraRepo) UpdateDetalle(ctx context.Context, d *model.DetalleCompra) error {
	return traducirError(r.db.WithContext(ctx).Omit(clause.Associations).Save(d).Error, "detalle_compras")
}

func (r *compraRepo) DeleteDetalle(ctx context.Context, id uint) error {
	return exigirFila(r.db.WithContext(ctx).Delete(&model.DetalleCompra{}, id), "detalle_compras")
}

func parseFecha(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	f, err := time.Parse(time.DateOnly, s)
	return f, err == nil
}
