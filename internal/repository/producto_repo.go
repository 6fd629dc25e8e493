package repository

import (
	"context"
	"strings"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductoRepository defines the data access contract for products.
type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uint) (*model.Producto, error)
	List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error)
	Update(ctx context.Context, p *model.Producto) error
	// Delete removes the product; the database cascades to its inventarios
	// and to every detalle_compra that references it.
	Delete(ctx context.Context, id uint) error
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return traducirError(r.db.WithContext(ctx).Create(p).Error, "productos")
}

func (r *productoRepo) FindByID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, traducirError(err, "productos")
	}
	return &p, nil
}

func (r *productoRepo) List(ctx context.Context, filter dto.ProductoFilter) ([]model.Producto, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Producto{})

	if filter.Nombre != "" {
		// lower() on both sides keeps this portable (no ILIKE on sqlite/mysql)
		q = q.Where("lower(nombre) LIKE ?", "%"+strings.ToLower(filter.Nombre)+"%")
	}
	if d, err := decimal.NewFromString(filter.Precio); err == nil {
		q = q.Where("precio = ?", d)
	}
	if d, err := decimal.NewFromString(filter.PrecioMin); err == nil {
		q = q.Where("precio >= ?", d)
	}
	if d, err := decimal.NewFromString(filter.PrecioMax); err == nil {
		q = q.Where("precio <= ?", d)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginar(filter.Page, filter.Limit, 20, 100)
	var productos []model.Producto
	err := q.Order("nombre ASC, id ASC").Offset(offset).Limit(limit).Find(&productos).Error
	return productos, total, err
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return traducirError(r.db.WithContext(ctx).Save(p).Error, "productos")
}

func (r *productoRepo) Delete(ctx context.Context, id uint) error {
	return exigirFila(r.db.WithContext(ctx).Delete(&model.Producto{}, id), "productos")
}
