package repository

import (
	"context"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventarioRepository interface {
	Create(ctx context.Context, i *model.Inventario) error
	FindByID(ctx context.Context, id uint) (*model.Inventario, error)
	List(ctx context.Context, filter dto.InventarioFilter) ([]model.Inventario, int64, error)
	Update(ctx context.Context, i *model.Inventario) error
	Delete(ctx context.Context, id uint) error
}

type inventarioRepo struct{ db *gorm.DB }

func NewInventarioRepository(db *gorm.DB) InventarioRepository { return &inventarioRepo{db: db} }

// Writes omit associations: a preloaded Producto must never be upserted
// along with the inventory row.

func (r *inventarioRepo) Create(ctx context.Context, i *model.Inventario) error {
	return traducirError(r.db.WithContext(ctx).Omit(clause.Associations).Create(i).Error, "inventarios")
}

func (r *inventarioRepo) FindByID(ctx context.Context, id uint) (*model.Inventario, error) {
	var i model.Inventario
	if err := r.db.WithContext(ctx).Preload("Producto").First(&i, id).Error; err != nil {
		return nil, traducirError(err, "inventarios")
	}
	return &i, nil
}

func (r *inventarioRepo) List(ctx context.Context, filter dto.InventarioFilter) ([]model.Inventario, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Inventario{})
	if filter.ProductoID != 0 {
		q = q.Where("producto_id = ?", filter.ProductoID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginar(filter.Page, filter.Limit, 50, 200)
	var inventarios []model.Inventario
	err := q.Preload("Producto").Order("id ASC").Offset(offset).Limit(limit).Find(&inventarios).Error
	return inventarios, total, err
}

func (r *inventarioRepo) Update(ctx context.Context, i *model.Inventario) error {
	return traducirError(r.db.WithContext(ctx).Omit(clause.Associations).Save(i).Error, "inventarios")
}

func (r *inventarioRepo) Delete(ctx context.Context, id uint) error {
	return exigirFila(r.db.WithContext(ctx).Delete(&model.Inventario{}, id), "inventarios")
}
