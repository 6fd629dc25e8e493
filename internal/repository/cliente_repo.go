package repository

import (
	"context"

	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/dto"
	"github.com/PUCETEC-PROG2/proyecto-final-grupo-8-tienda-scooters/internal/model"

	"gorm.io/gorm"
)

// ClienteRepository defines the data access contract for customers.
// Services depend on this interface, not on the concrete GORM implementation.
type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	FindByCedula(ctx context.Context, cedula string) (*model.Cliente, error)
	FindByCorreo(ctx context.Context, correo string) (*model.Cliente, error)
	List(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error)
	Update(ctx context.Context, c *model.Cliente) error
	// Delete removes the customer; the database cascades to its compras and
	// their detalles.
	Delete(ctx context.Context, id uint) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return traducirError(r.db.WithContext(ctx).Create(c).Error, "clientes")
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, traducirError(err, "clientes")
	}
	return &c, nil
}

func (r *clienteRepo) FindByCedula(ctx context.Context, cedula string) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).Where("cedula = ?", cedula).First(&c).Error; err != nil {
		return nil, traducirError(err, "clientes")
	}
	return &c, nil
}

func (r *clienteRepo) FindByCorreo(ctx context.Context, correo string) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).Where("correo = ?", correo).First(&c).Error; err != nil {
		return nil, traducirError(err, "clientes")
	}
	return &c, nil
}

func (r *clienteRepo) List(ctx context.Context, filter dto.ClienteFilter) ([]model.Cliente, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Cliente{})
	if filter.Cedula != "" {
		q = q.Where("cedula = ?", filter.Cedula)
	}
	if filter.Correo != "" {
		q = q.Where("correo = ?", filter.Correo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, limit := paginar(filter.Page, filter.Limit, 20, 100)
	var clientes []model.Cliente
	err := q.Order("apellido ASC, nombre ASC, id ASC").Offset(offset).Limit(limit).Find(&clientes).Error
	return clientes, total, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return traducirError(r.db.WithContext(ctx).Save(c).Error, "clientes")
}

func (r *clienteRepo) Delete(ctx context.Context, id uint) error {
	return exigirFila(r.db.WithContext(ctx).Delete(&model.Cliente{}, id), "clientes")
}
