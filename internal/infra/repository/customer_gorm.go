package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/barbershop/scheduler/internal/domain/schedule"
	"github.com/barbershop/scheduler/internal/models"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// FindByID retorna (nil, nil) quando o cliente não existe; o use case
// decide a rejeição.
func (r *CustomerGormRepository) FindByID(
	ctx context.Context,
	id string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&customer, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &customer, nil
}

var _ domain.CustomerStore = (*CustomerGormRepository)(nil)
