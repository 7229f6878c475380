package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/barbershop/scheduler/internal/domain/schedule"
	"github.com/barbershop/scheduler/internal/models"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

// FindByIDs retorna apenas os serviços encontrados; ids repetidos ou
// inexistentes resultam em menos linhas do que o pedido, e o chamador
// compara as contagens.
func (r *ServiceGormRepository) FindByIDs(
	ctx context.Context,
	ids []string,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return []models.Service{}, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

var _ domain.ServiceStore = (*ServiceGormRepository)(nil)
