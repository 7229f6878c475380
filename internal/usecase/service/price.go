package service

import (
	"context"

	domain "github.com/barbershop/scheduler/internal/domain/schedule"
	servicedomain "github.com/barbershop/scheduler/internal/domain/service"
	"github.com/barbershop/scheduler/internal/httperr"
)

// CalculateServicePrice é o caminho de COTAÇÃO: aplica os preços de tabela
// e o desconto de combo. O valor congelado no agendamento segue outro
// caminho (preço cadastrado) e pode divergir desta cotação.
type CalculateServicePrice struct {
	services domain.ServiceStore
}

func NewCalculateServicePrice(services domain.ServiceStore) *CalculateServicePrice {
	return &CalculateServicePrice{services: services}
}

func (uc *CalculateServicePrice) Execute(
	ctx context.Context,
	serviceIDs []string,
) (float64, error) {

	if len(serviceIDs) == 0 {
		return 0, nil
	}

	services, err := uc.services.FindByIDs(ctx, serviceIDs)
	if err != nil {
		return 0, err
	}

	if len(services) != len(serviceIDs) {
		return 0, httperr.ErrNotFound(
			httperr.CodeServiceNotFound,
			"Um ou mais serviços solicitados não foram encontrados.",
		)
	}

	return servicedomain.CalculateTotalPrice(services), nil
}
