package schedule

import (
	"context"
	"time"

	"github.com/barbershop/scheduler/internal/models"
)

// Contratos de persistência consumidos pelos use cases. Cada interface
// carrega exatamente o que o núcleo precisa; o motor de armazenamento
// por trás pode ser trocado sem tocar nas regras.

type CustomerStore interface {
	FindByID(ctx context.Context, id string) (*models.Customer, error)
}

type ServiceStore interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.Service, error)
}

type ScheduleStore interface {
	// FindConflicting retorna os agendamentos CONFIRMADOS do barbeiro
	// dentro da janela de conflito iniciada em date.
	FindConflicting(
		ctx context.Context,
		barberID string,
		date time.Time,
	) ([]models.Schedule, error)

	// Create persiste o agendamento e as linhas de ScheduleService em uma
	// única transação, congelando o preço cadastrado de cada serviço.
	Create(
		ctx context.Context,
		sch *models.Schedule,
		services []models.Service,
	) error

	FindByID(ctx context.Context, id string) (*models.Schedule, error)

	Update(ctx context.Context, sch *models.Schedule) error

	FindByDate(ctx context.Context, date time.Time) ([]models.Schedule, error)

	FindByPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Schedule, error)

	FindByCustomer(ctx context.Context, customerID string) ([]models.Schedule, error)

	FindByBarber(ctx context.Context, barberID string) ([]models.Schedule, error)

	FindAll(ctx context.Context) ([]models.Schedule, error)
}
