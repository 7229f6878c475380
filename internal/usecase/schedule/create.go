package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/barbershop/scheduler/internal/audit"
	customerdomain "github.com/barbershop/scheduler/internal/domain/customer"
	domain "github.com/barbershop/scheduler/internal/domain/schedule"
	"github.com/barbershop/scheduler/internal/httperr"
	"github.com/barbershop/scheduler/internal/models"
	"github.com/barbershop/scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateScheduleInput struct {
	CustomerID string
	BarberID   string
	Date       time.Time
	ServiceIDs []string
}

// ======================================================
// USE CASE
// ======================================================

type CreateSchedule struct {
	schedules domain.ScheduleStore
	customers domain.CustomerStore
	services  domain.ServiceStore
	audit     *audit.Dispatcher
	log       *zap.Logger
}

func NewCreateSchedule(
	schedules domain.ScheduleStore,
	customers domain.CustomerStore,
	services domain.ServiceStore,
	auditDispatcher *audit.Dispatcher,
	log *zap.Logger,
) *CreateSchedule {
	return &CreateSchedule{
		schedules: schedules,
		customers: customers,
		services:  services,
		audit:     auditDispatcher,
		log:       log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute roda o pipeline de validação na ordem fixa: feriado,
// antecedência, conflito, cliente, elegibilidade, serviços. Cada regra que
// falha interrompe com a rejeição específica; nenhuma escrita acontece
// antes do commit final.
func (uc *CreateSchedule) Execute(
	ctx context.Context,
	in CreateScheduleInput,
) (*models.Schedule, error) {

	now := timezone.Now()

	// --------------------------------------------------
	// 1–2. Regras de data (feriado, antecedência mínima)
	// --------------------------------------------------
	if err := domain.ValidateDate(in.Date, now); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Conflito de horário (só CONFIRMADOS bloqueiam)
	// --------------------------------------------------
	conflicting, err := uc.schedules.FindConflicting(ctx, in.BarberID, in.Date)
	if err != nil {
		return nil, err
	}
	if len(conflicting) > 0 {
		return nil, httperr.ErrBusiness(
			httperr.CodeTimeConflict,
			"Já existe um agendamento confirmado para o horário solicitado.",
		)
	}

	// --------------------------------------------------
	// 4. Cliente existe
	// --------------------------------------------------
	cust, err := uc.customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if cust == nil {
		return nil, httperr.ErrNotFound(
			httperr.CodeCustomerNotFound,
			"Cliente não encontrado.",
		)
	}

	// --------------------------------------------------
	// 5. Elegibilidade (alergia antes de idade)
	// --------------------------------------------------
	if err := customerdomain.EligibilityError(cust, now); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Serviços existem (comparação por contagem: ids
	// duplicados casam menos linhas e são rejeitados)
	// --------------------------------------------------
	services, err := uc.services.FindByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}
	if len(services) != len(in.ServiceIDs) {
		return nil, httperr.ErrNotFound(
			httperr.CodeServiceNotFound,
			"Um ou mais serviços solicitados não foram encontrados.",
		)
	}

	// --------------------------------------------------
	// 7. Commit: PENDING + preços congelados, atômico
	// --------------------------------------------------
	sch := &models.Schedule{
		CustomerID: in.CustomerID,
		BarberID:   in.BarberID,
		Date:       in.Date,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.schedules.Create(ctx, sch, services); err != nil {
		return nil, err
	}

	uc.log.Info("schedule created",
		zap.String("schedule_id", sch.ID),
		zap.String("barber_id", in.BarberID),
		zap.Time("date", in.Date),
	)

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_created",
		Entity:   "schedule",
		EntityID: &sch.ID,
		Metadata: map[string]any{
			"customer_id": in.CustomerID,
			"barber_id":   in.BarberID,
			"services":    len(services),
		},
	})

	return sch, nil
}
