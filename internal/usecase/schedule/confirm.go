package schedule

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/barbershop/scheduler/internal/audit"
	domain "github.com/barbershop/scheduler/internal/domain/schedule"
	"github.com/barbershop/scheduler/internal/httperr"
	"github.com/barbershop/scheduler/internal/models"
	"github.com/barbershop/scheduler/internal/timezone"
)

type ConfirmSchedule struct {
	schedules domain.ScheduleStore
	audit     *audit.Dispatcher
}

func NewConfirmSchedule(
	schedules domain.ScheduleStore,
	auditDispatcher *audit.Dispatcher,
) *ConfirmSchedule {
	return &ConfirmSchedule{
		schedules: schedules,
		audit:     auditDispatcher,
	}
}

func (uc *ConfirmSchedule) Execute(
	ctx context.Context,
	scheduleID string,
) (*models.Schedule, error) {

	sch, err := uc.schedules.FindByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound(
				httperr.CodeScheduleNotFound,
				"Agendamento não encontrado.",
			)
		}
		return nil, err
	}

	if !domain.Confirm(sch, timezone.Now()) {
		return nil, httperr.ErrBusiness(
			httperr.CodeInvalidTransition,
			"Apenas agendamentos pendentes podem ser confirmados.",
		)
	}

	if err := uc.schedules.Update(ctx, sch); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_confirmed",
		Entity:   "schedule",
		EntityID: &sch.ID,
	})

	return sch, nil
}
