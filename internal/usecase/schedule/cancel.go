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

type CancelSchedule struct {
	schedules domain.ScheduleStore
	audit     *audit.Dispatcher
}

func NewCancelSchedule(
	schedules domain.ScheduleStore,
	auditDispatcher *audit.Dispatcher,
) *CancelSchedule {
	return &CancelSchedule{
		schedules: schedules,
		audit:     auditDispatcher,
	}
}

func (uc *CancelSchedule) Execute(
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

	if !domain.Cancel(sch, timezone.Now()) {
		return nil, httperr.ErrBusiness(
			httperr.CodeInvalidTransition,
			"Agendamento não pode ser cancelado no status atual.",
		)
	}

	if err := uc.schedules.Update(ctx, sch); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_canceled",
		Entity:   "schedule",
		EntityID: &sch.ID,
	})

	return sch, nil
}
