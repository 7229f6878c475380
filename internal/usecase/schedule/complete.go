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

type CompleteSchedule struct {
	schedules domain.ScheduleStore
	audit     *audit.Dispatcher
}

func NewCompleteSchedule(
	schedules domain.ScheduleStore,
	auditDispatcher *audit.Dispatcher,
) *CompleteSchedule {
	return &CompleteSchedule{
		schedules: schedules,
		audit:     auditDispatcher,
	}
}

func (uc *CompleteSchedule) Execute(
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

	if !domain.Complete(sch, timezone.Now()) {
		return nil, httperr.ErrBusiness(
			httperr.CodeInvalidTransition,
			"Apenas agendamentos confirmados podem ser concluídos.",
		)
	}

	if err := uc.schedules.Update(ctx, sch); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "schedule_completed",
		Entity:   "schedule",
		EntityID: &sch.ID,
	})

	return sch, nil
}
