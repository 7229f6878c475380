package schedule

import (
	"context"
	"time"

	domain "github.com/barbershop/scheduler/internal/domain/schedule"
	"github.com/barbershop/scheduler/internal/models"
)

type ListSchedules struct {
	schedules domain.ScheduleStore
}

func NewListSchedules(schedules domain.ScheduleStore) *ListSchedules {
	return &ListSchedules{schedules: schedules}
}

func (uc *ListSchedules) ByDate(ctx context.Context, date time.Time) ([]models.Schedule, error) {
	return uc.schedules.FindByDate(ctx, date)
}

func (uc *ListSchedules) ByCustomer(ctx context.Context, customerID string) ([]models.Schedule, error) {
	return uc.schedules.FindByCustomer(ctx, customerID)
}

func (uc *ListSchedules) ByBarber(ctx context.Context, barberID string) ([]models.Schedule, error) {
	return uc.schedules.FindByBarber(ctx, barberID)
}

func (uc *ListSchedules) All(ctx context.Context) ([]models.Schedule, error) {
	return uc.schedules.FindAll(ctx)
}
