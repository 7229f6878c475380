package schedule_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domain "github.com/barbershop/scheduler/internal/domain/schedule"
	"github.com/barbershop/scheduler/internal/httperr"
	"github.com/barbershop/scheduler/internal/models"
	ucSchedule "github.com/barbershop/scheduler/internal/usecase/schedule"
)

func storedSchedule(status domain.Status) *models.Schedule {
	return &models.Schedule{
		ID:         uuid.NewString(),
		CustomerID: uuid.NewString(),
		BarberID:   uuid.NewString(),
		Status:     string(status),
	}
}

func TestConfirmSchedule_FromPending(t *testing.T) {
	schedules := new(MockScheduleStore)
	uc := ucSchedule.NewConfirmSchedule(schedules, nil)

	sch := storedSchedule(domain.StatusPending)

	schedules.On("FindByID", mock.Anything, sch.ID).Return(sch, nil)
	schedules.On("Update", mock.Anything, sch).Return(nil)

	out, err := uc.Execute(context.Background(), sch.ID)

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), out.Status)
	schedules.AssertExpectations(t)
}

func TestConfirmSchedule_IllegalTransition(t *testing.T) {
	schedules := new(MockScheduleStore)
	uc := ucSchedule.NewConfirmSchedule(schedules, nil)

	sch := storedSchedule(domain.StatusCanceled)

	schedules.On("FindByID", mock.Anything, sch.ID).Return(sch, nil)

	_, err := uc.Execute(context.Background(), sch.ID)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	assert.Equal(t, string(domain.StatusCanceled), sch.Status)
	schedules.AssertNotCalled(t, "Update")
}

func TestCancelSchedule_FromConfirmed(t *testing.T) {
	schedules := new(MockScheduleStore)
	uc := ucSchedule.NewCancelSchedule(schedules, nil)

	sch := storedSchedule(domain.StatusConfirmed)

	schedules.On("FindByID", mock.Anything, sch.ID).Return(sch, nil)
	schedules.On("Update", mock.Anything, sch).Return(nil)

	out, err := uc.Execute(context.Background(), sch.ID)

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceled), out.Status)
	assert.NotNil(t, out.CanceledAt)
	schedules.AssertExpectations(t)
}

// TestCancelSchedule_CompletedRejected: estado terminal não admite
// cancelamento e nada é persistido.
func TestCancelSchedule_CompletedRejected(t *testing.T) {
	schedules := new(MockScheduleStore)
	uc := ucSchedule.NewCancelSchedule(schedules, nil)

	sch := storedSchedule(domain.StatusCompleted)

	schedules.On("FindByID", mock.Anything, sch.ID).Return(sch, nil)

	_, err := uc.Execute(context.Background(), sch.ID)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	assert.Equal(t, string(domain.StatusCompleted), sch.Status)
	schedules.AssertNotCalled(t, "Update")
}

func TestCompleteSchedule_FromConfirmed(t *testing.T) {
	schedules := new(MockScheduleStore)
	uc := ucSchedule.NewCompleteSchedule(schedules, nil)

	sch := storedSchedule(domain.StatusConfirmed)

	schedules.On("FindByID", mock.Anything, sch.ID).Return(sch, nil)
	schedules.On("Update", mock.Anything, sch).Return(nil)

	out, err := uc.Execute(context.Background(), sch.ID)

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), out.Status)
	assert.NotNil(t, out.CompletedAt)
}

func TestCompleteSchedule_PendingRejected(t *testing.T) {
	schedules := new(MockScheduleStore)
	uc := ucSchedule.NewCompleteSchedule(schedules, nil)

	sch := storedSchedule(domain.StatusPending)

	schedules.On("FindByID", mock.Anything, sch.ID).Return(sch, nil)

	_, err := uc.Execute(context.Background(), sch.ID)

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
	assert.Equal(t, string(domain.StatusPending), sch.Status)
	schedules.AssertNotCalled(t, "Update")
}

func TestCancelSchedule_NotFound(t *testing.T) {
	schedules := new(MockScheduleStore)
	uc := ucSchedule.NewCancelSchedule(schedules, nil)

	id := uuid.NewString()
	schedules.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.Execute(context.Background(), id)

	ne, ok := httperr.AsNotFound(err)
	assert.True(t, ok)
	assert.Equal(t, httperr.CodeScheduleNotFound, ne.Code)
}
