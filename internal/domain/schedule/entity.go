package schedule

import (
	"time"

	"github.com/barbershop/scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transições ilegais são no-op e retornam false: regra de negócio
// recusada não é erro de sistema.

func Confirm(s *models.Schedule, now time.Time) bool {
	if !CanConfirm(Status(s.Status)) {
		return false
	}

	s.Status = string(StatusConfirmed)
	s.UpdatedAt = now
	return true
}

func Cancel(s *models.Schedule, now time.Time) bool {
	if !CanCancel(Status(s.Status)) {
		return false
	}

	s.Status = string(StatusCanceled)
	s.CanceledAt = &now
	s.UpdatedAt = now
	return true
}

func Complete(s *models.Schedule, now time.Time) bool {
	if !CanComplete(Status(s.Status)) {
		return false
	}

	s.Status = string(StatusCompleted)
	s.CompletedAt = &now
	s.UpdatedAt = now
	return true
}
