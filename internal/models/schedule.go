package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Schedule struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerID string   `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	BarberID string `gorm:"type:uuid;not null;index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	Date time.Time `gorm:"not null;index" json:"date"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	Services []ScheduleService `gorm:"foreignKey:ScheduleID" json:"services"`

	CanceledAt  *time.Time `json:"canceled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// ScheduleService registra cada serviço incluído em um agendamento com o
// preço congelado no momento da reserva. Alterações posteriores no preço
// do Service não afetam agendamentos já criados.
type ScheduleService struct {
	ScheduleID string `gorm:"type:uuid;primaryKey" json:"schedule_id"`

	ServiceID string  `gorm:"type:uuid;primaryKey" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	Price float64 `gorm:"not null" json:"price"`
}
