package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer é o perfil de atendimento 1:1 com User. A idade nunca é
// armazenada; deriva sempre de BirthDate.
type Customer struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	BirthDate  time.Time `gorm:"not null" json:"birth_date"`
	HasAllergy bool      `gorm:"default:false" json:"has_allergy"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
