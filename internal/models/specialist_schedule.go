package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Override para uma data concreta. Quando existe para (especialista, data),
// substitui completamente o template semanal naquele dia.
type SpecialistSchedule struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SpecialistID string     `gorm:"type:uuid;not null;uniqueIndex:idx_specialist_date" json:"specialist_id"`
	Specialist   Specialist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_specialist_date" json:"date"` // YYYY-MM-DD

	TimeSlots []string `gorm:"serializer:json" json:"time_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ss *SpecialistSchedule) BeforeCreate(tx *gorm.DB) error {
	if ss.ID == "" {
		ss.ID = uuid.NewString()
	}
	return nil
}
