package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Catálogo global de horários de início agendáveis (08:00 ... 17:30).
type TimeSlot struct {
	ID   string `gorm:"type:uuid;primaryKey" json:"id"`
	Time string `gorm:"size:5;uniqueIndex;not null" json:"time"` // HH:mm
}

func (ts *TimeSlot) BeforeCreate(tx *gorm.DB) error {
	if ts.ID == "" {
		ts.ID = uuid.NewString()
	}
	return nil
}
