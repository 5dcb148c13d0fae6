package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Template semanal recorrente. Uma linha por (especialista, dia da semana).
type SpecialistAvailability struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SpecialistID string     `gorm:"type:uuid;not null;uniqueIndex:idx_specialist_weekday" json:"specialist_id"`
	Specialist   Specialist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// 0 = domingo ... 6 = sábado
	DayOfWeek int `gorm:"not null;uniqueIndex:idx_specialist_weekday" json:"day_of_week"`

	StartTime string `gorm:"size:5" json:"start_time"` // HH:mm
	EndTime   string `gorm:"size:5" json:"end_time"`   // HH:mm

	// Permite marcar o dia como indisponível mesmo com a linha presente
	IsAvailable bool `gorm:"default:true" json:"is_available"`
}

func (sa *SpecialistAvailability) BeforeCreate(tx *gorm.DB) error {
	if sa.ID == "" {
		sa.ID = uuid.NewString()
	}
	return nil
}
