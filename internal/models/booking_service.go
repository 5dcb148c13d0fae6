package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Linha de serviço de um agendamento. O preço é capturado na criação e
// nunca muda, mesmo que o Service seja reprecificado depois.
type BookingService struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BookingID string `gorm:"type:uuid;not null;index" json:"booking_id"`

	ServiceID string  `gorm:"type:uuid;not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service,omitempty"`

	Price int64 `gorm:"not null" json:"price"`
}

func (bs *BookingService) BeforeCreate(tx *gorm.DB) error {
	if bs.ID == "" {
		bs.ID = uuid.NewString()
	}
	return nil
}
