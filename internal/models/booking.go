package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	// Pode ficar sem especialista até um admin atribuir
	SpecialistID *string     `gorm:"type:uuid" json:"specialist_id"`
	Specialist   *Specialist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"specialist,omitempty"`

	BookingDate string `gorm:"size:10;not null" json:"booking_date"` // YYYY-MM-DD
	BookingTime string `gorm:"size:5;not null" json:"booking_time"`  // HH:mm

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Soma dos preços capturados nas linhas, fixada na criação
	TotalPrice int64 `gorm:"not null" json:"total_price"`

	Notes string `gorm:"size:500" json:"notes"`

	UserID *string `gorm:"type:uuid" json:"user_id"`

	Services []BookingService `gorm:"foreignKey:BookingID" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
