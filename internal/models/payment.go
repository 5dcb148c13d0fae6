package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	BookingID string  `gorm:"type:uuid;not null;index" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"booking,omitempty"`

	Amount int64 `gorm:"not null" json:"amount"`

	// pending | completed | failed | refunded
	Status string `gorm:"size:20;default:'pending'" json:"status"`

	PaymentMethod string `gorm:"size:50" json:"payment_method"`
	TransactionID string `gorm:"size:100" json:"transaction_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
