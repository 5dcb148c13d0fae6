package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Specialist struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Especialidade em texto livre (ex: "Hair Stylist", "Nail Artist")
	Role string `gorm:"size:100;not null" json:"role"`

	Bio        string `gorm:"size:1000" json:"bio"`
	Experience string `gorm:"size:100" json:"experience"`
	ImageURL   string `gorm:"size:500" json:"image_url"`
	IsActive   bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Specialist) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
