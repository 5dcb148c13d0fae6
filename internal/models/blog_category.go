package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogCategory struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}

func (bc *BlogCategory) BeforeCreate(tx *gorm.DB) error {
	if bc.ID == "" {
		bc.ID = uuid.NewString()
	}
	return nil
}
