package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Blog struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Title  string `gorm:"size:200;not null" json:"title"`
	Author string `gorm:"size:100;not null" json:"author"`

	CategoryID *string       `gorm:"type:uuid" json:"category_id"`
	Category   *BlogCategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category,omitempty"`

	Description string `gorm:"size:500" json:"description"`
	Content     string `gorm:"type:text" json:"content"`
	ImageURL    string `gorm:"size:500" json:"image_url"`

	IsPublished bool `gorm:"default:false" json:"is_published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
