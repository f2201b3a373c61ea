package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Subcategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (subcategory *Subcategory) BeforeCreate(tx *gorm.DB) (err error) {
	if subcategory.ID == uuid.Nil {
		subcategory.ID = uuid.New()
	}
	return
}
