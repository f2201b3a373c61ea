package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string       `gorm:"not null" json:"name"`
	Date          time.Time    `gorm:"not null" json:"date"`
	Venue         string       `gorm:"not null" json:"venue"`
	ImageURL      *string      `json:"imageUrl"`
	CategoryID    uuid.UUID    `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category      *Category    `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubcategoryID uuid.UUID    `gorm:"type:uuid;not null;index" json:"subcategoryId"`
	Subcategory   *Subcategory `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
	ContactPhone  *string      `json:"contactPhone"`
	ContactEmail  *string      `json:"contactEmail"`
	CreatedAt     time.Time    `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}
