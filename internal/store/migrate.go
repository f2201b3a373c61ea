package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/farellandr/eventcatalog/internal/models"
)

// Case-insensitive uniqueness lives in expression indexes that gorm tags cannot express.
var uniqueNameIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_ci ON categories (LOWER(name))`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_subcategories_category_name_ci ON subcategories (category_id, LOWER(name))`,
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Subcategory{}, &models.Event{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range uniqueNameIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}

	return nil
}
