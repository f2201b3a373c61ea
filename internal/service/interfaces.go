// Package service provides the business logic for categories, subcategories and events.
//
// Every method returns either a result or an *apperror.Error; raw store errors
// never leave this package.
package service

import (
	"context"

	"github.com/farellandr/eventcatalog/internal/models"
	"github.com/farellandr/eventcatalog/internal/validation"
)

// CategoryService defines business logic methods for category management.
type CategoryService interface {
	Create(ctx context.Context, input validation.CategoryInput) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Delete(ctx context.Context, id string) error
}

// SubcategoryService defines business logic methods for subcategory management.
type SubcategoryService interface {
	Create(ctx context.Context, input validation.SubcategoryInput) (*models.Subcategory, error)
	List(ctx context.Context) ([]models.Subcategory, error)
	ListByCategory(ctx context.Context, categoryID string) ([]models.Subcategory, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines business logic methods for event management.
type EventService interface {
	Create(ctx context.Context, input validation.EventInput) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	Update(ctx context.Context, id string, input validation.EventInput) (*models.Event, error)
	Delete(ctx context.Context, id string) error
	// Filter narrows List by category and/or subcategory; empty ids are ignored.
	Filter(ctx context.Context, categoryID, subcategoryID string) ([]models.Event, error)
}
