// Package store provides the data-access interfaces and their gorm implementation.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/farellandr/eventcatalog/internal/models"
)

// CategoryStore defines methods for category data access.
type CategoryStore interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	// FindCategoryByName matches name case-insensitively.
	FindCategoryByName(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// SubcategoryQuery selects subcategories and the relations loaded with them.
type SubcategoryQuery struct {
	CategoryID   *uuid.UUID
	WithCategory bool
}

// SubcategoryStore defines methods for subcategory data access.
type SubcategoryStore interface {
	CreateSubcategory(ctx context.Context, subcategory *models.Subcategory) error
	FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*models.Subcategory, error)
	// FindSubcategoryByName matches name case-insensitively within one category.
	FindSubcategoryByName(ctx context.Context, categoryID uuid.UUID, name string) (*models.Subcategory, error)
	ListSubcategories(ctx context.Context, query SubcategoryQuery) ([]models.Subcategory, error)
	DeleteSubcategory(ctx context.Context, id uuid.UUID) error
}

// EventQuery selects events and the relations loaded with them. Results are
// always ordered by creation time, most recent first.
type EventQuery struct {
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	WithRelations bool
}

// EventStore defines methods for event data access.
type EventStore interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	FindEventByID(ctx context.Context, id uuid.UUID, withRelations bool) (*models.Event, error)
	ListEvents(ctx context.Context, query EventQuery) ([]models.Event, error)
	// UpdateEvent overwrites every mutable column of an existing event.
	UpdateEvent(ctx context.Context, event *models.Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

// TransactionManager defines methods for database transaction management.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Store is the full gateway the services and the health check depend on.
type Store interface {
	CategoryStore
	SubcategoryStore
	EventStore
	TransactionManager
	Ping(ctx context.Context) error
}
