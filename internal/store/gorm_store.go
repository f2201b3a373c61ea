package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/farellandr/eventcatalog/internal/models"
)

type txKey struct{}

// GormStore implements Store on top of a *gorm.DB.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new gorm backed Store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ Store = (*GormStore)(nil)

// conn returns the transaction bound to ctx, if any, or the pool.
func (s *GormStore) conn(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return s.db.WithContext(ctx)
}

// WithTransaction runs fn inside a transaction. Store calls made with the
// context passed to fn join it; nested calls reuse the outer transaction.
func (s *GormStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Categories

func (s *GormStore) CreateCategory(ctx context.Context, category *models.Category) error {
	return classify(s.conn(ctx).Create(category).Error)
}

func (s *GormStore) FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.conn(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, classify(err)
	}
	return &category, nil
}

func (s *GormStore) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := s.conn(ctx).Where("LOWER(name) = LOWER(?)", name).First(&category).Error; err != nil {
		return nil, classify(err)
	}
	return &category, nil
}

func (s *GormStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.conn(ctx).Order("created_at ASC").Find(&categories).Error; err != nil {
		return nil, classify(err)
	}
	return categories, nil
}

func (s *GormStore) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return deleteByID(s.conn(ctx), &models.Category{}, id)
}

// Subcategories

func (s *GormStore) CreateSubcategory(ctx context.Context, subcategory *models.Subcategory) error {
	return classify(s.conn(ctx).Create(subcategory).Error)
}

func (s *GormStore) FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	if err := s.conn(ctx).Where("id = ?", id).First(&subcategory).Error; err != nil {
		return nil, classify(err)
	}
	return &subcategory, nil
}

func (s *GormStore) FindSubcategoryByName(ctx context.Context, categoryID uuid.UUID, name string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := s.conn(ctx).
		Where("category_id = ? AND LOWER(name) = LOWER(?)", categoryID, name).
		First(&subcategory).Error
	if err != nil {
		return nil, classify(err)
	}
	return &subcategory, nil
}

func (s *GormStore) ListSubcategories(ctx context.Context, query SubcategoryQuery) ([]models.Subcategory, error) {
	q := s.conn(ctx).Model(&models.Subcategory{})
	if query.CategoryID != nil {
		q = q.Where("category_id = ?", *query.CategoryID)
	}
	if query.WithCategory {
		q = q.Preload("Category")
	}

	var subcategories []models.Subcategory
	if err := q.Order("created_at ASC").Find(&subcategories).Error; err != nil {
		return nil, classify(err)
	}
	return subcategories, nil
}

func (s *GormStore) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	return deleteByID(s.conn(ctx), &models.Subcategory{}, id)
}

// Events

func (s *GormStore) CreateEvent(ctx context.Context, event *models.Event) error {
	return classify(s.conn(ctx).Omit("Category", "Subcategory").Create(event).Error)
}

func (s *GormStore) FindEventByID(ctx context.Context, id uuid.UUID, withRelations bool) (*models.Event, error) {
	q := s.conn(ctx)
	if withRelations {
		q = q.Preload("Category").Preload("Subcategory")
	}

	var event models.Event
	if err := q.Where("id = ?", id).First(&event).Error; err != nil {
		return nil, classify(err)
	}
	return &event, nil
}

func (s *GormStore) ListEvents(ctx context.Context, query EventQuery) ([]models.Event, error) {
	q := s.conn(ctx).Model(&models.Event{})
	if query.CategoryID != nil {
		q = q.Where("category_id = ?", *query.CategoryID)
	}
	if query.SubcategoryID != nil {
		q = q.Where("subcategory_id = ?", *query.SubcategoryID)
	}
	if query.WithRelations {
		q = q.Preload("Category").Preload("Subcategory")
	}

	var events []models.Event
	if err := q.Order("created_at DESC").Find(&events).Error; err != nil {
		return nil, classify(err)
	}
	return events, nil
}

func (s *GormStore) UpdateEvent(ctx context.Context, event *models.Event) error {
	result := s.conn(ctx).Model(&models.Event{}).Where("id = ?", event.ID).Updates(map[string]any{
		"name":           event.Name,
		"date":           event.Date,
		"venue":          event.Venue,
		"image_url":      event.ImageURL,
		"category_id":    event.CategoryID,
		"subcategory_id": event.SubcategoryID,
		"contact_phone":  event.ContactPhone,
		"contact_email":  event.ContactEmail,
	})
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return deleteByID(s.conn(ctx), &models.Event{}, id)
}

func deleteByID(db *gorm.DB, model any, id uuid.UUID) error {
	result := db.Where("id = ?", id).Delete(model)
	if result.Error != nil {
		return classify(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	return nil
}
