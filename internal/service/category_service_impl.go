package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/farellandr/eventcatalog/internal/apperror"
	"github.com/farellandr/eventcatalog/internal/models"
	"github.com/farellandr/eventcatalog/internal/store"
	"github.com/farellandr/eventcatalog/internal/validation"
)

// CategoryServiceImpl implements CategoryService.
type CategoryServiceImpl struct {
	categories     store.CategoryStore
	transactionMgr store.TransactionManager
}

// NewCategoryServiceImpl creates a new CategoryService implementation.
func NewCategoryServiceImpl(categories store.CategoryStore, transactionMgr store.TransactionManager) CategoryService {
	return &CategoryServiceImpl{
		categories:     categories,
		transactionMgr: transactionMgr,
	}
}

// Create inserts a category unless one with the same name, ignoring case, exists.
func (s *CategoryServiceImpl) Create(ctx context.Context, input validation.CategoryInput) (*models.Category, error) {
	params, err := input.Normalize()
	if err != nil {
		return nil, err
	}

	category := &models.Category{Name: params.Name}

	err = s.transactionMgr.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.categories.FindCategoryByName(ctx, params.Name)
		switch {
		case err == nil:
			return categoryConflict(existing.Name)
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		if err := s.categories.CreateCategory(ctx, category); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return categoryConflict(params.Name)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, storeFailure("Failed to create category.", err)
	}

	return category, nil
}

// List returns every category.
func (s *CategoryServiceImpl) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, storeFailure("Error retrieving categories.", err)
	}
	return categories, nil
}

// Delete removes a category. It is refused while subcategories or events still
// reference it; nothing cascades.
func (s *CategoryServiceImpl) Delete(ctx context.Context, id string) error {
	categoryID, err := validation.ParseID("id", id)
	if err != nil {
		return err
	}

	err = s.categories.DeleteCategory(ctx, categoryID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return categoryNotFound(categoryID)
	case errors.Is(err, store.ErrForeignKey):
		return apperror.Conflict("Category is still referenced by subcategories or events.")
	default:
		return storeFailure("Failed to delete category.", err)
	}
}

func categoryConflict(name string) error {
	return apperror.Conflict(fmt.Sprintf("Category %q already exists.", name))
}
