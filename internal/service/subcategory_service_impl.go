package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/farellandr/eventcatalog/internal/apperror"
	"github.com/farellandr/eventcatalog/internal/models"
	"github.com/farellandr/eventcatalog/internal/store"
	"github.com/farellandr/eventcatalog/internal/validation"
)

// SubcategoryServiceImpl implements SubcategoryService.
type SubcategoryServiceImpl struct {
	categories     store.CategoryStore
	subcategories  store.SubcategoryStore
	transactionMgr store.TransactionManager
}

// NewSubcategoryServiceImpl creates a new SubcategoryService implementation.
func NewSubcategoryServiceImpl(
	categories store.CategoryStore,
	subcategories store.SubcategoryStore,
	transactionMgr store.TransactionManager,
) SubcategoryService {
	return &SubcategoryServiceImpl{
		categories:     categories,
		subcategories:  subcategories,
		transactionMgr: transactionMgr,
	}
}

// Create inserts a subcategory under an existing category. Names are unique
// per category, ignoring case.
func (s *SubcategoryServiceImpl) Create(ctx context.Context, input validation.SubcategoryInput) (*models.Subcategory, error) {
	params, err := input.Normalize()
	if err != nil {
		return nil, err
	}

	subcategory := &models.Subcategory{
		Name:       params.Name,
		CategoryID: params.CategoryID,
	}

	err = s.transactionMgr.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.categories.FindCategoryByID(ctx, params.CategoryID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return categoryNotFound(params.CategoryID)
			}
			return err
		}

		existing, err := s.subcategories.FindSubcategoryByName(ctx, params.CategoryID, params.Name)
		switch {
		case err == nil:
			return subcategoryConflict(existing.Name)
		case !errors.Is(err, store.ErrNotFound):
			return err
		}

		if err := s.subcategories.CreateSubcategory(ctx, subcategory); err != nil {
			switch {
			case errors.Is(err, store.ErrDuplicate):
				return subcategoryConflict(params.Name)
			case errors.Is(err, store.ErrForeignKey):
				return categoryNotFound(params.CategoryID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, storeFailure("Failed to create subcategory.", err)
	}

	return subcategory, nil
}

// List returns every subcategory with its parent category.
func (s *SubcategoryServiceImpl) List(ctx context.Context) ([]models.Subcategory, error) {
	return s.list(ctx, nil)
}

// ListByCategory returns the subcategories of one category with the parent category.
func (s *SubcategoryServiceImpl) ListByCategory(ctx context.Context, categoryID string) ([]models.Subcategory, error) {
	id, err := validation.ParseID("categoryId", categoryID)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, &id)
}

func (s *SubcategoryServiceImpl) list(ctx context.Context, categoryID *uuid.UUID) ([]models.Subcategory, error) {
	subcategories, err := s.subcategories.ListSubcategories(ctx, store.SubcategoryQuery{
		CategoryID:   categoryID,
		WithCategory: true,
	})
	if err != nil {
		return nil, storeFailure("Error retrieving subcategories.", err)
	}
	return subcategories, nil
}

// Delete removes a subcategory. It is refused while events still reference it.
func (s *SubcategoryServiceImpl) Delete(ctx context.Context, id string) error {
	subcategoryID, err := validation.ParseID("id", id)
	if err != nil {
		return err
	}

	err = s.subcategories.DeleteSubcategory(ctx, subcategoryID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return subcategoryNotFound(subcategoryID)
	case errors.Is(err, store.ErrForeignKey):
		return apperror.Conflict("Subcategory is still referenced by events.")
	default:
		return storeFailure("Failed to delete subcategory.", err)
	}
}

func subcategoryConflict(name string) error {
	return apperror.Conflict(fmt.Sprintf("Subcategory %q already exists in this category.", name))
}
