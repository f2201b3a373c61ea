package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/farellandr/eventcatalog/internal/apperror"
)

// storeFailure passes application errors through and wraps anything else as a store error.
func storeFailure(message string, err error) error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.Store(message, err)
}

func categoryNotFound(id uuid.UUID) error {
	return apperror.NotFound(fmt.Sprintf("Category with id %s not found.", id))
}

func subcategoryNotFound(id uuid.UUID) error {
	return apperror.NotFound(fmt.Sprintf("Subcategory with id %s not found.", id))
}
