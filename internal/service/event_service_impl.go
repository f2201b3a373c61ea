package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/farellandr/eventcatalog/internal/apperror"
	"github.com/farellandr/eventcatalog/internal/models"
	"github.com/farellandr/eventcatalog/internal/store"
	"github.com/farellandr/eventcatalog/internal/validation"
)

// EventServiceImpl implements EventService.
type EventServiceImpl struct {
	categories     store.CategoryStore
	subcategories  store.SubcategoryStore
	events         store.EventStore
	transactionMgr store.TransactionManager
}

// NewEventServiceImpl creates a new EventService implementation.
func NewEventServiceImpl(
	categories store.CategoryStore,
	subcategories store.SubcategoryStore,
	events store.EventStore,
	transactionMgr store.TransactionManager,
) EventService {
	return &EventServiceImpl{
		categories:     categories,
		subcategories:  subcategories,
		events:         events,
		transactionMgr: transactionMgr,
	}
}

// Create inserts an event after checking that its category and subcategory exist.
func (s *EventServiceImpl) Create(ctx context.Context, input validation.EventInput) (*models.Event, error) {
	fields, err := input.Normalize()
	if err != nil {
		return nil, err
	}

	event := newEvent(uuid.Nil, fields)

	err = s.transactionMgr.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.categories.FindCategoryByID(ctx, fields.CategoryID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return categoryNotFound(fields.CategoryID)
			}
			return err
		}

		if _, err := s.subcategories.FindSubcategoryByID(ctx, fields.SubcategoryID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return subcategoryNotFound(fields.SubcategoryID)
			}
			return err
		}

		if err := s.events.CreateEvent(ctx, event); err != nil {
			if errors.Is(err, store.ErrForeignKey) {
				return apperror.NotFound("Category or subcategory not found.")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, storeFailure("Failed to create event.", err)
	}

	return s.load(ctx, event.ID)
}

// List returns every event, most recently created first.
func (s *EventServiceImpl) List(ctx context.Context) ([]models.Event, error) {
	return s.list(ctx, store.EventQuery{WithRelations: true})
}

// Get returns one event with its category and subcategory.
func (s *EventServiceImpl) Get(ctx context.Context, id string) (*models.Event, error) {
	eventID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, eventID)
}

// Update replaces every field of an existing event. Unlike Create it does not
// look up the category and subcategory first.
func (s *EventServiceImpl) Update(ctx context.Context, id string, input validation.EventInput) (*models.Event, error) {
	eventID, err := validation.ParseID("id", id)
	if err != nil {
		return nil, err
	}

	fields, err := input.Normalize()
	if err != nil {
		return nil, err
	}

	err = s.events.UpdateEvent(ctx, newEvent(eventID, fields))
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		return nil, apperror.NotFound("Event not found.")
	case errors.Is(err, store.ErrForeignKey):
		return nil, apperror.NotFound("Category or subcategory not found.")
	default:
		return nil, storeFailure("Failed to update event.", err)
	}

	return s.load(ctx, eventID)
}

// Delete removes an event.
func (s *EventServiceImpl) Delete(ctx context.Context, id string) error {
	eventID, err := validation.ParseID("id", id)
	if err != nil {
		return err
	}

	err = s.events.DeleteEvent(ctx, eventID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return apperror.NotFound("Event not found.")
	default:
		return storeFailure("Failed to delete event.", err)
	}
}

// Filter returns events matching the given category and/or subcategory, most
// recently created first.
func (s *EventServiceImpl) Filter(ctx context.Context, categoryID, subcategoryID string) ([]models.Event, error) {
	query := store.EventQuery{WithRelations: true}
	var fieldErrs []apperror.FieldError

	if categoryID != "" {
		id, err := validation.ParseID("categoryId", categoryID)
		if err != nil {
			fieldErrs = append(fieldErrs, fieldErrors(err)...)
		} else {
			query.CategoryID = &id
		}
	}
	if subcategoryID != "" {
		id, err := validation.ParseID("subcategoryId", subcategoryID)
		if err != nil {
			fieldErrs = append(fieldErrs, fieldErrors(err)...)
		} else {
			query.SubcategoryID = &id
		}
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.Validation("Invalid filter parameters.", fieldErrs...)
	}

	return s.list(ctx, query)
}

func (s *EventServiceImpl) list(ctx context.Context, query store.EventQuery) ([]models.Event, error) {
	events, err := s.events.ListEvents(ctx, query)
	if err != nil {
		return nil, storeFailure("Error retrieving events.", err)
	}
	return events, nil
}

func (s *EventServiceImpl) load(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	event, err := s.events.FindEventByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperror.NotFound("Event not found.")
		}
		return nil, storeFailure("Error retrieving event.", err)
	}
	return event, nil
}

func newEvent(id uuid.UUID, fields validation.EventFields) *models.Event {
	return &models.Event{
		ID:            id,
		Name:          fields.Name,
		Date:          fields.Date,
		Venue:         fields.Venue,
		ImageURL:      fields.ImageURL,
		CategoryID:    fields.CategoryID,
		SubcategoryID: fields.SubcategoryID,
		ContactPhone:  fields.ContactPhone,
		ContactEmail:  fields.ContactEmail,
	}
}

func fieldErrors(err error) []apperror.FieldError {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Fields
	}
	return nil
}
