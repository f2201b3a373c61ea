package validation

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/farellandr/eventcatalog/internal/apperror"
)

type CategoryInput struct {
	Name string `json:"name" validate:"required,min=1"`
}

type NewCategory struct {
	Name string
}

func (in CategoryInput) Normalize() (NewCategory, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := check(&in); err != nil {
		return NewCategory{}, err
	}
	return NewCategory{Name: in.Name}, nil
}

type SubcategoryInput struct {
	Name       string `json:"name" validate:"required,min=1"`
	CategoryID string `json:"categoryId" validate:"required,uuid"`
}

type NewSubcategory struct {
	Name       string
	CategoryID uuid.UUID
}

func (in SubcategoryInput) Normalize() (NewSubcategory, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.CategoryID = normalizeID(in.CategoryID)
	if err := check(&in); err != nil {
		return NewSubcategory{}, err
	}
	return NewSubcategory{
		Name:       in.Name,
		CategoryID: uuid.MustParse(in.CategoryID),
	}, nil
}

// EventInput is the body accepted by event create and update. Date holds the
// decoded JSON value, a number or a string.
type EventInput struct {
	Name          string  `json:"name" validate:"required,min=1"`
	Date          any     `json:"date" validate:"required,eventdate"`
	Venue         string  `json:"venue" validate:"required,min=1"`
	ImageURL      *string `json:"imageUrl" validate:"omitempty,url"`
	CategoryID    string  `json:"categoryId" validate:"required,uuid"`
	SubcategoryID string  `json:"subcategoryId" validate:"required,uuid"`
	ContactPhone  *string `json:"contactPhone" validate:"omitempty,min=8"`
	ContactEmail  *string `json:"contactEmail" validate:"omitempty,email"`
}

type EventFields struct {
	Name          string
	Date          time.Time
	Venue         string
	ImageURL      *string
	CategoryID    uuid.UUID
	SubcategoryID uuid.UUID
	ContactPhone  *string
	ContactEmail  *string
}

func (in EventInput) Normalize() (EventFields, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Venue = strings.TrimSpace(in.Venue)
	in.CategoryID = normalizeID(in.CategoryID)
	in.SubcategoryID = normalizeID(in.SubcategoryID)
	in.ImageURL = optional(in.ImageURL)
	in.ContactPhone = optional(in.ContactPhone)
	in.ContactEmail = optional(in.ContactEmail)

	if err := check(&in); err != nil {
		return EventFields{}, err
	}

	date, err := ParseEventDate(in.Date)
	if err != nil {
		return EventFields{}, apperror.Validation(invalidInputMessage, apperror.FieldError{
			Field:   "date",
			Message: "date must be an epoch timestamp in milliseconds or a calendar date string",
		})
	}

	return EventFields{
		Name:          in.Name,
		Date:          date,
		Venue:         in.Venue,
		ImageURL:      in.ImageURL,
		CategoryID:    uuid.MustParse(in.CategoryID),
		SubcategoryID: uuid.MustParse(in.SubcategoryID),
		ContactPhone:  in.ContactPhone,
		ContactEmail:  in.ContactEmail,
	}, nil
}

type idParam struct {
	Value string `validate:"required,uuid"`
}

// ParseID validates an identifier taken from a path or query parameter.
func ParseID(field, raw string) (uuid.UUID, error) {
	p := idParam{Value: normalizeID(raw)}
	v, _ := engine()
	if err := v.Struct(&p); err != nil {
		return uuid.Nil, apperror.Validation("Invalid "+field+".", apperror.FieldError{
			Field:   field,
			Message: field + " must be a valid UUID",
		})
	}
	return uuid.MustParse(p.Value), nil
}

func normalizeID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// optional trims s and treats an empty value as absent.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
