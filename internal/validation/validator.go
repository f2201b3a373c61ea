// Package validation checks and normalizes raw input before it reaches the services.
//
// Each input type has a Normalize method returning either a typed value or an
// *apperror.Error of kind validation listing every violated field rule.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/farellandr/eventcatalog/internal/apperror"
)

const invalidInputMessage = "Invalid input. Please check your fields."

var (
	initOnce sync.Once
	validate *validator.Validate
	trans    ut.Translator
)

func engine() (*validator.Validate, ut.Translator) {
	initOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		english := en.New()
		t, _ := ut.New(english, english).GetTranslator("en")
		if err := en_translations.RegisterDefaultTranslations(v, t); err != nil {
			panic(err)
		}

		if err := v.RegisterValidation("eventdate", func(fl validator.FieldLevel) bool {
			_, err := ParseEventDate(fl.Field().Interface())
			return err == nil
		}); err != nil {
			panic(err)
		}
		if err := v.RegisterTranslation("eventdate", t,
			func(u ut.Translator) error {
				return u.Add("eventdate", "{0} must be an epoch timestamp in milliseconds or a calendar date string", true)
			},
			func(u ut.Translator, fe validator.FieldError) string {
				msg, _ := u.T("eventdate", fe.Field())
				return msg
			},
		); err != nil {
			panic(err)
		}

		validate, trans = v, t
	})
	return validate, trans
}

// check runs struct validation and folds every failure into a single validation error.
func check(input any) error {
	v, t := engine()
	err := v.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Validation(invalidInputMessage, apperror.FieldError{
			Field:   "body",
			Message: "body could not be validated",
		})
	}

	fields := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, apperror.FieldError{
			Field:   fe.Field(),
			Message: fe.Translate(t),
		})
	}
	return apperror.Validation(invalidInputMessage, fields...)
}
