// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"reflect"
	"strings"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator validates request DTOs through their `validate` struct tags.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator with the custom "phone" tag registered.
// Field names in failures use the JSON name clients sent.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	// The tag is only registered once, so the error is a programming mistake.
	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return entity.IsValidPhone(fl.Field().String())
	}); err != nil {
		panic(err)
	}

	return &Validator{validate: v}
}

// Validate implements echo.Validator.
// Failures come back as ErrValidationFailed listing every offending field.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "phone":
		return fe.Field() + " must be a valid phone number"
	case "gt":
		return fe.Field() + " must be greater than " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	default:
		return fe.Field() + " failed on " + fe.Tag()
	}
}
