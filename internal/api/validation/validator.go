// Package validation checks request bodies and reports failures under their
// JSON field names.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/blaisecz/mood-journal/internal/domain"
	"github.com/blaisecz/mood-journal/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		tz := strings.TrimSpace(fl.Field().String())
		if tz == "" {
			return false
		}
		_, err := time.LoadLocation(tz)
		return err == nil
	})

	v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		return domain.Mood(fl.Field().String()).Valid()
	})

	return v
}

// Validate runs struct validation and returns one FieldError per failed
// field, or nil when s is valid.
func Validate(s any) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	fieldErrors := make([]problem.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return fieldErrors
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " items"
		}
		return "must be at least " + fe.Param()
	case "max":
		switch fe.Kind() {
		case reflect.Slice:
			return "must contain at most " + fe.Param() + " items"
		case reflect.String:
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "timezone":
		return "must be a valid IANA timezone"
	case "mood":
		moods := domain.Moods()
		names := make([]string, len(moods))
		for i, m := range moods {
			names[len(moods)-1-i] = string(m)
		}
		return "must be one of: " + strings.Join(names, ", ")
	default:
		return "is invalid"
	}
}
