// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	domainerrors "passport/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// usernamePattern restricts usernames to characters that are safe in URLs
// and log lines.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// echoValidator wraps a validator.Validate instance for Echo.
type echoValidator struct {
	validate *validator.Validate
}

// New creates a request validator with the application's custom rules
// registered. Field names in validation details follow the json tags so
// clients can match them against their payloads.
func New() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// Best effort only, the pattern cannot fail to compile.
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return &echoValidator{validate: v}
}

// Validate implements echo.Validator. Rule violations come back as a
// validation error carrying one "field: rule" pair per offending field.
func (ev *echoValidator) Validate(i any) error {
	err := ev.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, fieldErr.Field()+": "+describeRule(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

// describeRule renders a single violated rule in a stable, client-friendly form.
func describeRule(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "username":
		return "may only contain letters, digits, underscores and hyphens"
	case "min":
		return "must be at least " + fieldErr.Param() + " characters long"
	case "max":
		return "must be at most " + fieldErr.Param() + " characters long"
	default:
		return "failed rule " + fieldErr.Tag()
	}
}
