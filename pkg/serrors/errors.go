package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BaseError is the common shape for coded application errors. LocaleKey is
// kept for presentation layers that localize messages; callers that do not
// localize fall back to Message.
type BaseError struct {
	Code      string
	Message   string
	LocaleKey string
}

func (e *BaseError) Error() string {
	return e.Message
}

func NewError(code, message, localeKey string) *BaseError {
	return &BaseError{
		Code:      code,
		Message:   message,
		LocaleKey: localeKey,
	}
}

type FieldRequiredError struct {
	*BaseError
	Field string
}

func NewFieldRequiredError(field, localeKey string) *FieldRequiredError {
	return &FieldRequiredError{
		BaseError: NewError(
			"FIELD_REQUIRED",
			fmt.Sprintf("%s is required", field),
			localeKey,
		),
		Field: field,
	}
}

type InvalidFieldError struct {
	*BaseError
	Field string
	Rule  string
}

func NewInvalidFieldError(field, rule, localeKey string) *InvalidFieldError {
	return &InvalidFieldError{
		BaseError: NewError(
			"FIELD_INVALID",
			fmt.Sprintf("%s is invalid (%s)", field, rule),
			localeKey,
		),
		Field: field,
		Rule:  rule,
	}
}

// ValidationErrors maps struct field names to the error raised for them.
type ValidationErrors map[string]error

// Messages flattens validation errors to user-facing strings.
func (v ValidationErrors) Messages() map[string]string {
	out := make(map[string]string, len(v))
	for field, err := range v {
		out[field] = err.Error()
	}
	return out
}

// ProcessValidatorErrors converts go-playground validator errors into
// ValidationErrors. getFieldLocaleKey may return "" when a field has no
// locale mapping.
func ProcessValidatorErrors(
	errs validator.ValidationErrors,
	getFieldLocaleKey func(field string) string,
) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, fieldErr := range errs {
		field := fieldErr.Field()
		localeKey := ""
		if getFieldLocaleKey != nil {
			localeKey = getFieldLocaleKey(field)
		}
		switch fieldErr.Tag() {
		case "required":
			out[field] = NewFieldRequiredError(field, localeKey)
		default:
			out[field] = NewInvalidFieldError(field, fieldErr.Tag(), localeKey)
		}
	}
	return out
}

// ValidationError aggregates per-field failures into a single error value
// returned from service calls.
type ValidationError struct {
	*BaseError
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{
		BaseError: NewError("VALIDATION_FAILED", "validation failed", ""),
		Fields:    fields,
	}
}
