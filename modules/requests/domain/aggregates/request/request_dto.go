package request

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iota-uz/servicedesk/pkg/constants"
	"github.com/iota-uz/servicedesk/pkg/serrors"
)

type CreateDTO struct {
	Category    string `json:"category" validate:"required"`
	Priority    string `json:"priority" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (d *CreateDTO) Normalize() {
	d.Category = strings.TrimSpace(d.Category)
	d.Priority = strings.TrimSpace(d.Priority)
	d.Description = strings.TrimSpace(d.Description)
}

func (d *CreateDTO) Ok() (map[string]string, bool) {
	d.Normalize()

	errs := constants.Validate.Struct(d)
	if errs == nil {
		return map[string]string{}, true
	}

	validationErrors := make(serrors.ValidationErrors)
	validatorErrs := errs.(validator.ValidationErrors)
	getFieldLocaleKey := func(field string) string {
		switch field {
		case "Category", "Priority", "Description":
			return fmt.Sprintf("Requests.Fields.%s", field)
		default:
			return ""
		}
	}
	for field, err := range serrors.ProcessValidatorErrors(validatorErrs, getFieldLocaleKey) {
		validationErrors[field] = err
	}

	return validationErrors.Messages(), false
}

func (d *CreateDTO) ToEntity() Request {
	return New(d.Category, Priority(d.Priority), d.Description)
}

// UpdateDTO is a partial patch: nil fields leave the current value in place,
// while a present-but-blank field fails validation of the merged result.
type UpdateDTO struct {
	Category    *string `json:"category"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

func (d *UpdateDTO) Normalize() {
	trim := func(v *string) {
		if v != nil {
			*v = strings.TrimSpace(*v)
		}
	}
	trim(d.Category)
	trim(d.Priority)
	trim(d.Status)
	trim(d.Description)
}

// Apply merges the patch over existing and returns the merged entity. The
// id, createdOn and any untouched fields are carried over unchanged.
func (d *UpdateDTO) Apply(existing Request) Request {
	category := existing.Category()
	priority := existing.Priority()
	status := existing.Status()
	description := existing.Description()

	if d.Category != nil {
		category = *d.Category
	}
	if d.Priority != nil {
		priority = Priority(*d.Priority)
	}
	if d.Status != nil {
		status = Status(*d.Status)
	}
	if d.Description != nil {
		description = *d.Description
	}

	return Hydrate(existing.ID(), category, priority, status, description, existing.CreatedOn())
}

// ValidateEntity re-checks the required-field rule against a merged entity,
// so updates and creates share one validation gate.
func ValidateEntity(r Request) (map[string]string, bool) {
	d := CreateDTO{
		Category:    r.Category(),
		Priority:    string(r.Priority()),
		Description: r.Description(),
	}
	return d.Ok()
}
