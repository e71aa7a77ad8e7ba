package contact

import (
	"strings"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

// AddInput describes a personal contact.
type AddInput struct {
	Name         string
	Relationship string
	Phone        string
	IsPrimary    bool
}

func (i AddInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.Phone) == "" {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "required"})
	}
	if len(i.Name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(i.Phone) > 50 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
