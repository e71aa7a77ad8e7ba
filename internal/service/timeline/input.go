package timeline

import "github.com/kceleski/ava-care-compass/internal/domain"

// CreatePlanInput holds the assessment answers.
type CreatePlanInput struct {
	CurrentMobility   domain.Mobility
	CognitiveStatus   domain.CognitiveStatus
	MedicalConditions string
	SupportSystem     domain.SupportSystem
}

func (i CreatePlanInput) Validate() error {
	var errs []domain.FieldError

	if !i.CurrentMobility.IsValid() {
		errs = append(errs, domain.FieldError{Field: "currentMobility", Message: "invalid value"})
	}
	if !i.CognitiveStatus.IsValid() {
		errs = append(errs, domain.FieldError{Field: "cognitiveStatus", Message: "invalid value"})
	}
	if !i.SupportSystem.IsValid() {
		errs = append(errs, domain.FieldError{Field: "supportSystem", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
