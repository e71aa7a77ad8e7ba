package intake

import (
	"context"
	"fmt"
	"slices"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

const (
	FirstStep = 1
	LastStep  = 5
)

// Checkbox groups that hold ordered label sets.
const (
	GroupADLNeeds      = "adlNeeds"
	GroupPaymentMethod = "paymentMethod"
	GroupAmenities     = "amenities"
)

// Submitter receives the completed form when the user advances past the
// review step.
type Submitter interface {
	Submit(ctx context.Context, s domain.IntakeSubmission) (domain.IntakeSubmission, error)
}

// Form holds the state of one intake session. It is not safe for concurrent use.
type Form struct {
	data      domain.IntakeSubmission
	step      int
	submitted *domain.IntakeSubmission
}

// NewForm returns an empty form positioned at step one.
func NewForm() *Form {
	return &Form{step: FirstStep}
}

func (f *Form) Step() int { return f.step }

// Data returns a copy of the collected values.
func (f *Form) Data() domain.IntakeSubmission {
	d := f.data
	d.ADLNeeds = slices.Clone(f.data.ADLNeeds)
	d.PaymentMethods = slices.Clone(f.data.PaymentMethods)
	d.Amenities = slices.Clone(f.data.Amenities)
	return d
}

// Submitted returns the stored submission once the form has been submitted.
func (f *Form) Submitted() (domain.IntakeSubmission, bool) {
	if f.submitted == nil {
		return domain.IntakeSubmission{}, false
	}
	return *f.submitted, true
}

func (f *Form) textField(name string) *string {
	d := &f.data
	switch name {
	case "firstName":
		return &d.FirstName
	case "lastName":
		return &d.LastName
	case "email":
		return &d.Email
	case "phone":
		return &d.Phone
	case "address":
		return &d.Address
	case "city":
		return &d.City
	case "state":
		return &d.State
	case "zipCode":
		return &d.ZipCode
	case "dateOfBirth":
		return &d.DateOfBirth
	case "gender":
		return &d.Gender
	case "healthConditions":
		return &d.HealthConditions
	case "medications":
		return &d.Medications
	case "mobilityStatus":
		return &d.MobilityStatus
	case "medicalEquipment":
		return &d.MedicalEquipment
	case "currentProvider":
		return &d.CurrentProvider
	case "careType":
		return &d.CareType
	case "preferredLocation":
		return &d.PreferredLocation
	case "locationRadius":
		return &d.LocationRadius
	case "roomPreference":
		return &d.RoomPreference
	}
	return nil
}

func (f *Form) group(name string) *[]string {
	switch name {
	case GroupADLNeeds:
		return &f.data.ADLNeeds
	case GroupPaymentMethod:
		return &f.data.PaymentMethods
	case GroupAmenities:
		return &f.data.Amenities
	}
	return nil
}

func (f *Form) flag(name string) *bool {
	switch name {
	case "medicalRecords":
		return &f.data.MedicalRecords
	case "insuranceInfo":
		return &f.data.InsuranceInfo
	case "financialInfo":
		return &f.data.FinancialInfo
	case "legalDocuments":
		return &f.data.LegalDocuments
	}
	return nil
}

// SetField updates a scalar field by its form name.
func (f *Form) SetField(name, value string) error {
	if name == "monthlyBudget" {
		b := domain.BudgetRange(value)
		if value != "" && !b.IsValid() {
			return domain.NewValidationError(name, "invalid budget range")
		}
		f.data.MonthlyBudget = b
		return nil
	}

	p := f.textField(name)
	if p == nil {
		return domain.NewValidationError(name, "unknown field")
	}
	*p = value
	return nil
}

// Toggle adds label to a checkbox group when checked and removes it
// otherwise. The order of the remaining labels is kept.
func (f *Form) Toggle(group, label string, checked bool) error {
	p := f.group(group)
	if p == nil {
		return domain.NewValidationError(group, "unknown group")
	}

	if checked {
		if !slices.Contains(*p, label) {
			*p = append(*p, label)
		}
		return nil
	}
	*p = slices.DeleteFunc(*p, func(s string) bool { return s == label })
	return nil
}

// SetFlag sets a document-readiness flag.
func (f *Form) SetFlag(name string, value bool) error {
	p := f.flag(name)
	if p == nil {
		return domain.NewValidationError(name, "unknown flag")
	}
	*p = value
	return nil
}

// Next advances one step. Advancing from the review step submits the form;
// a failed submission leaves the form on the review step.
func (f *Form) Next(ctx context.Context, sub Submitter) error {
	if f.step < LastStep {
		f.step++
		return nil
	}
	if f.submitted != nil {
		return nil
	}

	saved, err := sub.Submit(ctx, f.Data())
	if err != nil {
		return fmt.Errorf("submit intake: %w", err)
	}
	f.submitted = &saved
	return nil
}

// Back retreats one step; it does nothing on the first step.
func (f *Form) Back() {
	if f.step > FirstStep {
		f.step--
	}
}
