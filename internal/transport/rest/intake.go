package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

type intakeService interface {
	Submit(ctx context.Context, s domain.IntakeSubmission) (domain.IntakeSubmission, error)
	Get(ctx context.Context, id uuid.UUID) (domain.IntakeSubmission, error)
}

// IntakeHandler accepts completed intake forms.
type IntakeHandler struct {
	svc intakeService
	log *slog.Logger
}

// NewIntakeHandler creates an IntakeHandler.
func NewIntakeHandler(svc intakeService, logger *slog.Logger) *IntakeHandler {
	return &IntakeHandler{svc: svc, log: logger.With("handler", "intake")}
}

type intakeDTO struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	UserID    string     `json:"userId,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`

	HealthConditions string   `json:"healthConditions"`
	Medications      string   `json:"medications"`
	MobilityStatus   string   `json:"mobilityStatus"`
	ADLNeeds         []string `json:"adlNeeds"`
	MedicalEquipment string   `json:"medicalEquipment"`
	CurrentProvider  string   `json:"currentProvider"`

	CareType          string   `json:"careType"`
	PreferredLocation string   `json:"preferredLocation"`
	LocationRadius    string   `json:"locationRadius"`
	RoomPreference    string   `json:"roomPreference"`
	MonthlyBudget     string   `json:"monthlyBudget"`
	PaymentMethod     []string `json:"paymentMethod"`
	Amenities         []string `json:"amenities"`

	MedicalRecords bool `json:"medicalRecords"`
	InsuranceInfo  bool `json:"insuranceInfo"`
	FinancialInfo  bool `json:"financialInfo"`
	LegalDocuments bool `json:"legalDocuments"`
}

func (d intakeDTO) toDomain() domain.IntakeSubmission {
	return domain.IntakeSubmission{
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		Email:             d.Email,
		Phone:             d.Phone,
		Address:           d.Address,
		City:              d.City,
		State:             d.State,
		ZipCode:           d.ZipCode,
		DateOfBirth:       d.DateOfBirth,
		Gender:            d.Gender,
		HealthConditions:  d.HealthConditions,
		Medications:       d.Medications,
		MobilityStatus:    d.MobilityStatus,
		ADLNeeds:          d.ADLNeeds,
		MedicalEquipment:  d.MedicalEquipment,
		CurrentProvider:   d.CurrentProvider,
		CareType:          d.CareType,
		PreferredLocation: d.PreferredLocation,
		LocationRadius:    d.LocationRadius,
		RoomPreference:    d.RoomPreference,
		MonthlyBudget:     domain.BudgetRange(d.MonthlyBudget),
		PaymentMethods:    d.PaymentMethod,
		Amenities:         d.Amenities,
		MedicalRecords:    d.MedicalRecords,
		InsuranceInfo:     d.InsuranceInfo,
		FinancialInfo:     d.FinancialInfo,
		LegalDocuments:    d.LegalDocuments,
	}
}

func toIntakeDTO(s domain.IntakeSubmission) intakeDTO {
	orEmpty := func(v []string) []string {
		if v == nil {
			return []string{}
		}
		return v
	}
	return intakeDTO{
		ID:                &s.ID,
		CreatedAt:         &s.CreatedAt,
		FirstName:         s.FirstName,
		LastName:          s.LastName,
		Email:             s.Email,
		Phone:             s.Phone,
		Address:           s.Address,
		City:              s.City,
		State:             s.State,
		ZipCode:           s.ZipCode,
		DateOfBirth:       s.DateOfBirth,
		Gender:            s.Gender,
		HealthConditions:  s.HealthConditions,
		Medications:       s.Medications,
		MobilityStatus:    s.MobilityStatus,
		ADLNeeds:          orEmpty(s.ADLNeeds),
		MedicalEquipment:  s.MedicalEquipment,
		CurrentProvider:   s.CurrentProvider,
		CareType:          s.CareType,
		PreferredLocation: s.PreferredLocation,
		LocationRadius:    s.LocationRadius,
		RoomPreference:    s.RoomPreference,
		MonthlyBudget:     string(s.MonthlyBudget),
		PaymentMethod:     orEmpty(s.PaymentMethods),
		Amenities:         orEmpty(s.Amenities),
		MedicalRecords:    s.MedicalRecords,
		InsuranceInfo:     s.InsuranceInfo,
		FinancialInfo:     s.FinancialInfo,
		LegalDocuments:    s.LegalDocuments,
	}
}

// Submit handles POST /intake.
func (h *IntakeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req intakeDTO
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ctx, err := withCaller(r, req.UserID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	saved, err := h.svc.Submit(ctx, req.toDomain())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toIntakeDTO(saved))
}

// Get handles GET /intake/{id}.
func (h *IntakeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	ctx, err := withCaller(r, r.URL.Query().Get("userId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sub, err := h.svc.Get(ctx, id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toIntakeDTO(sub))
}
