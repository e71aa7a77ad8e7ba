package domain

import (
	"time"

	"github.com/google/uuid"
)

// IntakeSubmission is everything collected by the five-step intake form.
type IntakeSubmission struct {
	ID     uuid.UUID
	UserID *uuid.UUID

	// Step 1: basic information.
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	City        string
	State       string
	ZipCode     string
	DateOfBirth string
	Gender      string

	// Step 2: health and care needs.
	HealthConditions string
	Medications      string
	MobilityStatus   string
	ADLNeeds         []string
	MedicalEquipment string
	CurrentProvider  string

	// Step 3: preferences and budget.
	CareType          string
	PreferredLocation string
	LocationRadius    string
	RoomPreference    string
	MonthlyBudget     BudgetRange
	PaymentMethods    []string
	Amenities         []string

	// Step 4: document readiness.
	MedicalRecords bool
	InsuranceInfo  bool
	FinancialInfo  bool
	LegalDocuments bool

	CreatedAt time.Time
}
