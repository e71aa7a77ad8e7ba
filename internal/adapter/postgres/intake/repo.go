// Package intake implements the intake submission repository.
package intake

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

// Repo provides intake persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new intake repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Create stores a completed intake submission.
func (r *Repo) Create(ctx context.Context, s domain.IntakeSubmission) (domain.IntakeSubmission, error) {
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO intake_submissions (id, user_id,
		     first_name, last_name, email, phone, address, city, state, zip_code, date_of_birth, gender,
		     health_conditions, medications, mobility_status, adl_needs, medical_equipment, current_provider,
		     care_type, preferred_location, location_radius, room_preference, monthly_budget, payment_methods, amenities,
		     medical_records, insurance_info, financial_info, legal_documents)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		         $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29)
		 RETURNING created_at`,
		s.ID, postgres.UUIDPtrToPg(s.UserID),
		s.FirstName, s.LastName, s.Email, s.Phone, s.Address, s.City, s.State, s.ZipCode, s.DateOfBirth, s.Gender,
		s.HealthConditions, s.Medications, s.MobilityStatus, orEmpty(s.ADLNeeds), s.MedicalEquipment, s.CurrentProvider,
		s.CareType, s.PreferredLocation, s.LocationRadius, s.RoomPreference, string(s.MonthlyBudget),
		orEmpty(s.PaymentMethods), orEmpty(s.Amenities),
		s.MedicalRecords, s.InsuranceInfo, s.FinancialInfo, s.LegalDocuments,
	).Scan(&s.CreatedAt)
	if err != nil {
		return domain.IntakeSubmission{}, postgres.MapError(err, "intake_submission", s.ID)
	}
	return s, nil
}

// GetByID returns a stored submission.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.IntakeSubmission, error) {
	var (
		s      domain.IntakeSubmission
		userID pgtype.UUID
		budget string
	)
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT id, user_id,
		     first_name, last_name, email, phone, address, city, state, zip_code, date_of_birth, gender,
		     health_conditions, medications, mobility_status, adl_needs, medical_equipment, current_provider,
		     care_type, preferred_location, location_radius, room_preference, monthly_budget, payment_methods, amenities,
		     medical_records, insurance_info, financial_info, legal_documents, created_at
		 FROM intake_submissions WHERE id = $1`, id,
	).Scan(
		&s.ID, &userID,
		&s.FirstName, &s.LastName, &s.Email, &s.Phone, &s.Address, &s.City, &s.State, &s.ZipCode, &s.DateOfBirth, &s.Gender,
		&s.HealthConditions, &s.Medications, &s.MobilityStatus, &s.ADLNeeds, &s.MedicalEquipment, &s.CurrentProvider,
		&s.CareType, &s.PreferredLocation, &s.LocationRadius, &s.RoomPreference, &budget, &s.PaymentMethods, &s.Amenities,
		&s.MedicalRecords, &s.InsuranceInfo, &s.FinancialInfo, &s.LegalDocuments, &s.CreatedAt,
	)
	if err != nil {
		return domain.IntakeSubmission{}, postgres.MapError(err, "intake_submission", id)
	}
	s.UserID = postgres.PgToUUIDPtr(userID)
	s.MonthlyBudget = domain.BudgetRange(budget)
	return s, nil
}
