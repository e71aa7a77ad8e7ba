package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kceleski/ava-care-compass/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// FacilityOption customizes a seeded facility.
type FacilityOption func(f *domain.Facility)

// SeedFacility inserts a verified facility in a unique city so that filter
// tests do not see rows from other tests. Options run before the insert.
func SeedFacility(t *testing.T, pool *pgxpool.Pool, opts ...FacilityOption) domain.Facility {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	rating := 4.0
	f := domain.Facility{
		ID:           uuid.New(),
		Name:         "Sunrise Manor " + suffix,
		FacilityType: "assisted_living",
		AddressLine1: "1 Main St",
		City:         "Testville-" + suffix,
		State:        "AZ",
		ZipCode:      "85001",
		Rating:       &rating,
		IsVerified:   true,
	}
	for _, opt := range opts {
		opt(&f)
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO facilities (id, name, facility_type, address_line1, city, state, zip_code,
		     rating, reviews_count, price_range_min, price_range_max, current_availability,
		     accepts_medicare, accepts_medicaid, accepts_va_benefits, is_verified, is_featured,
		     latitude, longitude)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		 RETURNING created_at`,
		f.ID, f.Name, f.FacilityType, f.AddressLine1, f.City, f.State, f.ZipCode,
		f.Rating, f.ReviewsCount, f.PriceRangeMin, f.PriceRangeMax, f.CurrentAvailability,
		f.AcceptsMedicare, f.AcceptsMedicaid, f.AcceptsVABenefits, f.IsVerified, f.IsFeatured,
		f.Latitude, f.Longitude,
	).Scan(&f.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedFacility: %v", err)
	}

	return f
}

// SeedCareType inserts a care type with a unique name and the given hourly rate.
func SeedCareType(t *testing.T, pool *pgxpool.Pool, rate float64) domain.CareType {
	t.Helper()

	ct := domain.CareType{
		ID:             uuid.New(),
		Name:           "Companion Care " + uniqueSuffix(),
		Description:    "Help with daily activities",
		BaseHourlyRate: rate,
		Category:       "in_home",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO care_types (id, name, description, base_hourly_rate, category)
		 VALUES ($1, $2, $3, $4, $5)`,
		ct.ID, ct.Name, ct.Description, ct.BaseHourlyRate, ct.Category,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCareType: %v", err)
	}

	return ct
}

// SeedMilestones makes sure every milestone template used by timeline
// generation exists and returns them keyed by name.
func SeedMilestones(t *testing.T, pool *pgxpool.Pool) map[string]domain.TimelineMilestone {
	t.Helper()
	ctx := context.Background()

	names := []string{
		domain.MilestoneFamilyCommunication,
		domain.MilestoneHomeSafety,
		domain.MilestoneLegalPlanning,
		domain.MilestoneFinancialPlanning,
		domain.MilestoneHealthcareSetup,
		domain.MilestoneCareOptionsResearch,
	}

	out := make(map[string]domain.TimelineMilestone, len(names))
	for _, name := range names {
		m := domain.TimelineMilestone{Name: name, TaskTemplate: "Task one\nTask two"}
		err := pool.QueryRow(ctx,
			`INSERT INTO timeline_milestones (name, task_template)
			 VALUES ($1, $2)
			 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			 RETURNING id, description, estimated_timeframe, care_level_required, task_template`,
			m.Name, m.TaskTemplate,
		).Scan(&m.ID, &m.Description, &m.EstimatedTimeframe, &m.CareLevelRequired, &m.TaskTemplate)
		if err != nil {
			t.Fatalf("testhelper: SeedMilestones %q: %v", name, err)
		}
		out[name] = m
	}

	return out
}

// SeedSearchResult inserts a bare places-search result row.
func SeedSearchResult(t *testing.T, pool *pgxpool.Pool, userID *uuid.UUID) domain.SearchResult {
	t.Helper()

	sr := domain.SearchResult{
		ID:          uuid.New(),
		UserID:      userID,
		SearchQuery: "assisted living near Phoenix " + uniqueSuffix(),
		Parameters:  domain.SearchParameters{Query: "assisted living", Location: "Phoenix", Type: "assisted living", Num: 20},
		RawResponse: []byte(`{"places":[]}`),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO serperapi_search_results (id, user_id, search_query, search_parameters, raw_response)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		sr.ID, sr.UserID, sr.SearchQuery, sr.Parameters, sr.RawResponse,
	).Scan(&sr.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedSearchResult: %v", err)
	}

	return sr
}
