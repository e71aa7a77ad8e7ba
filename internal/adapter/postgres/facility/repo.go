// Package facility implements the verified facility directory repository.
package facility

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// Columns is the facilities select list in scan order, exported for joins.
var Columns = []string{
	"f.id", "f.name", "f.facility_type", "f.address_line1", "f.city", "f.state", "f.zip_code",
	"f.phone", "f.website", "f.description", "f.rating", "f.reviews_count",
	"f.price_range_min", "f.price_range_max", "f.current_availability",
	"f.accepts_medicare", "f.accepts_medicaid", "f.accepts_va_benefits",
	"f.is_verified", "f.is_featured", "f.latitude", "f.longitude", "f.created_at",
}

// Repo provides facility persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new facility repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Search returns verified facilities matching the filter, best rated first.
// Location matches the city case-insensitively as a substring.
func (r *Repo) Search(ctx context.Context, filter domain.FacilityFilter) ([]domain.Facility, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	query := postgres.Builder().
		Select(Columns...).
		From("facilities f").
		Where(sq.Eq{"f.is_verified": true}).
		OrderBy("f.rating DESC NULLS LAST", "f.name").
		Limit(uint64(limit))

	if filter.FacilityType != "" {
		query = query.Where(sq.Eq{"f.facility_type": filter.FacilityType})
	}
	if filter.PriceMin != nil {
		query = query.Where(sq.GtOrEq{"f.price_range_min": *filter.PriceMin})
	}
	if filter.PriceMax != nil {
		query = query.Where(sq.LtOrEq{"f.price_range_max": *filter.PriceMax})
	}
	if filter.AcceptsMedicare {
		query = query.Where(sq.Eq{"f.accepts_medicare": true})
	}
	if filter.AcceptsMedicaid {
		query = query.Where(sq.Eq{"f.accepts_medicaid": true})
	}
	if filter.AcceptsVA {
		query = query.Where(sq.Eq{"f.accepts_va_benefits": true})
	}
	if filter.Location != "" {
		query = query.Where(sq.ILike{"f.city": postgres.ContainsPattern(filter.Location)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("facility.Search build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("facility.Search: %w", err)
	}
	defer rows.Close()

	var out []domain.Facility
	for rows.Next() {
		f, err := Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("facility.Search scan: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("facility.Search rows: %w", err)
	}

	return out, nil
}

// GetByID returns one facility regardless of verification state.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Facility, error) {
	sql, args, err := postgres.Builder().
		Select(Columns...).
		From("facilities f").
		Where(sq.Eq{"f.id": id}).
		ToSql()
	if err != nil {
		return domain.Facility{}, fmt.Errorf("facility.GetByID build: %w", err)
	}

	f, err := Scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.Facility{}, postgres.MapError(err, "facility", id)
	}
	return f, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts a facility or, when a facility with the same name and city
// already exists, refreshes its details. Used by the reference-data seeder.
func (r *Repo) Upsert(ctx context.Context, f domain.Facility) (uuid.UUID, error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	var existing uuid.UUID
	err := q.QueryRow(ctx,
		`SELECT id FROM facilities WHERE name = $1 AND city = $2 LIMIT 1`, f.Name, f.City,
	).Scan(&existing)
	switch {
	case err == nil:
		f.ID = existing
	case !errors.Is(err, pgx.ErrNoRows):
		return uuid.Nil, postgres.MapError(err, "facility", f.Name)
	}

	sql, args, err := postgres.Builder().
		Insert("facilities").
		Columns(
			"id", "name", "facility_type", "address_line1", "city", "state", "zip_code",
			"phone", "website", "description", "rating", "reviews_count",
			"price_range_min", "price_range_max", "current_availability",
			"accepts_medicare", "accepts_medicaid", "accepts_va_benefits",
			"is_verified", "is_featured", "latitude", "longitude",
		).
		Values(
			f.ID, f.Name, f.FacilityType, f.AddressLine1, f.City, f.State, f.ZipCode,
			f.Phone, f.Website, f.Description, f.Rating, f.ReviewsCount,
			f.PriceRangeMin, f.PriceRangeMax, f.CurrentAvailability,
			f.AcceptsMedicare, f.AcceptsMedicaid, f.AcceptsVABenefits,
			f.IsVerified, f.IsFeatured, f.Latitude, f.Longitude,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			facility_type = EXCLUDED.facility_type, address_line1 = EXCLUDED.address_line1,
			state = EXCLUDED.state, zip_code = EXCLUDED.zip_code, phone = EXCLUDED.phone,
			website = EXCLUDED.website, description = EXCLUDED.description, rating = EXCLUDED.rating,
			reviews_count = EXCLUDED.reviews_count, price_range_min = EXCLUDED.price_range_min,
			price_range_max = EXCLUDED.price_range_max, current_availability = EXCLUDED.current_availability,
			accepts_medicare = EXCLUDED.accepts_medicare, accepts_medicaid = EXCLUDED.accepts_medicaid,
			accepts_va_benefits = EXCLUDED.accepts_va_benefits, is_verified = EXCLUDED.is_verified,
			is_featured = EXCLUDED.is_featured, latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude`).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("facility.Upsert build: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return uuid.Nil, postgres.MapError(err, "facility", f.ID)
	}
	return f.ID, nil
}

// ---------------------------------------------------------------------------
// Mapping
// ---------------------------------------------------------------------------

// Scan reads one row selected with Columns.
func Scan(row pgx.Row) (domain.Facility, error) {
	var f domain.Facility
	err := row.Scan(
		&f.ID, &f.Name, &f.FacilityType, &f.AddressLine1, &f.City, &f.State, &f.ZipCode,
		&f.Phone, &f.Website, &f.Description, &f.Rating, &f.ReviewsCount,
		&f.PriceRangeMin, &f.PriceRangeMax, &f.CurrentAvailability,
		&f.AcceptsMedicare, &f.AcceptsMedicaid, &f.AcceptsVABenefits,
		&f.IsVerified, &f.IsFeatured, &f.Latitude, &f.Longitude, &f.CreatedAt,
	)
	if err != nil {
		return domain.Facility{}, err
	}
	return f, nil
}
