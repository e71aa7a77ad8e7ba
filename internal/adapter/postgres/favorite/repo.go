// Package favorite implements the user favorites repository.
package favorite

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/adapter/postgres/facility"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

// Repo provides favorites persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new favorites repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func ref(userID, facilityID uuid.UUID) string {
	return userID.String() + "/" + facilityID.String()
}

// Add saves a facility for the user. A second add of the same pair returns
// domain.ErrAlreadyExists; an unknown facility returns domain.ErrNotFound.
func (r *Repo) Add(ctx context.Context, userID, facilityID uuid.UUID) (domain.Favorite, error) {
	fav := domain.Favorite{ID: uuid.New(), UserID: userID, FacilityID: facilityID}

	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO user_favorites (id, user_id, facility_id)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		fav.ID, fav.UserID, fav.FacilityID,
	).Scan(&fav.CreatedAt)
	if err != nil {
		return domain.Favorite{}, postgres.MapError(err, "favorite", ref(userID, facilityID))
	}
	return fav, nil
}

// Remove deletes the (user, facility) pair. Removing an absent pair is not an error.
func (r *Repo) Remove(ctx context.Context, userID, facilityID uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM user_favorites WHERE user_id = $1 AND facility_id = $2`,
		userID, facilityID,
	)
	if err != nil {
		return postgres.MapError(err, "favorite", ref(userID, facilityID))
	}
	return nil
}

// ListWithFacility returns the user's favorites joined with facility details,
// newest first.
func (r *Repo) ListWithFacility(ctx context.Context, userID uuid.UUID) ([]domain.FavoriteWithFacility, error) {
	cols := append([]string{"uf.id", "uf.user_id", "uf.facility_id", "uf.created_at"}, facility.Columns...)

	sql, args, err := postgres.Builder().
		Select(cols...).
		From("user_favorites uf").
		Join("facilities f ON f.id = uf.facility_id").
		Where(sq.Eq{"uf.user_id": userID}).
		OrderBy("uf.created_at DESC", "uf.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("favorite.ListWithFacility build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("favorite.ListWithFacility: %w", err)
	}
	defer rows.Close()

	out := []domain.FavoriteWithFacility{}
	for rows.Next() {
		var (
			item domain.FavoriteWithFacility
			f    = &item.Facility
		)
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.FacilityID, &item.CreatedAt,
			&f.ID, &f.Name, &f.FacilityType, &f.AddressLine1, &f.City, &f.State, &f.ZipCode,
			&f.Phone, &f.Website, &f.Description, &f.Rating, &f.ReviewsCount,
			&f.PriceRangeMin, &f.PriceRangeMax, &f.CurrentAvailability,
			&f.AcceptsMedicare, &f.AcceptsMedicaid, &f.AcceptsVABenefits,
			&f.IsVerified, &f.IsFeatured, &f.Latitude, &f.Longitude, &f.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("favorite.ListWithFacility scan: %w", err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("favorite.ListWithFacility rows: %w", err)
	}

	return out, nil
}
