// Package contact implements the personal emergency contact repository.
package contact

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

// Repo provides personal contact persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new personal contact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a personal contact.
func (r *Repo) Create(ctx context.Context, c domain.UserEmergencyContact) (domain.UserEmergencyContact, error) {
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO user_emergency_contacts (id, user_id, name, relationship, phone, is_primary)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		c.ID, c.UserID, c.Name, c.Relationship, c.Phone, c.IsPrimary,
	).Scan(&c.CreatedAt)
	if err != nil {
		return domain.UserEmergencyContact{}, postgres.MapError(err, "user_emergency_contact", c.ID)
	}
	return c, nil
}

// ListByUser returns the user's contacts, primary ones first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserEmergencyContact, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, user_id, name, relationship, phone, is_primary, created_at
		 FROM user_emergency_contacts
		 WHERE user_id = $1
		 ORDER BY is_primary DESC, created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("contact.ListByUser: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UserEmergencyContact, error) {
		var c domain.UserEmergencyContact
		err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Relationship, &c.Phone, &c.IsPrimary, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("contact.ListByUser scan: %w", err)
	}
	return out, nil
}

// Delete removes a contact owned by userID. Rows owned by someone else are
// indistinguishable from missing ones and return domain.ErrNotFound.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM user_emergency_contacts WHERE id = $1 AND user_id = $2`, id, userID,
	)
	if err != nil {
		return postgres.MapError(err, "user_emergency_contact", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user_emergency_contact %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
