// Package user implements the account repository.
package user

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kceleski/ava-care-compass/internal/adapter/postgres"
	"github.com/kceleski/ava-care-compass/internal/domain"
)

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, email, password_hash, first_name, last_name, role, created_at, updated_at`

// Create inserts an account. A taken email reports ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash, first_name, last_name, role)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", u.Email)
	}
	return u, nil
}

// GetByEmail looks an account up by email, ignoring case.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var u domain.User
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT `+columns+` FROM users WHERE lower(email) = $1`, strings.ToLower(email),
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", email)
	}
	return u, nil
}
